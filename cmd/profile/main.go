// Profiling:
// go build ./cmd/profile
// ./profile -mode cpu -rounds 20
// go tool pprof -http=":8000" -nodefraction=0.001 ./profile cpu.pprof

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/jungle/pkg/components"
	"github.com/decker502/jungle/pkg/ecs"
	"github.com/decker502/jungle/pkg/game"
	"github.com/decker502/jungle/pkg/systems"
	"github.com/pkg/profile"
)

var (
	mode     = flag.String("mode", "cpu", "cpu | mem")
	rounds   = flag.Int("rounds", 10, "重复次数")
	frames   = flag.Int("frames", 600, "每轮模拟的帧数")
	entities = flag.Int("entities", 1000, "每轮实体数量")
	churn    = flag.Int("churn", 10, "每帧销毁并重新创建的实体数量")
	fps      = flag.Int("fps", 0, "目标帧率，0 表示不限速")
)

func main() {
	flag.Parse()
	log.SetOutput(io.Discard)

	var option func(*profile.Profile)
	switch *mode {
	case "cpu":
		option = profile.CPUProfile
	case "mem":
		option = profile.MemProfileAllocs
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}

	p := profile.Start(option, profile.ProfilePath("."), profile.NoShutdownHook)
	start := time.Now()
	stats, err := run(*rounds, *frames, *entities, *churn, *fps)
	p.Stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d rounds x %d frames, %d entities created, %d destroyed in %v\n",
		*rounds, *frames, stats.created, stats.destroyed, time.Since(start))
}

type runStats struct {
	created   int
	destroyed int
}

// run 模拟无界面的帧循环：Update、移动，再按批次销毁和创建实体
func run(rounds, frames, numEntities, churn, fps int) (runStats, error) {
	var stats runStats
	for range rounds {
		r := ecs.NewRegistry()
		movement, err := systems.NewMovementSystem()
		if err != nil {
			return stats, err
		}
		if err := ecs.AddSystem(r, movement); err != nil {
			return stats, err
		}

		live := make([]ecs.Entity, 0, numEntities)
		for i := range numEntities {
			e, err := spawn(r, i)
			if err != nil {
				return stats, err
			}
			live = append(live, e)
		}
		stats.created += numEntities

		clock := game.NewFrameClock(fps)
		for frame := range frames {
			r.Update()
			if err := movement.Update(clock.Tick()); err != nil {
				return stats, err
			}

			for i := 0; i < churn && len(live) > 0; i++ {
				victim := (frame*churn + i) % len(live)
				if err := live[victim].Kill(); err != nil {
					return stats, err
				}
				e, err := spawn(r, frame*churn+i)
				if err != nil {
					return stats, err
				}
				live[victim] = e
				stats.created++
				stats.destroyed++
			}
		}
	}
	return stats, nil
}

func spawn(r *ecs.Registry, i int) (ecs.Entity, error) {
	e := r.CreateEntity()
	position := components.Vec2{X: float64(i % 100), Y: float64(i / 100)}
	if err := ecs.AddComponent(e, components.NewTransformComponent(position, components.Vec2{X: 1, Y: 1}, 0)); err != nil {
		return e, err
	}
	velocity := components.Vec2{X: float64(i%7) - 3, Y: float64(i%5) - 2}
	if err := ecs.AddComponent(e, components.RigidBodyComponent{Velocity: velocity}); err != nil {
		return e, err
	}
	return e, nil
}

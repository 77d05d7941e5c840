package main

import (
	"fmt"
	"log"

	"github.com/decker502/jungle/pkg/components"
	"github.com/decker502/jungle/pkg/config"
	"github.com/decker502/jungle/pkg/ecs"
	"github.com/decker502/jungle/pkg/game"
	"github.com/decker502/jungle/pkg/scenes"
	"github.com/decker502/jungle/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// 车辆字符颜色，按 LevelOneVehicles 顺序
var vehicleColors = []tcell.Color{tcell.ColorGreen, tcell.ColorYellow}

// 车辆驶出屏幕时在边缘留下的记号
const (
	exitMarkerRune     = '*'
	exitMarkerLifetime = 1.0 // 秒
)

// Driver 是终端帧驱动
type Driver struct {
	screen   tcell.Screen
	registry *ecs.Registry
	clock    *game.FrameClock
	cfg      *config.EngineConfig

	// 下标与 scenes.LevelOneVehicles 对应，已销毁的车辆保留旧句柄
	vehicles []ecs.Entity

	audioInit bool
}

// NewDriver 创建驱动并生成第一关的车辆
func NewDriver(screen tcell.Screen, cfg *config.EngineConfig) (*Driver, error) {
	d := &Driver{
		screen:   screen,
		registry: ecs.NewRegistry(),
		clock:    game.NewFrameClock(cfg.TPS),
		cfg:      cfg,
	}

	movement, err := systems.NewMovementSystem()
	if err != nil {
		return nil, err
	}
	render, err := systems.NewTerminalRenderSystem(cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	if err != nil {
		return nil, err
	}
	lifetime, err := systems.NewLifetimeSystem()
	if err != nil {
		return nil, err
	}
	for _, system := range []ecs.SystemInterface{movement, render, lifetime} {
		if err := ecs.AddSystem(d.registry, system); err != nil {
			return nil, err
		}
	}

	d.vehicles = make([]ecs.Entity, len(scenes.LevelOneVehicles))
	for i := range scenes.LevelOneVehicles {
		if err := d.spawn(i); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Driver) spawn(i int) error {
	v := scenes.LevelOneVehicles[i]
	e, err := scenes.SpawnVehicle(d.registry, v)
	if err != nil {
		return fmt.Errorf("spawn %s: %w", v.Name, err)
	}
	glyph := components.GlyphComponent{
		Rune:  v.Glyph,
		Style: tcell.StyleDefault.Foreground(vehicleColors[i%len(vehicleColors)]).Bold(true),
	}
	if err := ecs.AddComponent(e, glyph); err != nil {
		return fmt.Errorf("spawn %s: %w", v.Name, err)
	}
	d.vehicles[i] = e
	return nil
}

// respawn 重新生成已销毁的车辆
func (d *Driver) respawn() error {
	for i, e := range d.vehicles {
		if e.IsAlive() {
			continue
		}
		if err := d.spawn(i); err != nil {
			return err
		}
	}
	return nil
}

// spawnExitMarker 在 (x, y) 单元格放一个会自动消失的记号
func (d *Driver) spawnExitMarker(x, y int) error {
	e := d.registry.CreateEntity()
	position := components.Vec2{
		X: float64(x) * d.cfg.Terminal.CellWidth,
		Y: float64(y) * d.cfg.Terminal.CellHeight,
	}
	if err := ecs.AddComponent(e, components.NewTransformComponent(position, components.Vec2{X: 1, Y: 1}, 0)); err != nil {
		return err
	}
	glyph := components.GlyphComponent{
		Rune:  exitMarkerRune,
		Style: tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
	if err := ecs.AddComponent(e, glyph); err != nil {
		return err
	}
	return ecs.AddComponent(e, components.LifetimeComponent{MaxLifetime: exitMarkerLifetime})
}

// exitMarkerCell 把驶出位置截断到屏幕内最近的字符格
// 最后一行是状态栏；屏幕没有可用行时返回 false
func exitMarkerCell(x, y, width, height int) (int, int, bool) {
	if width < 1 || height < 2 {
		return 0, 0, false
	}
	return min(max(x, 0), width-1), min(max(y, 0), height-2), true
}

// numVehicles 返回存活的车辆数量
func (d *Driver) numVehicles() int {
	n := 0
	for _, e := range d.vehicles {
		if e.IsAlive() {
			n++
		}
	}
	return n
}

// step 推进一帧：同步实体、移动、记号计时，然后销毁驶出屏幕的车辆
func (d *Driver) step(deltaTime float64) error {
	d.registry.Update()

	movement, err := ecs.GetSystem[*systems.MovementSystem](d.registry)
	if err != nil {
		return err
	}
	if err := movement.Update(deltaTime); err != nil {
		return err
	}
	lifetime, err := ecs.GetSystem[*systems.LifetimeSystem](d.registry)
	if err != nil {
		return err
	}
	if err := lifetime.Update(deltaTime); err != nil {
		return err
	}

	render, err := ecs.GetSystem[*systems.TerminalRenderSystem](d.registry)
	if err != nil {
		return err
	}
	width, height := d.screen.Size()
	for i, e := range d.vehicles {
		if !e.IsAlive() {
			continue
		}
		transform, err := ecs.GetComponent[components.TransformComponent](e)
		if err != nil {
			return err
		}
		x, y := render.CellOf(transform.Position)
		if x >= width || y >= height-1 {
			if err := e.Kill(); err != nil {
				return err
			}
			if mx, my, ok := exitMarkerCell(x, y, width, height); ok {
				if err := d.spawnExitMarker(mx, my); err != nil {
					return err
				}
			}
			log.Printf("[TTY] %s left the screen", scenes.LevelOneVehicles[i].Name)
			d.playCue()
		}
	}
	return nil
}

// draw 绘制所有车辆以及底部状态栏
func (d *Driver) draw() error {
	d.screen.Clear()

	render, err := ecs.GetSystem[*systems.TerminalRenderSystem](d.registry)
	if err != nil {
		return err
	}
	width, height := d.screen.Size()
	if err := render.Update(d.screen, width, height-1); err != nil {
		return err
	}

	status := fmt.Sprintf(" vehicles: %d  entities: %d  [r] respawn  [esc] quit", d.numVehicles(), d.registry.NumEntities())
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, ch := range status {
		if i >= width {
			break
		}
		d.screen.SetContent(i, height-1, ch, nil, style)
	}

	d.screen.Show()
	return nil
}

// handleInput 处理一个事件，返回 false 表示退出
func (d *Driver) handleInput(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false, nil
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
			return true, d.respawn()
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true, nil
}

// Run 运行主循环直到按下 Esc
func (d *Driver) Run() error {
	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		// 处理积压的事件，不阻塞
		for pending := true; pending; {
			select {
			case ev := <-eventChan:
				running, err := d.handleInput(ev)
				if err != nil || !running {
					return err
				}
			default:
				pending = false
			}
		}

		if err := d.step(d.clock.Tick()); err != nil {
			return err
		}
		if err := d.draw(); err != nil {
			return err
		}
	}
}

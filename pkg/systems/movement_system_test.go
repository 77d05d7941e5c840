package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/decker502/jungle/pkg/components"
	"github.com/decker502/jungle/pkg/ecs"
)

func TestMovementSystemUpdate(t *testing.T) {
	r := ecs.NewRegistry()
	movement, err := NewMovementSystem()
	if err != nil {
		t.Fatalf("NewMovementSystem failed: %v", err)
	}
	ecs.AddSystem(r, movement)

	tank := r.CreateEntity()
	mustAdd(t, tank, components.NewTransformComponent(components.Vec2{X: 10, Y: 10}, components.Vec2{X: 5, Y: 5}, 0))
	mustAdd(t, tank, components.RigidBodyComponent{Velocity: components.Vec2{X: 30, Y: 0}})

	// 只有位置没有速度的实体不受影响
	tile := r.CreateEntity()
	mustAdd(t, tile, components.NewTransformComponent(components.Vec2{X: 0, Y: 0}, components.Vec2{X: 1, Y: 1}, 0))

	r.Update()

	tests := []struct {
		name      string
		deltaTime float64
		wantX     float64
	}{
		{"半秒", 0.5, 25},
		{"零时间", 0, 25},
		{"一帧", 1.0 / 60.0, 25.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := movement.Update(tt.deltaTime); err != nil {
				t.Fatalf("Update failed: %v", err)
			}
			transform, _ := ecs.GetComponent[components.TransformComponent](tank)
			if math.Abs(transform.Position.X-tt.wantX) > 1e-9 || transform.Position.Y != 10 {
				t.Errorf("position = %+v, want (%v, 10)", transform.Position, tt.wantX)
			}
		})
	}

	transform, _ := ecs.GetComponent[components.TransformComponent](tile)
	if transform.Position.X != 0 || transform.Position.Y != 0 {
		t.Errorf("tile moved to %+v", transform.Position)
	}
}

func TestMovementSystemSurfacesMissingComponent(t *testing.T) {
	r := ecs.NewRegistry()
	movement, _ := NewMovementSystem()
	ecs.AddSystem(r, movement)

	e := r.CreateEntity()
	mustAdd(t, e, components.TransformComponent{})
	mustAdd(t, e, components.RigidBodyComponent{})
	r.Update()

	// 同步之前实体仍在系统中
	if err := ecs.RemoveComponent[components.RigidBodyComponent](e); err != nil {
		t.Fatalf("RemoveComponent failed: %v", err)
	}
	err := movement.Update(1)
	if !errors.Is(err, ecs.ErrComponentNotFound) {
		t.Errorf("expected ErrComponentNotFound, got %v", err)
	}

	// 下一次同步移出实体，帧循环可以继续
	r.Update()
	if movement.HasEntity(e) {
		t.Error("entity should leave the system at the next Update")
	}
	if err := movement.Update(1); err != nil {
		t.Errorf("Update after sync failed: %v", err)
	}
}

package systems

import (
	"testing"

	"github.com/decker502/jungle/pkg/components"
	"github.com/decker502/jungle/pkg/ecs"
)

func TestLifetimeSystemExpiresEntities(t *testing.T) {
	r := ecs.NewRegistry()
	lifetime, err := NewLifetimeSystem()
	if err != nil {
		t.Fatalf("NewLifetimeSystem failed: %v", err)
	}
	ecs.AddSystem(r, lifetime)

	short := r.CreateEntity()
	mustAdd(t, short, components.LifetimeComponent{MaxLifetime: 0.5})
	long := r.CreateEntity()
	mustAdd(t, long, components.LifetimeComponent{MaxLifetime: 2})
	r.Update()

	if lifetime.NumEntities() != 2 {
		t.Fatalf("NumEntities = %d, want 2", lifetime.NumEntities())
	}

	if err := lifetime.Update(0.5); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	// 销毁要等到下一次同步
	if !short.IsAlive() {
		t.Error("expired entity should stay alive until the registry updates")
	}
	c, err := ecs.GetComponent[components.LifetimeComponent](short)
	if err != nil {
		t.Fatalf("GetComponent failed: %v", err)
	}
	if !c.IsExpired || c.Remaining() != 0 {
		t.Errorf("short lifetime = %+v, want expired", *c)
	}

	r.Update()
	if short.IsAlive() {
		t.Error("expired entity should be destroyed")
	}
	if !long.IsAlive() || !lifetime.HasEntity(long) {
		t.Error("long-lived entity should remain")
	}

	c, err = ecs.GetComponent[components.LifetimeComponent](long)
	if err != nil {
		t.Fatalf("GetComponent failed: %v", err)
	}
	if c.Remaining() != 1.5 {
		t.Errorf("Remaining = %v, want 1.5", c.Remaining())
	}
}

func TestLifetimeSystemKillIsIdempotent(t *testing.T) {
	r := ecs.NewRegistry()
	lifetime, err := NewLifetimeSystem()
	if err != nil {
		t.Fatalf("NewLifetimeSystem failed: %v", err)
	}
	ecs.AddSystem(r, lifetime)

	e := r.CreateEntity()
	mustAdd(t, e, components.LifetimeComponent{MaxLifetime: 0.1})
	r.Update()

	// 同步之前多次更新，不会重复销毁
	for range 3 {
		if err := lifetime.Update(0.1); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	r.Update()
	if e.IsAlive() || lifetime.NumEntities() != 0 {
		t.Error("entity should be destroyed exactly once")
	}
}

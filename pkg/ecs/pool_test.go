package ecs

import (
	"errors"
	"testing"
)

func TestPoolSetRequiresResize(t *testing.T) {
	p := NewPool[int](2)

	if err := p.Set(1, 7); err != nil {
		t.Fatalf("Set(1) failed: %v", err)
	}
	if err := p.Set(2, 9); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Set(2) expected ErrIndexOutOfRange, got %v", err)
	}

	p.Resize(3)
	if err := p.Set(2, 9); err != nil {
		t.Fatalf("Set(2) after Resize failed: %v", err)
	}

	v, err := p.Get(2)
	if err != nil || *v != 9 {
		t.Errorf("Get(2) = (%v, %v), want 9", v, err)
	}
}

func TestPoolGetReturnsReference(t *testing.T) {
	p := NewPool[idTestA](4)
	_ = p.Set(3, idTestA{V: 1})

	ref, _ := p.Get(3)
	ref.V = 42

	again, _ := p.Get(3)
	if again.V != 42 {
		t.Errorf("mutation through Get not visible, got %d", again.V)
	}
}

func TestPoolUnsetSlotIsZero(t *testing.T) {
	p := NewPool[idTestA](4)
	v, err := p.Get(0)
	if err != nil {
		t.Fatalf("Get(0) failed: %v", err)
	}
	if v.V != 0 {
		t.Errorf("unset slot = %d, want zero value", v.V)
	}
	if _, err := p.Get(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Get(-1) expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestPoolShrinkThenGrowDropsStale(t *testing.T) {
	p := NewPool[int](4)
	_ = p.Set(3, 5)

	p.Resize(2)
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}

	p.Resize(4)
	v, _ := p.Get(3)
	if *v != 0 {
		t.Errorf("slot 3 after shrink/grow = %d, want 0", *v)
	}
}

func TestPoolClear(t *testing.T) {
	p := NewPool[int](DefaultPoolSize)
	if p.IsEmpty() {
		t.Fatal("new pool should not be empty")
	}
	p.Clear()
	if !p.IsEmpty() || p.Len() != 0 {
		t.Errorf("after Clear Len() = %d, want 0", p.Len())
	}
	if err := p.Set(0, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Set on cleared pool expected ErrIndexOutOfRange, got %v", err)
	}
}

package ecs

import (
	"fmt"
	"sync"
)

// ComponentID 是组件类型的唯一标识符
// 从 0 开始连续分配，在整个进程生命周期内保持不变
type ComponentID int

// typeKey 用类型化的 nil 指针作为类型标识
// any((*T)(nil)) 的动态类型对每个 T 都不同，可直接作为 map 的键，无需 reflect
type typeKey any

func typeKeyOf[T any]() typeKey {
	return (*T)(nil)
}

// componentTable 是组件类型到 ID 的注册表
type componentTable struct {
	mu    sync.Mutex
	ids   map[typeKey]ComponentID
	names []string
	limit int
}

func newComponentTable(limit int) *componentTable {
	return &componentTable{
		ids:   make(map[typeKey]ComponentID, limit),
		names: make([]string, 0, limit),
		limit: limit,
	}
}

// idOf 返回类型的 ID，首次请求时分配
func (t *componentTable) idOf(key typeKey, name string) (ComponentID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id, ok := t.ids[key]; ok {
		return id, nil
	}

	if len(t.names) >= t.limit {
		return -1, fmt.Errorf("register component %s: %w (max %d)", name, ErrTooManyComponents, t.limit)
	}

	id := ComponentID(len(t.names))
	t.ids[key] = id
	t.names = append(t.names, name)
	return id, nil
}

func (t *componentTable) name(id ComponentID) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id < 0 || int(id) >= len(t.names) {
		return fmt.Sprintf("component#%d", id)
	}
	return t.names[id]
}

func (t *componentTable) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.names)
}

// components 是进程级共享的组件表，所有 Registry 共用同一套 ID
var components = newComponentTable(MaxComponents)

// ComponentIDOf 返回组件类型 T 的 ID
//
// 第一次请求某个类型时分配下一个 ID；之后每次调用返回相同的值。
// 不同类型的 ID 一定不同。超过 MaxComponents 个类型时返回 ErrTooManyComponents。
func ComponentIDOf[T any]() (ComponentID, error) {
	return components.idOf(typeKeyOf[T](), ComponentName[T]())
}

// ComponentName 返回组件类型的可读名称，用于日志和错误信息
func ComponentName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// RegisteredComponents 返回已分配 ID 的组件类型数量
func RegisteredComponents() int {
	return components.count()
}

package ecs

import "strconv"

// Entity 是实体的句柄：一个整数 ID 加上所属 Registry 的引用
// 实体本身不携带任何数据
type Entity struct {
	id       int
	registry *Registry
}

// ID 返回实体 ID
func (e Entity) ID() int {
	return e.id
}

// Registry 返回创建该实体的注册表（零值 Entity 返回 nil）
func (e Entity) Registry() *Registry {
	return e.registry
}

// Less 按 ID 排序
func (e Entity) Less(other Entity) bool {
	return e.id < other.id
}

// Kill 标记实体待销毁，在下一次 Registry.Update 时生效
func (e Entity) Kill() error {
	if e.registry == nil {
		return ErrNoRegistry
	}
	return e.registry.KillEntity(e)
}

// Refresh 让实体在下一次 Registry.Update 时重新与所有系统匹配
func (e Entity) Refresh() error {
	if e.registry == nil {
		return ErrNoRegistry
	}
	return e.registry.Refresh(e)
}

// IsAlive 实体是否仍然存活
func (e Entity) IsAlive() bool {
	return e.registry != nil && e.registry.IsAlive(e)
}

func (e Entity) String() string {
	return "Entity(" + strconv.Itoa(e.id) + ")"
}

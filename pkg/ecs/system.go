package ecs

import "fmt"

// SystemInterface 是所有系统的共同接口
// 具体系统只需嵌入 System 即可满足该接口
type SystemInterface interface {
	Base() *System
}

// System 保存系统需要的组件签名，以及当前匹配该签名的实体列表
//
// 实体列表只由 Registry 在同步点修改，系统自己从不注册实体。
type System struct {
	componentSignature Signature
	entities           []Entity
	members            map[int]struct{}
	sealed             bool
}

// Base 返回系统基础结构，嵌入 System 的类型自动获得该方法
func (s *System) Base() *System {
	return s
}

// RequireComponent 声明系统需要组件类型 T
// 必须在系统注册到 Registry 之前调用（通常在构造函数中）
func RequireComponent[T any](s *System) error {
	if s.sealed {
		return fmt.Errorf("require %s: %w", ComponentName[T](), ErrSystemSealed)
	}
	id, err := ComponentIDOf[T]()
	if err != nil {
		return err
	}
	s.componentSignature = s.componentSignature.Set(id)
	return nil
}

// AddEntityToSystem 把实体加入系统的实体列表
func (s *System) AddEntityToSystem(e Entity) {
	if s.members == nil {
		s.members = make(map[int]struct{})
	}
	s.entities = append(s.entities, e)
	s.members[e.id] = struct{}{}
}

// RemoveEntityFromSystem 按 ID 移除第一个匹配的实体，其余实体顺序不变
func (s *System) RemoveEntityFromSystem(e Entity) {
	for i, other := range s.entities {
		if other.id == e.id {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			delete(s.members, e.id)
			return
		}
	}
}

// GetSystemEntities 返回实体列表的副本
func (s *System) GetSystemEntities() []Entity {
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// GetComponentSignature 返回系统需要的组件签名
func (s *System) GetComponentSignature() Signature {
	return s.componentSignature
}

// HasEntity 实体是否在系统的实体列表中
func (s *System) HasEntity(e Entity) bool {
	_, ok := s.members[e.id]
	return ok
}

// NumEntities 返回系统当前匹配的实体数量
func (s *System) NumEntities() int {
	return len(s.entities)
}

// reset 清空实体列表并解除封闭，系统从 Registry 移除时调用
func (s *System) reset() {
	s.entities = nil
	s.members = nil
	s.sealed = false
}

package ecs

import "errors"

var (
	// ErrTooManyComponents 组件类型数量超过 MaxComponents
	ErrTooManyComponents = errors.New("ecs: component type limit reached")

	// ErrComponentNotFound 实体的签名中没有该组件
	ErrComponentNotFound = errors.New("ecs: component not found")

	// ErrSystemNotFound 注册表中没有该类型的系统
	ErrSystemNotFound = errors.New("ecs: system not found")

	// ErrEntityNotAlive 实体已被销毁或不属于该注册表
	ErrEntityNotAlive = errors.New("ecs: entity not alive")

	// ErrNoRegistry 实体没有所属注册表（零值 Entity）
	ErrNoRegistry = errors.New("ecs: entity has no registry")

	// ErrIndexOutOfRange 组件池下标越界（Set 不会自动扩容）
	ErrIndexOutOfRange = errors.New("ecs: pool index out of range")

	// ErrSystemSealed 系统已注册，不能再声明需要的组件
	ErrSystemSealed = errors.New("ecs: system already registered")

	// ErrNilSystem 注册的系统是 nil 接口
	ErrNilSystem = errors.New("ecs: nil system")
)

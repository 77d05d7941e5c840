package systems

import (
	"fmt"

	"github.com/decker502/jungle/pkg/components"
	"github.com/decker502/jungle/pkg/ecs"
)

// MovementSystem 根据速度更新实体位置
// 需要组件：TransformComponent、RigidBodyComponent
type MovementSystem struct {
	ecs.System
}

// NewMovementSystem 创建移动系统
func NewMovementSystem() (*MovementSystem, error) {
	s := &MovementSystem{}
	if err := ecs.RequireComponent[components.TransformComponent](&s.System); err != nil {
		return nil, err
	}
	if err := ecs.RequireComponent[components.RigidBodyComponent](&s.System); err != nil {
		return nil, err
	}
	return s, nil
}

// Update 每帧调用，position += velocity * deltaTime
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (s *MovementSystem) Update(deltaTime float64) error {
	for _, entity := range s.GetSystemEntities() {
		transform, err := ecs.GetComponent[components.TransformComponent](entity)
		if err != nil {
			return fmt.Errorf("movement: %w", err)
		}
		rigidBody, err := ecs.GetComponent[components.RigidBodyComponent](entity)
		if err != nil {
			return fmt.Errorf("movement: %w", err)
		}

		transform.Position = transform.Position.Add(rigidBody.Velocity.Scale(deltaTime))
	}
	return nil
}

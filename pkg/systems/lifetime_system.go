package systems

import (
	"fmt"
	"log"

	"github.com/decker502/jungle/pkg/components"
	"github.com/decker502/jungle/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
// 需要组件：LifetimeComponent
type LifetimeSystem struct {
	ecs.System
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem() (*LifetimeSystem, error) {
	s := &LifetimeSystem{}
	if err := ecs.RequireComponent[components.LifetimeComponent](&s.System); err != nil {
		return nil, err
	}
	return s, nil
}

// Update 累加每个实体的存在时间，过期的实体标记为待销毁
// 销毁在下一次 Registry.Update 时生效
func (s *LifetimeSystem) Update(deltaTime float64) error {
	for _, entity := range s.GetSystemEntities() {
		lifetime, err := ecs.GetComponent[components.LifetimeComponent](entity)
		if err != nil {
			return fmt.Errorf("lifetime: %w", err)
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		if lifetime.IsExpired {
			if err := entity.Kill(); err != nil {
				return fmt.Errorf("lifetime: %w", err)
			}
			log.Printf("[LifetimeSystem] %s expired after %.2fs", entity, lifetime.CurrentLifetime)
		}
	}
	return nil
}

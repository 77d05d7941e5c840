package systems

import (
	"fmt"
	"math"
	"sort"

	"github.com/decker502/jungle/pkg/components"
	"github.com/decker502/jungle/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// TextureLookup 按 ID 查找纹理，由 game.AssetManager 实现
type TextureLookup interface {
	GetTexture(assetID string) (*ebiten.Image, error)
}

// Renderable 是一帧内待绘制实体的组件快照
type Renderable struct {
	Entity    ecs.Entity
	Transform components.TransformComponent
	Sprite    components.SpriteComponent
}

// RenderSystem 按 ZIndex 顺序绘制所有带贴图的实体
// 需要组件：TransformComponent、SpriteComponent
type RenderSystem struct {
	ecs.System
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem() (*RenderSystem, error) {
	s := &RenderSystem{}
	if err := ecs.RequireComponent[components.TransformComponent](&s.System); err != nil {
		return nil, err
	}
	if err := ecs.RequireComponent[components.SpriteComponent](&s.System); err != nil {
		return nil, err
	}
	return s, nil
}

// Renderables 返回按 ZIndex 升序排列的快照
// ZIndex 相同时保持实体在系统中的顺序
func (s *RenderSystem) Renderables() ([]Renderable, error) {
	entities := s.GetSystemEntities()
	renderables := make([]Renderable, 0, len(entities))

	for _, entity := range entities {
		transform, err := ecs.GetComponent[components.TransformComponent](entity)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		sprite, err := ecs.GetComponent[components.SpriteComponent](entity)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		renderables = append(renderables, Renderable{
			Entity:    entity,
			Transform: *transform,
			Sprite:    *sprite,
		})
	}

	sort.SliceStable(renderables, func(i, j int) bool {
		return renderables[i].Sprite.ZIndex < renderables[j].Sprite.ZIndex
	})
	return renderables, nil
}

// Update 把所有实体绘制到 screen 上
//
// 参数:
//   - screen: 绘制目标
//   - textures: 纹理查找服务，SpriteComponent.AssetID 必须已加载
func (s *RenderSystem) Update(screen *ebiten.Image, textures TextureLookup) error {
	renderables, err := s.Renderables()
	if err != nil {
		return err
	}

	for _, r := range renderables {
		texture, err := textures.GetTexture(r.Sprite.AssetID)
		if err != nil {
			return fmt.Errorf("render %s: %w", r.Entity, err)
		}

		src := texture
		if !r.Sprite.SrcRect.Empty() {
			src = texture.SubImage(r.Sprite.SrcRect).(*ebiten.Image)
		}

		screen.DrawImage(src, drawOptions(r))
	}
	return nil
}

// drawOptions 计算绘制变换：先缩放，再绕目标矩形中心旋转，最后平移到实体位置
func drawOptions(r Renderable) *ebiten.DrawImageOptions {
	width := float64(r.Sprite.Width) * r.Transform.Scale.X
	height := float64(r.Sprite.Height) * r.Transform.Scale.Y

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Transform.Scale.X, r.Transform.Scale.Y)
	op.GeoM.Translate(-width/2, -height/2)
	op.GeoM.Rotate(r.Transform.Rotation * math.Pi / 180)
	op.GeoM.Translate(r.Transform.Position.X+width/2, r.Transform.Position.Y+height/2)
	return op
}

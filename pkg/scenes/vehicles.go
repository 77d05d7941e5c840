package scenes

import (
	"github.com/decker502/jungle/pkg/components"
	"github.com/decker502/jungle/pkg/ecs"
)

// Vehicle 描述关卡中一辆会移动的车
type Vehicle struct {
	Name     string
	AssetID  string
	Position components.Vec2
	Scale    components.Vec2
	Rotation float64 // 度
	Velocity components.Vec2
	ZIndex   int
	Glyph    rune // 终端显示字符
}

// 车辆贴图边长（像素）
const vehicleSpriteSize = 32

// LevelOneVehicles 第一关的车辆：坦克向右，卡车向下
var LevelOneVehicles = []Vehicle{
	{
		Name:     "tank",
		AssetID:  "tank-image",
		Position: components.Vec2{X: 10, Y: 10},
		Scale:    components.Vec2{X: 5, Y: 5},
		Rotation: 0,
		Velocity: components.Vec2{X: 30, Y: 0},
		ZIndex:   1,
		Glyph:    'T',
	},
	{
		Name:     "truck",
		AssetID:  "truck-image",
		Position: components.Vec2{X: 10, Y: 10},
		Scale:    components.Vec2{X: 5, Y: 5},
		Rotation: 90,
		Velocity: components.Vec2{X: 0, Y: 30},
		ZIndex:   2,
		Glyph:    'K',
	},
}

// SpawnVehicle 创建带 Transform 和 RigidBody 的车辆实体
// 调用方再按驱动添加 SpriteComponent 或 GlyphComponent
func SpawnVehicle(r *ecs.Registry, v Vehicle) (ecs.Entity, error) {
	e := r.CreateEntity()
	if err := ecs.AddComponent(e, components.NewTransformComponent(v.Position, v.Scale, v.Rotation)); err != nil {
		return e, err
	}
	if err := ecs.AddComponent(e, components.RigidBodyComponent{Velocity: v.Velocity}); err != nil {
		return e, err
	}
	return e, nil
}

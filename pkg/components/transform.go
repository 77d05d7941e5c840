package components

// Vec2 是二维向量（像素坐标或每秒像素速度）
type Vec2 struct {
	X, Y float64
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale 返回 v * k
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// TransformComponent 存储实体在世界中的位置、缩放和旋转
type TransformComponent struct {
	// Position 左上角的世界坐标（像素）
	Position Vec2
	// Scale 缩放因子（1.0 = 原始大小）
	Scale Vec2
	// Rotation 旋转角度（度），绕绘制目标矩形中心旋转
	Rotation float64
}

// NewTransformComponent 创建变换组件
func NewTransformComponent(position, scale Vec2, rotation float64) TransformComponent {
	return TransformComponent{
		Position: position,
		Scale:    scale,
		Rotation: rotation,
	}
}

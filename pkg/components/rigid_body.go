package components

// RigidBodyComponent 存储实体的速度（像素/秒）
type RigidBodyComponent struct {
	Velocity Vec2
}

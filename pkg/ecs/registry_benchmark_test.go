package ecs

import "testing"

// ========== 辅助函数：创建测试数据 ==========

// setupBenchmarkRegistry 创建指定数量的实体，并完成一次同步
// 一半实体拥有 Position+Velocity，另一半只有 Position
func setupBenchmarkRegistry(b *testing.B, count int) (*Registry, *movementTestSystem) {
	r := NewRegistry()
	movement := newMovementTestSystem(b)
	AddSystem(r, movement)

	for i := 0; i < count; i++ {
		e := r.CreateEntity()
		_ = AddComponent(e, testPositionComponent{X: float64(i), Y: float64(i * 2)})
		if i%2 == 0 {
			_ = AddComponent(e, testVelocityComponent{VX: 1, VY: 1})
		}
	}
	r.Update()
	return r, movement
}

// BenchmarkCreateEntity 测试创建实体并添加两个组件
func BenchmarkCreateEntity(b *testing.B) {
	r := NewRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := r.CreateEntity()
		_ = AddComponent(e, testPositionComponent{})
		_ = AddComponent(e, testVelocityComponent{})
	}
}

// BenchmarkUpdate_1000 测试 1000 个待加入实体的同步
func BenchmarkUpdate_1000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		r := NewRegistry()
		AddSystem(r, newMovementTestSystem(b))
		AddSystem(r, newRenderTestSystem(b))
		for j := 0; j < 1000; j++ {
			e := r.CreateEntity()
			_ = AddComponent(e, testPositionComponent{})
			_ = AddComponent(e, testVelocityComponent{})
		}
		b.StartTimer()

		r.Update()
	}
}

// BenchmarkIterate_GetComponent 测试带检查的组件访问
func BenchmarkIterate_GetComponent(b *testing.B) {
	_, movement := setupBenchmarkRegistry(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, e := range movement.GetSystemEntities() {
			pos, _ := GetComponent[testPositionComponent](e)
			vel, _ := GetComponent[testVelocityComponent](e)
			pos.X += vel.VX
			pos.Y += vel.VY
		}
	}
}

// BenchmarkIterate_Unchecked 测试快速路径组件访问
func BenchmarkIterate_Unchecked(b *testing.B) {
	_, movement := setupBenchmarkRegistry(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, e := range movement.GetSystemEntities() {
			pos := GetComponentUnchecked[testPositionComponent](e)
			vel := GetComponentUnchecked[testVelocityComponent](e)
			pos.X += vel.VX
			pos.Y += vel.VY
		}
	}
}

// BenchmarkHasComponent 测试签名位检查
func BenchmarkHasComponent(b *testing.B) {
	r, _ := setupBenchmarkRegistry(b, 1000)
	e := Entity{id: 500, registry: r}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = HasComponent[testVelocityComponent](e)
	}
}

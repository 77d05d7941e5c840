package components

// LifetimeComponent 让实体在存在一段时间后自动销毁
// 用于临时标记，例如车辆驶出屏幕时留下的记号
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}

// Remaining 返回剩余的秒数，已过期时为 0
func (l LifetimeComponent) Remaining() float64 {
	if l.IsExpired || l.CurrentLifetime >= l.MaxLifetime {
		return 0
	}
	return l.MaxLifetime - l.CurrentLifetime
}

package game

import "time"

// FrameClock 按目标帧率控制帧间隔，并给出每帧的 deltaTime
//
// 上一帧结束得早于帧预算时，Tick 先睡眠补足剩余时间。
// ebiten 驱动由 TPS 控制节奏，不需要 FrameClock；终端和无界面驱动使用它。
type FrameClock struct {
	frameBudget time.Duration
	previous    time.Time

	// 测试时可替换
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameClock 创建目标帧率为 fps 的时钟，fps <= 0 时不做限速
func NewFrameClock(fps int) *FrameClock {
	c := &FrameClock{
		now:   time.Now,
		sleep: time.Sleep,
	}
	if fps > 0 {
		c.frameBudget = time.Second / time.Duration(fps)
	}
	c.previous = c.now()
	return c
}

// FrameBudget 返回每帧的时间预算
func (c *FrameClock) FrameBudget() time.Duration {
	return c.frameBudget
}

// Tick 等待到帧预算用完，返回自上一次 Tick 以来经过的秒数
func (c *FrameClock) Tick() float64 {
	wait := c.frameBudget - c.now().Sub(c.previous)
	if wait > 0 && wait <= c.frameBudget {
		c.sleep(wait)
	}

	current := c.now()
	deltaTime := current.Sub(c.previous).Seconds()
	c.previous = current
	return deltaTime
}

package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a playable level or screen.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene logic.
	// deltaTime is the time elapsed since the last update in seconds.
	// A non-nil error stops the game loop.
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，场景被替换或游戏退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Dispose()：
//   - SceneManager 切换到另一个场景
//   - 游戏窗口关闭或按下 Esc
type Disposable interface {
	Dispose()
}

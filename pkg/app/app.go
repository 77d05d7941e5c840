// Package app 提供游戏应用的核心包装器
//
// 该包把窗口、输入、场景管理器串成帧驱动：ebiten 每个 tick 调用 Update、每帧调用 Draw。
package app

import (
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"math"

	"github.com/decker502/jungle/pkg/config"
	"github.com/decker502/jungle/pkg/game"
	"github.com/decker502/jungle/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// windowScaleStep 每次按 +/- 调整窗口缩放的步长
const windowScaleStep = 0.5

// Config 定义应用启动配置
type Config struct {
	// Engine 引擎配置（窗口、TPS、地图）
	Engine *config.EngineConfig
	// Assets 已加载纹理的资源管理器
	Assets *game.AssetManager
	// Settings 显示设置，可为 nil（不保存设置）
	Settings *game.SettingsManager
	// Files 读取关卡文件的文件系统，nil 表示磁盘
	Files fs.FS
	// Level 启动关卡
	Level int
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	engine       *config.EngineConfig
	settings     *game.SettingsManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	// 测试时可替换
	keyJustPressed func(ebiten.Key) bool
	setFullscreen  func(bool)
	setWindowSize  func(width, height int)
	restoreWindow  func()
}

// ConfigureLogging 根据 verbose 开关配置日志输出，应在加载任何资源之前调用
func ConfigureLogging(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
}

// NewApp 创建游戏应用并加载启动关卡
func NewApp(cfg Config) (*App, error) {
	if cfg.Engine == nil {
		return nil, fmt.Errorf("engine config is required")
	}
	if cfg.Assets == nil {
		return nil, fmt.Errorf("asset manager is required")
	}

	settings := cfg.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(level int) (game.Scene, error) {
		return scenes.NewLevelScene(level, cfg.Engine, cfg.Assets, cfg.Files)
	})

	level := cfg.Level
	if level == 0 {
		level = 1
	}
	if err := sceneManager.LoadLevel(level); err != nil {
		return nil, err
	}
	log.Printf("[App] Starting level: %d", level)

	return &App{
		sceneManager:   sceneManager,
		engine:         cfg.Engine,
		settings:       settings,
		keyJustPressed: inpututil.IsKeyJustPressed,
		setFullscreen:  ebiten.SetFullscreen,
		setWindowSize:  ebiten.SetWindowSize,
		restoreWindow:  restoreWindow,
	}, nil
}

// ConfigureWindow 在 RunGame 之前设置窗口标题、大小、TPS 和全屏状态
func (a *App) ConfigureWindow() {
	ebiten.SetWindowTitle(a.engine.Window.Title)
	ebiten.SetTPS(a.engine.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	a.setWindowSize(a.windowSize())
	a.setFullscreen(a.settings.GetSettings().Fullscreen)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（默认每秒 60 次）
func (a *App) Update() error {
	if a.keyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Escape pressed, quitting")
		a.sceneManager.Close()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			width, height := a.windowSize()
			a.setWindowSize(width, height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", width, height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if a.keyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// +/- 调整窗口缩放
	switch {
	case a.keyJustPressed(ebiten.KeyEqual):
		a.changeWindowScale(windowScaleStep)
	case a.keyJustPressed(ebiten.KeyMinus):
		a.changeWindowScale(-windowScaleStep)
	}

	return a.sceneManager.Update(a.engine.DeltaTime())
}

func (a *App) toggleFullscreen() {
	fullscreen := !a.settings.GetSettings().Fullscreen
	a.setFullscreen(fullscreen)
	if !fullscreen {
		a.restoreWindow()
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settings.SetFullscreen(fullscreen)
	a.saveSettings()
}

func restoreWindow() {
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
}

func (a *App) changeWindowScale(delta float64) {
	a.settings.SetWindowScale(a.settings.GetSettings().WindowScale + delta)
	if !a.settings.GetSettings().Fullscreen {
		a.setWindowSize(a.windowSize())
	}
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// windowSize 返回按缩放设置计算的窗口大小
func (a *App) windowSize() (int, int) {
	scale := a.settings.GetSettings().WindowScale
	return int(math.Round(float64(a.engine.Window.Width) * scale)),
		int(math.Round(float64(a.engine.Window.Height) * scale))
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.engine.Window.Width, a.engine.Window.Height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Close 释放当前场景，窗口被直接关闭时由 main 调用
func (a *App) Close() {
	a.sceneManager.Close()
}

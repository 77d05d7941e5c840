package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig 引擎启动配置
//
// 文件格式（所有字段可省略，省略时使用默认值）：
//
//	window:
//	  title: Jungle
//	  width: 1280
//	  height: 720
//	tps: 60
//	background: {r: 21, g: 21, b: 21}
//	assets: assets/assets.yaml
//	tilemap:
//	  path: assets/tilemaps/jungle.map
//	  tileSize: 32
//	  tileScale: 3.0
//	  cols: 25
//	  rows: 20
//	terminal:
//	  cellWidth: 16
//	  cellHeight: 32
type EngineConfig struct {
	Window     WindowConfig   `yaml:"window"`
	TPS        int            `yaml:"tps"`        // 每秒逻辑更新次数
	Background RGB            `yaml:"background"` // 每帧清屏颜色
	Assets     string         `yaml:"assets"`     // 资源清单路径
	Verbose    bool           `yaml:"verbose"`    // 输出日志
	Tilemap    TilemapConfig  `yaml:"tilemap"`
	Terminal   TerminalConfig `yaml:"terminal"`
}

// WindowConfig 窗口配置，Width/Height 同时是逻辑分辨率
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// RGB 不透明颜色
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Color 转换为 color.RGBA
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// TilemapConfig 背景瓦片地图配置
type TilemapConfig struct {
	Path      string  `yaml:"path"`      // 地图文件，为空时所有瓦片使用 (0,0)
	TileSize  int     `yaml:"tileSize"`  // 瓦片在贴图上的边长（像素）
	TileScale float64 `yaml:"tileScale"` // 绘制缩放
	Cols      int     `yaml:"cols"`
	Rows      int     `yaml:"rows"`
}

// TerminalConfig 终端驱动配置：一个字符格对应的世界像素大小
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cellWidth"`
	CellHeight float64 `yaml:"cellHeight"`
}

// DefaultEngineConfig 返回默认配置
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Window: WindowConfig{
			Title:  "Jungle",
			Width:  1280,
			Height: 720,
		},
		TPS:        60,
		Background: RGB{R: 21, G: 21, B: 21},
		Assets:     "assets/assets.yaml",
		Tilemap: TilemapConfig{
			Path:      "assets/tilemaps/jungle.map",
			TileSize:  32,
			TileScale: 3.0,
			Cols:      25,
			Rows:      20,
		},
		Terminal: TerminalConfig{
			CellWidth:  16,
			CellHeight: 32,
		},
	}
}

// LoadEngineConfig 从 YAML 文件加载引擎配置
//
// 文件不存在时返回默认配置；文件中缺少的字段保留默认值。
//
// 返回:
//   - *EngineConfig: 配置
//   - error: 读取、解析或验证失败时返回错误
func LoadEngineConfig(path string) (*EngineConfig, error) {
	config := DefaultEngineConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] %s not found, using defaults", path)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read engine config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse engine config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
func (c *EngineConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Tilemap.TileSize <= 0 || c.Tilemap.TileScale <= 0 {
		return fmt.Errorf("tile size and scale must be positive, got %d and %.2f", c.Tilemap.TileSize, c.Tilemap.TileScale)
	}
	if c.Tilemap.Cols < 0 || c.Tilemap.Rows < 0 {
		return fmt.Errorf("tilemap dimensions must not be negative, got %dx%d", c.Tilemap.Cols, c.Tilemap.Rows)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size must be positive, got %.1fx%.1f", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	return nil
}

// DeltaTime 返回固定逻辑步长（秒）
func (c *EngineConfig) DeltaTime() float64 {
	return 1.0 / float64(c.TPS)
}

package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"

	"github.com/decker502/jungle/pkg/components"
	"github.com/decker502/jungle/pkg/config"
	"github.com/decker502/jungle/pkg/ecs"
	"github.com/decker502/jungle/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// TilemapAssetID 背景瓦片贴图的资源 ID
const TilemapAssetID = "tilemap-image"

// LevelScene 是一个关卡：背景瓦片地图加上按速度移动的车辆
//
// 每个逻辑帧先同步 Registry，再运行 MovementSystem；
// 每个渲染帧先清屏，再运行 RenderSystem。
type LevelScene struct {
	level      int
	registry   *ecs.Registry
	textures   systems.TextureLookup
	background color.RGBA

	vehicles []ecs.Entity
	tiles    int

	// Draw 不能返回错误，渲染失败留到下一次 Update 返回
	drawErr error
}

// NewLevelScene 创建并加载关卡
//
// 参数:
//   - level: 关卡编号，目前只有第 1 关
//   - cfg: 引擎配置（瓦片地图、背景色）
//   - textures: 纹理查找服务，通常是 *game.AssetManager
//   - files: 读取地图文件的文件系统，nil 表示磁盘
func NewLevelScene(level int, cfg *config.EngineConfig, textures systems.TextureLookup, files fs.FS) (*LevelScene, error) {
	if level != 1 {
		return nil, fmt.Errorf("unknown level %d", level)
	}

	s := &LevelScene{
		level:      level,
		registry:   ecs.NewRegistry(),
		textures:   textures,
		background: cfg.Background.Color(),
	}

	if err := s.load(cfg, files); err != nil {
		return nil, fmt.Errorf("load level %d: %w", level, err)
	}
	return s, nil
}

func (s *LevelScene) load(cfg *config.EngineConfig, files fs.FS) error {
	movement, err := systems.NewMovementSystem()
	if err != nil {
		return err
	}
	render, err := systems.NewRenderSystem()
	if err != nil {
		return err
	}
	if err := ecs.AddSystem(s.registry, movement); err != nil {
		return err
	}
	if err := ecs.AddSystem(s.registry, render); err != nil {
		return err
	}

	tiles, err := LoadTilemap(files, cfg.Tilemap.Path, cfg.Tilemap.Cols, cfg.Tilemap.Rows)
	if err != nil {
		return err
	}
	if err := s.spawnTiles(tiles, cfg.Tilemap.TileSize, cfg.Tilemap.TileScale); err != nil {
		return err
	}

	for _, v := range LevelOneVehicles {
		e, err := SpawnVehicle(s.registry, v)
		if err != nil {
			return fmt.Errorf("spawn %s: %w", v.Name, err)
		}
		sprite := components.NewSpriteComponent(v.AssetID, vehicleSpriteSize, vehicleSpriteSize, v.ZIndex, 0, 0)
		if err := ecs.AddComponent(e, sprite); err != nil {
			return fmt.Errorf("spawn %s: %w", v.Name, err)
		}
		s.vehicles = append(s.vehicles, e)
	}

	log.Printf("[LevelScene] Level %d loaded: %d tiles, %d vehicles", s.level, s.tiles, len(s.vehicles))
	return nil
}

func (s *LevelScene) spawnTiles(tiles []Tile, tileSize int, tileScale float64) error {
	step := tileScale * float64(tileSize)
	for _, tile := range tiles {
		e := s.registry.CreateEntity()
		transform := components.NewTransformComponent(
			components.Vec2{X: float64(tile.Col) * step, Y: float64(tile.Row) * step},
			components.Vec2{X: tileScale, Y: tileScale},
			0,
		)
		if err := ecs.AddComponent(e, transform); err != nil {
			return err
		}
		sprite := components.NewSpriteComponent(TilemapAssetID, tileSize, tileSize, 0, tile.SrcCol*tileSize, tile.SrcRow*tileSize)
		if err := ecs.AddComponent(e, sprite); err != nil {
			return err
		}
		s.tiles++
	}
	return nil
}

// Update 同步待创建/待销毁的实体，然后移动车辆
func (s *LevelScene) Update(deltaTime float64) error {
	if err := s.drawErr; err != nil {
		s.drawErr = nil
		return err
	}

	s.registry.Update()

	movement, err := ecs.GetSystem[*systems.MovementSystem](s.registry)
	if err != nil {
		return err
	}
	return movement.Update(deltaTime)
}

// Draw 清屏后按 ZIndex 绘制所有精灵
func (s *LevelScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)

	render, err := ecs.GetSystem[*systems.RenderSystem](s.registry)
	if err == nil {
		err = render.Update(screen, s.textures)
	}
	if err != nil && s.drawErr == nil {
		s.drawErr = err
	}
}

// Dispose 销毁关卡中所有实体，释放组件池和系统
func (s *LevelScene) Dispose() {
	for _, e := range s.registry.Entities() {
		_ = e.Kill()
	}
	s.registry.Update()
	s.registry.Clear()
	log.Printf("[LevelScene] Level %d disposed", s.level)
}

// Registry 返回关卡的实体注册表
func (s *LevelScene) Registry() *ecs.Registry {
	return s.registry
}

// Vehicles 返回车辆实体，顺序与 LevelOneVehicles 一致
func (s *LevelScene) Vehicles() []ecs.Entity {
	return s.vehicles
}

// NumTiles 返回背景瓦片数量
func (s *LevelScene) NumTiles() int {
	return s.tiles
}

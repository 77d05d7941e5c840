package systems

import (
	"fmt"
	"math"

	"github.com/decker502/jungle/pkg/components"
	"github.com/decker502/jungle/pkg/ecs"
	"github.com/gdamore/tcell/v2"
)

// CellWriter 是终端屏幕的最小写入接口，tcell.Screen 满足该接口
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// TerminalRenderSystem 把实体位置映射到终端字符格并绘制
// 需要组件：TransformComponent、GlyphComponent
type TerminalRenderSystem struct {
	ecs.System

	// 每个字符格对应的世界像素大小
	cellWidth  float64
	cellHeight float64
}

// NewTerminalRenderSystem 创建终端渲染系统
// cellWidth、cellHeight 必须大于 0
func NewTerminalRenderSystem(cellWidth, cellHeight float64) (*TerminalRenderSystem, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("invalid terminal cell size %vx%v", cellWidth, cellHeight)
	}
	s := &TerminalRenderSystem{cellWidth: cellWidth, cellHeight: cellHeight}
	if err := ecs.RequireComponent[components.TransformComponent](&s.System); err != nil {
		return nil, err
	}
	if err := ecs.RequireComponent[components.GlyphComponent](&s.System); err != nil {
		return nil, err
	}
	return s, nil
}

// CellOf 返回世界坐标所在的字符格
func (s *TerminalRenderSystem) CellOf(position components.Vec2) (int, int) {
	return int(math.Floor(position.X / s.cellWidth)), int(math.Floor(position.Y / s.cellHeight))
}

// Update 绘制所有实体，位于 width x height 范围之外的实体被跳过
func (s *TerminalRenderSystem) Update(screen CellWriter, width, height int) error {
	for _, entity := range s.GetSystemEntities() {
		transform, err := ecs.GetComponent[components.TransformComponent](entity)
		if err != nil {
			return fmt.Errorf("terminal render: %w", err)
		}
		glyph, err := ecs.GetComponent[components.GlyphComponent](entity)
		if err != nil {
			return fmt.Errorf("terminal render: %w", err)
		}

		x, y := s.CellOf(transform.Position)
		if x < 0 || y < 0 || x >= width || y >= height {
			continue
		}
		screen.SetContent(x, y, glyph.Rune, nil, glyph.Style)
	}
	return nil
}

package components

import "github.com/gdamore/tcell/v2"

// GlyphComponent 是实体在终端中的显示字符
type GlyphComponent struct {
	Rune  rune
	Style tcell.Style
}

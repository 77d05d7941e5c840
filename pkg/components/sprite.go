package components

import "image"

// SpriteComponent 描述实体使用的贴图
//
// AssetID 是 AssetManager 中的纹理 ID，SrcRect 是贴图上的源矩形，
// ZIndex 决定绘制顺序（小的先画，位于下层）。
type SpriteComponent struct {
	AssetID string
	Width   int
	Height  int
	ZIndex  int
	SrcRect image.Rectangle
}

// NewSpriteComponent 创建精灵组件，源矩形从 (srcX, srcY) 开始，大小为 width x height
func NewSpriteComponent(assetID string, width, height, zIndex, srcX, srcY int) SpriteComponent {
	return SpriteComponent{
		AssetID: assetID,
		Width:   width,
		Height:  height,
		ZIndex:  zIndex,
		SrcRect: image.Rect(srcX, srcY, srcX+width, srcY+height),
	}
}

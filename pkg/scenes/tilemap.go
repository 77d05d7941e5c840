package scenes

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/decker502/jungle/pkg/game"
)

// Tile 是地图中的一个瓦片：在网格中的位置，以及贴图上的源格子
type Tile struct {
	Col, Row       int // 网格位置
	SrcCol, SrcRow int // 贴图上的格子
}

// ParseTilemap 解析瓦片地图
//
// 格式：每行用逗号分隔，每个单元是两位数字，第一位是贴图行，第二位是贴图列，
// 例如 "21" 表示贴图第 2 行第 1 列。地图按行读取 cols x rows 个单元，多余内容被忽略。
func ParseTilemap(r io.Reader, cols, rows int) ([]Tile, error) {
	tiles := make([]Tile, 0, cols*rows)
	scanner := bufio.NewScanner(r)

	for y := 0; y < rows; y++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("read tilemap row %d: %w", y, err)
			}
			return nil, fmt.Errorf("tilemap has %d rows, want %d", y, rows)
		}

		cells := strings.Split(strings.TrimSpace(scanner.Text()), ",")
		if len(cells) < cols {
			return nil, fmt.Errorf("tilemap row %d has %d cells, want %d", y, len(cells), cols)
		}

		for x := 0; x < cols; x++ {
			cell := strings.TrimSpace(cells[x])
			if len(cell) != 2 || !isDigit(cell[0]) || !isDigit(cell[1]) {
				return nil, fmt.Errorf("tilemap cell (%d,%d): invalid value %q", x, y, cell)
			}
			tiles = append(tiles, Tile{
				Col:    x,
				Row:    y,
				SrcRow: int(cell[0] - '0'),
				SrcCol: int(cell[1] - '0'),
			})
		}
	}
	return tiles, nil
}

// LoadTilemap 读取并解析瓦片地图文件，fsys 为 nil 时从磁盘读取
// path 为空时返回全部使用源格子 (0,0) 的地图
func LoadTilemap(fsys fs.FS, path string, cols, rows int) ([]Tile, error) {
	if path == "" {
		return uniformTilemap(cols, rows), nil
	}

	file, err := game.OpenFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tilemap %s: %w", path, err)
	}
	defer file.Close()

	tiles, err := ParseTilemap(file, cols, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tilemap %s: %w", path, err)
	}
	return tiles, nil
}

func uniformTilemap(cols, rows int) []Tile {
	tiles := make([]Tile, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			tiles = append(tiles, Tile{Col: x, Row: y})
		}
	}
	return tiles
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

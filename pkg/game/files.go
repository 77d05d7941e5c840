package game

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// OpenFile 打开资源文件
// fsys 为 nil 时直接使用操作系统文件系统，否则从 fsys 中读取（例如嵌入资源）
func OpenFile(fsys fs.FS, path string) (io.ReadCloser, error) {
	if fsys == nil {
		return os.Open(path)
	}
	return fsys.Open(fsPath(path))
}

// ReadFile 读取资源文件的全部内容，fsys 的含义同 OpenFile
func ReadFile(fsys fs.FS, path string) ([]byte, error) {
	if fsys == nil {
		return os.ReadFile(path)
	}
	return fs.ReadFile(fsys, fsPath(path))
}

// fsPath 把 "./assets/x.png" 这类路径转换为 fs.FS 使用的格式
func fsPath(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}

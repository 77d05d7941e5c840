package ecs

import "fmt"

// DefaultPoolSize 是新建组件池的初始容量
const DefaultPoolSize = 100

// componentPool 是所有 Pool[T] 共同的非泛型接口
// Registry 通过它把不同组件类型的池放在同一个切片里
type componentPool interface {
	Len() int
	IsEmpty() bool
	Resize(n int)
	Clear()
}

// Pool 是某一种组件类型的连续存储，下标直接使用实体 ID
//
// 池本身不记录某个下标是否"有值"：语义上的存在与否只由实体的 Signature 决定。
// 从未写入过的下标返回零值。
type Pool[T any] struct {
	data []T
}

var _ componentPool = (*Pool[struct{}])(nil)

// NewPool 创建一个预分配 size 个槽位的组件池
func NewPool[T any](size int) *Pool[T] {
	if size < 0 {
		size = 0
	}
	return &Pool[T]{data: make([]T, size)}
}

// Len 返回槽位数量
func (p *Pool[T]) Len() int {
	return len(p.data)
}

// IsEmpty 池中没有任何槽位
func (p *Pool[T]) IsEmpty() bool {
	return len(p.data) == 0
}

// Resize 调整槽位数量为 n
// 缩小时被截掉的槽位会被清零，再次扩大不会出现旧数据
func (p *Pool[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n < len(p.data):
		clear(p.data[n:])
		p.data = p.data[:n]
	case n > len(p.data):
		p.data = append(p.data, make([]T, n-len(p.data))...)
	}
}

// Clear 删除所有槽位（Len 变为 0）
func (p *Pool[T]) Clear() {
	clear(p.data)
	p.data = p.data[:0]
}

// Set 在 index 处写入组件值
// 不会自动扩容：index 越界时返回 ErrIndexOutOfRange，调用方需先 Resize
func (p *Pool[T]) Set(index int, value T) error {
	if index < 0 || index >= len(p.data) {
		return fmt.Errorf("set index %d (len %d): %w", index, len(p.data), ErrIndexOutOfRange)
	}
	p.data[index] = value
	return nil
}

// Get 返回 index 处组件值的指针，修改会直接作用在池中
func (p *Pool[T]) Get(index int) (*T, error) {
	if index < 0 || index >= len(p.data) {
		return nil, fmt.Errorf("get index %d (len %d): %w", index, len(p.data), ErrIndexOutOfRange)
	}
	return &p.data[index], nil
}

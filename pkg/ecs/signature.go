package ecs

import (
	"math/bits"
	"strconv"
)

// MaxComponents 是支持的组件类型数量上限，也是 Signature 的位宽
const MaxComponents = 32

// Signature 是固定位宽的位集合
// 第 i 位为 1 表示"拥有 ID 为 i 的组件类型"
//
// 每个实体有一个 Signature（拥有哪些组件），
// 每个系统有一个 Signature（需要哪些组件）。
type Signature uint32

// Set 设置指定组件 ID 对应的位，返回新的签名
// 超出 [0, MaxComponents) 的 ID 被忽略
func (s Signature) Set(id ComponentID) Signature {
	if !validComponentID(id) {
		return s
	}
	return s | (1 << uint(id))
}

// Clear 清除指定组件 ID 对应的位，返回新的签名
func (s Signature) Clear(id ComponentID) Signature {
	if !validComponentID(id) {
		return s
	}
	return s &^ (1 << uint(id))
}

// Test 检查指定组件 ID 对应的位是否被设置
func (s Signature) Test(id ComponentID) bool {
	if !validComponentID(id) {
		return false
	}
	return s&(1<<uint(id)) != 0
}

// Matches 判断当前签名是否包含 required 中的全部位
// 即 (s & required) == required，多余的组件是允许的
func (s Signature) Matches(required Signature) bool {
	return s&required == required
}

// IsEmpty 签名中没有任何位被设置
func (s Signature) IsEmpty() bool {
	return s == 0
}

// Count 返回被设置的位数
func (s Signature) Count() int {
	return bits.OnesCount32(uint32(s))
}

// String 以 32 位二进制字符串表示签名（高位在前）
func (s Signature) String() string {
	str := strconv.FormatUint(uint64(s), 2)
	for len(str) < MaxComponents {
		str = "0" + str
	}
	return str
}

func validComponentID(id ComponentID) bool {
	return id >= 0 && id < MaxComponents
}

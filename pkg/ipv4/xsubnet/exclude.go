package xsubnet

import (
	"fmt"
	"math/bits"
	"net/netip"
)

// 排除引擎：从基础子网中挖掉一片区域，余下部分分解为
// 最少数量的 CIDR 对齐块。
//
// 设计决策:
//   - Exclude/ExcludeAll 是全函数：任何有效输入都有定义良好的结果，
//     完全移除的正确答案就是空序列，不是错误
//   - 分解内部全部使用 64 位运算，hi = 0xFFFFFFFF 时 cur+size
//     不会在 32 位内回绕
//   - 贪心取 cur 处对齐且不越过 hi 的最大块，对 CIDR 对齐的
//     余段这是唯一的最小分解

// Exclude 返回 base 区间除去 remove 区间后的最小 CIDR 块序列，
// 按地址升序排列，块间互不重叠且均不与 remove 重叠。
//
//   - remove 与 s 不相交（或 remove 无效）：返回 [s] 原样
//   - remove 完全覆盖 s：返回 nil（空序列即正确结果）
//   - 其余：左余段（低于 remove.network 的部分）在前，
//     右余段（高于 remove.broadcast 的部分）在后
//
// 无效接收者返回 nil。
func (s Subnet) Exclude(remove Subnet) []Subnet {
	if !s.IsValid() {
		return nil
	}
	if !remove.IsValid() || !s.Overlaps(remove) {
		return []Subnet{s}
	}
	if remove.Contains(s) {
		return nil
	}

	// 每侧余段至多分解出 32 块，实践中远少于此。
	out := make([]Subnet, 0, 8)
	if remove.network() > s.network() {
		out = appendCover(out, uint64(s.network()), uint64(remove.network())-1)
	}
	if remove.broadcast() < s.broadcast() {
		out = appendCover(out, uint64(remove.broadcast())+1, uint64(s.broadcast()))
	}
	return out
}

// ExcludeAll 依次从 s 中排除 removes 的每一项：上一步的结果集
// 作为工作集，对其中每个块独立应用下一项排除并按升序拼接，
// 完全消失的块被丢弃。
//
// removes 的顺序不影响最终地址覆盖（这是集合差），
// 但中间步骤的块数量可能随顺序不同而不同。
// removes 为空时返回 [s]；无效接收者返回 nil。
func (s Subnet) ExcludeAll(removes []Subnet) []Subnet {
	if !s.IsValid() {
		return nil
	}
	working := []Subnet{s}
	for _, r := range removes {
		if len(working) == 0 {
			break
		}
		next := make([]Subnet, 0, len(working))
		for _, b := range working {
			next = append(next, b.Exclude(r)...)
		}
		working = next
	}
	return working
}

// CoverRange 返回覆盖闭区间 [from, to] 的最小 CIDR 块序列，升序。
// from、to 必须都是 IPv4（返回 [ErrNotIPv4]），且 from <= to
// （返回 [ErrInvalidRange]）。
func CoverRange(from, to netip.Addr) ([]Subnet, error) {
	lo, ok := AddrToUint32(from)
	if !ok {
		return nil, fmt.Errorf("from %v: %w", from, ErrNotIPv4)
	}
	hi, ok := AddrToUint32(to)
	if !ok {
		return nil, fmt.Errorf("to %v: %w", to, ErrNotIPv4)
	}
	if lo > hi {
		return nil, fmt.Errorf("range %v-%v: %w", from, to, ErrInvalidRange)
	}
	return appendCover(nil, uint64(lo), uint64(hi)), nil
}

// appendCover 把闭区间 [lo, hi] 的最小 CIDR 分解追加到 dst。
// 调用方必须保证 lo <= hi <= 0xFFFFFFFF。
//
// 循环不变式：cur 处允许的最大块尺寸是 cur 的最低置位
// （cur == 0 时为整个空间），再按剩余长度折半收缩到不越过 hi。
// 每轮至少前进一个地址，最多迭代 32 轮。
func appendCover(dst []Subnet, lo, hi uint64) []Subnet {
	for cur := lo; cur <= hi; {
		size := cur & -cur
		if size == 0 {
			size = 1 << 32
		}
		for size > hi-cur+1 {
			size >>= 1
		}
		p := 32 - bits.TrailingZeros64(size)
		dst = append(dst, subnetFrom(uint32(cur), p))
		cur += size
	}
	return dst
}

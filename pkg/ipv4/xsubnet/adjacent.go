package xsubnet

import (
	"fmt"
	"math"
)

// 相邻子网导航。
//
// Next/Prev/Adjacent 在 32 位地址空间内平移同尺寸块，
// 越界必须返回 [ErrSpaceExhausted]，绝不回绕到另一端：
// 255.255.255.255 之后没有下一个块，0.0.0.0 之前没有上一个块。

// Next 返回紧随 s 之后的同尺寸子网（network = s.network + size）。
// s 的广播地址已是 255.255.255.255 时返回 [ErrSpaceExhausted]。
// 无效子网返回 [ErrInvalidPrefix]。
func (s Subnet) Next() (Subnet, error) {
	if !s.IsValid() {
		return Subnet{}, ErrInvalidPrefix
	}
	if s.broadcast() == math.MaxUint32 {
		return Subnet{}, fmt.Errorf("no subnet after %v: %w", s, ErrSpaceExhausted)
	}
	return subnetFrom(s.broadcast()+1, s.Bits()), nil
}

// Prev 返回紧邻 s 之前的同尺寸子网（network = s.network - size）。
// s 的网络地址已是 0.0.0.0 时返回 [ErrSpaceExhausted]。
// 无效子网返回 [ErrInvalidPrefix]。
func (s Subnet) Prev() (Subnet, error) {
	if !s.IsValid() {
		return Subnet{}, ErrInvalidPrefix
	}
	if s.network() == 0 {
		return Subnet{}, fmt.Errorf("no subnet before %v: %w", s, ErrSpaceExhausted)
	}
	return subnetFrom(uint32(uint64(s.network())-s.size()), s.Bits()), nil
}

// Adjacent 返回 s 前方或后方紧邻的 |count| 个同尺寸子网。
//
// count > 0 取 s 之后的 count 个块，count < 0 取 s 之前的 |count| 个块；
// 两个方向的结果都按地址升序排列。count == 0 返回 nil。
//
// 调用是原子的：只要有一步会越出地址空间，
// 就返回 (nil, [ErrSpaceExhausted])，不返回部分结果。
// 可行性在分配结果切片之前校验，超大 count 不会导致内存暴涨。
func (s Subnet) Adjacent(count int64) ([]Subnet, error) {
	if !s.IsValid() {
		return nil, ErrInvalidPrefix
	}
	if count == 0 {
		return nil, nil
	}

	var (
		n     = s.size()
		net64 = uint64(s.network())
	)

	if count > 0 {
		// s 之后还能容纳的同尺寸块数。
		avail := (1<<32 - (net64 + n)) / n
		if uint64(count) > avail {
			return nil, fmt.Errorf("cannot take %d subnets after %v: %w", count, s, ErrSpaceExhausted)
		}
		out := make([]Subnet, 0, count)
		for i := uint64(1); i <= uint64(count); i++ {
			out = append(out, subnetFrom(uint32(net64+i*n), s.Bits()))
		}
		return out, nil
	}

	// -math.MinInt64 自身溢出，而 2^63 步早已超过地址空间容量。
	if count == math.MinInt64 {
		return nil, fmt.Errorf("cannot take %d subnets before %v: %w", count, s, ErrSpaceExhausted)
	}
	steps := uint64(-count)
	if avail := net64 / n; steps > avail {
		return nil, fmt.Errorf("cannot take %d subnets before %v: %w", count, s, ErrSpaceExhausted)
	}
	out := make([]Subnet, 0, steps)
	for i := steps; i >= 1; i-- {
		out = append(out, subnetFrom(uint32(net64-i*n), s.Bits()))
	}
	return out, nil
}

package xsubnet

import (
	"fmt"
	"net/netip"
)

// PrefixForHosts 返回能容纳 hostCount 个可用主机的最紧前缀长度，
// 即满足可用主机数 >= hostCount 的最大 bits 值：
//
//	PrefixForHosts(1)   == 32
//	PrefixForHosts(2)   == 31
//	PrefixForHosts(254) == 24
//
// 可用主机数的口径与 [Subnet.NumHosts] 一致：/32 → 1，/31 → 2，
// 其余 → 2^(32-bits) - 2。
//
// hostCount 为 0 或超过 /0 的容量（2^32 - 2）时返回 [ErrInvalidHostCount]。
func PrefixForHosts(hostCount uint32) (int, error) {
	const maxHosts = 1<<32 - 2
	if hostCount == 0 || uint64(hostCount) > maxHosts {
		return 0, fmt.Errorf("host count %d: %w", hostCount, ErrInvalidHostCount)
	}
	switch hostCount {
	case 1:
		return 32, nil
	case 2:
		return 31, nil
	}
	for p := 30; p > 0; p-- {
		if uint64(1)<<(32-uint(p))-2 >= uint64(hostCount) {
			return p, nil
		}
	}
	// /0 容纳 2^32-2 台主机，上面的校验保证一定够。
	return 0, nil
}

// FromHosts 构造以 addr 为基地址、恰好能容纳 hostCount 个
// 可用主机的最紧子网。
// 等价于 PrefixForHosts 加 [New]，错误语义同二者。
func FromHosts(addr netip.Addr, hostCount uint32) (Subnet, error) {
	p, err := PrefixForHosts(hostCount)
	if err != nil {
		return Subnet{}, err
	}
	return New(addr, p)
}

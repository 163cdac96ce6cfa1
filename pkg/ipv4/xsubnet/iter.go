package xsubnet

import (
	"iter"
	"net/netip"
)

// Addrs 返回子网内全部地址的升序迭代器，含网络地址和广播地址。
// 无效子网返回空迭代器。
//
// 大子网（如 /8 的 1600 万地址）请谨慎收集到切片，
// 迭代器本身是惰性的，提前 break 不产生多余工作。
//
// 示例：
//
//	s := xsubnet.MustParse("192.168.0.0/30")
//	for addr := range s.Addrs() {
//	    fmt.Println(addr)
//	}
func (s Subnet) Addrs() iter.Seq[netip.Addr] {
	return func(yield func(netip.Addr) bool) {
		if !s.IsValid() {
			return
		}
		// uint64 游标：/0 的上界 0xFFFFFFFF 加一会在 uint32 内回绕。
		hi := uint64(s.broadcast())
		for cur := uint64(s.network()); cur <= hi; cur++ {
			if !yield(AddrFromUint32(uint32(cur))) {
				return
			}
		}
	}
}

// HostAddrs 返回子网内可用主机地址的升序迭代器。
// 口径与 [Subnet.NumHosts] 一致：/31 和 /32 的全部地址都是主机，
// 其余子网跳过网络地址和广播地址。
// 无效子网返回空迭代器。
func (s Subnet) HostAddrs() iter.Seq[netip.Addr] {
	return func(yield func(netip.Addr) bool) {
		if !s.IsValid() {
			return
		}
		lo, ok := AddrToUint32(s.MinHost())
		if !ok {
			return
		}
		hi, ok := AddrToUint32(s.MaxHost())
		if !ok {
			return
		}
		for cur := uint64(lo); cur <= uint64(hi); cur++ {
			if !yield(AddrFromUint32(uint32(cur))) {
				return
			}
		}
	}
}

package xsubnet

import (
	"fmt"
	"net/netip"
)

// Classification 包含 IPv4 地址的各种分类信息。
//
// 设计决策: 使用扁平的导出字段而非位标志或方法集，因为：
//   - 值类型结构体在 Go 中添加字段是向后兼容的
//   - 调用方可直接访问 c.IsPrivate，比 c.Has(FlagPrivate) 更符合 Go 惯用法
//   - 所有字段在 Classify() 一次调用中填充，无后续方法调用开销
type Classification struct {
	// IsPrivate 表示是否为私有地址（RFC 1918：10/8, 172.16/12, 192.168/16）。
	IsPrivate bool

	// IsLoopback 表示是否为环回地址（127.0.0.0/8）。
	IsLoopback bool

	// IsLinkLocal 表示是否为链路本地地址（169.254.0.0/16, APIPA）。
	IsLinkLocal bool

	// IsMulticast 表示是否为多播地址（224.0.0.0/4）。
	IsMulticast bool

	// IsBroadcast 表示是否为有限广播地址（255.255.255.255）。
	IsBroadcast bool

	// IsUnspecified 表示是否为未指定地址（0.0.0.0）。
	IsUnspecified bool

	// IsShared 表示是否为共享地址空间（100.64.0.0/10, RFC 6598, CGNAT）。
	IsShared bool

	// IsDocumentation 表示是否为文档专用地址（TEST-NET-1/2/3）。
	IsDocumentation bool

	// IsGlobalUnicast 表示是否为全局单播地址。
	// 注意私有地址也是全局单播（可在局域网内路由）。
	IsGlobalUnicast bool
}

// Classify 返回 IPv4 地址的分类信息。
// 非 IPv4 地址（含无效零值）返回 [ErrNotIPv4]。
//
// 示例：
//
//	c, _ := xsubnet.Classify(netip.MustParseAddr("192.168.1.1"))
//	fmt.Println(c.IsPrivate)       // true
//	fmt.Println(c.IsGlobalUnicast) // true (私有地址也是全局单播)
func Classify(a netip.Addr) (Classification, error) {
	v, ok := AddrToUint32(a)
	if !ok {
		return Classification{}, fmt.Errorf("address %v: %w", a, ErrNotIPv4)
	}
	// 统一为纯 IPv4 再调用 netip 的分类方法，
	// 避免 4-in-6 形式在个别判定上的歧义。
	addr := AddrFromUint32(v)
	return Classification{
		IsPrivate:       addr.IsPrivate(),
		IsLoopback:      addr.IsLoopback(),
		IsLinkLocal:     addr.IsLinkLocalUnicast(),
		IsMulticast:     addr.IsMulticast(),
		IsBroadcast:     v == 0xFFFFFFFF,
		IsUnspecified:   addr.IsUnspecified(),
		IsShared:        isShared(v),
		IsDocumentation: isDocumentation(v),
		IsGlobalUnicast: addr.IsGlobalUnicast(),
	}, nil
}

// String 返回分类的单词标签。
// 优先级：越特殊的分类越靠前（如 loopback > private > global-unicast）。
func (c Classification) String() string {
	labels := [...]struct {
		flag  bool
		label string
	}{
		{c.IsLoopback, "loopback"},
		{c.IsUnspecified, "unspecified"},
		{c.IsBroadcast, "broadcast"},
		{c.IsPrivate, "private"},
		{c.IsLinkLocal, "link-local"},
		{c.IsDocumentation, "documentation"},
		{c.IsShared, "shared-address"},
		{c.IsMulticast, "multicast"},
		{c.IsGlobalUnicast, "global-unicast"},
	}
	for _, e := range labels {
		if e.flag {
			return e.label
		}
	}
	// Classify 对任何 IPv4 地址至少会设置一个标志（IsGlobalUnicast 兜底，
	// 连 240.0.0.0/4 保留段也算全局单播），此分支仅在手工构造
	// 全 false 的 Classification 时触达。
	return "other"
}

// IsSharedAddress 报告 addr 是否为共享地址空间（Carrier-Grade NAT）。
// 共享地址空间：100.64.0.0/10，用于运营商级 NAT，RFC 6598 定义。
// 非 IPv4 地址返回 false。
func IsSharedAddress(addr netip.Addr) bool {
	v, ok := AddrToUint32(addr)
	return ok && isShared(v)
}

// isShared 检查 100.64.0.0/10 = 0x64400000 - 0x647FFFFF。
func isShared(v uint32) bool {
	return v >= 0x64400000 && v <= 0x647FFFFF
}

// isDocumentation 检查三个 TEST-NET 段：
//
//	192.0.2.0/24   (TEST-NET-1): 0xC0000200 - 0xC00002FF
//	198.51.100.0/24 (TEST-NET-2): 0xC6336400 - 0xC63364FF
//	203.0.113.0/24 (TEST-NET-3): 0xCB007100 - 0xCB0071FF
func isDocumentation(v uint32) bool {
	return (v >= 0xC0000200 && v <= 0xC00002FF) ||
		(v >= 0xC6336400 && v <= 0xC63364FF) ||
		(v >= 0xCB007100 && v <= 0xCB0071FF)
}

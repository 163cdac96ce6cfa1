// Package xsubnet 提供 IPv4 子网的范围算术与排除运算。
//
// xsubnet 把每个 IPv4 地址视为 32 位无符号整数，把每个子网视为一段
// CIDR 对齐的连续整数区间，在此之上提供：
//
//   - 子网值类型 [Subnet]：网络地址/广播地址/掩码推导，地址与主机计数
//   - 关系判断：[Subnet.Overlaps]、[Subnet.Contains]、[Subnet.ContainedIn]
//   - 邻接导航：[Subnet.Next]、[Subnet.Prev]、[Subnet.Adjacent]
//   - 排除引擎：[Subnet.Exclude]、[Subnet.ExcludeAll]——把 base \ remove
//     重新表示为最少数量的规范 CIDR 块
//   - 范围分解：[CoverRange] 把任意闭区间分解为最少 CIDR 块
//   - 解析工厂：[Parse] 支持 CIDR、点分掩码、裸地址三种格式
//   - 主机规划：[PrefixForHosts] 求容纳指定主机数的最优前缀
//   - 格式化：[FormatAddr]（点分/十六进制/二进制/无符号整数）、[ARPA]
//   - 分类：[Classify] 返回 RFC 特殊地址段的扁平分类标志
//   - 序列化：JSON/Text/SQL 往返
//
// # 快速示例
//
// 构造与排除：
//
//	base := xsubnet.MustParse("192.168.0.0/24")
//	hole := xsubnet.MustParse("192.168.0.64/26")
//	for _, s := range base.Exclude(hole) {
//	    fmt.Println(s) // 192.168.0.0/26, 192.168.0.128/25
//	}
//
// 邻接导航：
//
//	s := xsubnet.MustParse("10.0.1.0/24")
//	next, _ := s.Next() // 10.0.2.0/24
//	prev, _ := s.Prev() // 10.0.0.0/24
//
// 主机规划：
//
//	bits, _ := xsubnet.PrefixForHosts(254) // 24
//
// # 设计决策
//
//   - [Subnet] 是不可变值类型：可比较（==）、可做 map key、并发安全。
//     零值表示无效子网，受 [net/netip.Addr] 零值语义启发；内部前缀字段
//     偏移存储一位，保证零值不会与合法的 0.0.0.0/0 冲突
//   - 网络地址与广播地址永远由 (base, prefix) 即时推导，从不独立存储，
//     因此不存在失配状态
//   - 排除分解内部使用 64 位算术，避免 hi = 255.255.255.255 时
//     cur + size 溢出 32 位
//   - [Subnet.Exclude] 与 [Subnet.ExcludeAll] 是全函数：完全移除返回
//     空序列，这是合法结果而非错误
//   - 仅支持 IPv4；IPv4-mapped IPv6 输入统一 Unmap 为纯 IPv4，
//     纯 IPv6 输入返回 [ErrNotIPv4]
//
// # 零值与有效性语义
//
//	var s xsubnet.Subnet // 零值
//	s.IsValid()          // false
//	s.Bits()             // -1
//	s.String()           // "invalid Subnet"
//
// 构造函数（[New]、[NewFromUint32]、[Parse]）返回的子网总是有效的；
// 在零值上调用导航方法返回 [ErrInvalidPrefix]，排除方法返回空结果。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xsubnet.Parse("10.0.0.0/33")
//	if errors.Is(err, xsubnet.ErrInvalidPrefix) {
//	    // 前缀超出 [0, 32]
//	}
//
// [Subnet.Next]/[Subnet.Prev]/[Subnet.Adjacent] 在越出 32 位地址空间时
// 返回 [ErrSpaceExhausted]，绝不静默回绕到 0.0.0.0。
//
// # Go 版本要求
//
// xsubnet 使用 Go 1.23+ 的 [iter.Seq] 迭代器特性（[Subnet.Addrs]、
// [Subnet.HostAddrs]）。最低要求与项目 go.mod 一致。
package xsubnet

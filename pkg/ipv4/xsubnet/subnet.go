package xsubnet

import (
	"net/netip"
	"strconv"

	"go4.org/netipx"
)

// Subnet 表示一个 IPv4 子网：基地址加前缀长度构成的 CIDR 对齐区间。
//
// Subnet 是不可变值类型：
//   - 零值表示无效子网，IsValid() 返回 false
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
//
// 网络地址与广播地址由 (base, prefix) 即时推导，从不独立存储：
//
//	network   = base & mask
//	broadcast = network | ^mask
//
// base 不要求已对齐；未对齐的基地址通过 [Subnet.Addr] 保留，
// 规范形式通过 [Subnet.Network]/[Subnet.String] 获取。
//
// 使用 [New]、[NewFromUint32] 或 [Parse] 创建有效子网：
//
//	s, err := xsubnet.Parse("192.168.0.0/24")
//	s := xsubnet.MustParse("192.168.0.0/24")
type Subnet struct {
	base uint32
	// bits 存储前缀长度加一，0 表示零值（无效）。
	// 偏移一位使零值 Subnet{} 不会与合法的 0.0.0.0/0 冲突。
	bits uint8
}

// New 从地址和前缀长度创建子网。
// addr 必须是 IPv4（IPv4-mapped IPv6 自动 Unmap），否则返回 [ErrNotIPv4]。
// bits 超出 [0, 32] 返回 [ErrInvalidPrefix]。
func New(addr netip.Addr, bits int) (Subnet, error) {
	base, ok := AddrToUint32(addr)
	if !ok {
		return Subnet{}, ErrNotIPv4
	}
	return NewFromUint32(base, bits)
}

// NewFromUint32 从 uint32 基地址和前缀长度创建子网。
// bits 超出 [0, 32] 返回 [ErrInvalidPrefix]。
func NewFromUint32(base uint32, bits int) (Subnet, error) {
	if bits < 0 || bits > 32 {
		return Subnet{}, ErrInvalidPrefix
	}
	return Subnet{base: base, bits: uint8(bits) + 1}, nil
}

// subnetFrom 从已验证的网络地址和前缀长度构造子网。
// 仅限包内使用，调用方必须保证 0 <= bits <= 32。
func subnetFrom(network uint32, bits int) Subnet {
	return Subnet{base: network, bits: uint8(bits) + 1}
}

// IsValid 报告 s 是否为有效子网。
// 零值 Subnet{} 返回 false。
func (s Subnet) IsValid() bool {
	return s.bits != 0
}

// Bits 返回前缀长度。
// 无效子网返回 -1。
func (s Subnet) Bits() int {
	if !s.IsValid() {
		return -1
	}
	return int(s.bits) - 1
}

// Addr 返回构造时给出的基地址（可能未对齐）。
// 无效子网返回零值。
func (s Subnet) Addr() netip.Addr {
	if !s.IsValid() {
		return netip.Addr{}
	}
	return AddrFromUint32(s.base)
}

// Mask 返回子网掩码的 uint32 表示。
// 前缀为 0 时返回 0（无符号移位，无符号扩展）。
// 无效子网返回 0。
func (s Subnet) Mask() uint32 {
	if !s.IsValid() {
		return 0
	}
	bits := uint(s.bits) - 1
	if bits == 0 {
		return 0
	}
	return ^uint32(0) << (32 - bits)
}

// Netmask 返回子网掩码的地址形式（如 /24 → 255.255.255.0）。
// 无效子网返回零值。
func (s Subnet) Netmask() netip.Addr {
	if !s.IsValid() {
		return netip.Addr{}
	}
	return AddrFromUint32(s.Mask())
}

// HostMask 返回主机掩码（掩码按位取反，如 /24 → 0.0.0.255）。
// 无效子网返回零值。
func (s Subnet) HostMask() netip.Addr {
	if !s.IsValid() {
		return netip.Addr{}
	}
	return AddrFromUint32(^s.Mask())
}

// network 返回网络地址的 uint32 表示。
// 调用方必须保证 s 有效。
func (s Subnet) network() uint32 {
	return s.base & s.Mask()
}

// broadcast 返回广播地址的 uint32 表示。
// 调用方必须保证 s 有效。
func (s Subnet) broadcast() uint32 {
	return s.network() | ^s.Mask()
}

// size 返回子网包含的地址数量（2^(32-bits)）。
// 调用方必须保证 s 有效。使用 uint64 避免 /0 溢出。
func (s Subnet) size() uint64 {
	return uint64(1) << (32 - uint(s.bits-1))
}

// Network 返回网络地址（区间下界）。
// 无效子网返回零值。
func (s Subnet) Network() netip.Addr {
	if !s.IsValid() {
		return netip.Addr{}
	}
	return AddrFromUint32(s.network())
}

// Broadcast 返回广播地址（区间上界）。
// 无效子网返回零值。
func (s Subnet) Broadcast() netip.Addr {
	if !s.IsValid() {
		return netip.Addr{}
	}
	return AddrFromUint32(s.broadcast())
}

// HostPortion 返回基地址的主机位部分（base & ^mask）。
// 无效子网返回零值。
func (s Subnet) HostPortion() netip.Addr {
	if !s.IsValid() {
		return netip.Addr{}
	}
	return AddrFromUint32(s.base &^ s.Mask())
}

// Prefix 返回规范的 [netip.Prefix]（网络地址 + 前缀长度）。
// 无效子网返回零值。
func (s Subnet) Prefix() netip.Prefix {
	if !s.IsValid() {
		return netip.Prefix{}
	}
	return netip.PrefixFrom(s.Network(), s.Bits())
}

// Range 返回子网覆盖的闭区间 [network, broadcast]。
// 无效子网返回零值。
func (s Subnet) Range() netipx.IPRange {
	if !s.IsValid() {
		return netipx.IPRange{}
	}
	return netipx.IPRangeFrom(s.Network(), s.Broadcast())
}

// NumAddresses 返回子网包含的地址总数（2^(32-bits)）。
// 返回 uint64 以容纳 /0 的 2^32。无效子网返回 0。
func (s Subnet) NumAddresses() uint64 {
	if !s.IsValid() {
		return 0
	}
	return s.size()
}

// NumHosts 返回可寻址主机数：
//   - /32 → 1（单地址退化场景）
//   - /31 → 2（RFC 3021 点对点链路，不保留网络/广播）
//   - 其余 → 地址总数 - 2（保留网络地址与广播地址）
//
// 无效子网返回 0。
func (s Subnet) NumHosts() uint64 {
	if !s.IsValid() {
		return 0
	}
	switch s.Bits() {
	case 32:
		return 1
	case 31:
		return 2
	default:
		return s.size() - 2
	}
}

// MinHost 返回最小主机地址。
// /31 和 /32 返回网络地址本身，其余返回 network + 1。
// 无效子网返回零值。
func (s Subnet) MinHost() netip.Addr {
	if !s.IsValid() {
		return netip.Addr{}
	}
	if s.Bits() >= 31 {
		return s.Network()
	}
	return AddrFromUint32(s.network() + 1)
}

// MaxHost 返回最大主机地址。
// /31 和 /32 返回广播地址本身，其余返回 broadcast - 1。
// 无效子网返回零值。
func (s Subnet) MaxHost() netip.Addr {
	if !s.IsValid() {
		return netip.Addr{}
	}
	if s.Bits() >= 31 {
		return s.Broadcast()
	}
	return AddrFromUint32(s.broadcast() - 1)
}

// ContainsAddr 报告地址是否落在子网区间内。
// 非 IPv4 地址或无效子网返回 false。
func (s Subnet) ContainsAddr(addr netip.Addr) bool {
	if !s.IsValid() {
		return false
	}
	v, ok := AddrToUint32(addr)
	if !ok {
		return false
	}
	return v >= s.network() && v <= s.broadcast()
}

// Compare 按 (网络地址, 前缀长度, 基地址) 的顺序比较两个子网。
// 返回值：-1 (s < o), 0 (s == o), 1 (s > o)。
// 无效子网排在所有有效子网之前。
func (s Subnet) Compare(o Subnet) int {
	if s.IsValid() != o.IsValid() {
		if s.IsValid() {
			return 1
		}
		return -1
	}
	if !s.IsValid() {
		return 0
	}
	if c := compareUint32(s.network(), o.network()); c != 0 {
		return c
	}
	if s.bits != o.bits {
		if s.bits < o.bits {
			return -1
		}
		return 1
	}
	return compareUint32(s.base, o.base)
}

func compareUint32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String 返回规范 CIDR 表示："network/bits"。
// 基地址未对齐时输出对齐后的网络地址；原始基地址见 [Subnet.Addr]。
// 无效子网返回 "invalid Subnet"。
func (s Subnet) String() string {
	if !s.IsValid() {
		return "invalid Subnet"
	}
	return s.Network().String() + "/" + strconv.Itoa(s.Bits())
}

package xsubnet

import (
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

// Parse 从字符串解析子网。支持 3 种格式：
//   - CIDR: "192.168.0.0/24"
//   - 掩码: "192.168.0.0/255.255.255.0"（掩码必须连续）
//   - 单地址: "192.168.0.1"（视为 /32）
//
// 输入会自动去除首尾空白字符。基地址不要求对齐，
// 未对齐部分通过 [Subnet.Addr]/[Subnet.HostPortion] 保留。
//
// 语法错误返回 [ErrInvalidFormat]，非 IPv4 地址返回 [ErrNotIPv4]，
// 前缀超出 [0, 32] 返回 [ErrInvalidPrefix]。
func Parse(s string) (Subnet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Subnet{}, fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}

	idx := strings.Index(s, "/")
	if idx < 0 {
		// 格式 3: 单地址
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return Subnet{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		return New(addr, 32)
	}

	addrStr := strings.TrimSpace(s[:idx])
	maskStr := strings.TrimSpace(s[idx+1:])
	addr, err := netip.ParseAddr(addrStr)
	if err != nil {
		return Subnet{}, fmt.Errorf("%w: invalid address: %w", ErrInvalidFormat, err)
	}

	// 格式 2: 点分掩码
	if strings.Contains(maskStr, ".") {
		return parseWithMask(addr, maskStr)
	}

	// 格式 1: CIDR
	// 前缀位数单独解析，越界走 ErrInvalidPrefix 而非笼统的格式错误。
	p, err := strconv.Atoi(maskStr)
	if err != nil {
		return Subnet{}, fmt.Errorf("%w: invalid prefix %q: %w", ErrInvalidFormat, maskStr, err)
	}
	return New(addr, p)
}

// parseWithMask 按点分掩码构造子网，包含掩码连续性校验。
// 非连续掩码（如 "255.0.255.0"）返回 ErrInvalidFormat。
func parseWithMask(addr netip.Addr, maskStr string) (Subnet, error) {
	mask, err := netip.ParseAddr(maskStr)
	if err != nil {
		return Subnet{}, fmt.Errorf("%w: invalid netmask: %w", ErrInvalidFormat, err)
	}
	maskUint, ok := AddrToUint32(mask)
	if !ok {
		return Subnet{}, fmt.Errorf("netmask %v: %w", mask, ErrNotIPv4)
	}

	// 合法掩码为前缀全 1 后缀全 0，取反后是 2^k - 1。
	inv := ^maskUint
	if inv&(inv+1) != 0 {
		return Subnet{}, fmt.Errorf("%w: non-contiguous netmask: %s", ErrInvalidFormat, maskStr)
	}
	return New(addr, bits.OnesCount32(maskUint))
}

// MustParse 是 [Parse] 的 panic 版本，供测试和常量场景使用。
func MustParse(s string) Subnet {
	sub, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sub
}

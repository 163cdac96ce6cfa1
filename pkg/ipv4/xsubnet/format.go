package xsubnet

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Format 定义 IPv4 地址的格式化风格。
type Format uint8

const (
	// FormatDotted 点分十进制：192.168.0.1
	FormatDotted Format = iota
	// FormatHex 大写十六进制，固定 8 位：C0A80001
	FormatHex
	// FormatBinary 二进制，固定 32 位：11000000101010000000000000000001
	FormatBinary
	// FormatUint 无符号十进制整数：3232235521
	FormatUint
)

// 十六进制字符表。
const hexUpper = "0123456789ABCDEF"

// String 返回格式名称，与 [ParseFormat] 互逆。
func (f Format) String() string {
	switch f {
	case FormatDotted:
		return "dotted"
	case FormatHex:
		return "hex"
	case FormatBinary:
		return "binary"
	case FormatUint:
		return "uint"
	default:
		return "unknown"
	}
}

// ParseFormat 解析格式名称，大小写不敏感，自动去除首尾空白。
// 接受 dotted/dot、hex、binary/bin、uint/dec。
// 无法识别时返回 [ErrInvalidFormat]。
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dotted", "dot":
		return FormatDotted, nil
	case "hex":
		return FormatHex, nil
	case "binary", "bin":
		return FormatBinary, nil
	case "uint", "dec":
		return FormatUint, nil
	default:
		return 0, fmt.Errorf("%w: unknown address format %q", ErrInvalidFormat, s)
	}
}

// FormatAddr 按指定格式渲染 IPv4 地址。
// 非 IPv4 地址返回 [ErrNotIPv4]，未定义的格式值返回 [ErrInvalidFormat]。
func FormatAddr(a netip.Addr, f Format) (string, error) {
	v, ok := AddrToUint32(a)
	if !ok {
		return "", fmt.Errorf("address %v: %w", a, ErrNotIPv4)
	}
	switch f {
	case FormatDotted:
		return AddrFromUint32(v).String(), nil
	case FormatHex:
		return formatHex(v), nil
	case FormatBinary:
		return formatBinary(v), nil
	case FormatUint:
		return strconv.FormatUint(uint64(v), 10), nil
	default:
		return "", fmt.Errorf("%w: format value %d", ErrInvalidFormat, f)
	}
}

// formatHex 格式化为 8 位大写十六进制。
// 预分配精确大小，零额外分配。
func formatHex(v uint32) string {
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = hexUpper[v&0x0f]
		v >>= 4
	}
	return string(buf[:])
}

// formatBinary 格式化为 32 位二进制。
func formatBinary(v uint32) string {
	var buf [32]byte
	for i := 31; i >= 0; i-- {
		buf[i] = '0' + byte(v&1)
		v >>= 1
	}
	return string(buf[:])
}

// ARPA 返回地址的反向 DNS 名称：字节序反转的点分十进制
// 加 ".in-addr.arpa" 后缀，如 192.168.0.1 → "1.0.168.192.in-addr.arpa"。
// 仅做字符串拼装，不发起任何 DNS 查询。
// 非 IPv4 地址返回 [ErrNotIPv4]。
func ARPA(a netip.Addr) (string, error) {
	v, ok := AddrToUint32(a)
	if !ok {
		return "", fmt.Errorf("address %v: %w", a, ErrNotIPv4)
	}
	b := AddrFromUint32(v).As4()
	buf := make([]byte, 0, len("255.255.255.255.in-addr.arpa"))
	for i := 3; i >= 0; i-- {
		buf = strconv.AppendUint(buf, uint64(b[i]), 10)
		buf = append(buf, '.')
	}
	buf = append(buf, "in-addr.arpa"...)
	return string(buf), nil
}

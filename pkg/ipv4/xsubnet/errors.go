package xsubnet

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidPrefix 表示前缀长度超出 [0, 32]，或在零值 Subnet 上执行运算。
	ErrInvalidPrefix = errors.New("xsubnet: invalid prefix length")

	// ErrSpaceExhausted 表示邻接导航越出 32 位地址空间。
	ErrSpaceExhausted = errors.New("xsubnet: address space exhausted")

	// ErrInvalidHostCount 表示主机数为零或超过 /0 的可寻址容量（2^32 - 2）。
	ErrInvalidHostCount = errors.New("xsubnet: invalid host count")

	// ErrNotIPv4 表示地址不是 IPv4（含 IPv4-mapped IPv6 之外的 IPv6）。
	ErrNotIPv4 = errors.New("xsubnet: not an IPv4 address")

	// ErrInvalidFormat 表示输入字符串无法按任何受支持的格式解析。
	ErrInvalidFormat = errors.New("xsubnet: invalid format")

	// ErrInvalidRange 表示地址范围起点大于终点。
	ErrInvalidRange = errors.New("xsubnet: invalid address range")

	// ErrNilReceiver 表示在 nil 指针接收者上调用反序列化方法。
	ErrNilReceiver = errors.New("xsubnet: nil receiver")
)

package xfile

import "errors"

// 路径校验失败的哨兵错误，均可用 [errors.Is] 匹配。
var (
	// ErrEmptyPath 路径参数为空。
	ErrEmptyPath = errors.New("xfile: path is required")

	// ErrInvalidPath 路径格式不合法（显式目录路径、没有文件名部分等）。
	ErrInvalidPath = errors.New("xfile: invalid path")

	// ErrPathTraversal 路径中出现独立的 ".." 段。
	ErrPathTraversal = errors.New("xfile: path traversal detected")

	// ErrNullByte 路径含空字节（\x00）。内核在空字节处截断路径，
	// Go 不会，放行会导致两边操作的不是同一个文件。
	ErrNullByte = errors.New("xfile: path contains null byte")

	// ErrInvalidPerm 目录权限缺少所有者执行位，创建出来无法遍历。
	ErrInvalidPerm = errors.New("xfile: invalid directory permission")
)

package xfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDirPerm 是创建父目录时的默认权限：所有者 rwx，同组 r-x，
// 其他人无权限。满足 gosec G301 对目录权限的要求。
const DefaultDirPerm = 0750

// EnsureDir 确保 filename 的父目录存在，不存在则按 [DefaultDirPerm] 创建。
// 日志文件和报告输出在打开前都会经过这里，首次部署时目标目录通常还不存在。
//
// 等价于 EnsureDirWithPerm(filename, DefaultDirPerm)，安全注意事项见后者。
func EnsureDir(filename string) error {
	return EnsureDirWithPerm(filename, DefaultDirPerm)
}

// EnsureDirWithPerm 确保 filename（文件路径，非目录路径）的父目录存在，
// 不存在则按 perm 逐层创建。目录已存在时不动它，也不改它的权限。
//
// perm 必须带所有者执行位（0100），否则创建出的目录自己都进不去，
// 直接返回 [ErrInvalidPerm]。空路径与含空字节的路径分别返回
// [ErrEmptyPath]、[ErrNullByte]。
//
// 安全注意：底层是 os.MkdirAll，会跟随符号链接；路径中的 ".." 段也
// 不在这里拦。不可信输入应先过 [SanitizePath]。
func EnsureDirWithPerm(filename string, perm os.FileMode) error {
	switch {
	case filename == "":
		return fmt.Errorf("filename is required: %w", ErrEmptyPath)
	case containsNullByte(filename):
		return fmt.Errorf("filename contains null byte: %w", ErrNullByte)
	case perm&0100 == 0:
		return fmt.Errorf("directory permission %04o missing owner execute bit: %w", perm, ErrInvalidPerm)
	}

	dir := filepath.Dir(filename)
	if dir == "" || dir == "." {
		// 当前目录无需创建
		return nil
	}
	return os.MkdirAll(dir, perm)
}

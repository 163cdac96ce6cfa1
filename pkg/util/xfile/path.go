package xfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// containsNullByte 检测路径里的空字节。Linux VFS 在空字节处截断路径，
// Go 字符串不会，二者打开的就不是同一个文件。
func containsNullByte(path string) bool {
	return strings.ContainsRune(path, 0)
}

// hasDotDotSegment 判断路径是否含有恰好为 ".." 的独立路径段。
// '/' 与 '\' 都算分隔符，Windows 风格的穿越写法在 Linux 上同样拦下。
// 单次线性扫描，不切分配 []string。
func hasDotDotSegment(path string) bool {
	// seg 指向当前段起点；扫到分隔符或串尾时结算一段。
	seg := 0
	for i := 0; i <= len(path); i++ {
		if i < len(path) && path[i] != '/' && path[i] != '\\' {
			continue
		}
		if i-seg == 2 && path[seg] == '.' && path[seg+1] == '.' {
			return true
		}
		seg = i + 1
	}
	return false
}

// SanitizePath 校验并规范化一个将要打开的文件路径。
//
// 它做四件事：拒绝空路径与空字节；拒绝以 "/" 或 "\" 结尾的显式目录路径；
// 经 filepath.Clean 消除 "." 与冗余斜杠；拒绝清理后仍带 ".." 段的
// 相对路径穿越。返回规范化后的路径。
//
// 接受绝对路径，且绝对路径中的 ".." 由 Clean 按正常语义折叠：
// "/var/log/../etc" 会变成 "/etc"，这是合法路径而非穿越。
// 本函数只是格式净化，不是目录沙箱；输入应来自运维侧
// （命令行参数、配置文件），对抗性输入要靠操作系统权限兜底。
//
// 设计决策: 在 Linux 上以 "\" 结尾的文件名理论上合法，但实际出现时
// 几乎都是 Windows 路径误传，统一当作目录路径拒绝，换取两个平台上
// 一致的语义。
func SanitizePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename is required: %w", ErrEmptyPath)
	}
	if containsNullByte(filename) {
		return "", fmt.Errorf("filename contains null byte: %w", ErrNullByte)
	}

	// 尾分隔符要在 Clean 之前看，Clean 会把它吃掉
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, "\\") {
		return "", fmt.Errorf("path is a directory: %w", ErrInvalidPath)
	}

	clean := filepath.Clean(filename)

	// 按段精确匹配 ".."。不能用 strings.Contains：
	// "plan..2026.yaml" 这类文件名会被误伤。
	if hasDotDotSegment(clean) {
		return "", fmt.Errorf("path traversal in filename: %w", ErrPathTraversal)
	}

	if name := filepath.Base(clean); name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("no file name specified: %w", ErrInvalidPath)
	}

	return clean, nil
}

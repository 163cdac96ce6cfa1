// Package xfile 提供文件路径校验与目录准备工具。
//
// 本包服务于需要写文件的组件：日志轮转在打开日志文件前、规划评估在写报告前，
// 都先经过这里的格式校验和父目录创建。所有路径均来自运维侧输入
// （命令行参数、配置文件），本包在打开文件之前拦截明显的拼接错误。
//
// # 路径穿越检测
//
// 路径穿越检测使用精确的路径段匹配，只有 ".." 作为独立路径段时才被视为穿越。
// 以 ".." 开头的合法文件名（如 "..config"、"plan..2026.yaml"）不会被误判：
//
//	SanitizePath("logs/..archive/app.log") // ✓ 合法
//	SanitizePath("../etc/passwd")          // ✗ 拒绝（路径穿越）
//
// # 空字节防护
//
// SanitizePath 和 EnsureDir 均拒绝包含空字节（\x00）的路径。Linux 内核在 VFS 层
// 会在空字节处截断路径，导致 Go 代码与操作系统实际操作的路径不一致。
//
// # 安全边界
//
// 本包只做格式净化，不提供目录沙箱：SanitizePath 接受绝对路径，绝对路径中的
// ".." 按正常语义解析。路径应来自可信来源；对抗性场景应配合操作系统级别的
// 目录权限控制。
//
// # 错误处理
//
// 预定义错误变量支持 [errors.Is] 判断：
//
//	_, err := xfile.SanitizePath("../etc/passwd")
//	if errors.Is(err, xfile.ErrPathTraversal) {
//	    // 处理路径穿越
//	}
package xfile

package xrun

import "errors"

// =============================================================================
// Context Key 类型定义
// =============================================================================

// 设计决策: contextKey 使用 string 而非 int+iota，理由如下：
//   - 作为包私有类型，不会与其他包的 context key 冲突（Go context 比较包含类型信息）
//   - 字符串值在调试/日志中可读性高，便于排查 context 传播问题
//   - 性能差异可忽略（WithRunID ~36ns/op），不构成瓶颈
type contextKey string

const (
	keyRunID   = contextKey("xrun:run_id")
	keyCommand = contextKey("xrun:command")
)

// =============================================================================
// 日志属性 Key 常量（下划线分隔）
// =============================================================================

const (
	KeyRunID   = "run_id"
	KeyCommand = "command"

	// runFieldCount 运行字段数量（用于 slog 属性预分配，不导出以避免脆弱的 API 契约）
	runFieldCount = 2
)

// =============================================================================
// 错误定义
// =============================================================================

var (
	// ErrNilContext 表示传入的 context 为 nil。
	ErrNilContext = errors.New("xrun: nil context")

	// ErrMissingRunID run_id 缺失
	ErrMissingRunID = errors.New("xrun: missing run_id")
)

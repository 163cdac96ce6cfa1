package xrun

import (
	"context"

	"github.com/google/uuid"
)

// =============================================================================
// RunID 操作
// =============================================================================

// WithRunID 将运行标识注入 context
//
// 如果 ctx 为 nil，返回 ErrNilContext。
func WithRunID(ctx context.Context, runID string) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return context.WithValue(ctx, keyRunID, runID), nil
}

// RunID 从 context 提取运行标识，不存在返回空字符串
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(keyRunID).(string); ok {
		return v
	}
	return ""
}

// RequireRunID 从 context 获取运行标识，不存在则返回错误。
//
// 语义：值必须存在，缺失时返回 ErrMissingRunID。
// 如果 ctx 为 nil，返回 ErrNilContext。
func RequireRunID(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", ErrNilContext
	}
	v := RunID(ctx)
	if v == "" {
		return "", ErrMissingRunID
	}
	return v, nil
}

// GenerateRunID 生成新的运行标识。
//
// 格式: UUID v4 字符串（如 "550e8400-e29b-41d4-a716-446655440000"）。
// 运行标识只需进程内唯一加上跨日志文件可区分，无需分布式协调，
// uuid v4 的随机性足够。
//
// Panic 策略说明：底层熵源不可用（极罕见的系统级错误）时会 panic。
// crypto/rand 失败意味着系统无法提供安全随机数，进程在此状态下应立即
// 终止而非静默降级，这与追踪类库的通行做法一致。
func GenerateRunID() string {
	return uuid.NewString()
}

// EnsureRunID 确保 context 中存在运行标识。
//
// 语义：确保非空。如果 context 中已有 RunID，原样返回（不验证/不纠正）；
// 否则自动生成新的并注入。
// 适用于命令入口，确保每次调用都有可关联的运行标识。
// 如果 ctx 为 nil，返回 ErrNilContext。
func EnsureRunID(ctx context.Context) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if RunID(ctx) != "" {
		return ctx, nil
	}
	return WithRunID(ctx, GenerateRunID())
}

// =============================================================================
// Command 操作
// =============================================================================

// WithCommand 将命令名注入 context
//
// 命令名标识本次运行正在执行的子命令（如 "report"、"plan.watch"），
// 由命令入口注入后随日志输出。
// 如果 ctx 为 nil，返回 ErrNilContext。
func WithCommand(ctx context.Context, command string) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return context.WithValue(ctx, keyCommand, command), nil
}

// Command 从 context 提取命令名，不存在返回空字符串
func Command(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(keyCommand).(string); ok {
		return v
	}
	return ""
}

// =============================================================================
// Run 结构体（批量模式）
// =============================================================================

// Run 运行信息结构体
//
// 用于批量获取/注入运行信息，替代多参数函数。
type Run struct {
	RunID   string
	Command string
}

// GetRun 从 context 批量获取所有运行信息
//
// 返回 Run 结构体，字段可能为空字符串。
func GetRun(ctx context.Context) Run {
	return Run{
		RunID:   RunID(ctx),
		Command: Command(ctx),
	}
}

// Validate 校验 Run 必填字段是否完整，缺失时返回对应的哨兵错误。
//
// 约束：
//   - RunID 必须存在
//   - Command 不参与校验（可选字段，库内调用场景可能没有命令语境）
func (r Run) Validate() error {
	if r.RunID == "" {
		return ErrMissingRunID
	}
	return nil
}

// WithRun 将 Run 结构体中的非空字段批量注入 context。
//
// 仅注入非空字段，空字符串字段会被跳过；父 context 中已存在的字段
// 不会被空值覆盖。
// 如果 ctx 为 nil，返回 ErrNilContext。
func WithRun(ctx context.Context, r Run) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	var err error
	if r.RunID != "" {
		if ctx, err = WithRunID(ctx, r.RunID); err != nil {
			return nil, err
		}
	}
	if r.Command != "" {
		if ctx, err = WithCommand(ctx, r.Command); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

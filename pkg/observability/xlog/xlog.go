package xlog

import (
	"context"
	"log/slog"
)

// Logger 结构化日志接口。
// 方法一律要求 context，运行标识靠它传播；属性参数只收 slog.Attr，
// 不提供 key-value 混排的便捷签名，避免隐式转换开销。
type Logger interface {
	// Debug 记录 Debug 级别日志
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)

	// Info 记录 Info 级别日志
	Info(ctx context.Context, msg string, attrs ...slog.Attr)

	// Warn 记录 Warn 级别日志
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)

	// Error 记录 Error 级别日志
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// Stack 以 Error 级别记录日志并附上当前 goroutine 的调用栈，
	// 用于问题诊断。
	Stack(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回追加了固定属性的派生 Logger。
	//
	// 设计决策: 返回 Logger 而非 LoggerWithLevel，保持接口最小化。
	// 底层实现同时满足 LoggerWithLevel，需要级别控制时对结果做类型断言；
	// 派生实例与父级共享级别变量，动态调级同步生效。
	With(attrs ...slog.Attr) Logger

	// WithGroup 返回带分组的派生 Logger，之后添加的属性都归入该分组。
	//
	// 设计决策: 与 With 一致，返回 Logger。
	WithGroup(name string) Logger
}

// Leveler 运行期级别控制。与 Logger 分开定义，只写日志的调用方
// 不必看见级别管理方法；通过类型断言探测实现是否支持动态调级。
type Leveler interface {
	// SetLevel 调整日志级别
	SetLevel(level Level)

	// GetLevel 返回当前日志级别
	GetLevel() Level

	// Enabled 报告指定级别是否会被输出，
	// 可在构造昂贵的日志参数前先行判断
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel 同时具备写日志与级别控制能力。
// Build 返回它，省去常见路径上的类型断言。
type LoggerWithLevel interface {
	Logger
	Leveler
}

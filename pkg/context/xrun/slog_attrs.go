package xrun

import (
	"context"
	"log/slog"
)

// AppendRunAttrs 将 context 中的运行信息追加到现有切片。
// 零分配热路径优化：传入预分配的切片，只追加非空的运行信息字段。
func AppendRunAttrs(attrs []slog.Attr, ctx context.Context) []slog.Attr {
	if ctx == nil {
		return attrs
	}

	if v := RunID(ctx); v != "" {
		attrs = append(attrs, slog.String(KeyRunID, v))
	}
	if v := Command(ctx); v != "" {
		attrs = append(attrs, slog.String(KeyCommand, v))
	}

	return attrs
}

// RunAttrs 从 context 提取运行信息，转换为 slog.Attr 切片
//
// 只返回非空的运行信息，如果都为空则返回 nil。
// 注意：每次调用会分配新切片。热路径建议使用 AppendRunAttrs。
func RunAttrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}

	attrs := AppendRunAttrs(make([]slog.Attr, 0, runFieldCount), ctx)
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

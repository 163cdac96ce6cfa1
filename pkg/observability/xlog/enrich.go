package xlog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/omeyang/subnetkit/pkg/context/xrun"
)

// ErrNilHandler 表示 NewEnrichHandler 收到了 nil 的底层 handler。
var ErrNilHandler = errors.New("xlog: base handler is nil")

// runAttrCap 注入属性的上限：run_id 与 command 各一个。
const runAttrCap = 2

// EnrichHandler 包装底层 handler，输出时把 context 里的运行标识
// （run_id、command）补进记录。字段缺失时照常输出，不报错。
//
// 设计决策: 对带 enrich 的 logger 调用 WithGroup 之后，注入字段会落进
// 分组里。slog 的分组作用于 handler 处理的全部属性，让 run_id 固定在
// 顶层意味着自己管理分组栈，代价与收益不成比例；需要顶层字段时不要在
// 这类 logger 上调用 WithGroup。
type EnrichHandler struct {
	base slog.Handler
}

// NewEnrichHandler 包装 base，base 为 nil 时返回 ErrNilHandler。
func NewEnrichHandler(base slog.Handler) (*EnrichHandler, error) {
	if base == nil {
		return nil, ErrNilHandler
	}
	return &EnrichHandler{base: base}, nil
}

// Enabled 委托底层 handler。
func (h *EnrichHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// Handle 先补运行标识，再交给底层 handler。
// 有属性要加时必须 Clone：slog 契约要求 record 对其他 handler 保持不变。
// scratch 用栈数组，热路径上不为注入属性做堆分配；ctx 为 nil 时
// xrun 直接返回，等价于无注入。
func (h *EnrichHandler) Handle(ctx context.Context, r slog.Record) error {
	var scratch [runAttrCap]slog.Attr
	if attrs := xrun.AppendRunAttrs(scratch[:0], ctx); len(attrs) > 0 {
		r = r.Clone()
		r.AddAttrs(attrs...)
	}
	return h.base.Handle(ctx, r)
}

// WithAttrs 包装底层 handler 的 WithAttrs 结果。
func (h *EnrichHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EnrichHandler{base: h.base.WithAttrs(attrs)}
}

// WithGroup 包装底层 handler 的 WithGroup 结果。
func (h *EnrichHandler) WithGroup(name string) slog.Handler {
	return &EnrichHandler{base: h.base.WithGroup(name)}
}

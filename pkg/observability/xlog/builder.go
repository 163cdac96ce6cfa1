package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/omeyang/subnetkit/pkg/observability/xrotate"
)

// ReplaceAttrFunc 输出前的属性改写钩子，签名与 slog.HandlerOptions.ReplaceAttr
// 一致。返回零值 Attr（空 Key）即丢弃该属性。用于字段改名、脱敏与过滤：
//
//	// 只保留规划文件的文件名
//	func(groups []string, a slog.Attr) slog.Attr {
//	    if a.Key == KeyPlan {
//	        return slog.String(KeyPlan, filepath.Base(a.Value.String()))
//	    }
//	    return a
//	}
type ReplaceAttrFunc func(groups []string, a slog.Attr) slog.Attr

// Builder 链式收集日志配置，Build 一次性落地。
// 链上的首个配置错误会被记住并由 Build 返回，之后的错误不覆盖它。
type Builder struct {
	out       io.Writer
	levelVar  *slog.LevelVar
	format    string
	addSource bool
	enrich    bool
	replace   ReplaceAttrFunc
	rotator   xrotate.Rotator
	onError   func(error)
	err       error
}

// New 返回缺省配置的 Builder：stderr 输出、Info 级别、text 格式、启用 enrich。
func New() *Builder {
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelInfo)
	return &Builder{
		out:      os.Stderr,
		levelVar: lv,
		format:   "text",
		enrich:   true,
	}
}

// fail 记录首个配置错误。
func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// SetOutput 设置输出目标。
func (b *Builder) SetOutput(w io.Writer) *Builder {
	b.out = w
	return b
}

// SetLevel 设置初始日志级别。
func (b *Builder) SetLevel(level Level) *Builder {
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 用 ParseLevel 认可的文本设置级别。
func (b *Builder) SetLevelString(s string) *Builder {
	lv, err := ParseLevel(s)
	if err != nil {
		return b.fail(err)
	}
	return b.SetLevel(lv)
}

// SetFormat 设置输出格式，接受 text 与 json；空串按未填写处理，落回 text。
func (b *Builder) SetFormat(format string) *Builder {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "":
		b.format = "text"
	case "text", "json":
		b.format = f
	default:
		b.fail(fmt.Errorf("xlog: unknown format %q", format))
	}
	return b
}

// SetAddSource 控制是否在日志里记录源码位置。
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetEnrich 控制是否从 context 注入 run_id 与 command，默认开启。
func (b *Builder) SetEnrich(enable bool) *Builder {
	b.enrich = enable
	return b
}

// SetRotation 把输出切换为带轮转的日志文件。
func (b *Builder) SetRotation(filename string, opts ...xrotate.Option) *Builder {
	rot, err := xrotate.NewLumberjack(filename, opts...)
	if err != nil {
		return b.fail(err)
	}
	b.rotator = rot
	b.out = rot
	return b
}

// SetOnError 注册 handler 写失败时的回调。
// 写日志对业务始终不返回错误也不 panic，回调是唯一的旁路通知口，
// 可以把内部错误接到 stderr 或告警。回调在写日志的调用链上同步执行，
// 应保持轻量；回调内再次触发写失败不会递归。
func (b *Builder) SetOnError(fn func(error)) *Builder {
	b.onError = fn
	return b
}

// SetReplaceAttr 注册属性改写钩子，见 ReplaceAttrFunc。
func (b *Builder) SetReplaceAttr(fn ReplaceAttrFunc) *Builder {
	b.replace = fn
	return b
}

// Build 构建 Logger。
// 第二个返回值是清理函数，负责关闭轮转文件等资源，可安全重复调用。
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		return nil, nil, b.err
	}
	h, err := b.newHandler()
	if err != nil {
		return nil, nil, err
	}
	l := &logger{
		handler: h,
		level:   b.levelVar,
		source:  b.addSource,
		errs:    &errSink{notify: b.onError},
	}
	return l, b.newCleanup(), nil
}

// newHandler 按 format 组装 slog.Handler，启用 enrich 时套上 EnrichHandler。
func (b *Builder) newHandler() (slog.Handler, error) {
	opts := &slog.HandlerOptions{
		Level:       b.levelVar,
		AddSource:   b.addSource,
		ReplaceAttr: b.replace,
	}
	var h slog.Handler
	if b.format == "json" {
		h = slog.NewJSONHandler(b.out, opts)
	} else {
		h = slog.NewTextHandler(b.out, opts)
	}
	if !b.enrich {
		return h, nil
	}
	return NewEnrichHandler(h)
}

// newCleanup 返回资源清理函数。重复调用返回同一结果。
func (b *Builder) newCleanup() func() error {
	if b.rotator == nil {
		return func() error { return nil }
	}
	return sync.OnceValue(b.rotator.Close)
}

package xlog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/omeyang/subnetkit/pkg/observability/xlog"
)

// lazyProbe 构造一个延迟属性，并通过 called 标记暴露闭包是否被求值。
type lazyProbe struct {
	name string
	make func(called *bool) slog.Attr
	want string // 求值后应出现在输出里的内容
}

func lazyProbes() []lazyProbe {
	return []lazyProbe{
		{
			name: "Lazy",
			make: func(called *bool) slog.Attr {
				return xlog.Lazy("report", func() any { *called = true; return "585 addresses usable" })
			},
			want: "585 addresses usable",
		},
		{
			name: "LazyString",
			make: func(called *bool) slog.Attr {
				return xlog.LazyString("summary", func() string { *called = true; return "3 subnets excluded" })
			},
			want: "3 subnets excluded",
		},
		{
			name: "LazyInt",
			make: func(called *bool) slog.Attr {
				return xlog.LazyInt("usable", func() int64 { *called = true; return 254 })
			},
			want: "254",
		},
		{
			name: "LazyError",
			make: func(called *bool) slog.Attr {
				return xlog.LazyError("cause", func() error { *called = true; return errors.New("pool drained") })
			},
			want: "pool drained",
		},
	}
}

func TestLazy_EnabledEvaluates(t *testing.T) {
	for _, probe := range lazyProbes() {
		t.Run(probe.name, func(t *testing.T) {
			logger, buf := buildLogger(t, func(b *xlog.Builder) {
				b.SetLevel(xlog.LevelDebug).SetFormat("json")
			})

			called := false
			logger.Debug(context.Background(), "detail", probe.make(&called))

			if !called {
				t.Error("enabled level should evaluate the closure")
			}
			if !strings.Contains(buf.String(), probe.want) {
				t.Errorf("output missing %q\noutput: %s", probe.want, buf.String())
			}
		})
	}
}

func TestLazy_DisabledSkipsEvaluation(t *testing.T) {
	for _, probe := range lazyProbes() {
		t.Run(probe.name, func(t *testing.T) {
			logger, _ := buildLogger(t, func(b *xlog.Builder) {
				b.SetLevel(xlog.LevelError).SetFormat("json")
			})

			called := false
			logger.Debug(context.Background(), "detail", probe.make(&called))

			if called {
				t.Error("disabled level must not evaluate the closure")
			}
		})
	}
}

// TestLazyError_NilResult 闭包返回 nil error 时输出保留消息、省去值。
func TestLazyError_NilResult(t *testing.T) {
	logger, buf := buildLogger(t, func(b *xlog.Builder) {
		b.SetLevel(xlog.LevelDebug).SetFormat("json")
	})

	called := false
	logger.Debug(context.Background(), "clean run", xlog.LazyError("cause", func() error {
		called = true
		return nil
	}))

	if !called {
		t.Error("closure should run at enabled level")
	}
	if !strings.Contains(buf.String(), "clean run") {
		t.Errorf("output missing message\noutput: %s", buf.String())
	}
}

func TestLazyErr(t *testing.T) {
	t.Run("uses_standard_error_key", func(t *testing.T) {
		logger, buf := buildLogger(t, func(b *xlog.Builder) {
			b.SetLevel(xlog.LevelDebug).SetFormat("json")
		})

		logger.Debug(context.Background(), "watch failed", xlog.LazyErr(func() error {
			return errors.New("watch queue overflow")
		}))

		out := buf.String()
		if !strings.Contains(out, `"error"`) || !strings.Contains(out, "watch queue overflow") {
			t.Errorf("output missing error field\noutput: %s", out)
		}
	})

	t.Run("disabled_skips_evaluation", func(t *testing.T) {
		logger, _ := buildLogger(t, func(b *xlog.Builder) { b.SetLevel(xlog.LevelError) })

		called := false
		logger.Debug(context.Background(), "watch failed", xlog.LazyErr(func() error {
			called = true
			return nil
		}))

		if called {
			t.Error("disabled level must not evaluate LazyErr")
		}
	})
}

// TestLazy_NilClosures nil 闭包退化为静态占位值，不 panic。
func TestLazy_NilClosures(t *testing.T) {
	logger, buf := buildLogger(t, func(b *xlog.Builder) {
		b.SetLevel(xlog.LevelDebug).SetFormat("json")
	})

	logger.Debug(context.Background(), "nil closures",
		xlog.Lazy("any", nil),
		xlog.LazyString("str", nil),
		xlog.LazyInt("num", nil),
		xlog.LazyError("cause", nil),
		xlog.LazyErr(nil),
	)

	out := buf.String()
	if !strings.Contains(out, "nil closures") {
		t.Errorf("output missing message: %s", out)
	}
	if strings.Contains(out, "panicked") {
		t.Errorf("nil closure should not panic inside slog: %s", out)
	}
}

func BenchmarkLazy(b *testing.B) {
	levels := map[string]xlog.Level{
		"enabled":  xlog.LevelDebug,
		"disabled": xlog.LevelError,
	}
	for name, level := range levels {
		b.Run(name, func(b *testing.B) {
			logger, cleanup, err := xlog.New().SetOutput(io.Discard).SetLevel(level).Build()
			if err != nil {
				b.Fatal(err)
			}
			b.Cleanup(func() { _ = cleanup() })

			ctx := context.Background()
			b.ReportAllocs()
			for b.Loop() {
				logger.Debug(ctx, "detail", xlog.Lazy("report", func() any { return "rendered" }))
			}
		})
	}
}

// BenchmarkEagerDisabled 对照组：不用 Lazy 时参数在调用处即求值，
// 级别禁用也省不掉计算。
func BenchmarkEagerDisabled(b *testing.B) {
	logger, cleanup, err := xlog.New().SetOutput(io.Discard).SetLevel(xlog.LevelError).Build()
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = cleanup() })

	expensive := func() string { return "rendered report" }
	ctx := context.Background()
	b.ReportAllocs()
	for b.Loop() {
		logger.Debug(ctx, "detail", slog.String("report", expensive()))
	}
}

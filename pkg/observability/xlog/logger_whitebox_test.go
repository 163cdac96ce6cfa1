package xlog

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
)

// brokenHandler Handle 必定失败的 handler 替身。
type brokenHandler struct {
	err error
}

func (h *brokenHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h *brokenHandler) Handle(context.Context, slog.Record) error { return h.err }
func (h *brokenHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h *brokenHandler) WithGroup(string) slog.Handler             { return h }

// newBrokenLogger 返回写入必定失败的 logger，用来观察 errSink 的行为。
func newBrokenLogger(notify func(error)) *logger {
	return &logger{
		handler: &brokenHandler{err: errors.New("handler exploded")},
		level:   new(slog.LevelVar),
		errs:    &errSink{notify: notify},
	}
}

func TestErrSink_Report(t *testing.T) {
	t.Run("counts_and_notifies", func(t *testing.T) {
		var got error
		s := &errSink{notify: func(err error) { got = err }}

		s.report(errors.New("disk full"))

		if n := s.count.Load(); n != 1 {
			t.Errorf("count = %d, want 1", n)
		}
		if got == nil || got.Error() != "disk full" {
			t.Errorf("callback got %v, want disk full", got)
		}
	})

	t.Run("nil_notify_only_counts", func(t *testing.T) {
		s := &errSink{}
		for range 5 {
			s.report(errors.New("quiet failure"))
		}
		if n := s.count.Load(); n != 5 {
			t.Errorf("count = %d, want 5", n)
		}
	})

	t.Run("panicking_notify_contained", func(t *testing.T) {
		s := &errSink{notify: func(error) { panic("callback exploded") }}

		s.report(errors.New("first")) // 不应向调用方扩散

		// 写失败与回调 panic 各计一次
		if n := s.count.Load(); n != 2 {
			t.Errorf("count = %d, want 2", n)
		}

		// busy 已复位，下一次失败照常进入回调
		s.report(errors.New("second"))
		if n := s.count.Load(); n != 4 {
			t.Errorf("count = %d after second report, want 4", n)
		}
	})

	t.Run("reentrant_report_skips_callback", func(t *testing.T) {
		s := &errSink{}
		inner := 0
		s.notify = func(error) {
			inner++
			if inner > 3 {
				t.Fatal("recursion was not contained")
			}
			s.report(errors.New("from callback")) // 应只计数，不再回调
		}

		s.report(errors.New("outer"))

		if inner != 1 {
			t.Errorf("callback ran %d times, want 1", inner)
		}
		if n := s.count.Load(); n != 2 {
			t.Errorf("count = %d, want 2 (outer + reentrant)", n)
		}
	})

	t.Run("nil_sink_is_safe", func(t *testing.T) {
		var s *errSink
		s.report(errors.New("dropped")) // 不应 panic
	})
}

func TestLogger_HandlerFailure(t *testing.T) {
	var calls atomic.Int32
	l := newBrokenLogger(func(error) { calls.Add(1) })

	l.Info(context.Background(), "doomed")

	if n := calls.Load(); n != 1 {
		t.Fatalf("callback called %d times, want 1", n)
	}
	if n := l.errs.count.Load(); n != 1 {
		t.Errorf("error count = %d, want 1", n)
	}

	// 顺序失败逐条计数，busy 每次复位后回调都送达
	for range 9 {
		l.Info(context.Background(), "doomed")
	}
	if n := l.errs.count.Load(); n != 10 {
		t.Errorf("error count = %d, want 10", n)
	}
	if n := calls.Load(); n != 10 {
		t.Errorf("callback called %d times, want 10", n)
	}
}

func TestLogger_Stack_HandlerFailure(t *testing.T) {
	var calls atomic.Int32
	l := newBrokenLogger(func(error) { calls.Add(1) })

	l.Stack(context.Background(), "doomed stack")

	if n := calls.Load(); n != 1 {
		t.Errorf("callback called %d times, want 1", n)
	}
	if n := l.errs.count.Load(); n != 1 {
		t.Errorf("error count = %d, want 1", n)
	}
}

// TestLogger_Derived_ShareErrSink 派生 logger 与父级共用错误状态。
func TestLogger_Derived_ShareErrSink(t *testing.T) {
	var calls atomic.Int32
	parent := newBrokenLogger(func(error) { calls.Add(1) })

	derived := map[string]Logger{
		"with":       parent.With(slog.String("zone", "campus-a")),
		"with_group": parent.WithGroup("plan"),
	}
	for name, child := range derived {
		t.Run(name, func(t *testing.T) {
			cl, ok := child.(*logger)
			if !ok {
				t.Fatalf("derived logger is %T, want *logger", child)
			}
			if cl.errs != parent.errs {
				t.Error("derived logger should share the parent errSink")
			}

			before := calls.Load()
			cl.Error(context.Background(), "doomed from child")
			if calls.Load() != before+1 {
				t.Error("failure on derived logger should reach the callback")
			}
		})
	}
}

func TestCaptureStack(t *testing.T) {
	t.Run("small_stack", func(t *testing.T) {
		s := captureStack()
		if !strings.Contains(s, "goroutine") {
			t.Errorf("stack missing goroutine header:\n%s", s)
		}
		if !strings.Contains(s, "TestCaptureStack") {
			t.Errorf("stack missing current frame:\n%.300s", s)
		}
	})

	t.Run("deep_stack_grows_buffer", func(t *testing.T) {
		var deep func(n int) string
		deep = func(n int) string {
			if n == 0 {
				return captureStack()
			}
			return deep(n - 1)
		}

		s := deep(150)

		if len(s) <= stackBufSize {
			t.Errorf("deep stack length = %d, want > %d", len(s), stackBufSize)
		}
		if n := strings.Count(s, "TestCaptureStack"); n < 100 {
			t.Errorf("stack shows %d recursive frames, want >= 100", n)
		}
	})
}

package xlog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/omeyang/subnetkit/pkg/context/xrun"
	"github.com/omeyang/subnetkit/pkg/observability/xlog"
)

// enrichedOutput 用 EnrichHandler 包装 JSON handler 写一条日志并返回输出。
func enrichedOutput(t *testing.T, ctx context.Context, msg string, attrs ...slog.Attr) string {
	t.Helper()
	var buf bytes.Buffer
	h, err := xlog.NewEnrichHandler(slog.NewJSONHandler(&buf, nil))
	if err != nil {
		t.Fatalf("NewEnrichHandler() error: %v", err)
	}
	slog.New(h).LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
	return buf.String()
}

func TestEnrichHandler_Injection(t *testing.T) {
	full := context.Background()
	full, _ = xrun.WithRunID(full, "run-314")
	full, _ = xrun.WithCommand(full, "plan.eval")

	onlyRun, _ := xrun.WithRunID(context.Background(), "run-159")
	onlyCmd, _ := xrun.WithCommand(context.Background(), "report")

	tests := []struct {
		name    string
		ctx     context.Context
		want    []string
		notWant []string
	}{
		{"both_fields", full, []string{"run_id", "run-314", "command", "plan.eval"}, nil},
		{"run_id_only", onlyRun, []string{"run_id", "run-159"}, []string{"command"}},
		{"command_only", onlyCmd, []string{"command", "report"}, []string{"run_id"}},
		{"bare_context", context.Background(), []string{"probe message"}, []string{"run_id", "command"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := enrichedOutput(t, tt.ctx, "probe message")
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q\noutput: %s", w, out)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(out, nw) {
					t.Errorf("output should not contain %q\noutput: %s", nw, out)
				}
			}
		})
	}
}

// TestEnrichHandler_DerivedHandlers 派生 handler 仍然注入运行标识。
func TestEnrichHandler_DerivedHandlers(t *testing.T) {
	t.Run("with_attrs", func(t *testing.T) {
		var buf bytes.Buffer
		h, err := xlog.NewEnrichHandler(slog.NewJSONHandler(&buf, nil))
		if err != nil {
			t.Fatalf("NewEnrichHandler() error: %v", err)
		}

		derived := h.WithAttrs([]slog.Attr{slog.String("zone", "campus-a")})
		if _, ok := derived.(*xlog.EnrichHandler); !ok {
			t.Fatalf("WithAttrs() returned %T, want *xlog.EnrichHandler", derived)
		}

		ctx, _ := xrun.WithRunID(context.Background(), "run-271")
		slog.New(derived).InfoContext(ctx, "derived record")

		out := buf.String()
		for _, want := range []string{"zone", "campus-a", "run-271"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q\noutput: %s", want, out)
			}
		}
	})

	t.Run("with_group", func(t *testing.T) {
		var buf bytes.Buffer
		h, err := xlog.NewEnrichHandler(slog.NewJSONHandler(&buf, nil))
		if err != nil {
			t.Fatalf("NewEnrichHandler() error: %v", err)
		}

		grouped := h.WithGroup("plan")
		ctx, _ := xrun.WithRunID(context.Background(), "run-577")
		slog.New(grouped).InfoContext(ctx, "grouped record", slog.String("file", "campus.yaml"))

		out := buf.String()
		for _, want := range []string{"run-577", "plan", "campus.yaml"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q\noutput: %s", want, out)
			}
		}
	})
}

func TestEnrichHandler_Enabled(t *testing.T) {
	base := slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	h, err := xlog.NewEnrichHandler(base)
	if err != nil {
		t.Fatalf("NewEnrichHandler() error: %v", err)
	}

	ctx := context.Background()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("Info should be disabled when base level is Warn")
	}
	if !h.Enabled(ctx, slog.LevelWarn) {
		t.Error("Warn should be enabled when base level is Warn")
	}
}

func TestNewEnrichHandler_NilBase(t *testing.T) {
	h, err := xlog.NewEnrichHandler(nil)
	if err == nil {
		t.Fatal("NewEnrichHandler(nil) should fail")
	}
	if !errors.Is(err, xlog.ErrNilHandler) {
		t.Errorf("error = %v, want ErrNilHandler", err)
	}
	if h != nil {
		t.Errorf("handler = %v, want nil", h)
	}
}

func BenchmarkEnrichHandler(b *testing.B) {
	full := context.Background()
	full, _ = xrun.WithRunID(full, "run-bench")
	full, _ = xrun.WithCommand(full, "plan.eval")

	cases := map[string]context.Context{
		"with_identity": full,
		"bare_context":  context.Background(),
	}
	for name, ctx := range cases {
		b.Run(name, func(b *testing.B) {
			h, err := xlog.NewEnrichHandler(slog.NewJSONHandler(&bytes.Buffer{}, nil))
			if err != nil {
				b.Fatalf("NewEnrichHandler() error: %v", err)
			}
			lg := slog.New(h)
			b.ReportAllocs()
			for b.Loop() {
				lg.InfoContext(ctx, "benchmark record")
			}
		})
	}
}

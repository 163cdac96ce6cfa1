package xreport

import (
	"io"
	"testing"

	"github.com/omeyang/subnetkit/pkg/ipv4/xsubnet"
)

// =============================================================================
// 报告构建基准测试
// =============================================================================

func BenchmarkBuild(b *testing.B) {
	s := xsubnet.MustParse("192.168.0.0/24")
	for b.Loop() {
		_, _ = Build(s)
	}
}

func BenchmarkBuilder_Build(b *testing.B) {
	s := xsubnet.MustParse("192.168.0.0/24")

	b.Run("cache hit", func(b *testing.B) {
		builder, err := NewBuilder(WithCache(16, 0))
		if err != nil {
			b.Fatal(err)
		}
		defer builder.Close()
		if _, err := builder.Build(s); err != nil {
			b.Fatal(err)
		}

		for b.Loop() {
			_, _ = builder.Build(s)
		}
	})

	b.Run("no cache", func(b *testing.B) {
		builder, err := NewBuilder()
		if err != nil {
			b.Fatal(err)
		}

		for b.Loop() {
			_, _ = builder.Build(s)
		}
	})
}

// =============================================================================
// 渲染基准测试
// =============================================================================

func BenchmarkReport_JSON(b *testing.B) {
	r, err := Build(xsubnet.MustParse("192.168.0.0/24"))
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_, _ = r.JSON()
	}
}

func BenchmarkReport_WriteText(b *testing.B) {
	r, err := Build(xsubnet.MustParse("192.168.0.0/24"))
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_ = r.WriteText(io.Discard)
	}
}

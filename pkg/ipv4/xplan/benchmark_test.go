package xplan

import (
	"context"
	"fmt"
	"testing"

	"github.com/omeyang/subnetkit/pkg/config/xconf"
	"github.com/omeyang/subnetkit/pkg/ipv4/xsubnet"
)

// ===== 解码基准测试 =====

func BenchmarkDecode(b *testing.B) {
	b.Run("yaml", func(b *testing.B) {
		data := []byte(samplePlanYAML)
		for b.Loop() {
			if _, err := Decode(data, xconf.FormatYAML); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("json", func(b *testing.B) {
		data := []byte(samplePlanJSON)
		for b.Loop() {
			if _, err := Decode(data, xconf.FormatJSON); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// ===== 求值基准测试 =====

func BenchmarkEvaluate(b *testing.B) {
	plan, err := Decode([]byte(samplePlanYAML), xconf.FormatYAML)
	if err != nil {
		b.Fatal(err)
	}

	ctx := context.Background()
	for b.Loop() {
		if _, err := Evaluate(ctx, plan); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluate_ManyAllocations(b *testing.B) {
	plan := &Plan{Version: 1}
	for i := range 128 {
		plan.Allocations = append(plan.Allocations, Allocation{
			Name:    fmt.Sprintf("alloc-%d", i),
			Base:    xsubnet.MustParse(fmt.Sprintf("10.%d.0.0/16", i)),
			Exclude: []xsubnet.Subnet{xsubnet.MustParse(fmt.Sprintf("10.%d.128.0/20", i))},
		})
	}

	ctx := context.Background()
	for b.Loop() {
		if _, err := Evaluate(ctx, plan); err != nil {
			b.Fatal(err)
		}
	}
}

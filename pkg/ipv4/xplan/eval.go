package xplan

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/subnetkit/pkg/ipv4/xsubnet"
)

// Row 是单个分配的求值结果。
type Row struct {
	// Name 分配名。
	Name string `json:"name"`

	// Base 基础块。
	Base xsubnet.Subnet `json:"base"`

	// Free 剔除后剩余的空闲子网，规范顺序。
	Free []xsubnet.Subnet `json:"free"`

	// FreeCount 空闲地址总数。
	FreeCount uint64 `json:"free_count"`
}

// Result 是整个计划的求值结果，行序与计划的分配顺序一致。
type Result struct {
	Rows []Row `json:"rows"`
}

// Evaluate 并发求值计划内的所有分配。
//
// 各分配相互独立，因此按 GOMAXPROCS 上限并发执行；
// 结果行按计划内的声明顺序排列，与执行顺序无关。
// ctx 取消时返回 ctx 的错误。
func Evaluate(ctx context.Context, p *Plan) (*Result, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil plan", ErrInvalidPlan)
	}
	if len(p.Allocations) == 0 {
		return nil, fmt.Errorf("%w: no allocations", ErrInvalidPlan)
	}

	rows := make([]Row, len(p.Allocations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, alloc := range p.Allocations {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if !alloc.Base.IsValid() {
				return fmt.Errorf("%w: allocation %q: invalid base", ErrInvalidPlan, alloc.Name)
			}

			free := alloc.Base.ExcludeAll(alloc.Exclude)
			var count uint64
			for _, s := range free {
				count += s.NumAddresses()
			}

			rows[i] = Row{Name: alloc.Name, Base: alloc.Base, Free: free, FreeCount: count}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{Rows: rows}, nil
}

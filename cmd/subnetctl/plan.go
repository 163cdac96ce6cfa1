package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/subnetkit/pkg/ipv4/xplan"
	"github.com/omeyang/subnetkit/pkg/observability/xlog"
	"github.com/omeyang/subnetkit/pkg/util/xjson"
)

// createPlanCommand 创建 plan 命令组。
func createPlanCommand() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "计划文档的求值与监听",
		Commands: []*cli.Command{
			createPlanEvalCommand(),
			createPlanWatchCommand(),
		},
	}
}

// createPlanEvalCommand 创建 plan eval 子命令。
func createPlanEvalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "求值计划文档一次",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{newFormatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return usageErrorf("plan eval requires exactly one plan file argument")
			}
			ctx, rt, err := setupRuntime(ctx, cmd, "plan.eval")
			if err != nil {
				return err
			}
			defer rt.close()
			return cmdPlanEval(ctx, rt, os.Stdout, args[0])
		},
	}
}

// createPlanWatchCommand 创建 plan watch 子命令。
func createPlanWatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "持续监听计划文档，变化时重新求值，直到被中断",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			newFormatFlag(),
			&cli.DurationFlag{
				Name:  "debounce",
				Usage: "文件事件防抖窗口 (默认: 100ms)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return usageErrorf("plan watch requires exactly one plan file argument")
			}
			debounce := cmd.Duration("debounce")
			if debounce < 0 {
				return usageErrorf("invalid debounce %v: must be positive", debounce)
			}
			ctx, rt, err := setupRuntime(ctx, cmd, "plan.watch")
			if err != nil {
				return err
			}
			defer rt.close()
			return cmdPlanWatch(ctx, rt, os.Stdout, args[0], debounce)
		},
	}
}

// cmdPlanEval 解码并求值计划文档一次。
// 文件不可读或内容无效属于操作失败（退出码 1）。
func cmdPlanEval(ctx context.Context, rt *runtime, w io.Writer, path string) error {
	plan, err := xplan.DecodeFile(path)
	if err != nil {
		return err
	}
	res, err := xplan.Evaluate(ctx, plan)
	if err != nil {
		return err
	}
	rt.logger.Debug(ctx, "plan evaluated",
		xlog.Plan(path), xlog.Count(int64(len(res.Rows))))
	return writePlanResult(w, res, rt.out.Format)
}

// cmdPlanWatch 监听计划文档并在每次内容变化后输出新结果。
// 重载失败只记录日志，监听继续；收到中断信号后正常退出。
func cmdPlanWatch(ctx context.Context, rt *runtime, w io.Writer, path string, debounce time.Duration) error {
	var opts []xplan.WatcherOption
	if debounce > 0 {
		opts = append(opts, xplan.WithDebounce(debounce))
	}

	watcher, err := xplan.NewWatcher(path, func(res *xplan.Result, err error) {
		if err != nil {
			rt.logger.Error(ctx, "plan reload failed", xlog.Plan(path), xlog.Err(err))
			return
		}
		rt.logger.Info(ctx, "plan evaluated",
			xlog.Plan(path), xlog.Count(int64(len(res.Rows))))
		if err := writePlanResult(w, res, rt.out.Format); err != nil {
			rt.logger.Error(ctx, "write result failed", xlog.Err(err))
		}
	}, opts...)
	if err != nil {
		return fmt.Errorf("watch plan: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("watch plan: %w", err)
	}
	rt.logger.Info(ctx, "watching plan", xlog.Plan(path))

	<-ctx.Done()
	rt.logger.Info(ctx, "watch stopped", xlog.Plan(path))
	return nil
}

// writePlanResult 按输出格式渲染求值结果。
func writePlanResult(w io.Writer, res *xplan.Result, format string) error {
	if format == formatJSON {
		out, err := xjson.PrettyE(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
	return writePlanText(w, res)
}

// writePlanText 渲染文本形式：每个分配一个标题行加缩进的空闲块列表。
func writePlanText(w io.Writer, res *xplan.Result) error {
	for _, row := range res.Rows {
		if _, err := fmt.Fprintf(w, "%s (%s): %d free\n", row.Name, row.Base, row.FreeCount); err != nil {
			return err
		}
		for _, s := range row.Free {
			if _, err := fmt.Fprintf(w, "  %s\n", s); err != nil {
				return err
			}
		}
	}
	return nil
}

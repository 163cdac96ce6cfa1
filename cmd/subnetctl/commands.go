package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/subnetkit/pkg/ipv4/xreport"
	"github.com/omeyang/subnetkit/pkg/ipv4/xsubnet"
	"github.com/omeyang/subnetkit/pkg/observability/xlog"
	"github.com/omeyang/subnetkit/pkg/util/xjson"
)

// exitError 表示需要特定退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数错误，run() 将其映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// usageErrorf 构造参数错误。
func usageErrorf(format string, args ...any) *usageError {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// isCLIUsageError 识别 cli 框架自身产生的参数类错误。
// 框架错误没有哨兵类型可判断，按已知消息特征匹配。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, marker := range []string{
		"flag provided but not defined",
		"flag needs an argument",
		"invalid value",
		"No help topic for",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// setupSignalHandler 设置信号处理。
// 设计决策: 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
// plan watch 阻塞期间，用户可通过再次 Ctrl+C 强制退出。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel() // 第一次信号: 优雅取消

		<-sigCh
		signal.Stop(sigCh) // 回收订阅
		os.Exit(130)       // 第二次信号: 强制退出
	}()
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createReportCommand(),
		createExcludeCommand(),
		createAdjacentCommand(),
		createHostsCommand(),
		createPlanCommand(),
	}
}

// newFormatFlag 创建 --format 选项。
// 默认值留空，以便区分"未指定"与显式指定，支持配置文件兜底。
func newFormatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "输出格式: text 或 json (默认: text)",
	}
}

// createReportCommand 创建 report 子命令。
func createReportCommand() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Aliases:   []string{"r"},
		Usage:     "输出子网完整报告",
		ArgsUsage: "<subnet>",
		Flags:     []cli.Flag{newFormatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return usageErrorf("report requires exactly one subnet argument")
			}
			ctx, rt, err := setupRuntime(ctx, cmd, "report")
			if err != nil {
				return err
			}
			defer rt.close()
			return cmdReport(ctx, rt, os.Stdout, args[0])
		},
	}
}

// createExcludeCommand 创建 exclude 子命令。
func createExcludeCommand() *cli.Command {
	return &cli.Command{
		Name:      "exclude",
		Aliases:   []string{"x"},
		Usage:     "从基础块中剔除子网，输出剩余空闲块",
		ArgsUsage: "<base> <remove>...",
		Flags:     []cli.Flag{newFormatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) < 2 {
				return usageErrorf("exclude requires a base subnet and at least one subnet to remove")
			}
			ctx, rt, err := setupRuntime(ctx, cmd, "exclude")
			if err != nil {
				return err
			}
			defer rt.close()
			return cmdExclude(ctx, rt, os.Stdout, args[0], args[1:])
		},
	}
}

// createAdjacentCommand 创建 adjacent 子命令。
func createAdjacentCommand() *cli.Command {
	return &cli.Command{
		Name:      "adjacent",
		Aliases:   []string{"a"},
		Usage:     "输出相邻的同尺寸子网",
		ArgsUsage: "<subnet>",
		Flags: []cli.Flag{
			newFormatFlag(),
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "相邻块数量，正数取后方，负数取前方",
				Value:   1,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return usageErrorf("adjacent requires exactly one subnet argument")
			}
			ctx, rt, err := setupRuntime(ctx, cmd, "adjacent")
			if err != nil {
				return err
			}
			defer rt.close()
			return cmdAdjacent(ctx, rt, os.Stdout, args[0], int64(cmd.Int("count")))
		},
	}
}

// createHostsCommand 创建 hosts 子命令。
func createHostsCommand() *cli.Command {
	return &cli.Command{
		Name:      "hosts",
		Usage:     "输出容纳指定可用主机数的最紧前缀",
		ArgsUsage: "<count>",
		Flags:     []cli.Flag{newFormatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return usageErrorf("hosts requires exactly one host count argument")
			}
			ctx, rt, err := setupRuntime(ctx, cmd, "hosts")
			if err != nil {
				return err
			}
			defer rt.close()
			return cmdHosts(ctx, rt, os.Stdout, args[0])
		},
	}
}

// cmdReport 构建并输出子网报告。
func cmdReport(ctx context.Context, rt *runtime, w io.Writer, raw string) error {
	s, err := xsubnet.Parse(raw)
	if err != nil {
		return usageErrorf("invalid subnet %q: %v", raw, err)
	}

	r, err := xreport.Build(s)
	if err != nil {
		return err
	}
	rt.logger.Debug(ctx, "report built", xlog.Subnet(s.String()))

	if rt.out.Format == formatJSON {
		out, err := r.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
	return r.WriteText(w)
}

// excludeOutput 是 exclude 命令的 JSON 输出模式，与计划求值的行模式一致。
type excludeOutput struct {
	Base      xsubnet.Subnet   `json:"base"`
	Free      []xsubnet.Subnet `json:"free"`
	FreeCount uint64           `json:"free_count"`
}

// cmdExclude 执行排除运算并输出剩余块。
// 完全排除时文本输出为空，便于脚本直接消费。
func cmdExclude(ctx context.Context, rt *runtime, w io.Writer, rawBase string, rawRemoves []string) error {
	base, err := xsubnet.Parse(rawBase)
	if err != nil {
		return usageErrorf("invalid base subnet %q: %v", rawBase, err)
	}

	removes := make([]xsubnet.Subnet, 0, len(rawRemoves))
	for _, raw := range rawRemoves {
		r, err := xsubnet.Parse(raw)
		if err != nil {
			return usageErrorf("invalid subnet to remove %q: %v", raw, err)
		}
		removes = append(removes, r)
	}

	free := base.ExcludeAll(removes)
	var count uint64
	for _, s := range free {
		count += s.NumAddresses()
	}
	rt.logger.Debug(ctx, "exclusion computed",
		xlog.Subnet(base.String()), xlog.Count(int64(len(free))))

	if rt.out.Format == formatJSON {
		out, err := xjson.PrettyE(excludeOutput{Base: base, Free: free, FreeCount: count})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
	return writeSubnetLines(w, free)
}

// adjacentOutput 是 adjacent 命令的 JSON 输出模式。
type adjacentOutput struct {
	Subnet   xsubnet.Subnet   `json:"subnet"`
	Count    int64            `json:"count"`
	Adjacent []xsubnet.Subnet `json:"adjacent"`
}

// cmdAdjacent 输出相邻子网，升序排列。
// 越出地址空间属于操作失败（退出码 1），不是参数错误。
func cmdAdjacent(ctx context.Context, rt *runtime, w io.Writer, raw string, count int64) error {
	s, err := xsubnet.Parse(raw)
	if err != nil {
		return usageErrorf("invalid subnet %q: %v", raw, err)
	}

	adj, err := s.Adjacent(count)
	if err != nil {
		return err
	}
	if adj == nil {
		adj = []xsubnet.Subnet{}
	}
	rt.logger.Debug(ctx, "adjacency computed",
		xlog.Subnet(s.String()), xlog.Count(int64(len(adj))))

	if rt.out.Format == formatJSON {
		out, err := xjson.PrettyE(adjacentOutput{Subnet: s, Count: count, Adjacent: adj})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
	return writeSubnetLines(w, adj)
}

// hostsOutput 是 hosts 命令的 JSON 输出模式。
type hostsOutput struct {
	HostsRequested uint32 `json:"hosts_requested"`
	Bits           int    `json:"bits"`
	Prefix         string `json:"prefix"`
	UsableHosts    uint64 `json:"usable_hosts"`
	NumAddresses   uint64 `json:"num_addresses"`
}

// hostsLabelWidth 文本输出的标签列宽，最长标签 "Hosts requested" 加两个空格。
const hostsLabelWidth = 17

// cmdHosts 计算容纳指定主机数的最紧前缀。
func cmdHosts(ctx context.Context, rt *runtime, w io.Writer, raw string) error {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return usageErrorf("invalid host count %q: expected an unsigned 32-bit integer", raw)
	}

	bits, err := xsubnet.PrefixForHosts(uint32(n))
	if err != nil {
		return usageErrorf("%v", err)
	}
	block, err := xsubnet.NewFromUint32(0, bits)
	if err != nil {
		return err
	}
	rt.logger.Debug(ctx, "prefix computed",
		xlog.Count(int64(n)), xlog.Subnet(block.String()))

	out := hostsOutput{
		HostsRequested: uint32(n),
		Bits:           bits,
		Prefix:         fmt.Sprintf("/%d", bits),
		UsableHosts:    block.NumHosts(),
		NumAddresses:   block.NumAddresses(),
	}

	if rt.out.Format == formatJSON {
		rendered, err := xjson.PrettyE(out)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, rendered)
		return err
	}

	rows := []struct {
		label string
		value any
	}{
		{"Hosts requested", out.HostsRequested},
		{"Prefix", out.Prefix},
		{"Usable hosts", out.UsableHosts},
		{"Addresses", out.NumAddresses},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-*s%v\n", hostsLabelWidth, row.label, row.value); err != nil {
			return err
		}
	}
	return nil
}

// writeSubnetLines 每行输出一个子网。
func writeSubnetLines(w io.Writer, subnets []xsubnet.Subnet) error {
	for _, s := range subnets {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

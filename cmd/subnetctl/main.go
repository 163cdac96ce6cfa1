// subnetctl 是 IPv4 子网计算工具的命令行前端。
//
// 用法:
//
//	subnetctl [全局选项] <命令> [命令选项] [参数]
//
// 全局选项:
//
//	--config       默认值配置文件 (YAML/JSON)，优先级低于显式命令行选项
//	--log-level    日志级别 (debug/info/warn/error，默认: info)
//	--log-format   日志格式 (text/json，默认: text)
//	--log-file     日志文件路径，设置后启用轮转写入
//	-q, --quiet    抑制全部日志输出
//
// 命令:
//
//	report <subnet>              输出子网完整报告
//	exclude <base> <remove>...   从基础块中剔除子网，输出剩余空闲块
//	adjacent <subnet>            输出相邻的同尺寸子网 (--count 带符号)
//	hosts <count>                输出容纳指定主机数的最紧前缀
//	plan eval <file>             求值计划文档一次
//	plan watch <file>            持续监听计划文档并在变化时重新求值
//
// 输出命令均支持 --format text|json。
//
// 配置文件字段（均可被命令行选项覆盖）:
//
//	log_level:  info
//	log_format: text
//	log_file:   /var/log/subnetctl.log
//	format:     text
//
// 退出码:
//
//	0: 命令执行成功
//	1: 操作失败（文件不可读、计划无效、地址空间耗尽等）
//	2: 参数错误（未知命令、非法子网参数、非法选项值等）
//
// 示例:
//
//	subnetctl report 192.168.0.0/24
//	subnetctl --log-level debug report 10.0.0.0/8
//	subnetctl exclude 10.12.0.0/16 10.12.0.0/24 10.12.4.0/22
//	subnetctl adjacent --count -2 10.0.4.0/24
//	subnetctl hosts 100
//	subnetctl plan eval plan.yaml
//	subnetctl plan watch --format json plan.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "subnetctl",
		Usage:   "IPv4 子网区间运算与排除计算工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "默认值配置文件路径 (YAML/JSON)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别: debug/info/warn/error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式: text/json",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件路径（设置后按大小轮转）",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "抑制全部日志输出",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"SubnetKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `subnetctl 围绕一个纯函数式的 IPv4 子网核心提供命令行操作:
区间属性报告、排除运算、相邻块导航、主机数到前缀的换算，
以及声明式计划文档的一次性求值与持续监听。

计划文档 (YAML/JSON):
  version: 1
  allocations:
    - name: campus-a
      base: 10.12.0.0/16
      exclude:
        - 10.12.0.0/24`,
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "usage error: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

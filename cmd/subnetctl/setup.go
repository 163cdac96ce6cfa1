package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/subnetkit/pkg/config/xconf"
	"github.com/omeyang/subnetkit/pkg/context/xrun"
	"github.com/omeyang/subnetkit/pkg/observability/xlog"
)

// 输出格式。
const (
	formatText = "text"
	formatJSON = "json"
)

// 内置默认值，优先级最低。
const (
	defaultLogLevel  = "info"
	defaultLogFormat = formatText
	defaultFormat    = formatText
)

// settings 是一次调用解析完成的生效配置。
// 优先级：命令行选项 > 配置文件 > 内置默认值。
type settings struct {
	LogLevel  string
	LogFormat string
	LogFile   string
	Format    string
}

// fileSettings 是 --config 文件的模式。
type fileSettings struct {
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	LogFile   string `koanf:"log_file"`
	Format    string `koanf:"format"`
}

// resolveSettings 按优先级合并命令行选项、配置文件与默认值。
// 全局选项定义在根命令上，cli 的取值会沿父命令链回溯。
func resolveSettings(cmd *cli.Command) (settings, error) {
	s := settings{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Format:    defaultFormat,
	}

	if path := cmd.String("config"); path != "" {
		cfg, err := xconf.New(path)
		if err != nil {
			return settings{}, fmt.Errorf("load config %s: %w", path, err)
		}
		var fs fileSettings
		if err := cfg.Unmarshal("", &fs); err != nil {
			return settings{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		overlay(&s, fs)
	}

	if v := cmd.String("log-level"); v != "" {
		s.LogLevel = v
	}
	if v := cmd.String("log-format"); v != "" {
		s.LogFormat = v
	}
	if v := cmd.String("log-file"); v != "" {
		s.LogFile = v
	}
	if v := cmd.String("format"); v != "" {
		s.Format = v
	}
	return s, nil
}

// overlay 把配置文件中的非空字段覆盖到 s 上。
func overlay(s *settings, fs fileSettings) {
	if fs.LogLevel != "" {
		s.LogLevel = fs.LogLevel
	}
	if fs.LogFormat != "" {
		s.LogFormat = fs.LogFormat
	}
	if fs.LogFile != "" {
		s.LogFile = fs.LogFile
	}
	if fs.Format != "" {
		s.Format = fs.Format
	}
}

// validateOutputFormat 校验 --format 的取值。
func validateOutputFormat(format string) error {
	if format != formatText && format != formatJSON {
		return usageErrorf("invalid output format %q (expected text or json)", format)
	}
	return nil
}

// buildLogger 按生效配置构建日志实例。
// 级别与格式的取值错误属于参数错误；日志文件创建失败属于操作失败。
func buildLogger(s settings, quiet bool) (xlog.LoggerWithLevel, func() error, error) {
	level, err := xlog.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, usageErrorf("invalid log level %q (expected debug, info, warn or error)", s.LogLevel)
	}
	if s.LogFormat != formatText && s.LogFormat != formatJSON {
		return nil, nil, usageErrorf("invalid log format %q (expected text or json)", s.LogFormat)
	}

	b := xlog.New().SetLevel(level).SetFormat(s.LogFormat)
	switch {
	case quiet:
		b.SetOutput(io.Discard)
	case s.LogFile != "":
		b.SetRotation(s.LogFile)
	}

	logger, cleanup, err := b.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("configure logging: %w", err)
	}
	return logger, cleanup, nil
}

// runtime 是一次命令执行期间的共享环境。
type runtime struct {
	logger  xlog.LoggerWithLevel
	cleanup func() error
	out     settings
}

// close 释放运行环境持有的资源（如日志文件）。
func (rt *runtime) close() {
	if rt.cleanup != nil {
		_ = rt.cleanup()
	}
}

// setupRuntime 解析配置、构建日志并注入运行标识。
// 返回的 context 携带 run_id 与命令名，日志行自动附带两者。
func setupRuntime(ctx context.Context, cmd *cli.Command, command string) (context.Context, *runtime, error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return ctx, nil, err
	}
	if err := validateOutputFormat(s.Format); err != nil {
		return ctx, nil, err
	}

	logger, cleanup, err := buildLogger(s, cmd.Bool("quiet"))
	if err != nil {
		return ctx, nil, err
	}

	ctx, err = xrun.EnsureRunID(ctx)
	if err == nil {
		ctx, err = xrun.WithCommand(ctx, command)
	}
	if err != nil {
		if cleanup != nil {
			_ = cleanup()
		}
		return ctx, nil, err
	}

	logger.Debug(ctx, "command started", xlog.Component("subnetctl"))
	return ctx, &runtime{logger: logger, cleanup: cleanup, out: s}, nil
}

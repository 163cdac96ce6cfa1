package xrotate

import (
	"fmt"
	"sync/atomic"

	"github.com/omeyang/subnetkit/pkg/util/xfile"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 默认值按 subnetctl 的两种形态取：一次性命令写不了几行日志，
// plan watch 可能一跑数月，100MB 一切、留 5 份两周，足够回溯。
const (
	// DefaultMaxSizeMB 单个日志文件的默认大小上限（MB）。
	DefaultMaxSizeMB = 100

	// DefaultMaxBackups 默认保留的备份文件份数。
	DefaultMaxBackups = 5

	// DefaultMaxAgeDays 备份默认保留天数。
	DefaultMaxAgeDays = 14

	// DefaultCompress 备份默认做 gzip 压缩。
	DefaultCompress = true

	// DefaultLocalTime 备份文件名默认用 UTC 时间戳。
	DefaultLocalTime = false
)

// 配置上限。越界多半是单位写错（比如把字节当 MB），直接拒绝。
const (
	limitSizeMB  = 10240 // 10 GB
	limitBackups = 1024
	limitAgeDays = 3650 // 约 10 年
)

// rotateConfig 聚合 lumberjack 的轮转参数，Option 在其上叠加。
type rotateConfig struct {
	// MaxSizeMB 超过该大小（MB）即轮转，必须为正。
	MaxSizeMB int

	// MaxBackups 保留的备份份数，0 表示不按份数清理（仍受 MaxAgeDays 约束）。
	MaxBackups int

	// MaxAgeDays 备份保留天数，0 表示不按天数清理（仍受 MaxBackups 约束）。
	MaxAgeDays int

	// Compress 备份是否 gzip 压缩。
	Compress bool

	// LocalTime 备份文件名时间戳用本地时间还是 UTC。
	LocalTime bool
}

// validate 检查各参数范围，并要求至少配置一种清理策略：
// 份数和天数都为 0 意味着备份永远不删，监听模式下磁盘迟早被吃满。
func (c *rotateConfig) validate() error {
	if c.MaxSizeMB <= 0 || c.MaxSizeMB > limitSizeMB {
		return fmt.Errorf("%w: got %d, want 1~%d", ErrInvalidMaxSize, c.MaxSizeMB, limitSizeMB)
	}
	if c.MaxBackups < 0 || c.MaxBackups > limitBackups {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxBackups, c.MaxBackups, limitBackups)
	}
	if c.MaxAgeDays < 0 || c.MaxAgeDays > limitAgeDays {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxAge, c.MaxAgeDays, limitAgeDays)
	}
	if c.MaxBackups == 0 && c.MaxAgeDays == 0 {
		return fmt.Errorf("%w: MaxBackups and MaxAgeDays cannot both be 0", ErrNoCleanupPolicy)
	}
	return nil
}

// Option 调整轮转参数。
type Option func(*rotateConfig)

// WithMaxSize 设置单个日志文件的大小上限（MB）。
func WithMaxSize(mb int) Option {
	return func(c *rotateConfig) { c.MaxSizeMB = mb }
}

// WithMaxBackups 设置保留的备份份数。
func WithMaxBackups(n int) Option {
	return func(c *rotateConfig) { c.MaxBackups = n }
}

// WithMaxAge 设置备份保留天数。
func WithMaxAge(days int) Option {
	return func(c *rotateConfig) { c.MaxAgeDays = days }
}

// WithCompress 开关备份的 gzip 压缩。
func WithCompress(on bool) Option {
	return func(c *rotateConfig) { c.Compress = on }
}

// WithLocalTime 备份文件名时间戳改用本地时间。
func WithLocalTime(local bool) Option {
	return func(c *rotateConfig) { c.LocalTime = local }
}

// sizeRotator 用 lumberjack 实现按大小轮转。lumberjack 负责轮转、
// 备份清理、压缩和写入互斥，这一层补上路径校验与关闭语义。
type sizeRotator struct {
	lj     *lumberjack.Logger
	closed atomic.Bool
}

// NewLumberjack 创建按大小轮转的日志轮转器。
//
// filename 先经 [xfile.SanitizePath] 净化，父目录不存在时按 0750 创建；
// 日志文件本身由 lumberjack 以 0600 打开。配置越界返回对应的哨兵错误。
func NewLumberjack(filename string, opts ...Option) (Rotator, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	cfg := rotateConfig{
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAgeDays: DefaultMaxAgeDays,
		Compress:   DefaultCompress,
		LocalTime:  DefaultLocalTime,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	path, err := xfile.SanitizePath(filename)
	if err != nil {
		return nil, err
	}
	if err := xfile.EnsureDir(path); err != nil {
		return nil, err
	}

	return &sizeRotator{
		lj: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  cfg.LocalTime,
		},
	}, nil
}

// Write 写入日志数据，达到大小上限时由 lumberjack 自动轮转。
// 关闭后返回 [ErrClosed]。
func (r *sizeRotator) Write(p []byte) (int, error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}

	n, err := r.lj.Write(p)
	if err != nil && r.closed.Load() {
		// 设计决策: 前置检查和 lj.Write 之间 Close 可能已经完成，底层
		// 这时报的是"文件重开失败"之类的 I/O 错误。后置再查一次 closed，
		// 把这类错误归一成 ErrClosed，调用方只需要认一个哨兵。
		return n, ErrClosed
	}
	return n, err
}

// Close 关闭轮转器。之后的 Write/Rotate/Close 都返回 [ErrClosed]。
//
// 设计决策: 用 Swap 抢关闭权，输家直接拿 ErrClosed；即使底层 Close
// 报错也不回滚标记，宁可丢一次关闭重试，也不让后续写入落到半关的
// logger 上。
func (r *sizeRotator) Close() error {
	if r.closed.Swap(true) {
		return ErrClosed
	}
	return r.lj.Close()
}

// Rotate 立即切换到新的日志文件，当前文件转为备份。
// 关闭后返回 [ErrClosed]。
func (r *sizeRotator) Rotate() error {
	if r.closed.Load() {
		return ErrClosed
	}

	if err := r.lj.Rotate(); err != nil {
		// 与 Write 相同的关闭竞争归一（见 Write）
		if r.closed.Load() {
			return ErrClosed
		}
		return err
	}
	return nil
}

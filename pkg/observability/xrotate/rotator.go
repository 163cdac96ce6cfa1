package xrotate

import "io"

// Rotator 是并发安全的日志轮转目标。它是 [io.WriteCloser] 的超集，
// 可以直接塞给任何收 io.Writer 的地方（xlog 的文件输出就是这么用的），
// 额外的 Rotate 供外部触发切文件（比如 SIGHUP 对接 logrotate）。
//
// 实现约定：
//   - Write 并发安全；
//   - Close 之后 Write/Rotate/Close 一律返回 [ErrClosed]；
//   - Rotate 可在任意时刻调用。
type Rotator interface {
	// Write 写入日志数据，必要时先完成轮转。
	Write(p []byte) (n int, err error)

	// Close 关闭底层文件。重复调用返回 [ErrClosed]。
	Close() error

	// Rotate 关闭当前文件并转为备份，开新文件继续写。
	Rotate() error
}

var _ io.WriteCloser = (Rotator)(nil)

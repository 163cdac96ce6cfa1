package xlog

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// 编译时接口检查
var (
	_ Logger          = (*logger)(nil)
	_ Leveler         = (*logger)(nil)
	_ LoggerWithLevel = (*logger)(nil)
)

// logger Logger/Leveler 的 slog 实装。
// 派生实例（With/WithGroup）与父级共享 level 与 errs 指针。
type logger struct {
	handler slog.Handler
	level   *slog.LevelVar
	source  bool // 记录源码位置时才做调用帧定位
	errs    *errSink
}

// errSink 收敛 handler 的写失败：全部计数，回调按 best-effort 通知。
// 同一条派生链上的 logger 共用一个 errSink，递归保护因此对
// With/WithGroup 产生的子 logger 同样生效。
type errSink struct {
	count  atomic.Uint64
	busy   atomic.Bool
	notify func(error)
}

// report 记录一次写失败。busy 的 CAS 同时挡住两类调用：回调里再次写日志
// 造成的递归，以及并发错误下的重复通知；被挡住的错误只计数不回调。
// 回调 panic 被就地吞掉并额外计数一次，不会扩散到写日志的业务调用链。
func (s *errSink) report(err error) {
	if s == nil {
		return
	}
	s.count.Add(1)
	if s.notify == nil || !s.busy.CompareAndSwap(false, true) {
		return
	}
	defer s.busy.Store(false)
	defer func() {
		if recover() != nil {
			s.count.Add(1)
		}
	}()
	s.notify(err)
}

// emit 过滤级别、按需定位调用帧，然后把记录交给 handler。
// Callers 按逻辑帧计数跳 3 帧：Callers 自身、emit、外层的级别方法，
// pcs[0] 即业务调用处；级别方法被内联时逻辑帧数不变。
func (l *logger) emit(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	if !l.handler.Enabled(ctx, level) {
		return
	}
	var pc uintptr
	if l.source {
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		pc = pcs[0]
	}
	rec := slog.NewRecord(time.Now(), level, msg, pc)
	rec.AddAttrs(attrs...)
	if err := l.handler.Handle(ctx, rec); err != nil {
		l.errs.report(err)
	}
}

// Debug 记录 Debug 级别日志
func (l *logger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.emit(ctx, slog.LevelDebug, msg, attrs)
}

// Info 记录 Info 级别日志
func (l *logger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.emit(ctx, slog.LevelInfo, msg, attrs)
}

// Warn 记录 Warn 级别日志
func (l *logger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.emit(ctx, slog.LevelWarn, msg, attrs)
}

// Error 记录 Error 级别日志
func (l *logger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.emit(ctx, slog.LevelError, msg, attrs)
}

// Stack 以 Error 级别记录日志并附上当前 goroutine 的调用栈。
// 先查级别再抓栈，级别禁用时完全没有抓栈开销。
func (l *logger) Stack(ctx context.Context, msg string, attrs ...slog.Attr) {
	if !l.handler.Enabled(ctx, slog.LevelError) {
		return
	}
	// Clip 收紧容量，append 不会写进调用方的底层数组。
	l.emit(ctx, slog.LevelError, msg,
		append(slices.Clip(attrs), slog.String(KeyStack, captureStack())))
}

const (
	stackBufSize = 4 << 10  // 初始抓栈缓冲
	stackBufMax  = 64 << 10 // 缓冲扩容上限
)

// stackPool 复用初始大小的抓栈缓冲
var stackPool = sync.Pool{
	New: func() any {
		buf := make([]byte, stackBufSize)
		return &buf
	},
}

// captureStack 返回当前 goroutine 的调用栈文本。
// 栈被截断时翻倍重抓，直到容纳完整栈或达到 stackBufMax。
// 必须先拷贝成 string 再归还缓冲区，否则池里的下一个使用者会覆盖数据；
// 扩容得到的大缓冲不回池，入池的始终是 Get 拿到的那块。
func captureStack() string {
	bufp, _ := stackPool.Get().(*[]byte)
	if bufp == nil {
		b := make([]byte, stackBufSize)
		bufp = &b
	}
	buf := *bufp
	n := runtime.Stack(buf, false)
	for n == len(buf) && len(buf) < stackBufMax {
		buf = make([]byte, min(len(buf)*2, stackBufMax))
		n = runtime.Stack(buf, false)
	}
	s := string(buf[:n])
	stackPool.Put(bufp)
	return s
}

// With 返回追加了固定属性的派生 Logger，与父级共享级别与错误状态。
func (l *logger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	c := *l
	c.handler = l.handler.WithAttrs(attrs)
	return &c
}

// WithGroup 返回带分组的派生 Logger，后续属性归入该分组。
func (l *logger) WithGroup(name string) Logger {
	if name == "" {
		return l
	}
	c := *l
	c.handler = l.handler.WithGroup(name)
	return &c
}

// SetLevel 调整日志级别，对共享级别变量的全部派生实例生效。
func (l *logger) SetLevel(level Level) {
	l.level.Set(slog.Level(level))
}

// GetLevel 返回当前日志级别。
func (l *logger) GetLevel() Level {
	return Level(l.level.Level())
}

// Enabled 报告指定级别是否会被输出。
func (l *logger) Enabled(ctx context.Context, level Level) bool {
	return l.handler.Enabled(ctx, slog.Level(level))
}

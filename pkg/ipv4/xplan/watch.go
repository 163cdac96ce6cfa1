package xplan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	retry "github.com/avast/retry-go/v5"
	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/omeyang/subnetkit/pkg/config/xconf"
)

// 默认监听参数。
const (
	// DefaultDebounce 默认防抖窗口。
	DefaultDebounce = 100 * time.Millisecond

	// DefaultReadAttempts 默认读取重试次数。
	DefaultReadAttempts = 3

	// DefaultReadDelay 默认读取重试间隔。
	DefaultReadDelay = 20 * time.Millisecond
)

// Callback 在计划重新求值后被调用。
// res 与 err 恰有一个非零：求值成功时 res 非 nil，
// 读取、解码或求值失败时 err 非 nil 且保留上一次的结果语义。
type Callback func(res *Result, err error)

// watcherOptions 监听器可调参数。
type watcherOptions struct {
	debounce time.Duration
	attempts uint
	delay    time.Duration
}

// WatcherOption 配置 [NewWatcher]。
type WatcherOption func(*watcherOptions)

// WithDebounce 设置防抖窗口，必须大于 0。
func WithDebounce(d time.Duration) WatcherOption {
	return func(o *watcherOptions) {
		o.debounce = d
	}
}

// WithReadRetry 设置计划文件读取的重试参数。
// attempts 为总尝试次数（至少 1），delay 为固定间隔（不可为负）。
// 原子替换（写临时文件后 rename）会产生文件短暂缺失的窗口，
// 重试吸收这类瞬时失败。
func WithReadRetry(attempts uint, delay time.Duration) WatcherOption {
	return func(o *watcherOptions) {
		o.attempts = attempts
		o.delay = delay
	}
}

// Watcher 监听计划文件并在内容变化时重新求值。
//
// 事件经防抖窗口合并后触发一次重读；内容摘要未变化的重写
// 不会触发回调。回调在监听器自己的 goroutine 中执行，
// 回调内允许调用 [Watcher.Close]。
type Watcher struct {
	path     string
	format   xconf.Format
	callback Callback
	debounce time.Duration
	attempts uint
	delay    time.Duration

	fw     *fsnotify.Watcher
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	started bool
	timer   *time.Timer
	lastSum uint64
	hasSum  bool
}

// NewWatcher 创建计划文件监听器。
// 监听注册在父目录上，以便捕获编辑器的原子替换写入。
func NewWatcher(path string, callback Callback, opts ...WatcherOption) (*Watcher, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if callback == nil {
		return nil, ErrNilCallback
	}

	format, err := xconf.DetectFormat(path)
	if err != nil {
		return nil, fmt.Errorf("xplan: detect plan format: %w", err)
	}

	options := watcherOptions{
		debounce: DefaultDebounce,
		attempts: DefaultReadAttempts,
		delay:    DefaultReadDelay,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if options.debounce <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDebounce, options.debounce)
	}
	if options.attempts == 0 {
		return nil, fmt.Errorf("%w: attempts must be at least 1", ErrInvalidRetry)
	}
	if options.delay < 0 {
		return nil, fmt.Errorf("%w: negative delay %v", ErrInvalidRetry, options.delay)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xplan: create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %w", ErrWatchFailed, err), fw.Close())
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		path:     path,
		format:   format,
		callback: callback,
		debounce: options.debounce,
		attempts: options.attempts,
		delay:    options.delay,
		fw:       fw,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Path 返回监听的计划文件路径。
func (w *Watcher) Path() string {
	return w.path
}

// Start 执行一次初始求值并开始监听文件变化。
// 初始求值同步完成，结果或错误通过回调投递；
// 初始计划损坏不阻止监听启动，Start 仍返回 nil。
// 重复调用无效果；Close 之后调用返回 [ErrClosed]。
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.ctx.Err() != nil {
		w.mu.Unlock()
		return ErrClosed
	}
	if w.started {
		w.mu.Unlock()
		return nil
	}
	w.started = true
	w.mu.Unlock()

	w.reevaluate()

	go w.run()
	return nil
}

// Close 停止监听并释放文件监听资源，可重复调用。
// 不等待在途回调结束，因此回调内调用 Close 不会死锁。
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.ctx.Err() != nil {
		return nil
	}
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.cancel()
	return w.fw.Close()
}

// run 事件主循环。
func (w *Watcher) run() {
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			w.handleEvent(event, filepath.Base(w.path))
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.invokeCallback(nil, fmt.Errorf("xplan: watch error: %w", err))
		}
	}
}

// handleEvent 过滤事件并重置防抖定时器。
func (w *Watcher) handleEvent(event fsnotify.Event, filename string) {
	if filepath.Base(event.Name) != filename {
		return
	}
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ctx.Err() != nil {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reevaluate)
}

// reevaluate 重读计划文件，内容变化时解码并求值。
func (w *Watcher) reevaluate() {
	if w.ctx.Err() != nil {
		return
	}

	data, err := w.readPlan()
	if err != nil {
		w.invokeCallback(nil, err)
		return
	}
	if !w.contentChanged(data) {
		return
	}

	plan, err := Decode(data, w.format)
	if err != nil {
		w.invokeCallback(nil, err)
		return
	}

	res, err := Evaluate(w.ctx, plan)
	w.invokeCallback(res, err)
}

// readPlan 带重试地读取计划文件。
func (w *Watcher) readPlan() ([]byte, error) {
	data, err := retry.NewWithData[[]byte](
		retry.Context(w.ctx),
		retry.Attempts(w.attempts),
		retry.Delay(w.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	).Do(func() ([]byte, error) {
		return os.ReadFile(w.path)
	})
	if err != nil {
		return nil, fmt.Errorf("xplan: read plan %s: %w", w.path, err)
	}
	return data, nil
}

// contentChanged 比较内容摘要，未变化时返回 false。
// 摘要随内容更新而与解码结果无关：同一份损坏内容只报告一次错误。
func (w *Watcher) contentChanged(data []byte) bool {
	sum := xxhash.Sum64(data)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.hasSum && w.lastSum == sum {
		return false
	}
	w.lastSum = sum
	w.hasSum = true
	return true
}

// invokeCallback 在 recover 保护下执行回调。
func (w *Watcher) invokeCallback(res *Result, err error) {
	defer func() {
		_ = recover()
	}()
	w.callback(res, err)
}

package xconf

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce 默认防抖窗口：窗口内的连续变更合并为一次重载。
const DefaultDebounce = 100 * time.Millisecond

// WatchCallback 在配置文件变更并完成重载后被调用，err 为重载结果。
type WatchCallback func(cfg Config, err error)

// WatchOption 调整监视行为。
type WatchOption func(*Watcher)

// WithDebounce 设置防抖窗口，默认 DefaultDebounce。
// 编辑器保存往往产生一串事件，窗口内只有最后一次会触发重载。
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher 监视配置文件所在目录，变更防抖后自动 Reload 并回调。
//
// 监视目录而非文件本身：vim/emacs 等编辑器保存时先写临时文件再
// rename，直接监视文件会在第一次替换后丢失后续事件。
type Watcher struct {
	cfg      *config
	fs       *fsnotify.Watcher
	callback WatchCallback
	target   string // 只响应该文件名的事件
	debounce time.Duration

	ctx     context.Context
	cancel  context.CancelFunc
	started atomic.Bool

	mu       sync.Mutex  // 保护 timer
	timer    *time.Timer // 待触发的防抖定时器
	stopOnce sync.Once
}

// Watch 为 cfg 创建监视器。
//
// cfg 必须由 New 从文件创建，来自字节数据的实例返回 ErrNotFromFile。
// 返回的 Watcher 需调用 Start 或 StartAsync 开始监视，Stop 释放资源：
//
//	cfg, _ := xconf.New("subnetctl.yaml")
//	w, err := xconf.Watch(cfg, func(c xconf.Config, err error) {
//	    if err != nil {
//	        log.Printf("reload failed: %v", err)
//	        return
//	    }
//	    log.Println("config reloaded")
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Stop()
//	w.StartAsync()
func Watch(cfg Config, callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	if callback == nil {
		return nil, ErrNilCallback
	}

	kc, ok := cfg.(*config)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported config type %T", ErrWatchFailed, cfg)
	}
	if kc.path == "" {
		return nil, fmt.Errorf("%w: cannot watch config created from bytes", ErrNotFromFile)
	}

	w := &Watcher{
		cfg:      kc,
		callback: callback,
		target:   filepath.Base(kc.path),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	if w.debounce <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDebounce, w.debounce)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatchFailed, err)
	}
	dir := filepath.Dir(kc.path)
	if err := fs.Add(dir); err != nil {
		return nil, errors.Join(
			fmt.Errorf("%w: cannot watch directory %s: %w", ErrWatchFailed, dir, err),
			fs.Close(),
		)
	}

	w.fs = fs
	w.ctx, w.cancel = context.WithCancel(context.Background())
	return w, nil
}

// Start 开始监视并阻塞到 Stop 被调用，通常放在独立 goroutine 里。
// 重复调用只有第一次生效。
func (w *Watcher) Start() {
	if !w.started.CompareAndSwap(false, true) {
		return
	}
	w.run()
}

// StartAsync 在后台 goroutine 中开始监视，立即返回。
// 重复调用只有第一次生效。
func (w *Watcher) StartAsync() {
	if !w.started.CompareAndSwap(false, true) {
		return
	}
	go w.run()
}

// Stop 停止监视并释放 fsnotify 资源，幂等。
// 尚未触发的防抖定时器被取消，已经开始执行的回调会运行完毕。
// 未启动的 Watcher 也可以 Stop。
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
			w.timer = nil
		}
		w.mu.Unlock()

		w.cancel()
		err = w.fs.Close()
	})
	return err
}

// run 是监视主循环，Events/Errors 通道关闭或 ctx 取消时退出。
func (w *Watcher) run() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.onEvent(ev)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

// onEvent 过滤出目标文件的 Write/Create/Rename 事件并重置防抖定时器。
// Create 与 Rename 覆盖编辑器的原子写入路径。
func (w *Watcher) onEvent(ev fsnotify.Event) {
	if filepath.Base(ev.Name) != w.target {
		return
	}
	if !ev.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

// onError 把 fsnotify 的错误转交给用户回调。
func (w *Watcher) onError(err error) {
	w.notify(fmt.Errorf("xconf: watch error: %w", err))
}

// reload 在防抖窗口结束后执行真正的重载。
func (w *Watcher) reload() {
	select {
	case <-w.ctx.Done():
		return
	default:
	}
	w.notify(w.cfg.Reload())
}

// notify 调用用户回调。回调在锁外执行，在回调里调用 Stop 不会死锁；
// 回调 panic 会被捕获，不会砸穿监视 goroutine 或定时器线程。
func (w *Watcher) notify(err error) {
	if w.callback == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	w.callback(w.cfg, err)
}

// WatchConfig 在 Config 之上暴露监视能力。
type WatchConfig interface {
	Config

	// Watch 等价于包级 Watch(c, callback, opts...)。
	Watch(callback WatchCallback, opts ...WatchOption) (*Watcher, error)
}

// Watch 实现 WatchConfig。
func (c *config) Watch(callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	return Watch(c, callback, opts...)
}

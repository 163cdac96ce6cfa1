package xplan

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidPlan 表示计划文档不符合模式或业务约束。
	ErrInvalidPlan = errors.New("xplan: invalid plan")

	// ErrClosed 表示在已关闭的 Watcher 上启动监视。
	ErrClosed = errors.New("xplan: watcher closed")

	// ErrEmptyPath 表示计划文件路径为空。
	ErrEmptyPath = errors.New("xplan: empty plan path")

	// ErrNilCallback 表示监视回调为 nil。
	ErrNilCallback = errors.New("xplan: nil callback")

	// ErrInvalidDebounce 表示防抖时长非正。
	ErrInvalidDebounce = errors.New("xplan: invalid debounce duration")

	// ErrInvalidRetry 表示重读重试配置无效。
	ErrInvalidRetry = errors.New("xplan: invalid retry config")

	// ErrWatchFailed 表示注册文件监听失败。
	ErrWatchFailed = errors.New("xplan: watch failed")
)

package xconf

import "errors"

// 加载与解析错误。
var (
	// ErrEmptyPath 配置文件路径为空。
	ErrEmptyPath = errors.New("xconf: empty config path")

	// ErrUnsupportedFormat 格式不在支持列表里（YAML/JSON）。
	ErrUnsupportedFormat = errors.New("xconf: unsupported config format")

	// ErrLoadFailed 读取配置文件失败。
	ErrLoadFailed = errors.New("xconf: failed to load config")

	// ErrParseFailed 配置内容解析失败，错误链里带着解析器的原始错误。
	ErrParseFailed = errors.New("xconf: failed to parse config")

	// ErrUnmarshalFailed 反序列化到目标结构体失败。
	ErrUnmarshalFailed = errors.New("xconf: failed to unmarshal config")
)

// 重载与监视错误。
var (
	// ErrNotFromFile 实例来自字节数据，没有可重读的文件，
	// 不支持 Reload 与 Watch。
	ErrNotFromFile = errors.New("xconf: config not created from file")

	// ErrNilCallback Watch 的回调为 nil。
	ErrNilCallback = errors.New("xconf: nil watch callback")

	// ErrInvalidDebounce 防抖窗口必须为正。
	ErrInvalidDebounce = errors.New("xconf: invalid debounce duration")

	// ErrWatchFailed 监视器创建失败。
	ErrWatchFailed = errors.New("xconf: failed to create watcher")
)

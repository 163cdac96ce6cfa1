package xlru

import "time"

// maxEntries 是 Size 的上限，1<<24 条。计的是条目数，不是字节数。
const maxEntries = 1 << 24

// Config 是创建缓存的必填参数。
type Config struct {
	// Size 最大条目数，取值范围 (0, 16777216]。
	Size int

	// TTL 条目存活时间，从写入（含覆盖写）时刻起算。0 表示不过期，负值非法。
	TTL time.Duration
}

// validate 返回首个不满足约束的哨兵错误。
func (c Config) validate() error {
	switch {
	case c.Size <= 0:
		return ErrInvalidSize
	case c.Size > maxEntries:
		return ErrSizeExceedsMax
	case c.TTL < 0:
		return ErrInvalidTTL
	}
	return nil
}

// Option 配置缓存的可选行为。
type Option[K comparable, V any] func(*settings[K, V])

type settings[K comparable, V any] struct {
	onEvicted func(key K, value V)
}

// WithOnEvicted 注册条目被淘汰时的回调。容量淘汰、Clear 和 Close 的
// Purge 都会触发它。
//
// 设计决策: 底层库在持有内部互斥锁时同步调用回调，因此回调内不得再
// 调用本缓存的任何方法（会死锁），也不应做耗时操作。需要复杂处理时，
// 把事件发进带缓冲的 channel 异步消费。
func WithOnEvicted[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(s *settings[K, V]) {
		s.onEvicted = fn
	}
}

package xlru

import (
	"reflect"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache 是带 TTL 的泛型 LRU 缓存，对 expirable.LRU 的薄封装。
// 零值不可用，必须经 [New] 构造。全部方法并发安全。
// Close 之后读操作一律返回零值/false，写操作被静默忽略。
type Cache[K comparable, V any] struct {
	lru       *expirable.LRU[K, V]
	closed    atomic.Bool
	closeOnce sync.Once
}

// New 按 cfg 创建缓存。配置非法时返回 [ErrInvalidSize]、
// [ErrSizeExceedsMax] 或 [ErrInvalidTTL]。
func New[K comparable, V any](cfg Config, opts ...Option[K, V]) (*Cache[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var s settings[K, V]
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return &Cache[K, V]{
		lru: expirable.NewLRU(cfg.Size, s.onEvicted, cfg.TTL),
	}, nil
}

// Get 返回 key 对应的值并把它刷新为最近访问。
// 键不存在、已过期或缓存已关闭时返回零值和 false。Get 不顺延 TTL。
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	if c.closed.Load() {
		return value, false
	}
	return c.lru.Get(key)
}

// Set 写入键值。覆盖已有键会刷新该条目的 TTL。
//
// 返回 true 表示本次写入挤掉了最久未访问的条目（容量淘汰），不代表
// 成功与否：覆盖写和未满时的新写都返回 false，关闭后恒为 false。
//
// 设计决策: 返回值直接透传 expirable.LRU.Add 的淘汰信号。它对容量
// 调优有参考价值（配合 [WithOnEvicted] 可统计淘汰压力），多数调用方
// 可以无视。
func (c *Cache[K, V]) Set(key K, value V) bool {
	if c.closed.Load() {
		return false
	}
	return c.lru.Add(key, value)
}

// Delete 删除条目，返回 true 表示键此前存在。关闭后恒为 false。
func (c *Cache[K, V]) Delete(key K) bool {
	if c.closed.Load() {
		return false
	}
	return c.lru.Remove(key)
}

// Clear 清空全部条目（逐条触发淘汰回调）。关闭后为 no-op。
func (c *Cache[K, V]) Clear() {
	if c.closed.Load() {
		return
	}
	c.lru.Purge()
}

// Len 返回当前条目数，可能把已过期但尚未被后台清走的条目也计入
// （上游行为）。关闭后恒为 0。
func (c *Cache[K, V]) Len() int {
	if c.closed.Load() {
		return 0
	}
	return c.lru.Len()
}

// Close 清空缓存并停掉 TTL 清理 goroutine，幂等。
//
// 设计决策: closed 置位与底层操作之间存在窄的竞争窗口：并发调用可能
// 在 closed 检查通过后才看到 Close。这无需加锁消除，Purge 之后的
// expirable.LRU 仍是合法对象（只是空了），最坏情况是关闭瞬间的一次
// 写入丢失，不会 panic 也不会破坏数据。
func (c *Cache[K, V]) Close() {
	c.closed.Store(true)
	c.closeOnce.Do(func() {
		c.lru.Purge()
		stopExpiryWorker(c.lru)
	})
}

// stopExpiryWorker 关停 expirable.LRU 的后台过期清理 goroutine。
// 找不到内部通道时降级为 no-op 并返回 false。
//
// 设计决策: 上游 v2.0.7 在 TTL > 0 时启动清理 goroutine，却没有导出
// 任何停止手段（其 Close 方法整段被注释掉，注释称留待后续版本）。
// 这里用 reflect 定位未导出的 done 字段（chan struct{}），经 unsafe
// 取址后 close 掉，让 goroutine 退出。升级 golang-lru 前先查上游是否
// 补上了公开的 Close：有则删掉本函数改为直接调用。
// TestExpiryWorker_UpstreamLayout 盯着 done 字段的名称与类型，上游
// 布局一变即红。
func stopExpiryWorker(lru any) (stopped bool) {
	// 通道已被关闭过时 close 会 panic，吞掉并报告失败。
	defer func() {
		if recover() != nil {
			stopped = false
		}
	}()

	v := reflect.ValueOf(lru)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}

	done := v.Elem().FieldByName("done")
	if !done.IsValid() || done.Type() != reflect.TypeOf((chan struct{})(nil)) || done.IsNil() {
		return false
	}

	ch := *(*chan struct{})(unsafe.Pointer(done.UnsafeAddr())) //nolint:gosec // 访问上游未导出字段正是本函数的用途
	close(ch)
	return true
}

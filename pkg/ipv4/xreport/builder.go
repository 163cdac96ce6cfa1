package xreport

import (
	"time"

	"github.com/omeyang/subnetkit/pkg/ipv4/xsubnet"
	"github.com/omeyang/subnetkit/pkg/util/xlru"
)

// Option 定义 Builder 可选配置函数类型。
type Option func(*options)

// options 内部可选配置。
type options struct {
	useCache  bool
	cacheSize int
	cacheTTL  time.Duration
}

// WithCache 启用报告缓存：最多保留 size 份报告，ttl 为过期时间
// （0 表示永不过期）。参数校验发生在 [NewBuilder]。
func WithCache(size int, ttl time.Duration) Option {
	return func(o *options) {
		o.useCache = true
		o.cacheSize = size
		o.cacheTTL = ttl
	}
}

// Builder 构建子网报告，可选 LRU 缓存加速批量与监听场景下的重复查询。
//
// 零值 Builder 可用，等价于每次调用 [Build] 的无缓存构建器。
// 所有方法并发安全。
//
// 设计决策: 缓存键是 Subnet 值本身（可比较的不可变值类型），命中时
// 直接返回缓存的 *Report 指针而不做拷贝。Builder 构建完成后绝不修改
// 报告内容，调用方应将返回的报告视为只读，需要修改时自行复制。
type Builder struct {
	cache *xlru.Cache[xsubnet.Subnet, *Report]
}

// NewBuilder 创建报告构建器，未指定 [WithCache] 时不启用缓存。
// 缓存参数非法时透传 xlru 的 [xlru.ErrInvalidSize]、
// [xlru.ErrSizeExceedsMax] 或 [xlru.ErrInvalidTTL]。
func NewBuilder(opts ...Option) (*Builder, error) {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	b := &Builder{}
	if o.useCache {
		cache, err := xlru.New[xsubnet.Subnet, *Report](xlru.Config{
			Size: o.cacheSize,
			TTL:  o.cacheTTL,
		})
		if err != nil {
			return nil, err
		}
		b.cache = cache
	}
	return b, nil
}

// Build 构建 s 的报告，启用缓存时优先返回缓存结果。
// 无效子网返回 [ErrInvalidSubnet]，失败不进入缓存。
func (b *Builder) Build(s xsubnet.Subnet) (*Report, error) {
	if b.cache != nil {
		if r, ok := b.cache.Get(s); ok {
			return r, nil
		}
	}

	r, err := Build(s)
	if err != nil {
		return nil, err
	}
	if b.cache != nil {
		b.cache.Set(s, r)
	}
	return r, nil
}

// CacheLen 返回当前缓存的报告数，未启用缓存时为 0。
func (b *Builder) CacheLen() int {
	if b.cache == nil {
		return 0
	}
	return b.cache.Len()
}

// Close 释放缓存资源，幂等。
// 关闭后 Builder 仍可使用，只是退化为无缓存构建。
func (b *Builder) Close() {
	if b.cache != nil {
		b.cache.Close()
	}
}

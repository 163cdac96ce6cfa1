package xlog

import "log/slog"

// 延迟求值属性。构造时只保存闭包，handler 真正输出记录时才通过
// slog.LogValuer 求值；级别被禁用时闭包完全不执行。
// 适合只在 Debug 级别需要的昂贵计算，比如整份地址报告的序列化、
// 全量排除结果的遍历统计。注意 slog.Any 的装箱分配仍然存在，
// Lazy 省的是计算而不是分配；简单值直接用 slog.String 等更划算。

// deferred 把闭包适配成 slog.LogValuer，conv 负责把结果转成 slog.Value。
type deferred[T any] struct {
	fn   func() T
	conv func(T) slog.Value
}

// LogValue 实现 slog.LogValuer。
func (d deferred[T]) LogValue() slog.Value {
	return d.conv(d.fn())
}

// errorValue 把 error 转成 slog.Value，nil 得到零值（JSON 下为 null）。
func errorValue(err error) slog.Value {
	if err == nil {
		return slog.Value{}
	}
	return slog.StringValue(err.Error())
}

// Lazy 返回任意类型的延迟求值属性：
//
//	logger.Debug(ctx, "report detail",
//	    xlog.Lazy("report", func() any { return renderFullReport(sub) }))
//
// fn 为 nil 时退化为 nil 值属性，不会 panic。
func Lazy(key string, fn func() any) slog.Attr {
	if fn == nil {
		return slog.Any(key, nil)
	}
	return slog.Any(key, deferred[any]{fn: fn, conv: slog.AnyValue})
}

// LazyString 字符串专用版本，求值结果不经过接口装箱。
func LazyString(key string, fn func() string) slog.Attr {
	if fn == nil {
		return slog.String(key, "")
	}
	return slog.Any(key, deferred[string]{fn: fn, conv: slog.StringValue})
}

// LazyInt 整数专用版本。
func LazyInt(key string, fn func() int64) slog.Attr {
	if fn == nil {
		return slog.Int64(key, 0)
	}
	return slog.Any(key, deferred[int64]{fn: fn, conv: slog.Int64Value})
}

// LazyError 延迟取 error 的属性。fn 返回 nil 时输出空值；
// 想完全省略字段，应在调用前判断 error 再决定是否传入。
func LazyError(key string, fn func() error) slog.Attr {
	if fn == nil {
		return slog.Any(key, nil)
	}
	return slog.Any(key, deferred[error]{fn: fn, conv: errorValue})
}

// LazyErr 等价于 LazyError(KeyError, fn)。
func LazyErr(fn func() error) slog.Attr {
	return LazyError(KeyError, fn)
}

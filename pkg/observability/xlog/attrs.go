package xlog

import (
	"log/slog"
	"time"
)

// 约定俗成的属性 key。同一含义的字段在整个代码库里用同一个名字，
// 方便日志检索与聚合。
const (
	KeyError     = "error"
	KeyStack     = "stack"
	KeyDuration  = "duration"
	KeyCount     = "count"
	KeyComponent = "component"
	KeyOperation = "operation"
	KeySubnet    = "subnet"
	KeyPlan      = "plan"
	KeyPath      = "path"
)

// Err 把 error 包成标准错误属性。
// err 为 nil 时返回零值 Attr，slog 输出时会忽略它：
//
//	if err != nil {
//	    logger.Error(ctx, "plan evaluation failed", xlog.Err(err))
//	}
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 耗时属性，输出 d.String() 的可读格式（如 "1m30s"）。
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Component 标识日志来源组件。
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 标识正在执行的操作。
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Count 计数属性。
func Count(n int64) slog.Attr {
	return slog.Int64(KeyCount, n)
}

// Subnet 子网属性。取 CIDR 文本（通常传 Subnet.String() 的结果），
// 日志层不依赖地址类型。
func Subnet(cidr string) slog.Attr {
	return slog.String(KeySubnet, cidr)
}

// Plan 规划文件路径属性。
func Plan(path string) slog.Attr {
	return slog.String(KeyPlan, path)
}

// Path 一般文件路径属性。
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

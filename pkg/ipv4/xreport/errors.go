package xreport

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidSubnet 表示对零值或无效的 Subnet 构建报告。
	ErrInvalidSubnet = errors.New("xreport: invalid subnet")

	// ErrNilReport 表示在 nil *Report 上调用渲染方法。
	ErrNilReport = errors.New("xreport: nil report")
)

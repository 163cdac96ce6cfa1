// Package xrun 提供轻量级的运行上下文管理。
//
// 每次命令调用（或一次监听会话）分配一个运行标识（run_id），随
// context.Context 传递并由日志系统自动输出，使同一次运行产生的所有
// 日志行可以互相关联。命令名（command）作为可选字段标识正在执行的
// 子命令。
//
// # 字段
//
//   - run_id  : 运行标识（UUID v4），每次调用入口生成
//   - command : 命令名（如 "report"、"plan.watch"），可选
//
// # 命名约定
//
//	WithXxx(ctx, value)    - 注入：将 value 写入 context
//	Xxx(ctx)               - 读取：从 context 读取值，缺失时返回零值
//	RequireXxx(ctx)        - 强制读取：值必须存在，缺失时返回错误
//	EnsureXxx(ctx)         - 确保存在：若已存在则返回，否则自动生成
//	GetRun(ctx)            - 批量读取：返回结构体
//
// # 典型用法
//
//	ctx, err := xrun.EnsureRunID(context.Background())
//	if err != nil {
//	    return err
//	}
//	ctx, _ = xrun.WithCommand(ctx, "report")
//	// 日志系统通过 xrun.AppendRunAttrs 自动输出 run_id/command
//
// # 错误处理
//
// 所有注入函数对 nil context 返回 ErrNilContext；读取函数对 nil context
// 返回零值（不报错），便于在日志热路径上无条件调用。
package xrun

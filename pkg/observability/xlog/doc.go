// Package xlog 是基于 log/slog 的结构化日志封装。
//
// # 构建
//
// 通过 [New] 得到 [Builder]，链式配置后 Build：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("info").
//		SetFormat("json").
//		SetRotation("/var/log/subnetctl.log").
//		Build()
//
// Build 返回 [LoggerWithLevel]、清理函数和配置错误。链上出现的第一个
// 配置错误会保留到 Build 返回，后续错误不覆盖它。Builder 是一次性的，
// Build 之后重新 [New]。清理函数负责关闭轮转文件，可安全重复调用。
//
// # 运行标识注入
//
// enrich 默认启用：每条日志自动带上 context 中的 run_id 与 command
// （见 xrun 包），缺失的字段跳过。SetEnrich(false) 关闭。
// 对启用 enrich 的 logger 调用 WithGroup 会把注入字段一并归入分组，
// 需要顶层字段时避开这种组合。
//
// # 级别
//
// [LevelDebug]、[LevelInfo]、[LevelWarn]、[LevelError] 与 slog 数值一致。
// [ParseLevel] 解析配置文本（兼容 warning 拼写），Level 实现
// encoding.TextMarshaler/TextUnmarshaler，可直接出入配置文件。
// 级别保存在共享的 LevelVar 里，[Leveler.SetLevel] 对全部派生 logger
// 即时生效。
//
// # 延迟求值
//
// [Lazy]、[LazyString]、[LazyInt]、[LazyError]、[LazyErr] 把昂贵计算
// 推迟到日志真正输出时，级别禁用则完全不执行。
//
// # 常用属性
//
// [Err]、[Duration]、[Component]、[Operation]、[Count]、[Subnet]、
// [Plan]、[Path] 统一常用字段名。[Duration] 输出 "1m30s" 这类可读格式，
// 需要数值时用 slog.Int64("duration_ms", d.Milliseconds())。
//
// # 写失败处理
//
// 日志写失败不向业务返回错误也不 panic。SetOnError 注册的回调会收到
// 底层 handler 的错误，回调内再次触发写失败不会递归。
package xlog

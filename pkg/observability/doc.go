// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: log/slog 之上的结构化日志构建器，级别可热调
//   - xrotate: 按大小/时间轮转的日志文件写入器
//
// 设计原则：
//   - 运行标识由 context 传入，日志自动携带，无需逐条手填
//   - 写失败不 panic，计数并回调，日志故障不影响主流程
//   - 轮转参数全部可配，默认值偏保守
package observability

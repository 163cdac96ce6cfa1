// Package context 提供上下文传递相关的子包。
//
// 子包列表：
//   - xrun: 运行标识管理，注入/提取 run_id 与命令名，派生日志属性
//
// 设计原则：
//   - 所有运行信息通过 context.Context 传递，不使用全局变量
//   - 提供 Ensure 语义按需生成标识，减少调用方样板代码
//   - 日志属性派生仅依赖 log/slog，不反向依赖日志实现
package context

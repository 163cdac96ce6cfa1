// Package xrotate 负责日志文件的轮转。
//
// subnetctl 的 --log-file 输出经本包落盘：一次性命令写入量可以忽略，
// 但 plan watch 会连续运行数月，不轮转的话日志文件只增不减。
// [Rotator] 抽象轮转目标（Write/Close/Rotate，均并发安全），
// [NewLumberjack] 是当前唯一实现，按文件大小切分、按份数和天数清理备份。
//
// 文件权限：日志文件沿用 lumberjack 默认的 0600，父目录按 0750 创建。
//
// 扩展新的轮转策略（按时间、按行数）时实现 Rotator 即可，各实现带
// 自己的构造函数和 Option，互不影响。
package xrotate

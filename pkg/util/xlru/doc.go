// Package xlru 是带 TTL 的进程内 LRU 缓存，
// 基于 github.com/hashicorp/golang-lru/v2/expirable 封装出泛型 API。
//
// 典型用途是报告构建器的结果缓存：同一子网反复渲染时直接复用，
// 监听模式下配合较短的 TTL 控制结果的陈旧度。
//
// # 行为要点
//
//   - 键为任意 comparable 类型，值类型不限；全部方法并发安全
//   - TTL 从写入（含覆盖写）时刻起算，Get 不顺延；0 表示不过期
//   - 容量打满时淘汰最久未访问的条目，可用 [WithOnEvicted] 观察
//   - [Cache.Close] 幂等；关闭后读返回零值/false，写被忽略
//
// # 已知限制
//
//   - TTL 走系统时钟，无法注入 mock 时钟
//   - Len 可能把已过期但尚未被后台清走的条目计入（上游行为）
//   - 淘汰回调在上游互斥锁内执行，回调里再碰缓存会死锁
//   - 上游没有公开的停止入口，Close 借 reflect+unsafe 关停清理
//     goroutine，升级 golang-lru 版本时需复核（见 stopExpiryWorker）
//   - 底层用 sync.Mutex 而非 RWMutex（Get 要改 LRU 顺序），
//     读多写少的高并发场景会有锁竞争
//
// 不做接口抽象：上游库稳定，包内只有这一种实现，薄封装足以统一
// 参数校验与关闭语义；真要换实现应在调用方一侧隔离。
package xlru

// Package xconf 加载 subnetctl 的配置文件与计划文档，底层是 koanf。
//
// 包内只做三件事：读取（文件或内存字节）、反序列化、热重载。
// 配置治理（必选字段校验、默认值注入、环境变量覆盖）留给调用方：
// 计划文档的语义校验在 xplan 完成，CLI 默认值合并在 subnetctl 完成。
//
// # 入口
//
//   - New 从文件加载，格式按扩展名推断（规则见 DetectFormat）
//   - NewFromBytes 从内存数据加载，格式显式指定
//   - 支持 YAML（.yaml/.yml，默认）与 JSON（.json）
//
// # 并发与重载
//
// 全部方法并发安全。Reload 在锁外读取并解析新数据，成功后才在
// 写锁内替换内部 koanf 实例，解析失败时保留旧配置。
// Client 返回的是调用时刻的快照指针，Reload 之后旧指针仍可读，
// 但不会看到新值；需要最新值时每次重新调用 Client，不要长期缓存。
//
// # 反序列化
//
// Unmarshal 基于 mapstructure，默认允许弱类型转换
// （字符串 "8080" 可以落到 int 字段）。结构体标签默认 koanf，
// 可用 WithTag 换成 json 等。需要严格类型时在 Unmarshal 后自行校验。
// MustUnmarshal 用于启动阶段缺了就无法工作的配置，失败即 panic。
//
// # 文件监视
//
// Watch 基于 fsnotify 监视配置文件所在目录，Write/Create/Rename
// 事件防抖合并后自动 Reload 并回调。监视目录而非文件本身，
// 因此 vim/emacs 的原子写入（写临时文件后 rename）不会丢事件。
// 来自字节数据的实例不支持监视。Stop 幂等并取消尚未触发的防抖
// 定时器；回调在锁外执行，回调里 panic 会被捕获。
package xconf

// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 路径净化（SanitizePath）与目录预创建（EnsureDir）
//   - xjson: JSON 缩进序列化（Pretty/PrettyE）
//   - xlru: 泛型 LRU 缓存，支持 TTL 与后台过期清理
//
// 设计原则：
//   - 封装易错的文件与路径细节，调用方只关心业务路径
//   - 拒绝路径穿越等危险输入，错误显式返回
//   - 不依赖平台特有行为，Linux/macOS/Windows 一致
package util

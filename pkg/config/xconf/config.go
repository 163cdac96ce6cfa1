package xconf

import "github.com/knadh/koanf/v2"

// Format 配置文档的序列化格式。
type Format string

// 支持的格式。
const (
	// FormatYAML 计划文档与 subnetctl 配置的默认格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Config 是一份加载完成的配置文档，由 New 或 NewFromBytes 创建。
// 基础读取操作直接走 Client() 返回的 koanf 实例，
// 接口本身只承载增值能力。
type Config interface {
	// Client 返回底层 koanf 实例，可执行 koanf 支持的全部读取操作。
	Client() *koanf.Koanf

	// Unmarshal 将 path 下的配置反序列化到 target。
	// path 为空字符串时反序列化整份配置；映射基于 mapstructure。
	Unmarshal(path string, target any) error

	// Reload 重新加载配置文件，并发安全。
	// 仅对从文件创建的实例有效，来自字节数据的实例返回 ErrNotFromFile。
	Reload() error

	// Path 返回配置文件路径，来自字节数据的实例返回空字符串。
	Path() string

	// Format 返回配置格式。
	Format() Format
}

// MustUnmarshal 同 Config.Unmarshal，失败时 panic。
// 用于进程启动阶段缺了就无法工作的配置。
func MustUnmarshal(cfg Config, path string, target any) {
	if err := cfg.Unmarshal(path, target); err != nil {
		panic(err)
	}
}

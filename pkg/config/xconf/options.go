package xconf

// 加载参数的默认值。
const (
	// defaultDelim 键路径分隔符。
	defaultDelim = "."

	// defaultTag 反序列化使用的结构体标签。
	defaultTag = "koanf"
)

// Option 调整配置实例的加载与反序列化行为。
type Option func(*config)

// WithDelim 设置键路径分隔符。
// 默认 "."，即 "log.level" 这样的访问路径。
func WithDelim(delim string) Option {
	return func(c *config) {
		c.delim = delim
	}
}

// WithTag 设置 Unmarshal 映射字段时使用的结构体标签。
// 默认 "koanf"；复用既有结构体时可以换成 "json" 等。
func WithTag(tag string) Option {
	return func(c *config) {
		c.tag = tag
	}
}

package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// config 是 Config 的 koanf 实现。
// path 为空表示实例来自字节数据，不支持 Reload 与 Watch。
type config struct {
	mu     sync.RWMutex
	k      *koanf.Koanf
	path   string
	format Format
	delim  string
	tag    string
}

// New 从文件创建配置实例，格式按扩展名推断（.yaml/.yml/.json）。
// 空文件会得到一份空配置。
func New(path string, opts ...Option) (Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	c := newConfig(path, format, opts)
	if err := c.load(data); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromBytes 从已读入内存的数据创建配置实例，格式需显式指定。
// 空数据（含 nil）得到一份空配置，与 New 读空文件的行为一致，
// 此时 Unmarshal 只会写入目标结构体的零值。
func NewFromBytes(data []byte, format Format, opts ...Option) (Config, error) {
	if _, err := format.parser(); err != nil {
		return nil, err
	}

	c := newConfig("", format, opts)
	if err := c.load(data); err != nil {
		return nil, err
	}
	return c, nil
}

// newConfig 填好默认参数后应用调用方给的选项，nil 选项跳过。
func newConfig(path string, format Format, opts []Option) *config {
	c := &config{
		path:   path,
		format: format,
		delim:  defaultDelim,
		tag:    defaultTag,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// load 在锁外解析 data，全部成功后才在写锁内替换当前 koanf 实例。
// 解析失败时旧值保持可用，Reload 的不回退语义依赖这一点。
func (c *config) load(data []byte) error {
	next := koanf.New(c.delim)
	if len(data) > 0 {
		parser, err := c.format.parser()
		if err != nil {
			return err
		}
		if err := next.Load(rawbytes.Provider(data), parser); err != nil {
			return fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}

	c.mu.Lock()
	c.k = next
	c.mu.Unlock()
	return nil
}

// Client 返回当前的 koanf 实例。
// Reload 会整体替换实例，返回的指针是调用时刻的快照。
func (c *config) Client() *koanf.Koanf {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.k
}

// Unmarshal 将 path 下的配置反序列化到 target。
func (c *config) Unmarshal(path string, target any) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.k.UnmarshalWithConf(path, target, koanf.UnmarshalConf{
		Tag: c.tag,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

// Reload 重新读取并解析配置文件。
// 读取或解析失败时当前配置原样保留，调用方可以继续使用变更前的值。
func (c *config) Reload() error {
	if c.path == "" {
		return fmt.Errorf("%w: cannot reload config created from bytes", ErrNotFromFile)
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return c.load(data)
}

// Path 返回配置文件路径。
func (c *config) Path() string { return c.path }

// Format 返回配置格式。
func (c *config) Format() Format { return c.format }

// DetectFormat 按扩展名推断配置格式，大小写不敏感。
// 计划文档解码（xplan.DecodeFile）与 New 共用这套规则。
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// parser 返回该格式对应的 koanf 解析器。
func (f Format) parser() (koanf.Parser, error) {
	switch f {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

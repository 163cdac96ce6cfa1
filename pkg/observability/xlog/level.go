package xlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 日志级别，数值与 slog.Level 一一对应。
type Level slog.Level

const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// levelNames ParseLevel 认可的拼写，warning 是 warn 的别名。
var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// String 返回 slog 风格的级别名：标准级别为 DEBUG/INFO/WARN/ERROR，
// 偏移级别形如 "INFO+2"。
func (l Level) String() string {
	return slog.Level(l).String()
}

// MarshalText 实现 encoding.TextMarshaler，级别可直接写进配置文件。
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler，接受 ParseLevel 的全部拼写。
func (l *Level) UnmarshalText(data []byte) error {
	lv, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = lv
	return nil
}

// ParseLevel 把级别文本解析为 Level。
// 大小写不敏感，首尾空白被忽略；无法识别时返回 LevelInfo 和错误。
func ParseLevel(s string) (Level, error) {
	if lv, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lv, nil
	}
	return LevelInfo, fmt.Errorf("xlog: unknown level %q", s)
}

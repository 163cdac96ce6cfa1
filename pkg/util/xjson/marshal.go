package xjson

import (
	"encoding/json"
	"fmt"
)

// PrettyE 将任意值序列化为格式化的 JSON 字符串。
// 失败时返回空字符串和 [ErrMarshal] 包装的错误，适用于报告输出等
// 需要向调用方传播失败的场景。
func PrettyE(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	return string(data), nil
}

// Pretty 将任意值序列化为格式化的 JSON 字符串。
// 用于日志和调试输出。序列化失败时返回 "<marshal error: ...>"。
func Pretty(v any) string {
	s, err := PrettyE(v)
	if err != nil {
		return fmt.Sprintf("<marshal error: %v>", err)
	}
	return s
}

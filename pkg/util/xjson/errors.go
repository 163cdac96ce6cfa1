package xjson

import "errors"

// ErrMarshal 表示 JSON 序列化失败，支持 [errors.Is] 判断。
var ErrMarshal = errors.New("xjson: marshal failed")

package xlru

import "errors"

// 构造参数校验失败时返回的哨兵错误，均可用 [errors.Is] 匹配。
var (
	// ErrInvalidSize 容量不是正数。
	ErrInvalidSize = errors.New("xlru: size must be positive")

	// ErrSizeExceedsMax 容量超过上限（16,777,216 条）。
	ErrSizeExceedsMax = errors.New("xlru: size exceeds limit 16777216")

	// ErrInvalidTTL TTL 为负值。
	ErrInvalidTTL = errors.New("xlru: negative TTL")
)

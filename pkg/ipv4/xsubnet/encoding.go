package xsubnet

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
)

// 编码接口输出 "base/bits" 文本并保留原始基地址，
// 与 [Subnet.String] 的规范网络形式不同：编码要求往返无损，
// 未对齐的基地址不能在序列化中丢失。

// appendTo 构造 "base/bits" 文本并追加到 b。
func (s Subnet) appendTo(b []byte) []byte {
	b = append(b, s.Addr().String()...)
	b = append(b, '/')
	return strconv.AppendInt(b, int64(s.Bits()), 10)
}

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出 "base/bits" 格式，无效子网输出空字节切片。
func (s Subnet) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return []byte{}, nil
	}
	// "255.255.255.255/32" 最长 18 字节
	return s.appendTo(make([]byte, 0, 18)), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持所有 [Parse] 支持的格式。
// 空输入设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (s *Subnet) UnmarshalText(text []byte) error {
	if s == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*s = Subnet{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
// 输出带引号的 "base/bits" 字符串，无效子网输出空字符串（""）。
//
// CIDR 字符串仅包含 [0-9./] 字符，无需 JSON 转义，
// 因此直接构造带引号的字节切片，避免 [json.Marshal] 的反射开销。
func (s Subnet) MarshalJSON() ([]byte, error) {
	if !s.IsValid() {
		return []byte(`""`), nil
	}
	buf := make([]byte, 0, 20)
	buf = append(buf, '"')
	buf = s.appendTo(buf)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 支持所有 [Parse] 支持的格式。
// 空字符串或 null 设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (s *Subnet) UnmarshalJSON(data []byte) error {
	if s == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*s = Subnet{}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if str == "" {
		*s = Subnet{}
		return nil
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value 实现 [database/sql/driver.Valuer]。
// 用于 SQL 数据库写入。
// 输出 "base/bits" 字符串，无效子网返回 nil（SQL NULL）。
func (s Subnet) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, nil
	}
	return string(s.appendTo(make([]byte, 0, 18))), nil
}

// Scan 实现 [database/sql.Scanner]。
// 用于 SQL 数据库读取。
// 支持 string、[]byte（字符串或 5 字节二进制）、nil 输入。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (s *Subnet) Scan(src any) error {
	if s == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*s = Subnet{}
		return nil
	case string:
		if v == "" {
			*s = Subnet{}
			return nil
		}
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*s = Subnet{}
			return nil
		}
		// 5 字节视为二进制格式（4 字节大端基地址 + 1 字节前缀），
		// 适用于 BINARY(5) 列。文本格式最短 7 字符（如 "1.1.1.1"），
		// 不会与 5 字节二进制冲突。
		if len(v) == 5 {
			parsed, err := NewFromUint32(binary.BigEndian.Uint32(v[:4]), int(v[4]))
			if err != nil {
				return err
			}
			*s = parsed
			return nil
		}
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidFormat, src)
	}
}

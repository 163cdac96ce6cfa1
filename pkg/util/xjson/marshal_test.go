package xjson

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportRow 模拟报告输出的最小结构，供各测试共用。
type reportRow struct {
	Subnet string `json:"subnet"`
	Hosts  int    `json:"hosts"`
}

func TestPrettyE_Values(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string // 精确匹配；为空时退化为 wantSub 子串匹配
		wantSub string
	}{
		{
			name:    "struct",
			input:   reportRow{Subnet: "10.0.0.0/24", Hosts: 254},
			wantSub: `"subnet": "10.0.0.0/24"`,
		},
		{
			name:    "map",
			input:   map[string]int{"prefixes": 4},
			wantSub: `"prefixes": 4`,
		},
		{
			name:  "nil",
			input: nil,
			want:  "null",
		},
		{
			name:  "slice",
			input: []string{"10.0.0.0/25", "10.0.0.128/25"},
			want:  "[\n  \"10.0.0.0/25\",\n  \"10.0.0.128/25\"\n]",
		},
		{
			name:  "empty_struct",
			input: struct{}{},
			want:  "{}",
		},
		{
			name:  "empty_string",
			input: "",
			want:  `""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrettyE(tt.input)
			require.NoError(t, err)
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Contains(t, got, tt.wantSub)
			}
		})
	}
}

func TestPrettyE_Unsupported(t *testing.T) {
	// encoding/json 无法表达的值：NaN 与 channel。
	for _, tt := range []struct {
		name  string
		input any
	}{
		{name: "NaN", input: math.NaN()},
		{name: "channel", input: make(chan int)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrettyE(tt.input)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, ErrMarshal), "error should wrap ErrMarshal")
		})
	}
}

func TestPretty(t *testing.T) {
	t.Run("struct", func(t *testing.T) {
		got := Pretty(reportRow{Subnet: "192.168.1.0/28", Hosts: 14})
		assert.Contains(t, got, `"hosts": 14`)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "null", Pretty(nil))
	})

	t.Run("empty_struct", func(t *testing.T) {
		assert.Equal(t, "{}", Pretty(struct{}{}))
	})

	// 失败路径不向调用方返回错误，改为输出标记字符串。
	t.Run("marker_on_NaN", func(t *testing.T) {
		assert.Contains(t, Pretty(math.NaN()), "<marshal error:")
	})

	t.Run("marker_on_channel", func(t *testing.T) {
		assert.Contains(t, Pretty(make(chan int)), "<marshal error:")
	})
}

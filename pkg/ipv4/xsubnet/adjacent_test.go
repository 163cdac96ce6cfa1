package xsubnet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubnet_Next(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "/24 step", input: "10.0.0.0/24", want: "10.0.1.0/24"},
		{name: "/24 carry into second octet", input: "10.0.255.0/24", want: "10.1.0.0/24"},
		{name: "/8 step", input: "9.0.0.0/8", want: "10.0.0.0/8"},
		{name: "/32 step", input: "10.0.0.1/32", want: "10.0.0.2/32"},
		{name: "last /24 exhausts", input: "255.255.255.0/24", wantErr: ErrSpaceExhausted},
		{name: "last /32 exhausts", input: "255.255.255.255/32", wantErr: ErrSpaceExhausted},
		{name: "whole space exhausts", input: "0.0.0.0/0", wantErr: ErrSpaceExhausted},
		{name: "second to last /24", input: "255.255.254.0/24", want: "255.255.255.0/24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustParse(tt.input).Next()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, got.IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestSubnet_Prev(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "/24 step", input: "10.0.1.0/24", want: "10.0.0.0/24"},
		{name: "/24 borrow from second octet", input: "10.1.0.0/24", want: "10.0.255.0/24"},
		{name: "/8 step", input: "10.0.0.0/8", want: "9.0.0.0/8"},
		{name: "/32 step", input: "10.0.0.2/32", want: "10.0.0.1/32"},
		{name: "first /24 exhausts", input: "0.0.0.0/24", wantErr: ErrSpaceExhausted},
		{name: "first /32 exhausts", input: "0.0.0.0/32", wantErr: ErrSpaceExhausted},
		{name: "whole space exhausts", input: "0.0.0.0/0", wantErr: ErrSpaceExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustParse(tt.input).Prev()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, got.IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestSubnet_NextPrev_RoundTrip(t *testing.T) {
	// 不触碰空间边界时 Prev(Next(s)) == s
	inputs := []string{
		"10.0.0.0/24",
		"192.168.0.64/26",
		"0.0.0.0/1",
		"254.0.0.0/8",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			s := MustParse(in)
			next, err := s.Next()
			require.NoError(t, err)
			back, err := next.Prev()
			require.NoError(t, err)
			assert.Equal(t, s, back)
		})
	}
}

func TestSubnet_Adjacent_Forward(t *testing.T) {
	got, err := MustParse("10.0.0.0/24").Adjacent(3)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "10.0.1.0/24", got[0].String())
	assert.Equal(t, "10.0.2.0/24", got[1].String())
	assert.Equal(t, "10.0.3.0/24", got[2].String())
}

func TestSubnet_Adjacent_Backward(t *testing.T) {
	// 负方向同样按地址升序返回
	got, err := MustParse("10.0.3.0/24").Adjacent(-3)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "10.0.0.0/24", got[0].String())
	assert.Equal(t, "10.0.1.0/24", got[1].String())
	assert.Equal(t, "10.0.2.0/24", got[2].String())
}

func TestSubnet_Adjacent_Zero(t *testing.T) {
	got, err := MustParse("10.0.0.0/24").Adjacent(0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSubnet_Adjacent_Atomic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int64
	}{
		{"one past top", "255.255.255.0/24", 1},
		{"two past top", "255.255.254.0/24", 2},
		{"one before bottom", "0.0.0.0/24", -1},
		{"two before bottom", "0.0.1.0/24", -2},
		{"huge forward count", "10.0.0.0/24", math.MaxInt64},
		{"huge backward count", "10.0.0.0/24", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustParse(tt.input).Adjacent(tt.count)
			assert.ErrorIs(t, err, ErrSpaceExhausted)
			// 原子失败：不返回部分结果
			assert.Nil(t, got)
		})
	}
}

func TestSubnet_Adjacent_ExactFit(t *testing.T) {
	// 刚好用尽方向上的剩余空间
	got, err := MustParse("255.255.252.0/24").Adjacent(3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "255.255.255.0/24", got[2].String())

	// 再多一个就越界
	_, err = MustParse("255.255.252.0/24").Adjacent(4)
	assert.ErrorIs(t, err, ErrSpaceExhausted)

	got, err = MustParse("0.0.2.0/23").Adjacent(-1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "0.0.0.0/23", got[0].String())

	_, err = MustParse("0.0.2.0/23").Adjacent(-2)
	assert.ErrorIs(t, err, ErrSpaceExhausted)
}

func TestSubnet_Adjacent_FullSpaceWalk(t *testing.T) {
	// /1 只有两个块：从下半块向前恰好一个，向后零个
	lower := MustParse("0.0.0.0/1")

	got, err := lower.Adjacent(1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "128.0.0.0/1", got[0].String())

	_, err = lower.Adjacent(2)
	assert.ErrorIs(t, err, ErrSpaceExhausted)

	_, err = lower.Adjacent(-1)
	assert.ErrorIs(t, err, ErrSpaceExhausted)
}

func TestSubnet_Adjacent_Invalid(t *testing.T) {
	var s Subnet

	_, err := s.Next()
	assert.ErrorIs(t, err, ErrInvalidPrefix)
	_, err = s.Prev()
	assert.ErrorIs(t, err, ErrInvalidPrefix)
	_, err = s.Adjacent(1)
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}

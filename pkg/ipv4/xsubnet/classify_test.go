package xsubnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		addr  string
		check func(t *testing.T, c Classification)
	}{
		{"10.0.0.1", func(t *testing.T, c Classification) {
			assert.True(t, c.IsPrivate)
			assert.True(t, c.IsGlobalUnicast)
			assert.False(t, c.IsLoopback)
		}},
		{"172.16.0.1", func(t *testing.T, c Classification) {
			assert.True(t, c.IsPrivate)
		}},
		{"172.32.0.0", func(t *testing.T, c Classification) {
			// 刚好在 172.16/12 之外
			assert.False(t, c.IsPrivate)
			assert.True(t, c.IsGlobalUnicast)
		}},
		{"127.0.0.1", func(t *testing.T, c Classification) {
			assert.True(t, c.IsLoopback)
			assert.False(t, c.IsGlobalUnicast)
		}},
		{"169.254.1.1", func(t *testing.T, c Classification) {
			assert.True(t, c.IsLinkLocal)
		}},
		{"224.0.0.1", func(t *testing.T, c Classification) {
			assert.True(t, c.IsMulticast)
			assert.False(t, c.IsGlobalUnicast)
		}},
		{"255.255.255.255", func(t *testing.T, c Classification) {
			assert.True(t, c.IsBroadcast)
			assert.False(t, c.IsGlobalUnicast)
		}},
		{"0.0.0.0", func(t *testing.T, c Classification) {
			assert.True(t, c.IsUnspecified)
		}},
		{"100.64.0.1", func(t *testing.T, c Classification) {
			assert.True(t, c.IsShared)
			assert.False(t, c.IsPrivate)
		}},
		{"100.127.255.255", func(t *testing.T, c Classification) {
			assert.True(t, c.IsShared)
		}},
		{"100.128.0.0", func(t *testing.T, c Classification) {
			// 刚好在 100.64/10 之外
			assert.False(t, c.IsShared)
		}},
		{"192.0.2.1", func(t *testing.T, c Classification) {
			assert.True(t, c.IsDocumentation)
		}},
		{"198.51.100.200", func(t *testing.T, c Classification) {
			assert.True(t, c.IsDocumentation)
		}},
		{"203.0.113.99", func(t *testing.T, c Classification) {
			assert.True(t, c.IsDocumentation)
		}},
		{"8.8.8.8", func(t *testing.T, c Classification) {
			assert.True(t, c.IsGlobalUnicast)
			assert.False(t, c.IsPrivate)
			assert.False(t, c.IsDocumentation)
			assert.False(t, c.IsShared)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			c, err := Classify(netip.MustParseAddr(tt.addr))
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestClassify_NotIPv4(t *testing.T) {
	_, err := Classify(netip.MustParseAddr("2001:db8::1"))
	assert.ErrorIs(t, err, ErrNotIPv4)

	_, err = Classify(netip.Addr{})
	assert.ErrorIs(t, err, ErrNotIPv4)
}

func TestClassify_MappedIPv4(t *testing.T) {
	c, err := Classify(netip.MustParseAddr("::ffff:192.168.1.1"))
	require.NoError(t, err)
	assert.True(t, c.IsPrivate)
}

func TestClassification_String(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"127.0.0.1", "loopback"},
		{"0.0.0.0", "unspecified"},
		{"255.255.255.255", "broadcast"},
		{"192.168.1.1", "private"},
		{"169.254.0.1", "link-local"},
		{"192.0.2.1", "documentation"},
		{"100.64.0.1", "shared-address"},
		{"224.0.0.1", "multicast"},
		{"8.8.8.8", "global-unicast"},
		// Class E 保留段在 netip 口径下也是全局单播
		{"240.0.0.1", "global-unicast"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			c, err := Classify(netip.MustParseAddr(tt.addr))
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
		})
	}

	// 全 false 的手工构造值落入兜底分支
	assert.Equal(t, "other", Classification{}.String())
}

func TestIsSharedAddress(t *testing.T) {
	assert.True(t, IsSharedAddress(netip.MustParseAddr("100.64.0.0")))
	assert.True(t, IsSharedAddress(netip.MustParseAddr("100.100.50.1")))
	assert.True(t, IsSharedAddress(netip.MustParseAddr("100.127.255.255")))
	assert.False(t, IsSharedAddress(netip.MustParseAddr("100.63.255.255")))
	assert.False(t, IsSharedAddress(netip.MustParseAddr("100.128.0.0")))
	assert.False(t, IsSharedAddress(netip.MustParseAddr("2001:db8::1")))
	assert.False(t, IsSharedAddress(netip.Addr{}))
}

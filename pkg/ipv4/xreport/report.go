package xreport

import (
	"fmt"
	"io"
	"net/netip"
	"strconv"

	"github.com/omeyang/subnetkit/pkg/ipv4/xsubnet"
	"github.com/omeyang/subnetkit/pkg/util/xjson"
)

// AddrForms 是同一 IPv4 地址的全部渲染形式。
type AddrForms struct {
	// Dotted 点分十进制，如 "192.168.0.1"。
	Dotted string `json:"dotted"`

	// Hex 大写十六进制，固定 8 位，如 "C0A80001"。
	Hex string `json:"hex"`

	// Binary 二进制，固定 32 位。
	Binary string `json:"binary"`

	// Uint 32 位无符号整数值。
	Uint uint32 `json:"uint"`
}

// Classification 是报告输出模式下的地址分类标志。
//
// 设计决策: 不直接复用 [xsubnet.Classification]，而在本包重新定义：
// 报告的 JSON 字段名（snake_case）与 Label 字段属于对外输出模式的
// 一部分，需要独立于 xsubnet 内部结构保持稳定。
type Classification struct {
	// Private RFC 1918 私有地址段。
	Private bool `json:"private"`

	// Loopback 环回段 127.0.0.0/8。
	Loopback bool `json:"loopback"`

	// LinkLocal 链路本地段 169.254.0.0/16。
	LinkLocal bool `json:"link_local"`

	// Multicast 多播段 224.0.0.0/4。
	Multicast bool `json:"multicast"`

	// Broadcast 有限广播地址 255.255.255.255。
	Broadcast bool `json:"broadcast"`

	// Unspecified 未指定地址 0.0.0.0。
	Unspecified bool `json:"unspecified"`

	// Shared 共享地址空间 100.64.0.0/10（RFC 6598, CGNAT）。
	Shared bool `json:"shared"`

	// Documentation 文档专用段 TEST-NET-1/2/3。
	Documentation bool `json:"documentation"`

	// GlobalUnicast 全局单播。私有地址同样置位。
	GlobalUnicast bool `json:"global_unicast"`

	// Label 最特殊分类的单词标签，口径同 [xsubnet.Classification.String]。
	Label string `json:"label"`
}

// Report 是一个子网的完整描述：固定模式、具名字段，
// 可直接序列化为 JSON 或渲染为对齐文本。
type Report struct {
	// CIDR 规范形式 "network/bits"。
	CIDR string `json:"cidr"`

	// Bits 前缀长度 [0, 32]。
	Bits int `json:"bits"`

	// Address 基地址。未对齐构造时保留原始地址，区别于 Network。
	Address AddrForms `json:"address"`

	// Network 网络地址。
	Network AddrForms `json:"network"`

	// Broadcast 广播地址。
	Broadcast AddrForms `json:"broadcast"`

	// Netmask 子网掩码。
	Netmask AddrForms `json:"netmask"`

	// Hostmask 反掩码（通配符掩码）。
	Hostmask AddrForms `json:"hostmask"`

	// MinHost 第一个可用主机地址，/31 与 /32 下为区间端点本身。
	MinHost string `json:"min_host"`

	// MaxHost 最后一个可用主机地址。
	MaxHost string `json:"max_host"`

	// NumAddresses 区间内地址总数，2^(32-bits)。
	NumAddresses uint64 `json:"num_addresses"`

	// NumHosts 可用主机数：/32 → 1，/31 → 2，其余 → 总数减 2。
	NumHosts uint64 `json:"num_hosts"`

	// ARPA 基地址的反向 DNS 名称，如 "1.0.168.192.in-addr.arpa"。
	ARPA string `json:"arpa"`

	// Classification 基地址的 RFC 特殊地址段分类。
	Classification Classification `json:"classification"`
}

// Build 汇总 s 的完整报告。
// 无效子网（含零值）返回 [ErrInvalidSubnet]。
//
// Address、ARPA 与 Classification 的口径是子网的基地址
// [xsubnet.Subnet.Addr]，未对齐构造时与 Network 不同。
func Build(s xsubnet.Subnet) (*Report, error) {
	if !s.IsValid() {
		return nil, ErrInvalidSubnet
	}

	r := &Report{
		CIDR:         s.String(),
		Bits:         s.Bits(),
		MinHost:      s.MinHost().String(),
		MaxHost:      s.MaxHost().String(),
		NumAddresses: s.NumAddresses(),
		NumHosts:     s.NumHosts(),
	}

	for _, slot := range []struct {
		dst  *AddrForms
		addr netip.Addr
	}{
		{&r.Address, s.Addr()},
		{&r.Network, s.Network()},
		{&r.Broadcast, s.Broadcast()},
		{&r.Netmask, s.Netmask()},
		{&r.Hostmask, s.HostMask()},
	} {
		forms, err := formsFor(slot.addr)
		if err != nil {
			return nil, err
		}
		*slot.dst = forms
	}

	arpa, err := xsubnet.ARPA(s.Addr())
	if err != nil {
		return nil, err
	}
	r.ARPA = arpa

	class, err := xsubnet.Classify(s.Addr())
	if err != nil {
		return nil, err
	}
	r.Classification = classificationFrom(class)

	return r, nil
}

// formsFor 渲染单个地址的四种形式。
// 非 IPv4 地址返回 [xsubnet.ErrNotIPv4]。
func formsFor(a netip.Addr) (AddrForms, error) {
	v, ok := xsubnet.AddrToUint32(a)
	if !ok {
		return AddrForms{}, fmt.Errorf("address %v: %w", a, xsubnet.ErrNotIPv4)
	}
	hexForm, err := xsubnet.FormatAddr(a, xsubnet.FormatHex)
	if err != nil {
		return AddrForms{}, err
	}
	binForm, err := xsubnet.FormatAddr(a, xsubnet.FormatBinary)
	if err != nil {
		return AddrForms{}, err
	}
	return AddrForms{
		Dotted: xsubnet.AddrFromUint32(v).String(),
		Hex:    hexForm,
		Binary: binForm,
		Uint:   v,
	}, nil
}

// classificationFrom 把 xsubnet 的分类结果映射到报告输出模式。
func classificationFrom(c xsubnet.Classification) Classification {
	return Classification{
		Private:       c.IsPrivate,
		Loopback:      c.IsLoopback,
		LinkLocal:     c.IsLinkLocal,
		Multicast:     c.IsMulticast,
		Broadcast:     c.IsBroadcast,
		Unspecified:   c.IsUnspecified,
		Shared:        c.IsShared,
		Documentation: c.IsDocumentation,
		GlobalUnicast: c.IsGlobalUnicast,
		Label:         c.String(),
	}
}

// JSON 渲染缩进 JSON，字段顺序与结构体声明一致。
// nil 接收者返回 [ErrNilReport]。
func (r *Report) JSON() (string, error) {
	if r == nil {
		return "", ErrNilReport
	}
	return xjson.PrettyE(r)
}

// 文本报告的固定列宽。
const (
	labelWidth  = 16 // 最长标签 "Classification" 加两格间距
	dottedWidth = 17 // 最长点分值 "255.255.255.255" 加两格间距
)

// WriteText 渲染对齐的文本报告。
// 地址行依次给出点分与十六进制形式；二进制与整数形式只出现在
// JSON 输出中。nil 接收者返回 [ErrNilReport]。
func (r *Report) WriteText(w io.Writer) error {
	if r == nil {
		return ErrNilReport
	}

	rw := reportWriter{w: w}
	rw.row("CIDR", r.CIDR)
	rw.row("Bits", strconv.Itoa(r.Bits))
	rw.addrRow("Address", r.Address)
	rw.addrRow("Network", r.Network)
	rw.addrRow("Broadcast", r.Broadcast)
	rw.addrRow("Netmask", r.Netmask)
	rw.addrRow("Hostmask", r.Hostmask)
	rw.row("Min host", r.MinHost)
	rw.row("Max host", r.MaxHost)
	rw.row("Addresses", strconv.FormatUint(r.NumAddresses, 10))
	rw.row("Usable hosts", strconv.FormatUint(r.NumHosts, 10))
	rw.row("ARPA", r.ARPA)
	rw.row("Classification", r.Classification.Label)
	return rw.err
}

// reportWriter 按行写出文本报告，出错后不再写后续行。
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) row(label, value string) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, "%-*s%s\n", labelWidth, label, value)
}

func (rw *reportWriter) addrRow(label string, f AddrForms) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, "%-*s%-*s%s\n", labelWidth, label, dottedWidth, f.Dotted, f.Hex)
}

package xsubnet

// 子网关系谓词。
//
// 所有关系基于闭区间 [network, broadcast] 的整数比较：
// Contains 与 Within 是自反的（任何有效子网包含自身），
// Overlaps 是对称的。任一方无效时所有谓词返回 false。

// Contains 报告 o 的整个区间是否落在 s 内（含相等）。
func (s Subnet) Contains(o Subnet) bool {
	if !s.IsValid() || !o.IsValid() {
		return false
	}
	return s.network() <= o.network() && o.broadcast() <= s.broadcast()
}

// ContainedIn 报告 s 的整个区间是否落在 o 内（含相等）。
// s.ContainedIn(o) 等价于 o.Contains(s)。
func (s Subnet) ContainedIn(o Subnet) bool {
	return o.Contains(s)
}

// Overlaps 报告两个子网的区间是否至少共享一个地址。
// CIDR 区间要么嵌套要么不相交，因此 Overlaps 为真时
// 必有 s.Contains(o) 或 o.Contains(s) 之一成立。
func (s Subnet) Overlaps(o Subnet) bool {
	if !s.IsValid() || !o.IsValid() {
		return false
	}
	return s.network() <= o.broadcast() && o.network() <= s.broadcast()
}

// SameRange 报告两个子网是否覆盖同一地址区间。
// 与 == 不同：忽略未对齐基地址的差异，只比较规范区间。
func (s Subnet) SameRange(o Subnet) bool {
	if !s.IsValid() || !o.IsValid() {
		return false
	}
	return s.network() == o.network() && s.bits == o.bits
}

// Package xreport 把 [xsubnet.Subnet] 汇总成固定模式的子网报告。
//
// 一份 [Report] 包含子网身份（CIDR、前缀位数）、五个关联地址
// （基地址/网络/广播/掩码/反掩码）的全部渲染形式、可用主机区间与
// 计数、反向 DNS 名称和 RFC 特殊地址段分类，可渲染为缩进 JSON
// （[Report.JSON]）或对齐文本（[Report.WriteText]）。
//
// # 快速示例
//
//	r, _ := xreport.Build(xsubnet.MustParse("192.168.0.0/24"))
//	fmt.Println(r.Netmask.Dotted) // 255.255.255.0
//	fmt.Println(r.NumHosts)       // 254
//
// 批量或监听场景用 [Builder] 复用计算结果：
//
//	b, _ := xreport.NewBuilder(xreport.WithCache(512, time.Minute))
//	defer b.Close()
//	r, _ := b.Build(s) // 相同子网的重复查询命中缓存
//
// # 设计决策
//
//   - 报告是具名字段的固定模式结构体，不使用动态 map：字段集在
//     编译期确定，JSON 模式稳定，消费方可直接反序列化
//   - [Classification] 在本包内重新定义而非复用 xsubnet 的同名
//     结构：JSON 字段名与 Label 字段属于输出模式的一部分
//   - 缓存命中返回同一 *Report 指针：Builder 构建后绝不修改报告，
//     调用方将其视为只读即可安全共享
//
// # 错误处理
//
// [Build] 对零值或无效子网返回 [ErrInvalidSubnet]；渲染方法在 nil
// 接收者上返回 [ErrNilReport]；缓存配置错误由 [NewBuilder] 透传
// xlru 的预定义错误。
package xreport

// Package ipv4 提供 IPv4 子网运算相关的子包。
//
// 子包列表：
//   - xsubnet: 子网值类型，CIDR 解析、排除运算、相邻块、主机数推导
//   - xreport: 子网明细报表，文本与 JSON 两种输出
//   - xplan: 地址规划文件的解码、求值与热更新监听
//
// 设计原则：
//   - Subnet 为不可变值类型，方法不修改接收者
//   - 区间运算全部基于 uint32，避免字符串中转
//   - 排除结果为升序最小 CIDR 覆盖，可直接用于配置下发
package ipv4

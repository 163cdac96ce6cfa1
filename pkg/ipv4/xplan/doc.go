// Package xplan 提供地址计划的解码、求值与文件监听。
//
// 计划文档（YAML 或 JSON）描述一组命名分配，每个分配由一个
// 基础块和若干排除子网构成。求值对每个分配执行排除运算，
// 得到剩余的空闲子网列表与空闲地址总数。
//
// # 快速示例
//
// 解码并求值一份计划：
//
//	plan, err := xplan.DecodeFile("plan.yaml")
//	if err != nil {
//		return err
//	}
//	res, err := xplan.Evaluate(ctx, plan)
//	if err != nil {
//		return err
//	}
//	for _, row := range res.Rows {
//		fmt.Printf("%s: %d free\n", row.Name, row.FreeCount)
//	}
//
// 监听计划文件并在变化时重新求值：
//
//	w, err := xplan.NewWatcher("plan.yaml", func(res *xplan.Result, err error) {
//		if err != nil {
//			log.Printf("plan reload failed: %v", err)
//			return
//		}
//		apply(res)
//	})
//	if err != nil {
//		return err
//	}
//	if err := w.Start(); err != nil {
//		return err
//	}
//	defer w.Close()
//
// # 设计决策
//
//  1. 解码与求值分离：Decode 只做模式验证与子网解析，
//     Evaluate 才执行排除运算。监听器复用这两步，
//     调用方也可以单独使用任意一步。
//  2. 文档顺序即结果顺序：分配并发求值，但结果行严格按
//     计划内的声明顺序排列，输出可直接对比。
//  3. 监听注册在父目录：编辑器常以写临时文件加 rename 的
//     方式原子替换目标文件，直接监听文件本身会在替换后失效。
//  4. 内容摘要去抖：事件合并后重读文件并比较 xxhash 摘要，
//     没有实际变化的重写（如 touch、重复保存）不触发回调。
//  5. 失败不覆盖结果：重读或解码失败只通过回调报告错误，
//     调用方保留上一次的求值结果自行决定如何处理。
//
// # 错误处理
//
// 所有验证失败都包装 ErrInvalidPlan，可用 errors.Is 判断；
// 监听生命周期错误使用独立的哨兵（ErrClosed、ErrEmptyPath 等）。
package xplan

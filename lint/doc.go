// Copyright (c) FlowLint Authors.
// Licensed under the MIT License.

/*
Package lint 提供诊断聚合器与批量验证 Runner。

# 概述

Linter 是本核心的纯函数边界：对一个结构有效的工作流快照构建一次
反向边索引，按声明顺序遍历节点（跳过禁用节点），按类别分发规则集，
并保持 (节点顺序, 节点内规则顺序) 稳定地拼接诊断列表。对同一个图
重复运行产生逐字节相同的诊断列表。

Runner 是宿主层：并行批量验证多个工作流文件（每个图是天然的并行
边界），记录指标与追踪 Span，结果按输入顺序合并。

# 使用方法

	l := lint.New(logger)
	if l.IsAIGraph(wf) {
	    diags, err := l.Validate(wf)
	    ...
	}
*/
package lint

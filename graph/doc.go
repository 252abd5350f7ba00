// Copyright (c) FlowLint Authors.
// Licensed under the MIT License.

/*
Package graph 提供工作流图的数据模型与反向边索引。

# 概述

graph 包定义节点、端口类型与前向连接表（source → portKind → 输出槽 →
目标列表），并提供一次性构建的反向边索引：将前向邻接表转置为
"目标节点 → 入边列表"，使"节点 X 是否有类型 K 的能力入边"成为
O(1) 查表加 O(k) 过滤，而非全图扫描。

AI 能力边（非 main 端口）的依赖方向与数据流相反：语言模型节点在图中
是"源"，语义上却是向消费方节点提供能力，因此规则验证需要节点的完整
入边集合。

# 核心类型

  - PortKind       — 连接所属的类型通道（main + 八种 AI 能力）
  - Node           — 节点（id、名称、原始类型、参数包、禁用标志）
  - Workflow       — 节点列表 + 前向连接表
  - ReverseEdge    — 入边记录 {source, kind, index}
  - ReverseIndex   — 节点名 → 有序入边列表

# 输入容错

格式不良的连接条目（空槽、缺失 node 字段、槽不是列表）在解码与转置时
静默丢弃；只有 nodes 不是列表或 connections 不是映射才作为硬错误
（types.ErrInvalidGraph）返回。
*/
package graph

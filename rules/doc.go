// Copyright (c) FlowLint Authors.
// Licensed under the MIT License.

/*
Package rules 实现按类别划分的语义规则引擎。

# 概述

每个规则集都是纯函数 (node, reverseIndex, workflow) → diagnostics，
节点之间无共享可变状态，因此可以安全地并行求值。规则按固定编号顺序
执行，所有命中的诊断全部输出（不提前退出），因为它们描述同一节点
配置的互相独立的方面。

# 规则集

  - ValidateAgent       — Agent 节点的 15 项检查（模型基数、fallback、
    输出解析器、提示词、系统消息、流式约束、记忆、工具、maxIterations）
  - ValidateChatTrigger — 聊天触发器的 3 项检查（出边、流式目标、
    lastNode 建议）
  - ValidateBasicChain  — 基础链的模型基数检查
  - ValidateToolSubnode — 工具子节点注册表分发（12 个验证器）

工具注册表在进程启动时构建一次，之后只读；未注册的子类型视为无需
验证，引擎绝不对未知工具类型报错。
*/
package rules

// Copyright (c) FlowLint Authors.
// Licensed under the MIT License.

/*
Package types 提供 FlowLint 的全局共享类型定义。

# 概述

types 是最底层的公共包，不依赖任何内部包，为 graph、rules、lint 等
上层模块提供统一的类型契约。跨包共享的诊断结构、严重级别、诊断码与
错误码均定义于此，以避免循环依赖。

# 核心类型

  - Severity        — 诊断严重级别（error / warning / info）
  - DiagnosticCode  — 稳定的机器可读诊断码
  - Diagnostic      — 针对单个节点配置的一条带码发现
  - Diagnostics     — 有序诊断列表及聚合查询
  - Error           — 结构化错误（输入契约违规等硬失败）
*/
package types

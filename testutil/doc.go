// Package testutil 提供测试辅助：工作流夹具构建器。
package testutil

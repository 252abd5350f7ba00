// Package flowlint provides a top-level convenience entry point for
// validating AI agent workflow documents with minimal boilerplate.
//
// Usage:
//
//	import "github.com/BaSui01/flowlint"
//
//	diags, err := flowlint.Validate(data)
//	if err != nil { ... }          // document/contract failure
//	if diags.HasErrors() { ... }   // semantic findings
//
// This is a thin wrapper around [graph.ParseWorkflow] and [lint.Linter];
// use the lint package directly when you need logging, metrics, or
// batch validation.
package flowlint

import (
	"github.com/BaSui01/flowlint/graph"
	"github.com/BaSui01/flowlint/lint"
	"github.com/BaSui01/flowlint/nodetype"
	"github.com/BaSui01/flowlint/types"
)

// Validate decodes a workflow document and runs the semantic rule sets.
func Validate(data []byte) (types.Diagnostics, error) {
	wf, err := graph.ParseWorkflow(data)
	if err != nil {
		return nil, err
	}
	return ValidateWorkflow(wf)
}

// ValidateWorkflow runs the semantic rule sets over an already decoded
// workflow.
func ValidateWorkflow(wf *graph.Workflow) (types.Diagnostics, error) {
	return lint.New(nil).Validate(wf)
}

// IsAIGraph reports whether the workflow contains any AI node; callers
// can skip Validate entirely when it returns false.
var IsAIGraph = nodetype.IsAIGraph

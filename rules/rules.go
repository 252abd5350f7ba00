package rules

import (
	"github.com/BaSui01/flowlint/graph"
	"github.com/BaSui01/flowlint/nodetype"
	"github.com/BaSui01/flowlint/types"
)

// RuleFunc is one category rule set: a pure function of the node under
// validation, the shared read-only reverse index, and the whole graph
// for forward look-ups.
type RuleFunc func(node *graph.Node, ix graph.ReverseIndex, wf *graph.Workflow) types.Diagnostics

// Dispatch resolves the node's category and runs the matching rule set.
// Nodes classifying as CategoryOther produce no diagnostics.
func Dispatch(node *graph.Node, ix graph.ReverseIndex, wf *graph.Workflow) types.Diagnostics {
	cat, sub := nodetype.ClassifyNode(node)
	switch cat {
	case nodetype.CategoryAgent:
		return ValidateAgent(node, ix, wf)
	case nodetype.CategoryChatTrigger:
		return ValidateChatTrigger(node, ix, wf)
	case nodetype.CategoryBasicChain:
		return ValidateBasicChain(node, ix, wf)
	case nodetype.CategoryToolSubnode:
		return ValidateToolSubnode(sub, node)
	default:
		return nil
	}
}

func errorDiag(n *graph.Node, code types.DiagnosticCode, msg string) types.Diagnostic {
	return diag(types.SeverityError, n, code, msg)
}

func warningDiag(n *graph.Node, code types.DiagnosticCode, msg string) types.Diagnostic {
	return diag(types.SeverityWarning, n, code, msg)
}

func infoDiag(n *graph.Node, code types.DiagnosticCode, msg string) types.Diagnostic {
	return diag(types.SeverityInfo, n, code, msg)
}

func diag(sev types.Severity, n *graph.Node, code types.DiagnosticCode, msg string) types.Diagnostic {
	d := types.Diagnostic{Severity: sev, Code: code, Message: msg}
	if n != nil {
		d.NodeID = n.ID
		d.NodeName = n.Name
	}
	return d
}

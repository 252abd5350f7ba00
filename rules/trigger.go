package rules

import (
	"fmt"

	"github.com/BaSui01/flowlint/graph"
	"github.com/BaSui01/flowlint/nodetype"
	"github.com/BaSui01/flowlint/types"
)

// ValidateChatTrigger runs the chat trigger rule set: the trigger must
// feed the graph, and its response mode must be consistent with the node
// it feeds. The streaming checks deliberately overlap with the agent
// rule set so either node alone surfaces the problem.
func ValidateChatTrigger(node *graph.Node, _ graph.ReverseIndex, wf *graph.Workflow) types.Diagnostics {
	var out types.Diagnostics

	targets := wf.MainTargets(node.Name)
	if len(targets) == 0 {
		out = append(out, errorDiag(node, types.CodeMissingConnections,
			fmt.Sprintf("chat trigger %q is not connected to any node", node.Name)))
		return out
	}

	mode, _ := node.StringParam("responseMode")
	target := wf.NodeByName(targets[0].Node)
	if target == nil {
		return out
	}
	targetCat, _ := nodetype.ClassifyNode(target)

	switch mode {
	case "streaming":
		if targetCat != nodetype.CategoryAgent {
			out = append(out, errorDiag(node, types.CodeStreamingWrongTarget,
				fmt.Sprintf("chat trigger %q streams responses but its target %q is not an agent", node.Name, target.Name)))
		} else if wf.MainOutputCount(target.Name) >= 1 {
			out = append(out, errorDiag(node, types.CodeStreamingAgentHasOutput,
				fmt.Sprintf("chat trigger %q streams responses but agent %q has outgoing main connections, streamed output would be lost", node.Name, target.Name)))
		}
	case "lastNode":
		if targetCat == nodetype.CategoryAgent {
			out = append(out, infoDiag(node, types.CodeStreamingRecommended,
				fmt.Sprintf("chat trigger %q feeds agent %q, switching the response mode to streaming improves interactivity", node.Name, target.Name)))
		}
	}
	return out
}

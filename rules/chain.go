package rules

import (
	"fmt"

	"github.com/BaSui01/flowlint/graph"
	"github.com/BaSui01/flowlint/types"
)

// ValidateBasicChain runs the basic LLM chain rule set. A chain requires
// exactly one language model; it has no tool, memory, or streaming
// semantics.
func ValidateBasicChain(node *graph.Node, ix graph.ReverseIndex, _ *graph.Workflow) types.Diagnostics {
	var out types.Diagnostics

	switch lmCount := ix.Count(node.Name, graph.PortLanguageModel); {
	case lmCount == 0:
		out = append(out, errorDiag(node, types.CodeMissingLanguageModel,
			fmt.Sprintf("chain %q has no language model connected", node.Name)))
	case lmCount > 1:
		out = append(out, errorDiag(node, types.CodeTooManyLanguageModels,
			fmt.Sprintf("chain %q has %d language models connected, exactly one is required", node.Name, lmCount)))
	}
	return out
}

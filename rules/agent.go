package rules

import (
	"fmt"
	"strings"

	"github.com/BaSui01/flowlint/graph"
	"github.com/BaSui01/flowlint/nodetype"
	"github.com/BaSui01/flowlint/types"
)

const (
	// minSystemMessageLen is the shortest system message considered useful.
	minSystemMessageLen = 20
	// maxReasonableIterations is the threshold above which a maxIterations
	// value is flagged as likely misconfigured.
	maxReasonableIterations = 50
)

// ValidateAgent runs the agent rule set. Checks run in a fixed order and
// every applicable diagnostic is emitted; they describe independent
// facets of one node's configuration.
func ValidateAgent(node *graph.Node, ix graph.ReverseIndex, wf *graph.Workflow) types.Diagnostics {
	var out types.Diagnostics

	// Language model cardinality and fallback consistency.
	lmCount := ix.Count(node.Name, graph.PortLanguageModel)
	needsFallback, _ := node.BoolParam("needsFallback")
	switch {
	case lmCount == 0:
		out = append(out, errorDiag(node, types.CodeMissingLanguageModel,
			fmt.Sprintf("agent %q has no language model connected", node.Name)))
	case lmCount > 2:
		out = append(out, errorDiag(node, types.CodeTooManyLanguageModels,
			fmt.Sprintf("agent %q has %d language models connected, at most 2 (primary plus fallback) are supported", node.Name, lmCount)))
	case lmCount == 2 && !needsFallback:
		out = append(out, warningDiag(node, types.CodeFallbackNotEnabled,
			fmt.Sprintf("agent %q has two language models but the fallback option is not enabled, the second model will be ignored", node.Name)))
	case lmCount == 1 && needsFallback:
		out = append(out, errorDiag(node, types.CodeFallbackMissingSecondModel,
			fmt.Sprintf("agent %q has the fallback option enabled but only one language model connected", node.Name)))
	}

	// Output parser wiring.
	parserCount := ix.Count(node.Name, graph.PortOutputParser)
	if hasParser, _ := node.BoolParam("hasOutputParser"); hasParser && parserCount == 0 {
		out = append(out, errorDiag(node, types.CodeMissingOutputParser,
			fmt.Sprintf("agent %q expects an output parser but none is connected", node.Name)))
	}
	if parserCount > 1 {
		out = append(out, errorDiag(node, types.CodeMultipleOutputParsers,
			fmt.Sprintf("agent %q has %d output parsers connected, only one is supported", node.Name, parserCount)))
	}

	// Prompt text required when the prompt is defined inline.
	if promptType, _ := node.StringParam("promptType"); promptType == "define" {
		text, _ := node.StringParam("text")
		if strings.TrimSpace(text) == "" {
			out = append(out, errorDiag(node, types.CodeMissingPromptText,
				fmt.Sprintf("agent %q defines its prompt inline but the prompt text is empty", node.Name)))
		}
	}

	// System message advisories.
	if sysMsg, ok := node.StringParam("systemMessage"); !ok {
		out = append(out, infoDiag(node, types.CodeMissingSystemMessage,
			fmt.Sprintf("agent %q has no system message, consider adding one to steer the model", node.Name)))
	} else if len(strings.TrimSpace(sysMsg)) < minSystemMessageLen {
		out = append(out, infoDiag(node, types.CodeSystemMessageTooShort,
			fmt.Sprintf("agent %q has a very short system message, it is unlikely to be useful", node.Name)))
	}

	// Streaming agents must terminate the graph on the main channel; an
	// outgoing main edge loses the streamed response at runtime.
	if isStreamingTarget(node, ix, wf) && wf.MainOutputCount(node.Name) >= 1 {
		out = append(out, errorDiag(node, types.CodeStreamingWithMainOutput,
			fmt.Sprintf("agent %q receives a streaming response request but has outgoing main connections, streamed output would be lost", node.Name)))
	}

	// Memory cardinality: zero or one.
	if memCount := ix.Count(node.Name, graph.PortMemory); memCount > 1 {
		out = append(out, errorDiag(node, types.CodeMultipleMemoryConnections,
			fmt.Sprintf("agent %q has %d memory connections, only one is supported", node.Name, memCount)))
	}

	// Tools are optional.
	if ix.Count(node.Name, graph.PortTool) == 0 {
		out = append(out, infoDiag(node, types.CodeNoToolsConnected,
			fmt.Sprintf("agent %q has no tools connected, it can only answer from model knowledge", node.Name)))
	}

	out = append(out, checkMaxIterations(node)...)
	return out
}

// checkMaxIterations validates the optional maxIterations parameter. It
// is shared with the agent-as-tool validator.
func checkMaxIterations(node *graph.Node) types.Diagnostics {
	raw, present := node.Param("maxIterations")
	if !present {
		return nil
	}
	val, numeric := node.NumberParam("maxIterations")
	switch {
	case !numeric:
		return types.Diagnostics{errorDiag(node, types.CodeInvalidMaxIterationsType,
			fmt.Sprintf("node %q has a non-numeric maxIterations value %v", node.Name, raw))}
	case val < 1:
		return types.Diagnostics{errorDiag(node, types.CodeMaxIterationsTooLow,
			fmt.Sprintf("node %q has maxIterations %v, it must be at least 1", node.Name, val))}
	case val > maxReasonableIterations:
		return types.Diagnostics{warningDiag(node, types.CodeMaxIterationsVeryHigh,
			fmt.Sprintf("node %q has maxIterations %v, values above %d are usually misconfigured", node.Name, val, maxReasonableIterations))}
	}
	return nil
}

// isStreamingTarget reports whether the node is the direct main target
// of a chat trigger configured for streaming responses. The relationship
// is one hop: intermediate pass-through nodes are not followed.
func isStreamingTarget(node *graph.Node, ix graph.ReverseIndex, wf *graph.Workflow) bool {
	for _, edge := range ix.Inbound(node.Name, graph.PortMain) {
		src := wf.NodeByName(edge.Source)
		if src == nil {
			continue
		}
		if cat, _ := nodetype.ClassifyNode(src); cat != nodetype.CategoryChatTrigger {
			continue
		}
		if mode, _ := src.StringParam("responseMode"); mode == "streaming" {
			return true
		}
	}
	return false
}

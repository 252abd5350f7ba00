package nodetype

import (
	"strings"

	"github.com/BaSui01/flowlint/graph"
)

// Category is the semantic category a node type classifies into.
type Category string

const (
	// CategoryAgent is an AI agent node orchestrating model, memory and tools.
	CategoryAgent Category = "agent"
	// CategoryChatTrigger is a chat entry-point trigger node.
	CategoryChatTrigger Category = "chat_trigger"
	// CategoryBasicChain is a lightweight LLM chain node.
	CategoryBasicChain Category = "basic_chain"
	// CategoryToolSubnode is a tool capability sub-node.
	CategoryToolSubnode Category = "tool_subnode"
	// CategoryOther is every node type outside the AI rule sets.
	CategoryOther Category = "other"
)

// ToolSubtype is the canonical name of a tool sub-node type.
type ToolSubtype string

const (
	ToolHTTPRequest  ToolSubtype = "toolHttpRequest"
	ToolCode         ToolSubtype = "toolCode"
	ToolVectorStore  ToolSubtype = "toolVectorStore"
	ToolWorkflow     ToolSubtype = "toolWorkflow"
	ToolAgent        ToolSubtype = "agentTool"
	ToolMCPClient    ToolSubtype = "mcpClientTool"
	ToolCalculator   ToolSubtype = "toolCalculator"
	ToolThink        ToolSubtype = "toolThink"
	ToolSerpAPI      ToolSubtype = "toolSerpApi"
	ToolWolframAlpha ToolSubtype = "toolWolframAlpha"
	ToolWikipedia    ToolSubtype = "toolWikipedia"
	ToolSearXNG      ToolSubtype = "toolSearXng"
)

// typePrefixes are the platform package prefixes stripped by Normalize,
// longest first so the scoped package wins over the bare one.
var typePrefixes = []string{
	"@n8n/n8n-nodes-langchain.",
	"n8n-nodes-langchain.",
	"n8n-nodes-base.",
}

// toolSubtypes is the closed set of recognized tool sub-node types.
var toolSubtypes = map[string]ToolSubtype{
	string(ToolHTTPRequest):  ToolHTTPRequest,
	string(ToolCode):         ToolCode,
	string(ToolVectorStore):  ToolVectorStore,
	string(ToolWorkflow):     ToolWorkflow,
	string(ToolAgent):        ToolAgent,
	string(ToolMCPClient):    ToolMCPClient,
	string(ToolCalculator):   ToolCalculator,
	string(ToolThink):        ToolThink,
	string(ToolSerpAPI):      ToolSerpAPI,
	string(ToolWolframAlpha): ToolWolframAlpha,
	string(ToolWikipedia):    ToolWikipedia,
	string(ToolSearXNG):      ToolSearXNG,
}

// Normalize maps a raw node type string to its canonical form. It is
// idempotent: normalizing an already canonical type returns it unchanged.
func Normalize(raw string) string {
	t := strings.TrimSpace(raw)
	for _, prefix := range typePrefixes {
		if strings.HasPrefix(t, prefix) {
			return strings.TrimPrefix(t, prefix)
		}
	}
	return t
}

// Classify maps a canonical type to its semantic category. For
// CategoryToolSubnode the second result carries the subtype; it is
// empty for every other category.
func Classify(canonical string) (Category, ToolSubtype) {
	switch canonical {
	case "agent":
		return CategoryAgent, ""
	case "chatTrigger":
		return CategoryChatTrigger, ""
	case "chainLlm":
		return CategoryBasicChain, ""
	}
	if sub, ok := toolSubtypes[canonical]; ok {
		return CategoryToolSubnode, sub
	}
	return CategoryOther, ""
}

// ClassifyNode resolves a node's category from its raw type string.
func ClassifyNode(n *graph.Node) (Category, ToolSubtype) {
	if n == nil {
		return CategoryOther, ""
	}
	return Classify(Normalize(n.Type))
}

// IsAIGraph reports whether any node of the workflow classifies into a
// non-Other category. Hosts use this as a cheap gate to skip the whole
// semantic pass on graphs without AI nodes; it must never false-negative.
func IsAIGraph(w *graph.Workflow) bool {
	if w == nil {
		return false
	}
	for i := range w.Nodes {
		if cat, _ := ClassifyNode(&w.Nodes[i]); cat != CategoryOther {
			return true
		}
	}
	return false
}

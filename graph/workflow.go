package graph

import "strings"

// PortKind identifies the typed channel a connection belongs to.
type PortKind string

const (
	// PortMain carries data flow between nodes.
	PortMain PortKind = "main"
	// PortLanguageModel supplies a language model capability.
	PortLanguageModel PortKind = "ai_languageModel"
	// PortMemory supplies a conversation memory capability.
	PortMemory PortKind = "ai_memory"
	// PortTool supplies a tool capability.
	PortTool PortKind = "ai_tool"
	// PortEmbedding supplies an embedding model capability.
	PortEmbedding PortKind = "ai_embedding"
	// PortVectorStore supplies a vector store capability.
	PortVectorStore PortKind = "ai_vectorStore"
	// PortDocument supplies a document loader capability.
	PortDocument PortKind = "ai_document"
	// PortTextSplitter supplies a text splitter capability.
	PortTextSplitter PortKind = "ai_textSplitter"
	// PortOutputParser supplies an output parser capability.
	PortOutputParser PortKind = "ai_outputParser"
)

// IsCapability reports whether the port supplies an AI capability
// rather than carrying main data flow.
func (k PortKind) IsCapability() bool {
	return k != PortMain && k != ""
}

// ConnectionTarget is one endpoint of a forward edge.
type ConnectionTarget struct {
	// Node is the target node name. Entries with an empty name are
	// treated as malformed and skipped.
	Node string `json:"node"`
	// Index is the input slot on the target (defaults to 0).
	Index int `json:"index,omitempty"`
}

// OutputSlot is the ordered list of targets wired to one output index
// of a port. A nil slot is tolerated and skipped.
type OutputSlot []*ConnectionTarget

// NodePorts maps a port kind to its ordered output slots.
type NodePorts map[PortKind][]OutputSlot

// Node is one vertex of the workflow graph. Nodes are created by the
// loader and immutable for the duration of validation.
type Node struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	Credentials map[string]any `json:"credentials,omitempty"`
	Disabled    bool           `json:"disabled,omitempty"`
}

// Param returns the raw parameter value and whether the key is present.
func (n *Node) Param(key string) (any, bool) {
	if n.Parameters == nil {
		return nil, false
	}
	v, ok := n.Parameters[key]
	return v, ok
}

// StringParam returns the parameter as a string. The second result is
// false when the key is absent or the value is not a string, so an
// explicitly empty string is still reported as present.
func (n *Node) StringParam(key string) (string, bool) {
	v, ok := n.Param(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// BoolParam returns the parameter as a bool. Non-bool values report absent.
func (n *Node) BoolParam(key string) (bool, bool) {
	v, ok := n.Param(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// NumberParam returns the parameter as a float64. JSON numbers decode
// as float64; int values from programmatic construction are accepted too.
func (n *Node) NumberParam(key string) (float64, bool) {
	v, ok := n.Param(key)
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}

// Workflow is an immutable snapshot of one workflow graph: an ordered
// node list plus the forward connection table keyed by source node name.
type Workflow struct {
	Name        string               `json:"name,omitempty"`
	Nodes       []Node               `json:"nodes"`
	Connections map[string]NodePorts `json:"connections"`
}

// NodeByName returns the node with the given display name, or nil.
func (w *Workflow) NodeByName(name string) *Node {
	for i := range w.Nodes {
		if w.Nodes[i].Name == name {
			return &w.Nodes[i]
		}
	}
	return nil
}

// MainTargets flattens the source node's main output slots into the
// ordered list of well-formed targets.
func (w *Workflow) MainTargets(source string) []ConnectionTarget {
	return w.Targets(source, PortMain)
}

// MainOutputCount returns the number of well-formed outgoing main edges
// of the source node.
func (w *Workflow) MainOutputCount(source string) int {
	return len(w.Targets(source, PortMain))
}

// Targets flattens the source node's output slots for one port kind,
// dropping nil slots and targets without a node name.
func (w *Workflow) Targets(source string, kind PortKind) []ConnectionTarget {
	ports, ok := w.Connections[source]
	if !ok {
		return nil
	}
	var out []ConnectionTarget
	for _, slot := range ports[kind] {
		for _, tgt := range slot {
			if tgt == nil || strings.TrimSpace(tgt.Node) == "" {
				continue
			}
			out = append(out, *tgt)
		}
	}
	return out
}

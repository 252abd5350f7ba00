package graph

import (
	"encoding/json"

	"github.com/BaSui01/flowlint/types"
)

// rawWorkflow is the decode envelope. Nodes and Connections stay raw so
// the contract check and the tolerant connection decode can be explicit.
type rawWorkflow struct {
	Name        string          `json:"name"`
	Nodes       json.RawMessage `json:"nodes"`
	Connections json.RawMessage `json:"connections"`
}

// ParseWorkflow decodes a workflow document into a Workflow.
//
// Only two conditions are hard failures: the document is not valid JSON
// (types.ErrInvalidDocument), or `nodes` is not a list / `connections`
// is not a mapping (types.ErrInvalidGraph). Everything below that
// boundary is decoded tolerantly: a port whose slots are not a list, a
// slot that is not a list, or a target that is not an object is skipped
// rather than failing the whole document. Workflow definitions originate
// from varied platform versions with optional fields.
func ParseWorkflow(data []byte) (*Workflow, error) {
	var raw rawWorkflow
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, types.NewError(types.ErrInvalidDocument, "workflow document is not valid JSON").WithCause(err)
	}

	if len(raw.Nodes) == 0 || string(raw.Nodes) == "null" {
		return nil, types.NewError(types.ErrInvalidGraph, "workflow has no nodes list")
	}
	var nodes []Node
	if err := json.Unmarshal(raw.Nodes, &nodes); err != nil {
		return nil, types.NewError(types.ErrInvalidGraph, "workflow nodes is not a list").WithCause(err)
	}

	wf := &Workflow{
		Name:        raw.Name,
		Nodes:       nodes,
		Connections: make(map[string]NodePorts),
	}

	if len(raw.Connections) == 0 || string(raw.Connections) == "null" {
		return wf, nil
	}
	var bySource map[string]json.RawMessage
	if err := json.Unmarshal(raw.Connections, &bySource); err != nil {
		return nil, types.NewError(types.ErrInvalidGraph, "workflow connections is not a mapping").WithCause(err)
	}

	for source, rawPorts := range bySource {
		ports := decodePorts(rawPorts)
		if ports != nil {
			wf.Connections[source] = ports
		}
	}
	return wf, nil
}

// decodePorts decodes one source's port map, skipping malformed entries.
func decodePorts(raw json.RawMessage) NodePorts {
	var byKind map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byKind); err != nil {
		return nil
	}
	ports := make(NodePorts, len(byKind))
	for kind, rawSlots := range byKind {
		var slots []json.RawMessage
		if err := json.Unmarshal(rawSlots, &slots); err != nil {
			continue
		}
		decoded := make([]OutputSlot, 0, len(slots))
		for _, rawSlot := range slots {
			decoded = append(decoded, decodeSlot(rawSlot))
		}
		ports[PortKind(kind)] = decoded
	}
	return ports
}

// decodeSlot decodes one output slot, dropping targets that are not
// objects with a node name. A null slot decodes to nil.
func decodeSlot(raw json.RawMessage) OutputSlot {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	var slot OutputSlot
	for _, rawTarget := range entries {
		var tgt ConnectionTarget
		if err := json.Unmarshal(rawTarget, &tgt); err != nil {
			continue
		}
		slot = append(slot, &tgt)
	}
	return slot
}

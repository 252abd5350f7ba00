package graph

import (
	"sort"
	"strings"
)

// ReverseEdge records one inbound connection from the target node's
// perspective: the transpose of a forward table entry.
type ReverseEdge struct {
	// Source is the name of the node the edge originates from.
	Source string
	// Kind is the port kind the edge belongs to.
	Kind PortKind
	// Index is the output slot index on the source port.
	Index int
}

// ReverseIndex maps a node name to its ordered list of inbound edges.
// It is built fresh per validation run and discarded afterwards.
type ReverseIndex map[string][]ReverseEdge

// Inbound returns the target node's inbound edges of one port kind, in
// index order.
func (ix ReverseIndex) Inbound(node string, kind PortKind) []ReverseEdge {
	var out []ReverseEdge
	for _, e := range ix[node] {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of inbound edges of one port kind.
func (ix ReverseIndex) Count(node string, kind PortKind) int {
	n := 0
	for _, e := range ix[node] {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// BuildReverseIndex transposes the workflow's forward connection table
// into a per-target inbound edge index. Edges are visited in (source,
// portKind, slot, target) order; source names and port kinds are sorted
// so repeated runs over the same graph produce identical indexes.
// Malformed entries (nil slots, nil targets, empty target names) are
// dropped silently. The graph may contain cycles; only edges are
// transposed, never traversed. Cost is O(E) in total edge endpoints.
func BuildReverseIndex(w *Workflow) ReverseIndex {
	ix := make(ReverseIndex)
	if w == nil || w.Connections == nil {
		return ix
	}

	sources := make([]string, 0, len(w.Connections))
	for src := range w.Connections {
		sources = append(sources, src)
	}
	sort.Strings(sources)

	for _, src := range sources {
		ports := w.Connections[src]
		kinds := make([]string, 0, len(ports))
		for kind := range ports {
			kinds = append(kinds, string(kind))
		}
		sort.Strings(kinds)

		for _, kind := range kinds {
			for slotIdx, slot := range ports[PortKind(kind)] {
				if slot == nil {
					continue
				}
				for _, tgt := range slot {
					if tgt == nil || strings.TrimSpace(tgt.Node) == "" {
						continue
					}
					ix[tgt.Node] = append(ix[tgt.Node], ReverseEdge{
						Source: src,
						Kind:   PortKind(kind),
						Index:  slotIdx,
					})
				}
			}
		}
	}
	return ix
}

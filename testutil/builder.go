// =============================================================================
// 🧪 工作流夹具构建器
// =============================================================================
// 以声明式方式组装测试用的工作流图
//
// 使用方法:
//
//	wf := testutil.NewWorkflow("demo").
//	    Node("Chat", "@n8n/n8n-nodes-langchain.chatTrigger", nil).
//	    Node("Agent", "@n8n/n8n-nodes-langchain.agent", nil).
//	    Node("Model", "@n8n/n8n-nodes-langchain.lmChatOpenAi", nil).
//	    Connect("Chat", graph.PortMain, "Agent").
//	    Connect("Model", graph.PortLanguageModel, "Agent").
//	    Build()
// =============================================================================
package testutil

import (
	"github.com/google/uuid"

	"github.com/BaSui01/flowlint/graph"
)

// WorkflowBuilder assembles workflow fixtures for tests.
type WorkflowBuilder struct {
	wf *graph.Workflow
}

// NewWorkflow creates a builder for a named workflow fixture.
func NewWorkflow(name string) *WorkflowBuilder {
	return &WorkflowBuilder{
		wf: &graph.Workflow{
			Name:        name,
			Nodes:       []graph.Node{},
			Connections: make(map[string]graph.NodePorts),
		},
	}
}

// Node appends a node with a generated ID.
func (b *WorkflowBuilder) Node(name, rawType string, params map[string]any) *WorkflowBuilder {
	b.wf.Nodes = append(b.wf.Nodes, graph.Node{
		ID:         uuid.NewString(),
		Name:       name,
		Type:       rawType,
		Parameters: params,
	})
	return b
}

// DisabledNode appends a disabled node.
func (b *WorkflowBuilder) DisabledNode(name, rawType string, params map[string]any) *WorkflowBuilder {
	b.Node(name, rawType, params)
	b.wf.Nodes[len(b.wf.Nodes)-1].Disabled = true
	return b
}

// Credentials sets the credentials map on the most recently added node.
func (b *WorkflowBuilder) Credentials(creds map[string]any) *WorkflowBuilder {
	b.wf.Nodes[len(b.wf.Nodes)-1].Credentials = creds
	return b
}

// Connect wires source → target on the given port kind, output slot 0,
// target input 0.
func (b *WorkflowBuilder) Connect(source string, kind graph.PortKind, target string) *WorkflowBuilder {
	return b.ConnectAt(source, kind, 0, target, 0)
}

// ConnectAt wires source → target on the given port kind and output
// slot, creating intermediate empty slots as needed.
func (b *WorkflowBuilder) ConnectAt(source string, kind graph.PortKind, slot int, target string, inputIndex int) *WorkflowBuilder {
	ports, ok := b.wf.Connections[source]
	if !ok {
		ports = make(graph.NodePorts)
		b.wf.Connections[source] = ports
	}
	slots := ports[kind]
	for len(slots) <= slot {
		slots = append(slots, nil)
	}
	slots[slot] = append(slots[slot], &graph.ConnectionTarget{Node: target, Index: inputIndex})
	ports[kind] = slots
	return b
}

// Build returns the assembled workflow.
func (b *WorkflowBuilder) Build() *graph.Workflow {
	return b.wf
}

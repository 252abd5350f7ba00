package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/flowlint/types"
)

func TestParseWorkflow_Basic(t *testing.T) {
	data := []byte(`{
		"name": "demo",
		"nodes": [
			{"id": "1", "name": "Chat", "type": "@n8n/n8n-nodes-langchain.chatTrigger", "parameters": {"responseMode": "streaming"}},
			{"id": "2", "name": "Agent", "type": "@n8n/n8n-nodes-langchain.agent", "disabled": true}
		],
		"connections": {
			"Chat": {"main": [[{"node": "Agent", "index": 0}]]}
		}
	}`)

	wf, err := ParseWorkflow(data)
	require.NoError(t, err)

	assert.Equal(t, "demo", wf.Name)
	require.Len(t, wf.Nodes, 2)
	assert.True(t, wf.Nodes[1].Disabled)

	mode, ok := wf.Nodes[0].StringParam("responseMode")
	assert.True(t, ok)
	assert.Equal(t, "streaming", mode)

	targets := wf.MainTargets("Chat")
	require.Len(t, targets, 1)
	assert.Equal(t, "Agent", targets[0].Node)
}

func TestParseWorkflow_ContractViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
		code types.ErrorCode
	}{
		{
			name: "not json",
			data: `{{`,
			code: types.ErrInvalidDocument,
		},
		{
			name: "nodes missing",
			data: `{"connections": {}}`,
			code: types.ErrInvalidGraph,
		},
		{
			name: "nodes not a list",
			data: `{"nodes": {"a": 1}}`,
			code: types.ErrInvalidGraph,
		},
		{
			name: "connections not a mapping",
			data: `{"nodes": [], "connections": [1, 2]}`,
			code: types.ErrInvalidGraph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf, err := ParseWorkflow([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, wf)
			assert.Equal(t, tt.code, types.GetErrorCode(err))
		})
	}
}

func TestParseWorkflow_ToleratesMalformedConnections(t *testing.T) {
	data := []byte(`{
		"nodes": [{"id": "1", "name": "A", "type": "x"}],
		"connections": {
			"A": {
				"main": [
					null,
					[{"node": "B"}, "not-an-object", {"noNodeField": true}],
					"not-a-list"
				],
				"ai_tool": "not-a-list"
			},
			"Broken": 42
		}
	}`)

	wf, err := ParseWorkflow(data)
	require.NoError(t, err)

	// Only the well-formed target survives.
	ix := BuildReverseIndex(wf)
	require.Len(t, ix["B"], 1)
	assert.Equal(t, ReverseEdge{Source: "A", Kind: PortMain, Index: 1}, ix["B"][0])
	assert.NotContains(t, wf.Connections, "Broken")
}

func TestParseWorkflow_MissingConnections(t *testing.T) {
	wf, err := ParseWorkflow([]byte(`{"nodes": []}`))
	require.NoError(t, err)
	assert.NotNil(t, wf.Connections)
	assert.Empty(t, wf.Connections)
}

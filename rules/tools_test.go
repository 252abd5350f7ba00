package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/flowlint/graph"
	"github.com/BaSui01/flowlint/nodetype"
	"github.com/BaSui01/flowlint/types"
)

func toolNode(params map[string]any) *graph.Node {
	return &graph.Node{ID: "t1", Name: "Tool", Parameters: params}
}

func requireSingleError(t *testing.T, diags types.Diagnostics, code types.DiagnosticCode) {
	t.Helper()
	require.Len(t, diags, 1)
	assert.Equal(t, code, diags[0].Code)
	assert.Equal(t, types.SeverityError, diags[0].Severity)
}

func TestValidateHTTPRequestTool(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolHTTPRequest, toolNode(nil))
		requireSingleError(t, diags, types.CodeMissingURL)
	})

	t.Run("valid", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolHTTPRequest, toolNode(map[string]any{
			"url": "https://api.example.com/v1/users",
		}))
		assert.Empty(t, diags)
	})

	t.Run("declared placeholder resolves", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolHTTPRequest, toolNode(map[string]any{
			"url": "https://api.example.com/weather/{city}",
			"placeholderDefinitions": map[string]any{
				"values": []any{map[string]any{"name": "city"}},
			},
		}))
		assert.Empty(t, diags)
	})

	t.Run("undeclared placeholder", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolHTTPRequest, toolNode(map[string]any{
			"url": "https://api.example.com/weather/{city}",
		}))
		requireSingleError(t, diags, types.CodeUnresolvedPlaceholder)
	})

	t.Run("undeclared placeholder in body", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolHTTPRequest, toolNode(map[string]any{
			"url":  "https://api.example.com/search",
			"body": `{"query": "{query}"}`,
			"placeholderDefinitions": map[string]any{
				"values": []any{map[string]any{"name": "somethingElse"}},
			},
		}))
		requireSingleError(t, diags, types.CodeUnresolvedPlaceholder)
	})

	t.Run("expression braces are not placeholders", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolHTTPRequest, toolNode(map[string]any{
			"url": "https://api.example.com/{{ $json.path }}",
		}))
		assert.Empty(t, diags)
	})

	t.Run("predefined auth without credential type", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolHTTPRequest, toolNode(map[string]any{
			"url":            "https://api.example.com",
			"authentication": "predefinedCredentialType",
		}))
		requireSingleError(t, diags, types.CodeMissingCredentials)
	})
}

func TestValidateCodeTool(t *testing.T) {
	t.Run("empty code", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolCode, toolNode(map[string]any{"jsCode": "  \n "}))
		requireSingleError(t, diags, types.CodeMissingCode)
	})

	t.Run("valid", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolCode, toolNode(map[string]any{"jsCode": "return 1;"}))
		assert.Empty(t, diags)
	})

	t.Run("manual schema must be JSON", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolCode, toolNode(map[string]any{
			"jsCode":      "return query;",
			"schemaType":  "manual",
			"inputSchema": "{not json",
		}))
		requireSingleError(t, diags, types.CodeInvalidInputSchema)
	})
}

func TestValidateVectorStoreTool(t *testing.T) {
	t.Run("absent topK uses default", func(t *testing.T) {
		assert.Empty(t, ValidateToolSubnode(nodetype.ToolVectorStore, toolNode(nil)))
	})

	t.Run("non-numeric", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolVectorStore, toolNode(map[string]any{"topK": "four"}))
		requireSingleError(t, diags, types.CodeInvalidTopK)
	})

	t.Run("zero", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolVectorStore, toolNode(map[string]any{"topK": float64(0)}))
		requireSingleError(t, diags, types.CodeInvalidTopK)
	})

	t.Run("positive", func(t *testing.T) {
		assert.Empty(t, ValidateToolSubnode(nodetype.ToolVectorStore, toolNode(map[string]any{"topK": float64(4)})))
	})
}

func TestValidateWorkflowTool(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolWorkflow, toolNode(map[string]any{"workflowId": ""}))
		requireSingleError(t, diags, types.CodeMissingWorkflowID)
	})

	t.Run("plain string", func(t *testing.T) {
		assert.Empty(t, ValidateToolSubnode(nodetype.ToolWorkflow, toolNode(map[string]any{"workflowId": "wf-123"})))
	})

	t.Run("resource locator", func(t *testing.T) {
		assert.Empty(t, ValidateToolSubnode(nodetype.ToolWorkflow, toolNode(map[string]any{
			"workflowId": map[string]any{"value": "wf-123", "mode": "list"},
		})))
	})

	t.Run("resource locator empty value", func(t *testing.T) {
		diags := ValidateToolSubnode(nodetype.ToolWorkflow, toolNode(map[string]any{
			"workflowId": map[string]any{"value": "", "mode": "list"},
		}))
		requireSingleError(t, diags, types.CodeMissingWorkflowID)
	})
}

func TestValidateAgentTool_MaxIterations(t *testing.T) {
	diags := ValidateToolSubnode(nodetype.ToolAgent, toolNode(map[string]any{"maxIterations": "many"}))
	requireSingleError(t, diags, types.CodeInvalidMaxIterationsType)

	diags = ValidateToolSubnode(nodetype.ToolAgent, toolNode(map[string]any{"maxIterations": float64(80)}))
	require.Len(t, diags, 1)
	assert.Equal(t, types.SeverityWarning, diags[0].Severity)

	assert.Empty(t, ValidateToolSubnode(nodetype.ToolAgent, toolNode(nil)))
}

func TestValidateMCPClientTool(t *testing.T) {
	diags := ValidateToolSubnode(nodetype.ToolMCPClient, toolNode(nil))
	requireSingleError(t, diags, types.CodeMissingServerURL)

	assert.Empty(t, ValidateToolSubnode(nodetype.ToolMCPClient, toolNode(map[string]any{
		"serverUrl": "http://localhost:3000/sse",
	})))
}

func TestValidateSelfContainedTools(t *testing.T) {
	assert.Empty(t, ValidateToolSubnode(nodetype.ToolCalculator, toolNode(nil)))
	assert.Empty(t, ValidateToolSubnode(nodetype.ToolThink, toolNode(nil)))
}

func TestValidateCredentialTools(t *testing.T) {
	for _, sub := range []nodetype.ToolSubtype{nodetype.ToolSerpAPI, nodetype.ToolWolframAlpha} {
		t.Run(string(sub), func(t *testing.T) {
			diags := ValidateToolSubnode(sub, toolNode(nil))
			requireSingleError(t, diags, types.CodeMissingCredentials)

			withCreds := toolNode(nil)
			withCreds.Credentials = map[string]any{"serpApi": map[string]any{"id": "1"}}
			assert.Empty(t, ValidateToolSubnode(sub, withCreds))
		})
	}
}

func TestValidateWikipediaTool(t *testing.T) {
	assert.Empty(t, ValidateToolSubnode(nodetype.ToolWikipedia, toolNode(nil)))
	assert.Empty(t, ValidateToolSubnode(nodetype.ToolWikipedia, toolNode(map[string]any{"language": "de"})))
	assert.Empty(t, ValidateToolSubnode(nodetype.ToolWikipedia, toolNode(map[string]any{"language": "EN"})))

	diags := ValidateToolSubnode(nodetype.ToolWikipedia, toolNode(map[string]any{"language": "klingon"}))
	requireSingleError(t, diags, types.CodeInvalidLanguageCode)
}

func TestValidateSearXNGTool(t *testing.T) {
	diags := ValidateToolSubnode(nodetype.ToolSearXNG, toolNode(nil))
	requireSingleError(t, diags, types.CodeMissingBaseURL)

	assert.Empty(t, ValidateToolSubnode(nodetype.ToolSearXNG, toolNode(map[string]any{
		"baseUrl": "https://searx.example.com",
	})))
}

// Unknown subtypes never fail closed.
func TestValidateToolSubnode_UnknownSubtype(t *testing.T) {
	assert.Empty(t, ValidateToolSubnode(nodetype.ToolSubtype("toolSomethingNew"), toolNode(nil)))
}

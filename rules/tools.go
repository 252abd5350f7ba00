package rules

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BaSui01/flowlint/graph"
	"github.com/BaSui01/flowlint/nodetype"
	"github.com/BaSui01/flowlint/types"
)

// toolValidator validates one tool sub-node's configuration. Tool
// validators only read the node itself; tool sub-nodes have no edge
// semantics of their own.
type toolValidator func(node *graph.Node) types.Diagnostics

// toolValidators is the registry of per-subtype validators. It is built
// once at process start and never mutated afterwards. Subtypes absent
// from the registry are treated as valid; the engine never fails closed
// on an unrecognized tool type.
var toolValidators = map[nodetype.ToolSubtype]toolValidator{
	nodetype.ToolHTTPRequest:  validateHTTPRequestTool,
	nodetype.ToolCode:         validateCodeTool,
	nodetype.ToolVectorStore:  validateVectorStoreTool,
	nodetype.ToolWorkflow:     validateWorkflowTool,
	nodetype.ToolAgent:        validateAgentTool,
	nodetype.ToolMCPClient:    validateMCPClientTool,
	nodetype.ToolCalculator:   nil, // self-contained, never fails
	nodetype.ToolThink:        nil, // self-contained, never fails
	nodetype.ToolSerpAPI:      validateCredentialTool,
	nodetype.ToolWolframAlpha: validateCredentialTool,
	nodetype.ToolWikipedia:    validateWikipediaTool,
	nodetype.ToolSearXNG:      validateSearXNGTool,
}

// ValidateToolSubnode dispatches to the registered validator for the
// subtype. Unknown subtypes are no-op valid.
func ValidateToolSubnode(subtype nodetype.ToolSubtype, node *graph.Node) types.Diagnostics {
	v, ok := toolValidators[subtype]
	if !ok || v == nil {
		return nil
	}
	return v(node)
}

func validateHTTPRequestTool(node *graph.Node) types.Diagnostics {
	var out types.Diagnostics

	url, _ := node.StringParam("url")
	if strings.TrimSpace(url) == "" {
		out = append(out, errorDiag(node, types.CodeMissingURL,
			fmt.Sprintf("HTTP request tool %q has no URL configured", node.Name)))
	}

	declared := declaredPlaceholders(node)
	for _, field := range []string{"url", "body", "jsonBody"} {
		value, _ := node.StringParam(field)
		for _, name := range placeholderRefs(value) {
			if !declared[name] {
				out = append(out, errorDiag(node, types.CodeUnresolvedPlaceholder,
					fmt.Sprintf("HTTP request tool %q uses placeholder {%s} in %s but does not declare it in its input schema", node.Name, name, field)))
			}
		}
	}

	// Predefined credential auth needs a credential type to resolve.
	if auth, _ := node.StringParam("authentication"); auth == "predefinedCredentialType" {
		if credType, _ := node.StringParam("nodeCredentialType"); strings.TrimSpace(credType) == "" {
			out = append(out, errorDiag(node, types.CodeMissingCredentials,
				fmt.Sprintf("HTTP request tool %q uses predefined credentials but no credential type is selected", node.Name)))
		}
	}
	return out
}

func validateCodeTool(node *graph.Node) types.Diagnostics {
	var out types.Diagnostics

	code, _ := node.StringParam("jsCode")
	if strings.TrimSpace(code) == "" {
		out = append(out, errorDiag(node, types.CodeMissingCode,
			fmt.Sprintf("code tool %q has no code to execute", node.Name)))
	}

	// A manually specified input schema must at least be valid JSON.
	if schemaType, _ := node.StringParam("schemaType"); schemaType == "manual" {
		schema, _ := node.StringParam("inputSchema")
		if strings.TrimSpace(schema) != "" && !json.Valid([]byte(schema)) {
			out = append(out, errorDiag(node, types.CodeInvalidInputSchema,
				fmt.Sprintf("code tool %q declares a manual input schema that is not valid JSON", node.Name)))
		}
	}
	return out
}

func validateVectorStoreTool(node *graph.Node) types.Diagnostics {
	raw, present := node.Param("topK")
	if !present {
		return nil
	}
	val, numeric := node.NumberParam("topK")
	switch {
	case !numeric:
		return types.Diagnostics{errorDiag(node, types.CodeInvalidTopK,
			fmt.Sprintf("vector store tool %q has a non-numeric topK value %v", node.Name, raw))}
	case val <= 0:
		return types.Diagnostics{errorDiag(node, types.CodeInvalidTopK,
			fmt.Sprintf("vector store tool %q has topK %v, it must be a positive number", node.Name, val))}
	}
	return nil
}

func validateWorkflowTool(node *graph.Node) types.Diagnostics {
	if workflowIDSet(node) {
		return nil
	}
	return types.Diagnostics{errorDiag(node, types.CodeMissingWorkflowID,
		fmt.Sprintf("workflow tool %q has no workflow selected", node.Name))}
}

// workflowIDSet accepts both the plain string form and the resource
// locator object form ({"value": "...", "mode": "..."}) of workflowId.
func workflowIDSet(node *graph.Node) bool {
	raw, present := node.Param("workflowId")
	if !present {
		return false
	}
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v) != ""
	case map[string]any:
		if value, ok := v["value"].(string); ok {
			return strings.TrimSpace(value) != ""
		}
	}
	return false
}

func validateAgentTool(node *graph.Node) types.Diagnostics {
	return checkMaxIterations(node)
}

func validateMCPClientTool(node *graph.Node) types.Diagnostics {
	if url, _ := node.StringParam("serverUrl"); strings.TrimSpace(url) == "" {
		return types.Diagnostics{errorDiag(node, types.CodeMissingServerURL,
			fmt.Sprintf("MCP client tool %q has no server URL configured", node.Name))}
	}
	return nil
}

func validateCredentialTool(node *graph.Node) types.Diagnostics {
	if len(node.Credentials) > 0 {
		return nil
	}
	return types.Diagnostics{errorDiag(node, types.CodeMissingCredentials,
		fmt.Sprintf("tool %q requires credentials but none are configured", node.Name))}
}

// wikipediaLanguages is the set of language codes the Wikipedia tool
// accepts. The tool defaults to English when no language is set.
var wikipediaLanguages = map[string]bool{
	"ar": true, "de": true, "en": true, "es": true, "fa": true,
	"fr": true, "he": true, "it": true, "ja": true, "ko": true,
	"nl": true, "pl": true, "pt": true, "ru": true, "sv": true,
	"uk": true, "vi": true, "zh": true,
}

func validateWikipediaTool(node *graph.Node) types.Diagnostics {
	lang, present := node.StringParam("language")
	if !present {
		return nil
	}
	if !wikipediaLanguages[strings.ToLower(strings.TrimSpace(lang))] {
		return types.Diagnostics{errorDiag(node, types.CodeInvalidLanguageCode,
			fmt.Sprintf("Wikipedia tool %q has unrecognized language code %q", node.Name, lang))}
	}
	return nil
}

func validateSearXNGTool(node *graph.Node) types.Diagnostics {
	if url, _ := node.StringParam("baseUrl"); strings.TrimSpace(url) == "" {
		return types.Diagnostics{errorDiag(node, types.CodeMissingBaseURL,
			fmt.Sprintf("SearXNG tool %q has no base URL configured", node.Name))}
	}
	return nil
}

// declaredPlaceholders collects placeholder names from the tool's input
// schema declaration (placeholderDefinitions.values[].name).
func declaredPlaceholders(node *graph.Node) map[string]bool {
	declared := make(map[string]bool)
	defs, ok := node.Param("placeholderDefinitions")
	if !ok {
		return declared
	}
	defsMap, ok := defs.(map[string]any)
	if !ok {
		return declared
	}
	values, ok := defsMap["values"].([]any)
	if !ok {
		return declared
	}
	for _, v := range values {
		entry, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := entry["name"].(string); ok && name != "" {
			declared[name] = true
		}
	}
	return declared
}

// placeholderRefs extracts {name} tokens from a parameter value. Only
// identifier-like names count as placeholders, so JSON braces in a body
// do not register; expression braces ({{ ... }}) are skipped entirely.
func placeholderRefs(s string) []string {
	var refs []string
	for i := 0; i < len(s); {
		if s[i] != '{' {
			i++
			continue
		}
		if strings.HasPrefix(s[i:], "{{") {
			end := strings.Index(s[i:], "}}")
			if end == -1 {
				break
			}
			i += end + 2
			continue
		}
		end := strings.IndexByte(s[i:], '}')
		if end == -1 {
			break
		}
		ref := s[i+1 : i+end]
		if isPlaceholderName(ref) {
			refs = append(refs, ref)
			i += end + 1
			continue
		}
		i++
	}
	return refs
}

// isPlaceholderName reports whether s is a plausible placeholder name:
// non-empty, letters/digits/underscore/hyphen only.
func isPlaceholderName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

package types

// Severity classifies how a diagnostic affects workflow validity.
type Severity string

const (
	// SeverityError marks a finding that makes the workflow invalid.
	SeverityError Severity = "error"
	// SeverityWarning marks a suspect configuration that does not block validity.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks an advisory recommendation.
	SeverityInfo Severity = "info"
)

// Blocking reports whether the severity makes the workflow invalid.
func (s Severity) Blocking() bool {
	return s == SeverityError
}

// DiagnosticCode is a stable machine-readable identifier for a finding.
type DiagnosticCode string

// Agent diagnostic codes
const (
	CodeMissingLanguageModel       DiagnosticCode = "MISSING_LANGUAGE_MODEL"
	CodeTooManyLanguageModels      DiagnosticCode = "TOO_MANY_LANGUAGE_MODELS"
	CodeFallbackNotEnabled         DiagnosticCode = "FALLBACK_NOT_ENABLED"
	CodeFallbackMissingSecondModel DiagnosticCode = "FALLBACK_MISSING_SECOND_MODEL"
	CodeMissingOutputParser        DiagnosticCode = "MISSING_OUTPUT_PARSER"
	CodeMultipleOutputParsers      DiagnosticCode = "MULTIPLE_OUTPUT_PARSERS"
	CodeMissingPromptText          DiagnosticCode = "MISSING_PROMPT_TEXT"
	CodeMissingSystemMessage       DiagnosticCode = "MISSING_SYSTEM_MESSAGE"
	CodeSystemMessageTooShort      DiagnosticCode = "SYSTEM_MESSAGE_TOO_SHORT"
	CodeStreamingWithMainOutput    DiagnosticCode = "STREAMING_WITH_MAIN_OUTPUT"
	CodeMultipleMemoryConnections  DiagnosticCode = "MULTIPLE_MEMORY_CONNECTIONS"
	CodeNoToolsConnected           DiagnosticCode = "NO_TOOLS_CONNECTED"
	CodeInvalidMaxIterationsType   DiagnosticCode = "INVALID_MAX_ITERATIONS_TYPE"
	CodeMaxIterationsTooLow        DiagnosticCode = "MAX_ITERATIONS_TOO_LOW"
	CodeMaxIterationsVeryHigh      DiagnosticCode = "MAX_ITERATIONS_VERY_HIGH"
)

// Chat trigger diagnostic codes
const (
	CodeMissingConnections      DiagnosticCode = "MISSING_CONNECTIONS"
	CodeStreamingWrongTarget    DiagnosticCode = "STREAMING_WRONG_TARGET"
	CodeStreamingAgentHasOutput DiagnosticCode = "STREAMING_AGENT_HAS_OUTPUT"
	CodeStreamingRecommended    DiagnosticCode = "STREAMING_RECOMMENDED"
)

// Tool sub-node diagnostic codes
const (
	CodeMissingURL            DiagnosticCode = "MISSING_URL"
	CodeUnresolvedPlaceholder DiagnosticCode = "UNRESOLVED_PLACEHOLDER"
	CodeMissingCode           DiagnosticCode = "MISSING_CODE"
	CodeInvalidInputSchema    DiagnosticCode = "INVALID_INPUT_SCHEMA"
	CodeInvalidTopK           DiagnosticCode = "INVALID_TOP_K"
	CodeMissingWorkflowID     DiagnosticCode = "MISSING_WORKFLOW_ID"
	CodeMissingServerURL      DiagnosticCode = "MISSING_SERVER_URL"
	CodeMissingCredentials    DiagnosticCode = "MISSING_CREDENTIALS"
	CodeInvalidLanguageCode   DiagnosticCode = "INVALID_LANGUAGE_CODE"
	CodeMissingBaseURL        DiagnosticCode = "MISSING_BASE_URL"
)

// Diagnostic is one severity-tagged, coded finding about a node's configuration.
// Multiple diagnostics may reference the same node.
type Diagnostic struct {
	Severity Severity       `json:"severity"`
	Code     DiagnosticCode `json:"code"`
	Message  string         `json:"message"`
	NodeID   string         `json:"node_id,omitempty"`
	NodeName string         `json:"node_name,omitempty"`
}

// Diagnostics is an ordered list of findings for one workflow.
type Diagnostics []Diagnostic

// HasErrors reports whether any diagnostic is blocking.
func (d Diagnostics) HasErrors() bool {
	for _, diag := range d {
		if diag.Severity.Blocking() {
			return true
		}
	}
	return false
}

// CountBySeverity returns the number of diagnostics with the given severity.
func (d Diagnostics) CountBySeverity(sev Severity) int {
	n := 0
	for _, diag := range d {
		if diag.Severity == sev {
			n++
		}
	}
	return n
}

// FilterByCode returns the diagnostics carrying the given code, in order.
func (d Diagnostics) FilterByCode(code DiagnosticCode) Diagnostics {
	var out Diagnostics
	for _, diag := range d {
		if diag.Code == code {
			out = append(out, diag)
		}
	}
	return out
}

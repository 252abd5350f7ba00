package lint

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/BaSui01/flowlint/graph"
	"github.com/BaSui01/flowlint/testutil"
)

// propertyFixture builds an agent workflow whose shape is driven by the
// generated values, with the agent optionally disabled.
func propertyFixture(lmCount int, disabled bool, needsFallback bool) *graph.Workflow {
	params := map[string]any{"needsFallback": needsFallback}
	b := testutil.NewWorkflow("prop")
	if disabled {
		b.DisabledNode("Agent", agentType, params)
	} else {
		b.Node("Agent", agentType, params)
	}
	for i := 0; i < lmCount; i++ {
		name := "Model" + string(rune('0'+i))
		b.Node(name, modelType, nil).Connect(name, graph.PortLanguageModel, "Agent")
	}
	return b.Build()
}

// Disabled nodes never contribute diagnostics, whatever their wiring.
func TestProperty_DisabledNodesAreSilent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("disabled agent emits no diagnostics", prop.ForAll(
		func(lmCount int, needsFallback bool) bool {
			wf := propertyFixture(lmCount, true, needsFallback)
			diags, err := New(nil).Validate(wf)
			if err != nil {
				t.Logf("Validate failed: %v", err)
				return false
			}
			return len(diags) == 0
		},
		gen.IntRange(0, 4),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// Validation is a pure function of the graph: repeated runs agree.
func TestProperty_ValidationIsDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("two runs produce identical diagnostics", prop.ForAll(
		func(lmCount int, needsFallback bool) bool {
			wf := propertyFixture(lmCount, false, needsFallback)
			l := New(nil)

			first, err1 := l.Validate(wf)
			second, err2 := l.Validate(wf)
			if err1 != nil || err2 != nil {
				return false
			}
			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if first[i] != second[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 4),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// The language model cardinality rules partition all counts: exactly one
// of {MISSING, TOO_MANY, fallback finding, silence} holds per count.
func TestProperty_LanguageModelCardinality(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("cardinality errors match the model count", prop.ForAll(
		func(lmCount int) bool {
			wf := propertyFixture(lmCount, false, false)
			diags, err := New(nil).Validate(wf)
			if err != nil {
				return false
			}
			hasMissing := len(diags.FilterByCode("MISSING_LANGUAGE_MODEL")) > 0
			hasTooMany := len(diags.FilterByCode("TOO_MANY_LANGUAGE_MODELS")) > 0
			switch {
			case lmCount == 0:
				return hasMissing && !hasTooMany
			case lmCount > 2:
				return hasTooMany && !hasMissing
			default:
				return !hasMissing && !hasTooMany
			}
		},
		gen.IntRange(0, 6),
	))

	properties.TestingRun(t)
}

package lint

import (
	"go.uber.org/zap"

	"github.com/BaSui01/flowlint/graph"
	"github.com/BaSui01/flowlint/nodetype"
	"github.com/BaSui01/flowlint/rules"
	"github.com/BaSui01/flowlint/types"
)

// Linter aggregates per-node semantic diagnostics for one workflow.
// It is stateless across runs and safe for concurrent use.
type Linter struct {
	logger *zap.Logger
}

// New creates a Linter. A nil logger disables logging.
func New(logger *zap.Logger) *Linter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Linter{logger: logger.With(zap.String("component", "linter"))}
}

// IsAIGraph reports whether the workflow contains any AI node. Callers
// use this gate to skip Validate entirely on non-AI graphs.
func (l *Linter) IsAIGraph(wf *graph.Workflow) bool {
	return nodetype.IsAIGraph(wf)
}

// Validate runs the semantic rule sets over every enabled node and
// returns the ordered diagnostic list: nodes in declaration order,
// diagnostics within one node in rule order. Disabled nodes contribute
// nothing. The only error is an input contract violation; every semantic
// finding is a diagnostic, never an error.
func (l *Linter) Validate(wf *graph.Workflow) (types.Diagnostics, error) {
	if wf == nil || wf.Nodes == nil {
		return nil, types.NewError(types.ErrInvalidGraph, "workflow has no nodes list")
	}

	ix := graph.BuildReverseIndex(wf)

	var out types.Diagnostics
	for i := range wf.Nodes {
		node := &wf.Nodes[i]
		if node.Disabled {
			continue
		}
		out = append(out, rules.Dispatch(node, ix, wf)...)
	}

	l.logger.Debug("workflow validated",
		zap.String("workflow", wf.Name),
		zap.Int("nodes", len(wf.Nodes)),
		zap.Int("errors", out.CountBySeverity(types.SeverityError)),
		zap.Int("warnings", out.CountBySeverity(types.SeverityWarning)),
		zap.Int("infos", out.CountBySeverity(types.SeverityInfo)),
	)
	return out, nil
}

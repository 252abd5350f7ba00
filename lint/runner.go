package lint

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BaSui01/flowlint/graph"
	"github.com/BaSui01/flowlint/internal/metrics"
	"github.com/BaSui01/flowlint/types"
)

// Result is the outcome of validating one workflow file. Err is set on
// read/decode/contract failures; semantic findings are in Diagnostics.
type Result struct {
	Path        string            `json:"path"`
	RunID       string            `json:"run_id"`
	Workflow    string            `json:"workflow,omitempty"`
	Skipped     bool              `json:"skipped,omitempty"`
	Diagnostics types.Diagnostics `json:"diagnostics,omitempty"`
	Err         error             `json:"-"`
}

// Runner validates batches of workflow files. Each workflow is
// independent, so files are processed by a bounded worker pool and the
// results merged back in input order.
type Runner struct {
	linter      *Linter
	logger      *zap.Logger
	collector   *metrics.Collector
	tracer      trace.Tracer
	concurrency int
	skipNonAI   bool
}

// NewRunner creates a Runner. A nil collector disables metrics;
// concurrency below 1 falls back to serial execution.
func NewRunner(logger *zap.Logger, collector *metrics.Collector, concurrency int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		linter:      New(logger),
		logger:      logger.With(zap.String("component", "runner")),
		collector:   collector,
		tracer:      otel.Tracer("github.com/BaSui01/flowlint/lint"),
		concurrency: concurrency,
		skipNonAI:   true,
	}
}

// SkipNonAI controls whether workflows without AI nodes are skipped
// rather than validated. Defaults to true; validating them is harmless
// but always yields zero diagnostics.
func (r *Runner) SkipNonAI(skip bool) *Runner {
	r.skipNonAI = skip
	return r
}

// Run validates every file and returns one Result per path, in input
// order. Per-file failures are reported in the Result, not returned;
// the only returned error is context cancellation.
func (r *Runner) Run(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.runOne(ctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runOne validates a single workflow file.
func (r *Runner) runOne(ctx context.Context, path string) Result {
	_, span := r.tracer.Start(ctx, "lint.workflow",
		trace.WithAttributes(attribute.String("workflow.path", path)))
	defer span.End()

	res := Result{Path: path, RunID: uuid.NewString()}
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = types.NewError(types.ErrInvalidDocument, "read workflow file").WithCause(err)
		r.record(metrics.ResultFailed, start, nil)
		return res
	}

	wf, err := graph.ParseWorkflow(data)
	if err != nil {
		res.Err = err
		r.record(metrics.ResultFailed, start, nil)
		return res
	}
	res.Workflow = wf.Name

	if r.skipNonAI && !r.linter.IsAIGraph(wf) {
		res.Skipped = true
		r.record(metrics.ResultSkipped, start, nil)
		r.logger.Debug("no AI nodes, skipped", zap.String("path", path))
		return res
	}

	diags, err := r.linter.Validate(wf)
	if err != nil {
		res.Err = err
		r.record(metrics.ResultFailed, start, nil)
		return res
	}
	res.Diagnostics = diags

	outcome := metrics.ResultValid
	if diags.HasErrors() {
		outcome = metrics.ResultInvalid
	}
	r.record(outcome, start, diags)

	r.logger.Info("workflow linted",
		zap.String("path", path),
		zap.String("run_id", res.RunID),
		zap.Int("diagnostics", len(diags)),
		zap.Bool("valid", !diags.HasErrors()),
	)
	return res
}

func (r *Runner) record(outcome string, start time.Time, diags types.Diagnostics) {
	if r.collector == nil {
		return
	}
	r.collector.RecordValidation(outcome, time.Since(start), diags)
}

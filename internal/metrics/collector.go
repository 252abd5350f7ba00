package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/BaSui01/flowlint/types"
)

// Validation outcome labels.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultSkipped = "skipped"
	ResultFailed  = "failed"
)

// =============================================================================
// 📊 验证指标收集器
// =============================================================================

// Collector 验证指标收集器
type Collector struct {
	// 工作流指标
	workflowsTotal     *prometheus.CounterVec
	validationDuration prometheus.Histogram

	// 诊断指标
	diagnosticsTotal *prometheus.CounterVec

	logger *zap.Logger
}

// NewCollector 创建指标收集器
func NewCollector(namespace string, logger *zap.Logger) *Collector {
	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.workflowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflows_total",
			Help:      "Total number of workflows processed, by outcome",
		},
		[]string{"result"},
	)

	c.validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "validation_duration_seconds",
			Help:      "Time spent validating one workflow",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)

	c.diagnosticsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diagnostics_total",
			Help:      "Total number of diagnostics emitted, by severity and code",
		},
		[]string{"severity", "code"},
	)

	return c
}

// RecordValidation 记录一次工作流验证及其诊断
func (c *Collector) RecordValidation(result string, duration time.Duration, diags types.Diagnostics) {
	c.workflowsTotal.WithLabelValues(result).Inc()
	c.validationDuration.Observe(duration.Seconds())
	for _, d := range diags {
		c.diagnosticsTotal.WithLabelValues(string(d.Severity), string(d.Code)).Inc()
	}
}

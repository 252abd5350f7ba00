package metrics

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/BaSui01/flowlint/types"
)

var collectorNamespaceSeq uint64

// promauto registers in the default registry, so every test gets its
// own namespace to avoid duplicate registration.
func nextTestNamespace() string {
	seq := atomic.AddUint64(&collectorNamespaceSeq, 1)
	return fmt.Sprintf("test_%d", seq)
}

func TestNewCollector(t *testing.T) {
	collector := NewCollector(nextTestNamespace(), zap.NewNop())

	assert.NotNil(t, collector)
	assert.NotNil(t, collector.workflowsTotal)
	assert.NotNil(t, collector.validationDuration)
	assert.NotNil(t, collector.diagnosticsTotal)
}

func TestCollector_RecordValidation(t *testing.T) {
	collector := NewCollector(nextTestNamespace(), zap.NewNop())

	diags := types.Diagnostics{
		{Severity: types.SeverityError, Code: types.CodeMissingLanguageModel},
		{Severity: types.SeverityError, Code: types.CodeMissingLanguageModel},
		{Severity: types.SeverityInfo, Code: types.CodeNoToolsConnected},
	}
	collector.RecordValidation(ResultInvalid, 5*time.Millisecond, diags)
	collector.RecordValidation(ResultValid, time.Millisecond, nil)
	collector.RecordValidation(ResultSkipped, 0, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.workflowsTotal.WithLabelValues(ResultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.workflowsTotal.WithLabelValues(ResultValid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.workflowsTotal.WithLabelValues(ResultSkipped)))

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.diagnosticsTotal.WithLabelValues(
		string(types.SeverityError), string(types.CodeMissingLanguageModel))))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.diagnosticsTotal.WithLabelValues(
		string(types.SeverityInfo), string(types.CodeNoToolsConnected))))
}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordGoogleCall(t *testing.T) {
	require.NoError(t, InitServiceMetrics(prometheus.NewRegistry()))

	RecordGoogleCall(OperationDirections, StatusSuccess, 120*time.Millisecond)
	RecordGoogleCall(OperationDirections, StatusSuccess, 80*time.Millisecond)
	RecordGoogleCall(OperationTextSearch, StatusTimeout, 10*time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(serviceOperationsTotal.WithLabelValues("google", "directions", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(serviceOperationsTotal.WithLabelValues("google", "textsearch", "timeout")))
}

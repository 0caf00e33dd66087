package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	ObserveRequest("GET", "/health", 200, 15*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200")))
}

func TestObserveExportAndAssistant(t *testing.T) {
	before := testutil.ToFloat64(TableExportsTotal.WithLabelValues("payments", "xls"))
	ObserveExport("payments", "xls")
	assert.Equal(t, before+1, testutil.ToFloat64(TableExportsTotal.WithLabelValues("payments", "xls")))

	errBefore := testutil.ToFloat64(AssistantRequestsTotal.WithLabelValues("error"))
	ObserveAssistant("error")
	assert.Equal(t, errBefore+1, testutil.ToFloat64(AssistantRequestsTotal.WithLabelValues("error")))

	expBefore := testutil.ToFloat64(SubscriptionsExpiredTotal)
	ObserveExpired(3)
	assert.Equal(t, expBefore+3, testutil.ToFloat64(SubscriptionsExpiredTotal))
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFormAction(t *testing.T) {
	before := testutil.ToFloat64(formActions.WithLabelValues("course", "create", OutcomeDuplicate))
	RecordFormAction("course", "create", OutcomeDuplicate)
	after := testutil.ToFloat64(formActions.WithLabelValues("course", "create", OutcomeDuplicate))
	assert.Equal(t, before+1, after)
}

func TestHandlerExposesCollectors(t *testing.T) {
	RecordRequest(http.MethodGet, "/admin/courses", http.StatusOK, 10*time.Millisecond)
	RecordGateDecision("deny")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `courseadmin_http_requests_total{method="GET",route="/admin/courses",status="200"}`)
	assert.Contains(t, body, `courseadmin_auth_gate_decisions_total{decision="deny"}`)
}

package metrics

import (
	"boundou-check/internal/diag"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveStageCountsBySeverity(t *testing.T) {
	DiagnosticsTotal.Reset()
	var l diag.List
	l.WarnAt(0, "name_unresolved", "w")
	l.WarnAt(1, "geometry_missing", "w")
	l.Error("wrong_type", "e")
	ObserveStage("boundary", l, 3*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(DiagnosticsTotal.WithLabelValues("boundary", "warning")))
	assert.Equal(t, 1.0, testutil.ToFloat64(DiagnosticsTotal.WithLabelValues("boundary", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(DiagnosticsTotal.WithLabelValues("parcels", "error")))
}

func TestMarkRun(t *testing.T) {
	MarkRun(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(LastRunSuccess))
	MarkRun(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(LastRunSuccess))
	assert.Greater(t, testutil.ToFloat64(LastRunTimestamp), 0.0)
}

func TestPushDisabledWithoutURL(t *testing.T) {
	assert.NoError(t, Push("", "run"))
}

func TestPushSendsToGateway(t *testing.T) {
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, Push(srv.URL, "abc"))
	assert.Equal(t, http.MethodPut, method)
	assert.True(t, strings.HasPrefix(path, "/metrics/job/"+JobName), path)
	assert.Contains(t, path, "run_id")
}

func TestPushReportsGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	assert.Error(t, Push(srv.URL, "abc"))
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/summarize", "/summarize"},
		{"/summarize/url", "/summarize/url"},
		{"/summarize/feed", "/summarize/feed"},
		{"/match/score", "/match/score"},
		{"/media/image", "/media/image"},
		{"/auth/token", "/auth/token"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/favicon.ico", "other"},
		{"/summarizer", "other"},
		{"/", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePath(tt.path))
		})
	}
}

func TestMetricsMiddleware(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/summarize", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusTeapot, rr.Code)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	var requestsTotal *dto.MetricFamily
	for _, mf := range families {
		if mf.GetName() == "http_requests_total" {
			requestsTotal = mf
			break
		}
	}
	require.NotNil(t, requestsTotal, "http_requests_total not registered")

	found := false
	for _, m := range requestsTotal.GetMetric() {
		labels := map[string]string{}
		for _, lp := range m.GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		if labels["method"] == http.MethodPost &&
			labels["path"] == "/summarize" &&
			labels["status"] == "418" {
			found = true
			assert.GreaterOrEqual(t, m.GetCounter().GetValue(), 1.0)
		}
	}
	assert.True(t, found, "no counter sample for POST /summarize 418")
}

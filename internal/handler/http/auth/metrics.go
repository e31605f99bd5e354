package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// authRequestsTotal counts authentication requests by result.
var authRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "auth_requests_total",
		Help: "Total authentication requests by result",
	},
	[]string{"result"}, // result: success | failure
)

// RecordAuthRequest records an authentication request outcome.
func RecordAuthRequest(result string) {
	authRequestsTotal.WithLabelValues(result).Inc()
}

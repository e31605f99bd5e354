// Package metrics defines Prometheus business metrics for the text
// processing pipeline: summarization outcomes and latencies, and
// outbound calls to third-party services.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	summariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summaries_total",
			Help: "Total number of summarization requests by policy and outcome",
		},
		[]string{"policy", "status"},
	)

	summaryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_duration_seconds",
			Help:    "Time taken to produce an extractive summary",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)

	summarySentencesIn = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_sentences_in",
			Help:    "Number of sentences detected in submitted documents",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	summarySentencesOut = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_sentences_out",
			Help:    "Number of sentences returned in summaries",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		},
	)

	outboundRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbound_requests_total",
			Help: "Total outbound third-party requests by service and outcome",
		},
		[]string{"service", "status"},
	)

	outboundRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "outbound_request_duration_seconds",
			Help:    "Latency of outbound third-party requests",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"service"},
	)

	matchScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_score_percent",
			Help:    "Distribution of resume match scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)

// RecordSummary records one summarization attempt. Status should be
// "success" or the short name of the guard that rejected the input
// ("blank_text", "insufficient_sentences", "invalid_count").
func RecordSummary(policy, status string, duration time.Duration) {
	summariesTotal.WithLabelValues(policy, status).Inc()
	if status == "success" {
		summaryDuration.Observe(duration.Seconds())
	}
}

// RecordSummarySize records document and summary sentence counts for a
// successful summarization.
func RecordSummarySize(in, out int) {
	summarySentencesIn.Observe(float64(in))
	summarySentencesOut.Observe(float64(out))
}

// RecordOutbound records an outbound third-party call.
func RecordOutbound(service string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	outboundRequestsTotal.WithLabelValues(service, status).Inc()
	outboundRequestDuration.WithLabelValues(service).Observe(duration.Seconds())
}

// RecordMatchScore records the percentage score of a resume match.
func RecordMatchScore(score float64) {
	matchScores.Observe(score)
}

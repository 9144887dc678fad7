// Package metrics declares the prometheus collectors shared by the gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studenthub_upstream_requests_total",
			Help: "Completion calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studenthub_upstream_duration_seconds",
			Help:    "Completion call latency in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
		},
		[]string{"provider"},
	)

	Extractions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studenthub_extractions_total",
			Help: "Structured extraction outcomes by category",
		},
		[]string{"category", "outcome"},
	)

	RecordsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studenthub_records_rejected_total",
			Help: "Extracted records dropped by schema validation",
		},
		[]string{"category"},
	)

	SearchCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studenthub_search_cache_lookups_total",
			Help: "Semantic search cache lookups by result",
		},
		[]string{"result"},
	)

	OTPEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studenthub_otp_events_total",
			Help: "OTP issue and verify events by outcome",
		},
		[]string{"event", "outcome"},
	)
)

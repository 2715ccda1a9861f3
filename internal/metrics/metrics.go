package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Player info Metrics
var (
	PlayerInfoRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlayerInfoRequests,
			Help: HelpTextPlayerInfoRequests,
		},
		[]string{LabelOutcome},
	)

	PlayerInfoDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePlayerInfoDuration,
			Help:    HelpTextPlayerInfoDuration,
			Buckets: UpstreamLatencyBuckets,
		},
	)
)

// Business Metrics
var (
	ProgressCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProgressCalculations,
			Help: HelpTextProgressCalculations,
		},
		[]string{LabelResult},
	)

	LevelLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelLookups,
			Help: HelpTextLevelLookups,
		},
		[]string{LabelResult},
	)
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterWorkoutsSaved       *prometheus.CounterVec
	CounterWorkoutsDeleted     prometheus.Counter
	CounterStatsCacheHits      prometheus.Counter
	CounterStatsCacheMisses    prometheus.Counter
	CounterSnapshotFallbacks   prometheus.Counter
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistStatsComputeDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("achilles", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("achilles", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterWorkoutsSaved := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_saved",
		Help:      "The total number of saved workouts",
	}, []string{"completed"})
	counterWorkoutsDeleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_deleted",
		Help:      "The total number of deleted workouts",
	})
	counterStatsCacheHits := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "stats_cache_hits",
		Help:      "The total number of stats overviews served from cache",
	})
	counterStatsCacheMisses := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "stats_cache_misses",
		Help:      "The total number of stats overviews computed from the workout log",
	})
	counterSnapshotFallbacks := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "snapshot_mirror_fallbacks",
		Help:      "The total number of workout log snapshots served from the redis mirror",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "current_requests",
		Help:        "Current number of requests served",
		ConstLabels: nil,
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "life_signal",
		Help:        "Shows whether the service is alive",
		ConstLabels: nil,
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histStatsComputeDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.00001, 0.0001, 0.001, 0.01, 0.1, 1,
			},
			Name: "stats_compute_duration_seconds",
			Help: "Duration of a single stats overview computation in seconds",
		},
	)

	return &Manager{
		CounterRequests:            counterRequests,
		CounterWorkoutsSaved:       counterWorkoutsSaved,
		CounterWorkoutsDeleted:     counterWorkoutsDeleted,
		CounterStatsCacheHits:      counterStatsCacheHits,
		CounterStatsCacheMisses:    counterStatsCacheMisses,
		CounterSnapshotFallbacks:   counterSnapshotFallbacks,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistogramRequestDuration:   histogramRequestDuration,
		HistStatsComputeDuration:   histStatsComputeDuration,
	}
}

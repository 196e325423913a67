package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry served on the metrics endpoint,
// with any extra collectors (e.g. the db pool one) registered on it.
func SetupPrometheus(extra ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	// Add Go module build info, runtime metrics and process collectors.
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promRegistry.MustRegister(extra...)

	return promRegistry
}

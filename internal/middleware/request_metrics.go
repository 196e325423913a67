package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/amankaushik/achilles-workout-tracker/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			begin := time.Now()
			metricsManager.GaugeRequests.Inc()
			defer metricsManager.GaugeRequests.Dec()

			resp := &responseWriter{respWriter, http.StatusOK}

			// handler call
			next.ServeHTTP(resp, req)

			status := strconv.Itoa(resp.statusCode)
			metricsManager.HistogramRequestDuration.With(prometheus.Labels{
				"route":       routeTemplate(req),
				"method":      req.Method,
				"status_code": status,
			}).Observe(time.Since(begin).Seconds())
			metricsManager.CounterRequests.With(
				prometheus.Labels{
					"method": req.Method,
					"status": status,
				},
			).Inc()
		})
	}
}

// routeTemplate keeps the label cardinality low by using the mux path template
// (e.g. /sessions/{sid}/workouts/{key}) instead of the actual path.
func routeTemplate(req *http.Request) string {
	if route := mux.CurrentRoute(req); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unknown"
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}

func (r *responseWriter) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

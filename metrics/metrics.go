/*
metrics.go - Prometheus metrics for the calculator service

PURPOSE:
  Owns the application Prometheus registry and the HTTP instrumentation
  middleware. Handlers record per-calculator outcomes through
  RecordCalculation; everything else is collected automatically.

METRICS:
  finance_calculators_http_inflight_requests          gauge
  finance_calculators_http_requests_total             {method, path, status}
  finance_calculators_http_request_duration_seconds   {method, path}
  finance_calculators_calc_calculations_total         {calculator, status}

SEE ALSO:
  - api/server.go: mounts Handler() at /metrics and wraps the router
    with Instrument
*/
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "finance_calculators",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finance_calculators",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "finance_calculators",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 10), // 0.5ms to ~0.5s
		},
		[]string{"method", "path"},
	)

	calculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finance_calculators",
			Subsystem: "calc",
			Name:      "calculations_total",
			Help:      "Total number of calculator invocations.",
		},
		[]string{"calculator", "status"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		calculations,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Instrument wraps the provided handler with HTTP metrics collection.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		method := strings.ToUpper(r.Method)
		path := canonicalPath(r)
		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

// canonicalPath maps a request onto the fixed route set so label
// cardinality stays bounded. The chi route pattern is only populated
// after routing, which is why it is read after next.ServeHTTP returns;
// requests that matched no route are bucketed together.
func canonicalPath(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "other"
}

// RecordCalculation records the outcome of one calculator invocation.
// Status is "ok", "schema_validation", or "invalid_argument".
func RecordCalculation(calculator, status string) {
	calculations.WithLabelValues(calculator, status).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

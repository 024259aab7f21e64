// Package metrics exposes Prometheus collectors for the HTTP layer and the
// relationship core.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

const namespace = "stride"

// Collector owns a registry and the application collectors registered in it.
type Collector struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	toggles         *prometheus.CounterVec
	migrated        *prometheus.CounterVec
	reconciled      *prometheus.CounterVec
	integrityFaults *prometheus.CounterVec
}

// NewCollector creates a Collector with a fresh registry.
// withRuntime adds the Go runtime and process collectors.
func NewCollector(withRuntime bool) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
		toggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "relationship",
			Name:      "toggles_total",
			Help:      "Membership transitions by relation and resulting state.",
		}, []string{"relation", "outcome"}),
		migrated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "relationship",
			Name:      "migrated_references_total",
			Help:      "Legacy references processed by the migrator, by result.",
		}, []string{"relation", "result"}),
		reconciled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "relationship",
			Name:      "reconciled_objects_total",
			Help:      "Objects whose counters were recomputed.",
		}, []string{"relation"}),
		integrityFaults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "integrity_faults_total",
			Help:      "Data integrity faults surfaced to callers.",
		}, []string{"operation"}),
	}

	c.registry.MustRegister(
		c.httpInFlight,
		c.httpRequests,
		c.httpDuration,
		c.toggles,
		c.migrated,
		c.reconciled,
		c.integrityFaults,
	)
	if withRuntime {
		c.registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
	}
	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns an HTTP handler exposing the registered metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ---------------------------------------------------------------------------
// Relationship core
// ---------------------------------------------------------------------------

// Toggle outcomes.
const (
	OutcomeActivated   = "activated"
	OutcomeDeactivated = "deactivated"
	OutcomeUnchanged   = "unchanged"
)

// RecordToggle counts a membership transition.
func (c *Collector) RecordToggle(rel domain.Relation, res domain.ToggleResult) {
	outcome := OutcomeUnchanged
	switch {
	case res.Changed && res.Active:
		outcome = OutcomeActivated
	case res.Changed:
		outcome = OutcomeDeactivated
	}
	c.toggles.WithLabelValues(rel.String(), outcome).Inc()
}

// RecordMigration adds a migration report's counts.
func (c *Collector) RecordMigration(report domain.MigrationReport) {
	rel := report.Relation.String()
	c.migrated.WithLabelValues(rel, "inserted").Add(float64(report.InsertedCount))
	c.migrated.WithLabelValues(rel, "skipped").Add(float64(report.SkippedCount))
	c.migrated.WithLabelValues(rel, "already_present").Add(float64(report.AlreadyPresentCount))
}

// RecordReconcile adds the number of objects whose counters were recomputed.
func (c *Collector) RecordReconcile(rel domain.Relation, updated int64) {
	c.reconciled.WithLabelValues(rel.String()).Add(float64(updated))
}

// RecordIntegrityFault counts a data integrity fault raised by operation.
func (c *Collector) RecordIntegrityFault(operation string) {
	c.integrityFaults.WithLabelValues(operation).Inc()
}

// ---------------------------------------------------------------------------
// HTTP
// ---------------------------------------------------------------------------

// InstrumentHandler wraps next with HTTP metrics collection.
// Requests are labelled by the ServeMux route pattern to bound cardinality.
func (c *Collector) InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		c.httpInFlight.Inc()
		defer c.httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		route := routeLabel(r)
		method := strings.ToUpper(r.Method)
		c.httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		c.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

// routeLabel returns the path part of the matched pattern, or "unmatched".
func routeLabel(r *http.Request) string {
	p := r.Pattern
	if p == "" {
		return "unmatched"
	}
	if i := strings.IndexByte(p, ' '); i >= 0 {
		p = p[i+1:]
	}
	return p
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

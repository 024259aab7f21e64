package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const healthCheckTimeout = 3 * time.Second

// pinger is a dependency that can report its availability.
type pinger interface {
	Ping(ctx context.Context) error
}

// Component is a named dependency checked by the health endpoints.
// An optional component being down degrades /health but does not fail /ready.
type Component struct {
	Name     string
	Check    pinger
	Optional bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components []Component
	version    string
}

// NewHealthHandler creates a HealthHandler. The database is always required.
func NewHealthHandler(db pinger, version string, extra ...Component) *HealthHandler {
	components := append([]Component{{Name: "database", Check: db}}, extra...)
	return &HealthHandler{components: components, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 if every required component is up, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	results := h.check(r.Context())

	status, code := "ok", http.StatusOK
	for _, c := range h.components {
		if !c.Optional && results[c.Name].Status != "ok" {
			status, code = "down", http.StatusServiceUnavailable
			break
		}
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	results := h.check(r.Context())

	overall := "ok"
	for _, c := range h.components {
		if results[c.Name].Status == "ok" {
			continue
		}
		if !c.Optional {
			overall = "down"
			break
		}
		overall = "degraded"
	}

	code := http.StatusOK
	if overall == "down" {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: results,
		Timestamp:  time.Now(),
	})
}

// check pings all components concurrently.
func (h *HealthHandler) check(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]CompStatus, len(h.components))
	)
	for _, c := range h.components {
		wg.Add(1)
		go func(c Component) {
			defer wg.Done()

			start := time.Now()
			err := c.Check.Ping(ctx)
			st := CompStatus{Status: "ok", Latency: time.Since(start).String()}
			if err != nil {
				st = CompStatus{Status: "down"}
			}

			mu.Lock()
			results[c.Name] = st
			mu.Unlock()
		}(c)
	}
	wg.Wait()
	return results
}

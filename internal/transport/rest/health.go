package rest

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"
)

const healthTimeout = 3 * time.Second

// CheckFunc probes one dependency. A nil error means the component is up.
type CheckFunc func(ctx context.Context) error

// HealthHandler serves the /live, /ready and /health probes.
type HealthHandler struct {
	checks  map[string]CheckFunc
	names   []string
	version string
}

// NewHealthHandler creates a HealthHandler over named component checks,
// e.g. {"database": pool.Ping}.
func NewHealthHandler(version string, checks map[string]CheckFunc) *HealthHandler {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return &HealthHandler{checks: checks, names: names, version: version}
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

// Ready is the readiness probe: 200 when every component is up, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components := h.run(r.Context())

	status, code := "ok", http.StatusOK
	if !allUp(components) {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.run(r.Context())

	status, code := "ok", http.StatusOK
	if !allUp(components) {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// run probes all components concurrently under one shared timeout.
func (h *HealthHandler) run(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = make(map[string]CompStatus, len(h.names))
	)
	for _, name := range h.names {
		check := h.checks[name]
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			err := check(ctx)
			latency := time.Since(start)

			st := CompStatus{Status: "ok", Latency: latency.String()}
			if err != nil {
				st = CompStatus{Status: "down"}
			}
			mu.Lock()
			out[name] = st
			mu.Unlock()
		}()
	}
	wg.Wait()
	return out
}

func allUp(components map[string]CompStatus) bool {
	for _, c := range components {
		if c.Status != "ok" {
			return false
		}
	}
	return true
}

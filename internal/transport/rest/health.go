package rest

import (
	"context"
	"net/http"
	"time"
)

// pinger is a backend that can report whether it is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 3 * time.Second

// Component statuses.
const (
	statusOK            = "ok"
	statusDown          = "down"
	statusDegraded      = "degraded"
	statusNotConfigured = "not_configured"
)

// HealthHandler serves health check endpoints. The local store is required;
// the remote store is optional and its outage only degrades the service,
// since calls fall back to local storage.
type HealthHandler struct {
	local   pinger
	remote  pinger
	version string
}

// NewHealthHandler creates a HealthHandler. remote is nil when the remote
// backend is not configured.
func NewHealthHandler(local, remote pinger, version string) *HealthHandler {
	return &HealthHandler{local: local, remote: remote, version: version}
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
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when local storage is usable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.local.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    statusDown,
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Health reports every backend with its ping latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	components := map[string]CompStatus{
		"local": probe(ctx, h.local),
	}
	if h.remote != nil {
		components["remote"] = probe(ctx, h.remote)
	} else {
		components["remote"] = CompStatus{Status: statusNotConfigured}
	}

	overall, code := statusOK, http.StatusOK
	switch {
	case components["local"].Status != statusOK:
		overall, code = statusDown, http.StatusServiceUnavailable
	case components["remote"].Status == statusDown:
		overall = statusDegraded
	}

	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func probe(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

package rest

import (
	"context"
	"net/http"
	"time"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

type journalCounter interface {
	Count() (int, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	journal journalCounter
	version string
}

// NewHealthHandler creates a HealthHandler. journal may be nil when
// reconciliation is disabled.
func NewHealthHandler(db dbPinger, journal journalCounter, version string) *HealthHandler {
	return &HealthHandler{db: db, journal: journal, version: version}
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
	// Pending is the number of journaled captures awaiting replay.
	Pending *int `json:"pending,omitempty"`
}

// Live reports that the process is up. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready pings the DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports the database with its ping latency and the capture journal
// with its backlog.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["database"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["database"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	if h.journal != nil {
		pending, err := h.journal.Count()
		if err != nil {
			components["journal"] = CompStatus{Status: "down"}
			overallStatus = "down"
		} else {
			components["journal"] = CompStatus{Status: "ok", Pending: &pending}
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

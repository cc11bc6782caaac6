// internal/server/handlers/health.go

package handlers

import (
	"net/http"
	"time"
)

// HealthHandler answers liveness probes. The health response is bare JSON,
// not wrapped in the API envelope.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates the health handler anchored at process start.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

type healthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// Check reports status, current time, and uptime in seconds.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startedAt).Seconds(),
	})
}

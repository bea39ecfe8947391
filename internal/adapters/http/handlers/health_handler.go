package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-address-selector/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-address-selector/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by the given registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It never touches geo-api or the
// session store.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready. Any failing check yields 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, healthy := dto.ToHealthResponse(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}

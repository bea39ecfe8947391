package dto

import (
	"context"
	"errors"
	"maps"
	"slices"
)

// Health status values reported by the probe endpoints.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
	HealthTimeout  = "timeout"
)

// HealthResponse is the body of /health/live and /health/ready. Checks maps
// each dependency name to "ok", "timeout", or its error text. Failing lists
// the names of failed checks in sorted order.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Failing []string          `json:"failing,omitempty"`
}

// ToHealthResponse folds per-check results into a readiness response and
// reports whether every check passed.
func ToHealthResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{
		Status: HealthReady,
		Checks: make(map[string]string, len(results)),
	}
	for _, name := range slices.Sorted(maps.Keys(results)) {
		err := results[name]
		switch {
		case err == nil:
			resp.Checks[name] = HealthOK
			continue
		case errors.Is(err, context.DeadlineExceeded):
			resp.Checks[name] = HealthTimeout
		default:
			resp.Checks[name] = err.Error()
		}
		resp.Failing = append(resp.Failing, name)
	}
	if len(resp.Failing) > 0 {
		resp.Status = HealthNotReady
	}
	return resp, len(resp.Failing) == 0
}

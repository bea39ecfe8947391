// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-address-selector/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	geoHandler *handlers.GeoHandler,
	selectionHandler *handlers.SelectionHandler,
	pageHandler *handlers.PageHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Server-rendered selector.
	r.Get("/", pageHandler.Selector)

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Direct lookups.
		r.Get("/provinces", geoHandler.ListProvinces)
		r.Get("/provinces/{provinceId}/districts", geoHandler.ListDistricts)
		r.Get("/districts/{districtId}/wards", geoHandler.ListWards)
		r.Get("/addresses/resolve", geoHandler.ResolveAddress)

		// Selection sessions.
		r.Post("/selections", selectionHandler.CreateSelection)
		r.Get("/selections/{id}", selectionHandler.GetSelection)
		r.Delete("/selections/{id}", selectionHandler.DeleteSelection)
		r.Put("/selections/{id}/province", selectionHandler.SelectProvince)
		r.Put("/selections/{id}/district", selectionHandler.SelectDistrict)
		r.Put("/selections/{id}/ward", selectionHandler.SelectWard)
	})

	return r
}

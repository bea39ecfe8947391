package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-address-selector/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-address-selector/internal/ports"
)

// GeoHandler exposes direct lookups of the administrative unit lists.
// Unlike selection sessions, downstream failures are returned to the caller.
type GeoHandler struct {
	svc ports.SelectionService
}

// NewGeoHandler creates a new GeoHandler with the given service port.
func NewGeoHandler(svc ports.SelectionService) *GeoHandler {
	return &GeoHandler{svc: svc}
}

// ListProvinces handles GET /api/v1/provinces.
func (h *GeoHandler) ListProvinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := h.svc.ListProvinces(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUnitListResponse(provinces))
}

// ListDistricts handles GET /api/v1/provinces/{provinceId}/districts.
func (h *GeoHandler) ListDistricts(w http.ResponseWriter, r *http.Request) {
	provinceID, err := pathParam(r, "provinceId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	districts, err := h.svc.ListDistricts(r.Context(), provinceID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUnitListResponse(districts))
}

// ListWards handles GET /api/v1/districts/{districtId}/wards.
func (h *GeoHandler) ListWards(w http.ResponseWriter, r *http.Request) {
	districtID, err := pathParam(r, "districtId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	wards, err := h.svc.ListWards(r.Context(), districtID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUnitListResponse(wards))
}

// ResolveAddress handles GET /api/v1/addresses/resolve.
func (h *GeoHandler) ResolveAddress(w http.ResponseWriter, r *http.Request) {
	province, district, ward := cascadeQuery(r)

	addr, err := h.svc.ResolveAddress(r.Context(), province, district, ward)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAddressResponse(addr))
}

package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/go-address-selector/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-address-selector/internal/domain/selection"
	"github.com/jsamuelsen11/go-address-selector/internal/ports"
)

// SelectionHandler handles HTTP requests for selection sessions.
type SelectionHandler struct {
	svc ports.SelectionService
}

// NewSelectionHandler creates a new SelectionHandler with the given service port.
func NewSelectionHandler(svc ports.SelectionService) *SelectionHandler {
	return &SelectionHandler{svc: svc}
}

// CreateSelection handles POST /api/v1/selections.
func (h *SelectionHandler) CreateSelection(w http.ResponseWriter, r *http.Request) {
	id, st, err := h.svc.CreateSession(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToSelectionResponse(id, st))
}

// GetSelection handles GET /api/v1/selections/{id}.
func (h *SelectionHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	st, err := h.svc.GetSession(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSelectionResponse(id, st))
}

// SelectProvince handles PUT /api/v1/selections/{id}/province.
func (h *SelectionHandler) SelectProvince(w http.ResponseWriter, r *http.Request) {
	h.selectLevel(w, r, h.svc.SelectProvince)
}

// SelectDistrict handles PUT /api/v1/selections/{id}/district.
func (h *SelectionHandler) SelectDistrict(w http.ResponseWriter, r *http.Request) {
	h.selectLevel(w, r, h.svc.SelectDistrict)
}

// SelectWard handles PUT /api/v1/selections/{id}/ward.
func (h *SelectionHandler) SelectWard(w http.ResponseWriter, r *http.Request) {
	h.selectLevel(w, r, h.svc.SelectWard)
}

// DeleteSelection handles DELETE /api/v1/selections/{id}.
func (h *SelectionHandler) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteSession(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type selectFunc func(ctx context.Context, id, unitID string) (selection.State, error)

func (h *SelectionHandler) selectLevel(w http.ResponseWriter, r *http.Request, fn selectFunc) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SelectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	st, err := fn(r.Context(), id, req.Value())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSelectionResponse(id, st))
}

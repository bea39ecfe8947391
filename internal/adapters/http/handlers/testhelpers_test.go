package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-address-selector/internal/domain/address"
	"github.com/jsamuelsen11/go-address-selector/internal/domain/selection"
)

const testSessionID = "6f1c2a7e-3b1d-4c55-9f0e-2d8a4b7c9e10"

var (
	hanoi  = address.Province{ID: "01", Name: "Hà Nội"}
	baDinh = address.District{ID: "001", Name: "Ba Đình"}
	phucXa = address.Ward{ID: "00001", Name: "Phúc Xá"}
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// provincesLoaded is the state right after a session loads provinces.
func provincesLoaded() selection.State {
	return selection.State{
		Provinces:      []address.Province{hanoi},
		ProvinceStatus: selection.StatusReady,
		DistrictStatus: selection.StatusIdle,
		WardStatus:     selection.StatusIdle,
	}
}

// fullySelected is the state with all three levels chosen.
func fullySelected() selection.State {
	return selection.State{
		Provinces:      []address.Province{hanoi},
		Districts:      []address.District{baDinh},
		Wards:          []address.Ward{phucXa},
		ProvinceStatus: selection.StatusReady,
		DistrictStatus: selection.StatusReady,
		WardStatus:     selection.StatusReady,
		Address: address.Address{
			Province: address.Choice{ID: hanoi.ID, Name: hanoi.Name},
			District: address.Choice{ID: baDinh.ID, Name: baDinh.Name},
			Ward:     address.Choice{ID: phucXa.ID, Name: phucXa.Name},
		},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

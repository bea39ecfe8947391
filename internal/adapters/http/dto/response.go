// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/go-address-selector/internal/domain/address"
	"github.com/jsamuelsen11/go-address-selector/internal/domain/selection"
)

// UnitResponse is one province, district, or ward in HTTP responses.
type UnitResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnitListResponse is a list of administrative units in HTTP responses.
type UnitListResponse struct {
	Results []UnitResponse `json:"results"`
	Count   int            `json:"count"`
}

// ToUnitListResponse converts provinces, districts, or wards to a list
// response. A nil slice becomes an empty list.
func ToUnitListResponse[T address.Unit](units []T) UnitListResponse {
	items := toUnits(units)
	return UnitListResponse{Results: items, Count: len(items)}
}

// ChoiceResponse is a selected ID with its resolved name.
type ChoiceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddressResponse is a rendered address in HTTP responses. Text is the
// display string, which falls back to the no-selection prompt.
type AddressResponse struct {
	Province ChoiceResponse `json:"province"`
	District ChoiceResponse `json:"district"`
	Ward     ChoiceResponse `json:"ward"`
	Text     string         `json:"text"`
	Empty    bool           `json:"empty"`
}

// ToAddressResponse converts a domain Address to its response DTO.
func ToAddressResponse(a address.Address) AddressResponse {
	return AddressResponse{
		Province: ChoiceResponse(a.Province),
		District: ChoiceResponse(a.District),
		Ward:     ChoiceResponse(a.Ward),
		Text:     a.String(),
		Empty:    a.IsEmpty(),
	}
}

// LevelStatusResponse holds per-level fetch status.
type LevelStatusResponse struct {
	Province string `json:"province"`
	District string `json:"district"`
	Ward     string `json:"ward"`
}

// ControlsResponse holds per-level input enablement.
type ControlsResponse struct {
	Province bool `json:"province"`
	District bool `json:"district"`
	Ward     bool `json:"ward"`
}

// SelectionResponse is the full state of a selection session.
type SelectionResponse struct {
	ID        string              `json:"id"`
	Phase     string              `json:"phase"`
	Loading   bool                `json:"loading"`
	Status    LevelStatusResponse `json:"status"`
	Controls  ControlsResponse    `json:"controls"`
	Provinces []UnitResponse      `json:"provinces"`
	Districts []UnitResponse      `json:"districts"`
	Wards     []UnitResponse      `json:"wards"`
	Address   AddressResponse     `json:"address"`
}

// ToSelectionResponse converts a session ID and its state to a response DTO.
func ToSelectionResponse(id string, st selection.State) SelectionResponse {
	controls := st.Controls()
	return SelectionResponse{
		ID:      id,
		Phase:   st.Phase().String(),
		Loading: st.Loading(),
		Status: LevelStatusResponse{
			Province: st.ProvinceStatus.String(),
			District: st.DistrictStatus.String(),
			Ward:     st.WardStatus.String(),
		},
		Controls:  ControlsResponse(controls),
		Provinces: toUnits(st.Provinces),
		Districts: toUnits(st.Districts),
		Wards:     toUnits(st.Wards),
		Address:   ToAddressResponse(st.Address),
	}
}

func toUnits[T address.Unit](units []T) []UnitResponse {
	items := make([]UnitResponse, len(units))
	for i, u := range units {
		items[i] = UnitResponse{ID: u.Key(), Name: u.Label()}
	}
	return items
}

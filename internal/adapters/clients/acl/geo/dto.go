// Package geo implements the Anti-Corruption Layer translators for the
// downstream VnAppMob province API.
package geo

import "encoding/json"

// ListResponseDTO is the envelope shared by the three list endpoints.
// Results stays raw so that an absent, null, or non-array value can be
// tolerated instead of failing the whole decode.
type ListResponseDTO struct {
	Results json.RawMessage `json:"results"`
}

// ProvinceDTO matches an element of GET /province/.
type ProvinceDTO struct {
	ProvinceID   string `json:"province_id"`
	ProvinceName string `json:"province_name"`
	ProvinceType string `json:"province_type,omitempty"`
}

// DistrictDTO matches an element of GET /province/district/{province_id}.
type DistrictDTO struct {
	DistrictID   string `json:"district_id"`
	DistrictName string `json:"district_name"`
	DistrictType string `json:"district_type,omitempty"`
}

// WardDTO matches an element of GET /province/ward/{district_id}.
type WardDTO struct {
	WardID   string `json:"ward_id"`
	WardName string `json:"ward_name"`
	WardType string `json:"ward_type,omitempty"`
}

package geo

import (
	"bytes"
	"encoding/json"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jsamuelsen11/go-address-selector/internal/domain/address"
)

// ToDomainProvinces converts a province list envelope to domain provinces.
func ToDomainProvinces(dto ListResponseDTO) []address.Province {
	items := decodeResults[ProvinceDTO](dto.Results)
	out := make([]address.Province, len(items))
	for i, p := range items {
		out[i] = address.Province{ID: p.ProvinceID, Name: cleanName(p.ProvinceName)}
	}
	return out
}

// ToDomainDistricts converts a district list envelope to domain districts.
func ToDomainDistricts(dto ListResponseDTO) []address.District {
	items := decodeResults[DistrictDTO](dto.Results)
	out := make([]address.District, len(items))
	for i, d := range items {
		out[i] = address.District{ID: d.DistrictID, Name: cleanName(d.DistrictName)}
	}
	return out
}

// ToDomainWards converts a ward list envelope to domain wards.
func ToDomainWards(dto ListResponseDTO) []address.Ward {
	items := decodeResults[WardDTO](dto.Results)
	out := make([]address.Ward, len(items))
	for i, w := range items {
		out[i] = address.Ward{ID: w.WardID, Name: cleanName(w.WardName)}
	}
	return out
}

// cleanName trims a display name and composes its Vietnamese diacritics to
// NFC, so names compare and render the same whichever form geo-api sent.
// IDs are left untouched; lookups match them exactly.
func cleanName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// decodeResults decodes raw as a JSON array of T. Anything that is not an
// array of objects (absent, null, a string, a number) yields an empty set.
func decodeResults[T any](raw json.RawMessage) []T {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return []T{}
	}
	return items
}

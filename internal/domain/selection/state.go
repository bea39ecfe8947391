// Package selection describes the observable state of a cascading address
// selection: the loaded option sequences, the current choices, and the
// per-level fetch status from which loading phase and control enablement are
// derived.
package selection

import "github.com/jsamuelsen11/go-address-selector/internal/domain/address"

// Level identifies one tier of the cascade.
type Level string

const (
	LevelProvince Level = "province"
	LevelDistrict Level = "district"
	LevelWard     Level = "ward"
)

// String implements fmt.Stringer.
func (l Level) String() string {
	return string(l)
}

// Status is the fetch status of a single level's option sequence.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Phase summarizes the whole selector in a single state.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseLoadingProvinces Phase = "loading_provinces"
	PhaseLoadingDistricts Phase = "loading_districts"
	PhaseLoadingWards     Phase = "loading_wards"
	PhaseError            Phase = "error"
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	return string(p)
}

// Controls reports which level inputs accept user changes.
type Controls struct {
	Province bool
	District bool
	Ward     bool
}

// State is an immutable copy of a selector taken at one instant.
type State struct {
	Provinces []address.Province
	Districts []address.District
	Wards     []address.Ward

	ProvinceStatus Status
	DistrictStatus Status
	WardStatus     Status

	// Address carries the selected identifiers and their resolved names.
	Address address.Address
}

// Phase derives the overall phase. A loading level wins over a failed one,
// and shallower loads win over deeper ones.
func (s State) Phase() Phase {
	switch {
	case s.ProvinceStatus == StatusLoading:
		return PhaseLoadingProvinces
	case s.DistrictStatus == StatusLoading:
		return PhaseLoadingDistricts
	case s.WardStatus == StatusLoading:
		return PhaseLoadingWards
	case s.ProvinceStatus == StatusFailed,
		s.DistrictStatus == StatusFailed,
		s.WardStatus == StatusFailed:
		return PhaseError
	default:
		return PhaseIdle
	}
}

// Loading reports whether any level has a fetch in flight.
func (s State) Loading() bool {
	return s.ProvinceStatus == StatusLoading ||
		s.DistrictStatus == StatusLoading ||
		s.WardStatus == StatusLoading
}

// Controls derives per-level enablement. A level is enabled when its parent
// is selected and its own sequence is not loading.
func (s State) Controls() Controls {
	return Controls{
		Province: s.ProvinceStatus != StatusLoading,
		District: s.Address.Province.ID != "" && s.DistrictStatus != StatusLoading,
		Ward:     s.Address.District.ID != "" && s.WardStatus != StatusLoading,
	}
}

// Package address defines the three-tier Vietnamese administrative units
// (province, district, ward) and the rendered address built from a selection.
package address

import "strings"

// NoSelection is displayed when no level of the address has been chosen.
const NoSelection = "Vui lòng chọn địa chỉ"

// Province is a top-level unit (tỉnh / thành phố trung ương).
type Province struct {
	ID   string
	Name string
}

// District is a second-level unit (quận / huyện) belonging to one Province.
type District struct {
	ID   string
	Name string
}

// Ward is a third-level unit (phường / xã) belonging to one District.
type Ward struct {
	ID   string
	Name string
}

func (p Province) Key() string   { return p.ID }
func (p Province) Label() string { return p.Name }
func (d District) Key() string   { return d.ID }
func (d District) Label() string { return d.Name }
func (w Ward) Key() string       { return w.ID }
func (w Ward) Label() string     { return w.Name }

// Unit is satisfied by the three administrative unit types.
type Unit interface {
	Province | District | Ward
	Key() string
	Label() string
}

// FindName returns the name of the unit whose ID matches id exactly.
// It returns "" when id is empty or no unit matches.
func FindName[T Unit](units []T, id string) string {
	if id == "" {
		return ""
	}
	for _, u := range units {
		if u.Key() == id {
			return u.Label()
		}
	}
	return ""
}

// Choice is a selected identifier together with its resolved display name.
type Choice struct {
	ID   string
	Name string
}

// IsZero reports whether nothing is selected.
func (c Choice) IsZero() bool {
	return c.ID == "" && c.Name == ""
}

// Address is the rendered result of a cascading selection.
type Address struct {
	Province Choice
	District Choice
	Ward     Choice
}

// IsEmpty reports whether no level has a resolved name.
func (a Address) IsEmpty() bool {
	return a.Province.Name == "" && a.District.Name == "" && a.Ward.Name == ""
}

// String renders the address from the most specific level outwards,
// e.g. "Phúc Xá, Ba Đình, Hà Nội". Levels without a name are skipped.
func (a Address) String() string {
	if a.IsEmpty() {
		return NoSelection
	}

	parts := make([]string, 0, 3)
	for _, name := range []string{a.Ward.Name, a.District.Name, a.Province.Name} {
		if name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}

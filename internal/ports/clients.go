package ports

import (
	"context"

	"github.com/jsamuelsen11/go-address-selector/internal/domain/address"
)

// GeoClient defines the client port for the downstream geographic API.
// Implemented by the ACL adapter; called by the application layer.
// Each method returns a freshly fetched sequence; nothing is cached.
type GeoClient interface {
	// ListProvinces returns every province.
	ListProvinces(ctx context.Context) ([]address.Province, error)

	// ListDistricts returns the districts of the given province.
	// An unknown province yields an empty slice or domain.ErrNotFound,
	// depending on the downstream response.
	ListDistricts(ctx context.Context, provinceID string) ([]address.District, error)

	// ListWards returns the wards of the given district.
	ListWards(ctx context.Context, districtID string) ([]address.Ward, error)
}

package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/go-address-selector/internal/domain/address"
	"github.com/jsamuelsen11/go-address-selector/internal/domain/selection"
)

// SelectionService defines the service port for cascading address selection.
// Implemented by the application layer; called by inbound adapters (handlers).
//
// A session owns one cascading selector. Fetch failures inside a session are
// never returned; they surface only as a failed level status in the state.
type SelectionService interface {
	// CreateSession starts a selector, loads the province list, and returns
	// the new session ID with the resulting state.
	// Returns domain.ErrUnavailable when the session limit is reached.
	CreateSession(ctx context.Context) (string, selection.State, error)

	// GetSession returns the current state of a session.
	// Returns domain.ErrNotFound if the session does not exist.
	GetSession(ctx context.Context, id string) (selection.State, error)

	// SelectProvince changes the province of a session and cascades the reset.
	// An empty provinceID clears the province and all descendants.
	SelectProvince(ctx context.Context, id, provinceID string) (selection.State, error)

	// SelectDistrict changes the district of a session and cascades the reset.
	// Returns domain.ErrValidation when no province is selected.
	SelectDistrict(ctx context.Context, id, districtID string) (selection.State, error)

	// SelectWard changes the ward of a session.
	// Returns domain.ErrValidation when no district is selected.
	SelectWard(ctx context.Context, id, wardID string) (selection.State, error)

	// DeleteSession discards a session.
	// Returns domain.ErrNotFound if the session does not exist.
	DeleteSession(ctx context.Context, id string) error

	// SweepSessions removes sessions idle since before now minus the
	// configured TTL and returns how many were removed.
	SweepSessions(now time.Time) int

	// ListProvinces, ListDistricts and ListWards are direct lookups that
	// return downstream errors to the caller.
	ListProvinces(ctx context.Context) ([]address.Province, error)
	ListDistricts(ctx context.Context, provinceID string) ([]address.District, error)
	ListWards(ctx context.Context, districtID string) ([]address.Ward, error)

	// ReplaySelection runs the given choices through a fresh, unstored
	// selector, in cascade order, and returns the final state. It backs
	// server-rendered pages that carry the selection in the URL.
	// Returns domain.ErrValidation when a child ID is given without its parent.
	ReplaySelection(ctx context.Context, provinceID, districtID, wardID string) (selection.State, error)

	// ResolveAddress fetches the levels named by the given IDs concurrently
	// and resolves each ID to its display name.
	// Returns domain.ErrValidation when a child ID is given without its parent.
	ResolveAddress(ctx context.Context, provinceID, districtID, wardID string) (address.Address, error)
}

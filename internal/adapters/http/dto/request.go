package dto

import "github.com/jsamuelsen11/go-address-selector/internal/domain"

const msgRequired = "is required"

// SelectRequest is the JSON body for changing one level of a selection.
// An empty ID clears the level; a missing ID is rejected.
type SelectRequest struct {
	ID *string `json:"id"`
}

// Validate checks that the id field is present.
// Returns a *domain.ValidationError if it is not.
func (r *SelectRequest) Validate() error {
	if r.ID == nil {
		return domain.NewValidationError("id", msgRequired)
	}
	return nil
}

// Value returns the requested ID, or "" when absent.
func (r *SelectRequest) Value() string {
	if r.ID == nil {
		return ""
	}
	return *r.ID
}

package selector

import (
	"github.com/jsamuelsen11/go-address-selector/internal/domain/address"
	"github.com/jsamuelsen11/go-address-selector/internal/domain/selection"
	"github.com/jsamuelsen11/go-address-selector/internal/platform/telemetry"
)

// outcome is how a completed fetch was applied.
type outcome string

const (
	outcomeSuccess outcome = telemetry.ResultSuccess
	outcomeFailed  outcome = telemetry.ResultFailed
	outcomeStale   outcome = telemetry.ResultStale
)

// level is one tier of the cascade. All methods require the selector mutex.
type level[T address.Unit] struct {
	options  []T
	selected address.Choice
	status   selection.Status
	gen      uint64
}

// choose records id and resolves its name against the loaded options.
func (l *level[T]) choose(id string) {
	l.selected = address.Choice{ID: id, Name: address.FindName(l.options, id)}
}

// reset clears the level and invalidates any fetch in flight for it.
func (l *level[T]) reset() {
	l.options = nil
	l.selected = address.Choice{}
	l.status = selection.StatusIdle
	l.gen++
}

// begin marks a new fetch in flight and returns its generation.
func (l *level[T]) begin() uint64 {
	l.options = nil
	l.status = selection.StatusLoading
	l.gen++
	return l.gen
}

// settle applies a completed fetch if gen is still current.
func (l *level[T]) settle(gen uint64, items []T, err error) outcome {
	if gen != l.gen {
		return outcomeStale
	}
	if err != nil {
		l.options = nil
		l.status = selection.StatusFailed
		return outcomeFailed
	}
	if items == nil {
		items = []T{}
	}
	l.options = items
	l.status = selection.StatusReady
	return outcomeSuccess
}

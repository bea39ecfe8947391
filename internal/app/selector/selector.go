// Package selector implements the cascading province → district → ward
// selection state machine.
//
// Selecting a level resets every deeper level and, for a non-empty ID,
// fetches the option sequence of the next level. Each fetch is stamped with a
// per-level generation; a completion whose generation is no longer current
// is discarded, so a slow response for a superseded parent can never
// populate the lists of the current one.
//
// Fetch failures are not returned. They are logged, counted, and recorded as
// [selection.StatusFailed] on the affected level; the caller retries by
// selecting the parent again.
//
// A Selector is safe for concurrent use. Transitions are applied under a
// mutex, fetches run on the calling goroutine with the mutex released, and
// results are applied only if still current.
package selector

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-address-selector/internal/domain"
	"github.com/jsamuelsen11/go-address-selector/internal/domain/address"
	"github.com/jsamuelsen11/go-address-selector/internal/domain/selection"
	"github.com/jsamuelsen11/go-address-selector/internal/platform/logging"
	"github.com/jsamuelsen11/go-address-selector/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-address-selector/internal/ports"
)

// Option configures a Selector.
type Option func(*Selector)

// WithMetrics records fetch outcomes on metrics.SelectorFetchTotal.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Selector) { s.metrics = m }
}

// Selector owns the state of one cascading address selection.
type Selector struct {
	client  ports.GeoClient
	logger  *slog.Logger
	metrics *telemetry.Metrics

	mu        sync.Mutex
	provinces level[address.Province]
	districts level[address.District]
	wards     level[address.Ward]
}

// New creates an idle Selector. Call LoadProvinces to populate the first
// level.
func New(client ports.GeoClient, logger *slog.Logger, opts ...Option) *Selector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Selector{
		client: client,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.provinces.status = selection.StatusIdle
	s.districts.status = selection.StatusIdle
	s.wards.status = selection.StatusIdle
	return s
}

// LoadProvinces fetches the province sequence. The current province choice
// is kept.
func (s *Selector) LoadProvinces(ctx context.Context) {
	s.mu.Lock()
	gen := s.provinces.begin()
	s.mu.Unlock()

	items, err := s.client.ListProvinces(ctx)

	s.mu.Lock()
	res := s.provinces.settle(gen, items, err)
	s.mu.Unlock()

	s.report(ctx, selection.LevelProvince, "", res, err)
}

// SelectProvince chooses a province, clears the district and ward levels,
// and fetches the districts of id. An empty id only clears.
func (s *Selector) SelectProvince(ctx context.Context, id string) {
	s.mu.Lock()
	s.provinces.choose(id)
	s.districts.reset()
	s.wards.reset()
	if id == "" {
		s.mu.Unlock()
		return
	}
	gen := s.districts.begin()
	s.mu.Unlock()

	items, err := s.client.ListDistricts(ctx, id)

	s.mu.Lock()
	res := s.districts.settle(gen, items, err)
	s.mu.Unlock()

	s.report(ctx, selection.LevelDistrict, id, res, err)
}

// SelectDistrict chooses a district, clears the ward level, and fetches the
// wards of id. An empty id only clears.
//
// A non-empty id without a selected province is rejected with a
// *domain.ValidationError and the state is left unchanged.
func (s *Selector) SelectDistrict(ctx context.Context, id string) error {
	s.mu.Lock()
	if id != "" && s.provinces.selected.ID == "" {
		s.mu.Unlock()
		return domain.NewValidationError("district", "a province must be selected first")
	}
	s.districts.choose(id)
	s.wards.reset()
	if id == "" {
		s.mu.Unlock()
		return nil
	}
	gen := s.wards.begin()
	s.mu.Unlock()

	items, err := s.client.ListWards(ctx, id)

	s.mu.Lock()
	res := s.wards.settle(gen, items, err)
	s.mu.Unlock()

	s.report(ctx, selection.LevelWard, id, res, err)
	return nil
}

// SelectWard chooses a ward. Nothing cascades from the terminal level.
//
// A non-empty id without a selected district is rejected with a
// *domain.ValidationError and the state is left unchanged.
func (s *Selector) SelectWard(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" && s.districts.selected.ID == "" {
		return domain.NewValidationError("ward", "a district must be selected first")
	}
	s.wards.choose(id)
	return nil
}

// State returns a consistent copy of the selector.
func (s *Selector) State() selection.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return selection.State{
		Provinces:      slices.Clone(s.provinces.options),
		Districts:      slices.Clone(s.districts.options),
		Wards:          slices.Clone(s.wards.options),
		ProvinceStatus: s.provinces.status,
		DistrictStatus: s.districts.status,
		WardStatus:     s.wards.status,
		Address: address.Address{
			Province: s.provinces.selected,
			District: s.districts.selected,
			Ward:     s.wards.selected,
		},
	}
}

// report logs and counts a settled fetch.
func (s *Selector) report(ctx context.Context, lvl selection.Level, parentID string, res outcome, err error) {
	logger := logging.FromContextOr(ctx, s.logger)

	switch res {
	case outcomeStale:
		logger.DebugContext(ctx, "discarded stale fetch",
			slog.String("level", lvl.String()),
			slog.String("parent_id", parentID),
		)
	case outcomeFailed:
		logger.ErrorContext(ctx, "fetch failed",
			slog.String("level", lvl.String()),
			slog.String("parent_id", parentID),
			slog.String("error", err.Error()),
		)
	}

	if s.metrics != nil {
		s.metrics.SelectorFetchTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrLevel.String(lvl.String()),
			telemetry.AttrResult.String(string(res)),
		))
	}
}

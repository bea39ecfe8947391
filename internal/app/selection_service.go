// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-address-selector/internal/app/fanout"
	"github.com/jsamuelsen11/go-address-selector/internal/app/selector"
	"github.com/jsamuelsen11/go-address-selector/internal/domain"
	"github.com/jsamuelsen11/go-address-selector/internal/domain/address"
	"github.com/jsamuelsen11/go-address-selector/internal/domain/selection"
	"github.com/jsamuelsen11/go-address-selector/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-address-selector/internal/ports"
)

// Compile-time checks.
var (
	_ ports.SelectionService = (*SelectionService)(nil)
	_ ports.HealthChecker    = (*SelectionService)(nil)
)

const (
	defaultSessionTTL  = 30 * time.Minute
	defaultMaxSessions = 10000
)

// ServiceOption configures a SelectionService.
type ServiceOption func(*SelectionService)

// WithSessionTTL sets how long an untouched session survives a sweep.
func WithSessionTTL(d time.Duration) ServiceOption {
	return func(s *SelectionService) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// WithMaxSessions caps the number of live sessions.
func WithMaxSessions(n int) ServiceOption {
	return func(s *SelectionService) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithMetrics records session counts and selector fetch outcomes.
func WithMetrics(m *telemetry.Metrics) ServiceOption {
	return func(s *SelectionService) { s.metrics = m }
}

// session is one client's selector plus its last access time.
type session struct {
	sel      *selector.Selector
	lastUsed atomic.Int64 // unix nanoseconds
}

func (s *session) touch(now time.Time) {
	s.lastUsed.Store(now.UnixNano())
}

// SelectionService implements ports.SelectionService. It keeps selection
// sessions in memory and answers direct lookups through the GeoClient port.
// Nothing fetched is cached; every list comes from a fresh downstream call.
type SelectionService struct {
	geoClient   ports.GeoClient
	logger      *slog.Logger
	metrics     *telemetry.Metrics
	ttl         time.Duration
	maxSessions int
	now         func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewSelectionService creates a SelectionService backed by client. The logger
// is used for structured request and error logging.
func NewSelectionService(client ports.GeoClient, logger *slog.Logger, opts ...ServiceOption) *SelectionService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &SelectionService{
		geoClient:   client,
		logger:      logger,
		ttl:         defaultSessionTTL,
		maxSessions: defaultMaxSessions,
		now:         time.Now,
		sessions:    make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSession registers a new selector and loads its provinces. A failed
// province load still yields a session; its state reports the failure.
func (s *SelectionService) CreateSession(ctx context.Context) (string, selection.State, error) {
	id := uuid.NewString()
	sess := &session{sel: selector.New(s.geoClient, s.logger, s.selectorOptions()...)}
	sess.touch(s.now())

	s.mu.Lock()
	if len(s.sessions) >= s.maxSessions {
		s.mu.Unlock()
		s.logger.WarnContext(ctx, "session limit reached", slog.Int("max_sessions", s.maxSessions))
		return "", selection.State{}, fmt.Errorf("session limit of %d reached: %w", s.maxSessions, domain.ErrUnavailable)
	}
	s.sessions[id] = sess
	s.mu.Unlock()

	s.addSessions(ctx, 1)
	s.logger.InfoContext(ctx, "created selection session", slog.String("session_id", id))

	sess.sel.LoadProvinces(ctx)
	return id, sess.sel.State(), nil
}

// GetSession returns the current state of a session.
func (s *SelectionService) GetSession(_ context.Context, id string) (selection.State, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return selection.State{}, err
	}
	return sess.sel.State(), nil
}

// SelectProvince changes a session's province.
func (s *SelectionService) SelectProvince(ctx context.Context, id, provinceID string) (selection.State, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return selection.State{}, err
	}

	sess.sel.SelectProvince(ctx, provinceID)
	return sess.sel.State(), nil
}

// SelectDistrict changes a session's district.
func (s *SelectionService) SelectDistrict(ctx context.Context, id, districtID string) (selection.State, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return selection.State{}, err
	}

	if err := sess.sel.SelectDistrict(ctx, districtID); err != nil {
		return selection.State{}, err
	}
	return sess.sel.State(), nil
}

// SelectWard changes a session's ward.
func (s *SelectionService) SelectWard(_ context.Context, id, wardID string) (selection.State, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return selection.State{}, err
	}

	if err := sess.sel.SelectWard(wardID); err != nil {
		return selection.State{}, err
	}
	return sess.sel.State(), nil
}

// DeleteSession discards a session.
func (s *SelectionService) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}

	s.addSessions(ctx, -1)
	s.logger.InfoContext(ctx, "deleted selection session", slog.String("session_id", id))
	return nil
}

// SweepSessions removes sessions not touched within the TTL before now.
func (s *SelectionService) SweepSessions(now time.Time) int {
	cutoff := now.Add(-s.ttl).UnixNano()

	s.mu.Lock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastUsed.Load() < cutoff {
			delete(s.sessions, id)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		s.addSessions(context.Background(), -int64(removed))
		s.logger.Info("swept idle selection sessions", slog.Int("removed", removed))
	}
	return removed
}

// SessionCount returns the number of live sessions.
func (s *SelectionService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Name identifies the session store in health reports.
func (s *SelectionService) Name() string {
	return "sessions"
}

// HealthCheck fails when the session store is full, since no new session can
// be created until the janitor sweeps or clients delete theirs.
func (s *SelectionService) HealthCheck(_ context.Context) error {
	if n := s.SessionCount(); n >= s.maxSessions {
		return fmt.Errorf("sessions: at capacity (%d/%d)", n, s.maxSessions)
	}
	return nil
}

// ListProvinces returns every province.
func (s *SelectionService) ListProvinces(ctx context.Context) ([]address.Province, error) {
	provinces, err := s.geoClient.ListProvinces(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list provinces",
			slog.String("operation", "ListProvinces"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return provinces, nil
}

// ListDistricts returns the districts of a province.
func (s *SelectionService) ListDistricts(ctx context.Context, provinceID string) ([]address.District, error) {
	if provinceID == "" {
		return nil, domain.NewValidationError("province", "is required")
	}

	districts, err := s.geoClient.ListDistricts(ctx, provinceID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list districts",
			slog.String("operation", "ListDistricts"),
			slog.String("province_id", provinceID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return districts, nil
}

// ListWards returns the wards of a district.
func (s *SelectionService) ListWards(ctx context.Context, districtID string) ([]address.Ward, error) {
	if districtID == "" {
		return nil, domain.NewValidationError("district", "is required")
	}

	wards, err := s.geoClient.ListWards(ctx, districtID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list wards",
			slog.String("operation", "ListWards"),
			slog.String("district_id", districtID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return wards, nil
}

// ReplaySelection drives a throwaway selector through the given choices.
// Fetch failures surface in the returned state, not as an error.
func (s *SelectionService) ReplaySelection(ctx context.Context, provinceID, districtID, wardID string) (selection.State, error) {
	if err := validateCascade(provinceID, districtID, wardID); err != nil {
		return selection.State{}, err
	}

	sel := selector.New(s.geoClient, s.logger, s.selectorOptions()...)
	sel.LoadProvinces(ctx)
	if provinceID == "" {
		return sel.State(), nil
	}

	sel.SelectProvince(ctx, provinceID)
	if districtID == "" {
		return sel.State(), nil
	}
	if err := sel.SelectDistrict(ctx, districtID); err != nil {
		return selection.State{}, err
	}
	if err := sel.SelectWard(wardID); err != nil {
		return selection.State{}, err
	}
	return sel.State(), nil
}

// ResolveAddress fetches the lists the given IDs belong to, in parallel, and
// resolves each ID to its name. An ID missing from its list resolves to an
// empty name.
func (s *SelectionService) ResolveAddress(ctx context.Context, provinceID, districtID, wardID string) (address.Address, error) {
	if err := validateCascade(provinceID, districtID, wardID); err != nil {
		return address.Address{}, err
	}

	var (
		provinces []address.Province
		districts []address.District
		wards     []address.Ward
		tasks     []func(context.Context) error
	)
	if provinceID != "" {
		tasks = append(tasks, func(ctx context.Context) (err error) {
			provinces, err = s.geoClient.ListProvinces(ctx)
			return err
		})
	}
	if districtID != "" {
		tasks = append(tasks, func(ctx context.Context) (err error) {
			districts, err = s.geoClient.ListDistricts(ctx, provinceID)
			return err
		})
	}
	if wardID != "" {
		tasks = append(tasks, func(ctx context.Context) (err error) {
			wards, err = s.geoClient.ListWards(ctx, districtID)
			return err
		})
	}

	if err := fanout.All(ctx, tasks...); err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve address",
			slog.String("operation", "ResolveAddress"),
			slog.String("province_id", provinceID),
			slog.String("district_id", districtID),
			slog.String("ward_id", wardID),
			slog.Any("error", err),
		)
		return address.Address{}, fmt.Errorf("resolving address: %w", err)
	}

	return address.Address{
		Province: choice(provinceID, address.FindName(provinces, provinceID)),
		District: choice(districtID, address.FindName(districts, districtID)),
		Ward:     choice(wardID, address.FindName(wards, wardID)),
	}, nil
}

func (s *SelectionService) lookup(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	sess.touch(s.now())
	return sess, nil
}

func (s *SelectionService) selectorOptions() []selector.Option {
	if s.metrics == nil {
		return nil
	}
	return []selector.Option{selector.WithMetrics(s.metrics)}
}

func (s *SelectionService) addSessions(ctx context.Context, delta int64) {
	if s.metrics != nil {
		s.metrics.SelectorSessions.Add(ctx, delta)
	}
}

// validateCascade rejects a child ID given without its parent.
func validateCascade(provinceID, districtID, wardID string) error {
	fields := make(map[string]string)
	if districtID != "" && provinceID == "" {
		fields["district"] = "requires province"
	}
	if wardID != "" && districtID == "" {
		fields["ward"] = "requires district"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func choice(id, name string) address.Choice {
	return address.Choice{ID: id, Name: name}
}

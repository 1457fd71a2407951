// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"

	repository "github.com/okian/heft/internal/adapters/repository"
	"github.com/okian/heft/internal/domain/estimate"
	"github.com/okian/heft/internal/domain/geom"
	"github.com/okian/heft/internal/domain/placement"
	"github.com/okian/heft/internal/domain/types"
	"github.com/okian/heft/internal/session"
	"github.com/okian/heft/pkg/logger"
	"github.com/okian/heft/pkg/metrics"
)

// Service owns the session store and applies every engine operation on
// behalf of the HTTP API.
type Service struct {
	mu sync.RWMutex

	// Core components
	store repository.Store

	// Configuration
	maxSessions      int
	hitRadius        float64
	defaultBreed     estimate.Breed
	defaultCondition estimate.Condition
	useHints         bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithMaxSessions bounds the number of concurrent sessions.
func WithMaxSessions(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithHitRadius sets the touch slop for point grabbing, in display units.
func WithHitRadius(r float64) Option {
	return func(s *Service) {
		if r > 0 {
			s.hitRadius = r
		}
	}
}

// WithDefaultAnimal seeds new sessions with a breed and condition.
func WithDefaultAnimal(b estimate.Breed, c estimate.Condition) Option {
	return func(s *Service) {
		s.defaultBreed = b
		s.defaultCondition = c
	}
}

// WithDetectorHints enables or disables hint-driven placement by default.
func WithDetectorHints(enabled bool) Option {
	return func(s *Service) {
		s.useHints = enabled
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxSessions:      10_000,
		hitRadius:        session.DefaultHitRadius,
		defaultBreed:     estimate.OtherBreed,
		defaultCondition: estimate.Average,
		useHints:         true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.store = repository.NewMemStore(ctx, repository.WithCapacity(s.maxSessions))
	s.started = true
	s.logger.Info(ctx, "measurement service started",
		logger.Int("maxSessions", s.maxSessions),
		logger.Float64("hitRadius", s.hitRadius),
		logger.Bool("detectorHints", s.useHints),
	)
	return nil
}

// Stop shuts the service down. Sessions are in-memory only; there is
// nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "measurement service stopped")
}

// CreateSession registers a fresh session and returns its snapshot.
func (s *Service) CreateSession(ctx context.Context) (types.SessionView, error) {
	sess := session.New(
		session.WithHitRadius(s.hitRadius),
		session.WithAnimal(s.defaultBreed, s.defaultCondition),
	)
	if err := s.store.Put(ctx, sess); err != nil {
		return types.SessionView{}, err
	}
	metrics.RecordSessionCreated()
	s.logger.Debug(ctx, "session created", logger.String("sessionID", sess.ID()))
	return sess.Snapshot(), nil
}

// Session returns the snapshot for a session id.
func (s *Service) Session(ctx context.Context, id string) (types.SessionView, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return types.SessionView{}, err
	}
	return sess.Snapshot(), nil
}

// DeleteSession discards a session.
func (s *Service) DeleteSession(ctx context.Context, id string) {
	s.store.Delete(ctx, id)
	metrics.RecordSessionDeleted()
}

// LoadImage loads a new image into a session, resetting and re-placing its
// points. Hints take effect only when hint placement is enabled, either by
// the service default or by the per-request override.
func (s *Service) LoadImage(ctx context.Context, id string, img geom.Size, hints *placement.Hints, override *bool) (types.SessionView, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return types.SessionView{}, err
	}

	enabled := s.useHints
	if override != nil {
		enabled = *override
	}
	if !enabled {
		hints = nil
	}

	if err := sess.LoadImage(img, hints); err != nil {
		return types.SessionView{}, err
	}
	metrics.RecordImageLoaded()
	s.logger.Debug(ctx, "image loaded",
		logger.String("sessionID", id),
		logger.Float64("width", img.W),
		logger.Float64("height", img.H),
		logger.Bool("hints", hints != nil),
	)
	return sess.Snapshot(), nil
}

// SetViewport records the display area for a session.
func (s *Service) SetViewport(ctx context.Context, id string, view geom.Size) error {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	return sess.SetViewport(view)
}

// Drag applies a point drag and returns the grabbed role with the fresh
// measurements.
func (s *Service) Drag(ctx context.Context, id string, screen geom.Point, grab *session.Role) (session.Role, types.Measurements, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return 0, types.Measurements{}, err
	}
	role, err := sess.Drag(screen, grab)
	if err != nil {
		return 0, types.Measurements{}, err
	}
	metrics.RecordDragProcessed()
	return role, sess.Measurements(), nil
}

// SetCalibration toggles calibration mode and optionally updates the
// reference length.
func (s *Service) SetCalibration(ctx context.Context, id string, active bool, referenceLength *float64) (types.SessionView, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return types.SessionView{}, err
	}
	if err := sess.SetCalibrating(active); err != nil {
		return types.SessionView{}, err
	}
	if referenceLength != nil {
		sess.SetReferenceLength(*referenceLength)
	}
	metrics.RecordCalibrationUpdate()
	return sess.Snapshot(), nil
}

// SetAnimal records the breed and condition selection.
func (s *Service) SetAnimal(ctx context.Context, id string, b estimate.Breed, c estimate.Condition) (types.Estimate, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return types.Estimate{}, err
	}
	sess.SetAnimal(b, c)
	return sess.Estimate(), nil
}

// Measurements returns the current measurements for a session.
func (s *Service) Measurements(ctx context.Context, id string) (types.Measurements, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return types.Measurements{}, err
	}
	return sess.Measurements(), nil
}

// Estimate returns the weight and yield estimate for a session.
func (s *Service) Estimate(ctx context.Context, id string) (types.Estimate, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return types.Estimate{}, err
	}
	metrics.RecordEstimateServed()
	return sess.Estimate(), nil
}

// Overlay returns the screen-space rendering primitives for a session.
func (s *Service) Overlay(ctx context.Context, id string) (types.Overlay, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return types.Overlay{}, err
	}
	return sess.Overlay()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":       s.started,
		"maxSessions":   s.maxSessions,
		"detectorHints": s.useHints,
	}
	if s.started {
		count := s.store.Count(context.Background())
		stats["activeSessions"] = count
		metrics.UpdateActiveSessions(count)
	}
	return stats
}

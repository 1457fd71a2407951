// Package session owns the mutable state of one measurement session: the
// labeled points, calibration, viewport, and animal selection. All reads and
// mutations go through Session methods; rendering layers only ever see
// computed copies, never live point references.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/heft/internal/domain/calibration"
	"github.com/okian/heft/internal/domain/estimate"
	"github.com/okian/heft/internal/domain/geom"
	"github.com/okian/heft/internal/domain/placement"
)

// DefaultHitRadius is the touch slop in display units for grabbing a point.
const DefaultHitRadius = 30.0

// point is the explicit two-state point machine: Unset until placed by the
// layout policy or a drag, Placed afterwards.
type point struct {
	pos    geom.Point
	placed bool
}

// Session holds all state for one animal photo being measured. Methods are
// safe for concurrent use; each session serializes its own mutations.
type Session struct {
	mu sync.Mutex

	id        string
	createdAt time.Time

	img      geom.Size
	viewport geom.Size

	points [roleCount]point

	scale       float64 // cm per image pixel
	refLength   float64 // cm, calibration reference
	calibrating bool

	breed     estimate.Breed
	condition estimate.Condition

	hitRadius float64
}

// Option applies a configuration option to the Session.
type Option func(*Session)

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// WithHitRadius sets the touch slop for point grabbing, in display units.
func WithHitRadius(r float64) Option {
	return func(s *Session) {
		if r > 0 {
			s.hitRadius = r
		}
	}
}

// WithAnimal sets the initial breed and condition.
func WithAnimal(b estimate.Breed, c estimate.Condition) Option {
	return func(s *Session) {
		s.breed = b
		s.condition = c
	}
}

// New creates a session with no image loaded and default calibration.
func New(opts ...Option) *Session {
	s := &Session{
		id:        uuid.NewString(),
		createdAt: time.Now(),
		scale:     calibration.DefaultScale,
		refLength: calibration.DefaultReferenceLength,
		breed:     estimate.OtherBreed,
		condition: estimate.Average,
		hitRadius: DefaultHitRadius,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// CreatedAt returns the session creation time.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// LoadImage replaces the current image. Every point is discarded and the
// measurement points are re-placed, from detector hints when given and from
// the center heuristic otherwise. The calibration scale survives image
// swaps; only a new calibration changes it.
func (s *Session) LoadImage(img geom.Size, hints *placement.Hints) error {
	if !img.Valid() {
		return geom.ErrInvalidGeometry
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.img = img
	for i := range s.points {
		s.points[i] = point{}
	}

	layout := placement.Defaults(img)
	if hints != nil {
		layout = placement.FromHints(img, *hints)
	}
	s.place(Belly, layout.Belly)
	s.place(Spine, layout.Spine)
	s.place(Neck, layout.Neck)
	s.place(Rear, layout.Rear)
	s.place(GirthLeft, layout.GirthLeft)
	s.place(GirthRight, layout.GirthRight)

	if s.calibrating {
		start, end := calibration.DefaultSegment(img)
		s.place(CalibrationStart, start)
		s.place(CalibrationEnd, end)
	}
	return nil
}

// SetViewport records the display area the image is rendered into.
func (s *Session) SetViewport(view geom.Size) error {
	if !view.Valid() {
		return geom.ErrInvalidGeometry
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = view
	return nil
}

// SetCalibrating toggles calibration mode. Entering the mode for the first
// time on an image places the default reference segment. Leaving the mode
// keeps the last computed scale; it goes stale on purpose until the next
// calibration.
func (s *Session) SetCalibrating(active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if active && !s.img.Valid() {
		return ErrNoImage
	}
	s.calibrating = active
	if active && (!s.points[CalibrationStart].placed || !s.points[CalibrationEnd].placed) {
		start, end := calibration.DefaultSegment(s.img)
		s.place(CalibrationStart, start)
		s.place(CalibrationEnd, end)
	}
	return nil
}

// SetReferenceLength updates the calibration reference length, clamped to
// the supported range, and recomputes the scale from the last-known
// calibration points when both exist.
func (s *Session) SetReferenceLength(cm float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refLength = calibration.ClampReferenceLength(cm)
	if s.points[CalibrationStart].placed && s.points[CalibrationEnd].placed {
		s.scale = calibration.Scale(
			s.points[CalibrationStart].pos,
			s.points[CalibrationEnd].pos,
			s.refLength,
			s.scale,
		)
	}
	return s.refLength
}

// SetAnimal records the breed and condition selection.
func (s *Session) SetAnimal(b estimate.Breed, c estimate.Condition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.breed = b
	s.condition = c
}

// place marks a role as placed at an image-space position. Callers hold s.mu.
func (s *Session) place(r Role, p geom.Point) {
	s.points[r] = point{pos: p, placed: true}
}

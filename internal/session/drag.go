package session

import (
	"github.com/okian/heft/internal/domain/calibration"
	"github.com/okian/heft/internal/domain/geom"
)

// Drag moves a point to a new screen-space position. When grab is nil the
// point is chosen by hit-testing around the touch; passing the role returned
// by an earlier call keeps a drag attached to its point even when the finger
// outruns the hit radius.
//
// Moving a calibration endpoint while calibration mode is active recomputes
// the scale immediately.
func (s *Session) Drag(screen geom.Point, grab *Role) (Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mapper, err := geom.NewMapper(s.img, s.viewport)
	if err != nil {
		return 0, err
	}

	var role Role
	if grab != nil {
		role = *grab
		if role < 0 || role >= roleCount {
			return 0, ErrUnknownRole
		}
	} else {
		role, err = s.hitTest(mapper, screen)
		if err != nil {
			return 0, err
		}
	}

	s.place(role, mapper.ToImage(screen))

	if s.calibrating && role.IsCalibration() {
		s.scale = calibration.Scale(
			s.points[CalibrationStart].pos,
			s.points[CalibrationEnd].pos,
			s.refLength,
			s.scale,
		)
	}
	return role, nil
}

// hitTest finds the closest active point within the hit radius of a screen
// position. Roles are scanned in declaration order with a strict minimum, so
// exact distance ties deterministically go to the earlier role. Callers hold
// s.mu.
func (s *Session) hitTest(mapper *geom.Mapper, screen geom.Point) (Role, error) {
	best := Role(-1)
	bestDist := s.hitRadius
	for r := Belly; r < roleCount; r++ {
		if r.IsCalibration() && !s.calibrating {
			continue
		}
		if !s.points[r].placed {
			continue
		}
		d := mapper.ToScreen(s.points[r].pos).Dist(screen)
		if d < bestDist {
			best = r
			bestDist = d
		}
	}
	if best < 0 {
		return 0, ErrNoPointHit
	}
	return best, nil
}

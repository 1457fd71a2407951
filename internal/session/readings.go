package session

import (
	"github.com/okian/heft/internal/domain/estimate"
	"github.com/okian/heft/internal/domain/geom"
	"github.com/okian/heft/internal/domain/measure"
	"github.com/okian/heft/internal/domain/types"
)

// Measurements returns the current derived measurements. A measurement whose
// points are not all placed reads zero; partial state is normal while the
// user is still positioning points, not an error.
func (s *Session) Measurements() types.Measurements {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.measurements()
}

// measurements computes the readings. Callers hold s.mu.
func (s *Session) measurements() types.Measurements {
	m := types.Measurements{ScaleCm: s.scale}
	if s.allPlaced(Spine, Belly) {
		m.HeightCm = measure.Height(s.points[Spine].pos, s.points[Belly].pos, s.scale)
	}
	if s.allPlaced(Neck, Rear) {
		m.LengthCm = measure.Length(s.points[Neck].pos, s.points[Rear].pos, s.scale)
	}
	if s.allPlaced(Spine, Belly, GirthLeft, GirthRight) {
		m.GirthCm = measure.Girth(
			s.points[Spine].pos,
			s.points[Belly].pos,
			s.points[GirthLeft].pos,
			s.points[GirthRight].pos,
			s.scale,
		)
	}
	return m
}

// Estimate returns the weight and yield estimate for the current
// measurements and animal selection.
func (s *Session) Estimate() types.Estimate {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.measurements()
	return types.Estimate{
		Measurements:       m,
		LiveWeightKg:       estimate.LiveWeightKg(m.GirthCm, m.LengthCm),
		MeatYieldKg:        estimate.MeatYieldKg(m.GirthCm, m.LengthCm, s.breed, s.condition),
		DressingPercentage: estimate.DressingPercentage(s.breed, s.condition),
		Breed:              s.breed.String(),
		Condition:          s.condition.String(),
	}
}

// Snapshot returns the full session state as a read-only view.
func (s *Session) Snapshot() types.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := types.SessionView{
		ID:                s.id,
		Image:             s.img,
		Viewport:          s.viewport,
		ScaleCm:           s.scale,
		ReferenceLengthCm: s.refLength,
		Calibrating:       s.calibrating,
		Breed:             s.breed.String(),
		Condition:         s.condition.String(),
	}
	for r := Belly; r < roleCount; r++ {
		view.Points = append(view.Points, types.PointView{
			Role:   r.String(),
			Placed: s.points[r].placed,
			Image:  s.points[r].pos,
		})
	}
	return view
}

// Overlay computes the screen-space rendering primitives for the current
// viewport: markers for every active point, measurement lines, the girth
// ellipse, and the calibration segment while calibrating.
func (s *Session) Overlay() (types.Overlay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mapper, err := geom.NewMapper(s.img, s.viewport)
	if err != nil {
		return types.Overlay{}, err
	}

	var o types.Overlay
	for r := Belly; r < roleCount; r++ {
		if r.IsCalibration() && !s.calibrating {
			continue
		}
		if !s.points[r].placed {
			continue
		}
		o.Markers = append(o.Markers, types.Marker{
			Role:   r.String(),
			Screen: mapper.ToScreen(s.points[r].pos),
		})
	}

	if s.allPlaced(Spine, Belly) {
		o.Lines = append(o.Lines, types.Line{
			Label: "height",
			From:  mapper.ToScreen(s.points[Spine].pos),
			To:    mapper.ToScreen(s.points[Belly].pos),
		})
	}
	if s.allPlaced(Neck, Rear) {
		o.Lines = append(o.Lines, types.Line{
			Label: "length",
			From:  mapper.ToScreen(s.points[Neck].pos),
			To:    mapper.ToScreen(s.points[Rear].pos),
		})
	}
	if s.allPlaced(Spine, Belly, GirthLeft, GirthRight) {
		left, right := s.points[GirthLeft].pos, s.points[GirthRight].pos
		spine, belly := s.points[Spine].pos, s.points[Belly].pos
		center := geom.Point{
			X: (left.X + right.X) / 2,
			Y: (spine.Y + belly.Y) / 2,
		}
		o.Ellipse = &types.Ellipse{
			Center:    mapper.ToScreen(center),
			SemiAxisX: abs(right.X-left.X) / 2 * mapper.Scale(),
			SemiAxisY: abs(spine.Y-belly.Y) / 2 * mapper.Scale(),
		}
	}
	if s.calibrating && s.allPlaced(CalibrationStart, CalibrationEnd) {
		o.Calibration = &types.Line{
			Label: "calibration",
			From:  mapper.ToScreen(s.points[CalibrationStart].pos),
			To:    mapper.ToScreen(s.points[CalibrationEnd].pos),
		}
	}
	return o, nil
}

// allPlaced reports whether every given role has been placed. Callers hold s.mu.
func (s *Session) allPlaced(roles ...Role) bool {
	for _, r := range roles {
		if !s.points[r].placed {
			return false
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

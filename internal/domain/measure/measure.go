// Package measure computes the three body measurements from labeled image
// points and the calibration scale: standing height, body length, and heart
// girth.
package measure

import (
	"math"

	"github.com/okian/heft/internal/domain/geom"
)

const (
	// Real cattle chests are flatter than a true ellipse; the perimeter is
	// corrected upward by 8% to account for it.
	girthCorrection = 1.08
)

// Height returns the spine-to-belly distance in centimeters.
func Height(spine, belly geom.Point, scale float64) float64 {
	return spine.Dist(belly) * scale
}

// Length returns the neck-to-rear distance in centimeters.
func Length(neck, rear geom.Point, scale float64) float64 {
	return neck.Dist(rear) * scale
}

// Girth returns the chest circumference in centimeters, modeling the chest
// cross-section as an ellipse seen edge-on. The horizontal semi-axis comes
// from the girth markers, the vertical one from the spine/belly extent, and
// the perimeter uses Ramanujan's second approximation.
func Girth(spine, belly, girthLeft, girthRight geom.Point, scale float64) float64 {
	a := math.Abs(girthRight.X-girthLeft.X) / 2 * scale
	b := math.Abs(spine.Y-belly.Y) / 2 * scale
	if a+b == 0 {
		return 0
	}
	h := (a - b) * (a - b) / ((a + b) * (a + b))
	perimeter := math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
	return perimeter * girthCorrection
}

// Package calibration derives the real-world scale factor that turns image
// pixels into centimeters, from a user-placed reference segment of known
// physical length.
package calibration

import "github.com/okian/heft/internal/domain/geom"

// Calibration defaults and slider bounds, in centimeters and cm-per-pixel.
const (
	DefaultScale           = 0.2
	DefaultReferenceLength = 50.0
	MinReferenceLength     = 10.0
	MaxReferenceLength     = 200.0

	// On first entering calibration mode the segment is placed symmetrically
	// around the horizontal center, this many pixels end to end.
	defaultSegmentLength = 100.0
	// Vertical placement of the default segment as a fraction of image height.
	defaultSegmentHeight = 0.8
)

// Scale returns the cm-per-pixel factor for a reference segment of
// referenceLength centimeters drawn from start to end in image space.
//
// A zero-length segment returns prev unchanged: the endpoints coincide
// transiently while one of them is mid-drag, so this is a no-op rather than
// an error.
func Scale(start, end geom.Point, referenceLength, prev float64) float64 {
	d := start.Dist(end)
	if d == 0 {
		return prev
	}
	return referenceLength / d
}

// ClampReferenceLength bounds a requested reference length to the supported
// slider range.
func ClampReferenceLength(cm float64) float64 {
	switch {
	case cm < MinReferenceLength:
		return MinReferenceLength
	case cm > MaxReferenceLength:
		return MaxReferenceLength
	default:
		return cm
	}
}

// DefaultSegment returns the starting guess for the calibration endpoints on
// an image: a horizontal segment centered at 80% of image height.
func DefaultSegment(img geom.Size) (start, end geom.Point) {
	cx := img.W / 2
	y := img.H * defaultSegmentHeight
	half := defaultSegmentLength / 2
	return geom.Point{X: cx - half, Y: y}, geom.Point{X: cx + half, Y: y}
}

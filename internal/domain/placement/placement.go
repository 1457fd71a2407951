// Package placement computes the starting positions of the six measurement
// points for a freshly loaded image, either from a center-based heuristic or
// from anatomical landmark hints supplied by an external detector.
package placement

import "github.com/okian/heft/internal/domain/geom"

// Offset ratios, as fractions of image width/height or of the neck-rear axis.
const (
	bellySpineOffset = 0.15
	girthSideOffset  = 0.2
	neckRearOffset   = 0.3
	neckRearLift     = 0.05

	// Hint-derived layout: the girth/belly/spine anchor sits this far along
	// the neck-to-rear axis, with the same +/-15% side offsets.
	hintAnchorRatio = 0.3
	hintSideOffset  = 0.15
)

// Layout holds the initial image-space positions for the measurement points.
type Layout struct {
	Belly      geom.Point
	Spine      geom.Point
	Neck       geom.Point
	Rear       geom.Point
	GirthLeft  geom.Point
	GirthRight geom.Point
}

// Hints carries up to four anatomical landmarks from an external detector:
// a shoulder pair and a hip pair, in image space.
type Hints struct {
	ShoulderTop    geom.Point `json:"shoulder_top"`
	ShoulderBottom geom.Point `json:"shoulder_bottom"`
	HipTop         geom.Point `json:"hip_top"`
	HipBottom      geom.Point `json:"hip_bottom"`
}

// Defaults returns the heuristic layout for an image with no detector hints:
// everything positioned relative to the image center.
func Defaults(img geom.Size) Layout {
	c := img.Center()
	return Layout{
		Belly:      geom.Point{X: c.X, Y: c.Y + bellySpineOffset*img.H},
		Spine:      geom.Point{X: c.X, Y: c.Y - bellySpineOffset*img.H},
		GirthLeft:  geom.Point{X: c.X - girthSideOffset*img.W, Y: c.Y},
		GirthRight: geom.Point{X: c.X + girthSideOffset*img.W, Y: c.Y},
		Neck:       geom.Point{X: c.X - neckRearOffset*img.W, Y: c.Y - neckRearLift*img.H},
		Rear:       geom.Point{X: c.X + neckRearOffset*img.W, Y: c.Y - neckRearLift*img.H},
	}
}

// FromHints derives the layout from detector landmarks: neck and rear are
// the shoulder and hip midpoints, and the girth/belly/spine points hang off
// an anchor 30% along the neck-to-rear axis.
func FromHints(img geom.Size, h Hints) Layout {
	neck := geom.Midpoint(h.ShoulderTop, h.ShoulderBottom)
	rear := geom.Midpoint(h.HipTop, h.HipBottom)
	anchor := geom.Lerp(neck, rear, hintAnchorRatio)
	return Layout{
		Neck:       neck,
		Rear:       rear,
		GirthLeft:  geom.Point{X: anchor.X - hintSideOffset*img.W, Y: anchor.Y},
		GirthRight: geom.Point{X: anchor.X + hintSideOffset*img.W, Y: anchor.Y},
		Belly:      geom.Point{X: anchor.X, Y: anchor.Y + hintSideOffset*img.H},
		Spine:      geom.Point{X: anchor.X, Y: anchor.Y - hintSideOffset*img.H},
	}
}

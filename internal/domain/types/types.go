// Package types contains the read shapes shared between the session layer
// and the HTTP API.
package types

import "github.com/okian/heft/internal/domain/geom"

// Measurements is the set of derived body measurements. Values are zero
// until the points they depend on are placed.
type Measurements struct {
	HeightCm float64 `json:"height_cm"`
	LengthCm float64 `json:"length_cm"`
	GirthCm  float64 `json:"girth_cm"`
	ScaleCm  float64 `json:"scale_cm_per_px"`
}

// Estimate is the weight and yield estimate derived from the measurements.
type Estimate struct {
	Measurements
	LiveWeightKg       float64 `json:"live_weight_kg"`
	MeatYieldKg        float64 `json:"meat_yield_kg"`
	DressingPercentage float64 `json:"dressing_percentage"`
	Breed              string  `json:"breed"`
	Condition          string  `json:"condition"`
}

// PointView is a point's state as reported to clients: its image-space
// position and whether it has been placed yet.
type PointView struct {
	Role   string     `json:"role"`
	Placed bool       `json:"placed"`
	Image  geom.Point `json:"image"`
}

// SessionView is the full snapshot returned by GET /sessions/{id}.
type SessionView struct {
	ID                string      `json:"session_id"`
	Image             geom.Size   `json:"image"`
	Viewport          geom.Size   `json:"viewport"`
	Points            []PointView `json:"points"`
	ScaleCm           float64     `json:"scale_cm_per_px"`
	ReferenceLengthCm float64     `json:"reference_length_cm"`
	Calibrating       bool        `json:"calibrating"`
	Breed             string      `json:"breed"`
	Condition         string      `json:"condition"`
}

// Line is a screen-space segment ready for rendering.
type Line struct {
	Label string     `json:"label"`
	From  geom.Point `json:"from"`
	To    geom.Point `json:"to"`
}

// Ellipse is the screen-space girth ellipse: center plus semi-axes in
// display units.
type Ellipse struct {
	Center    geom.Point `json:"center"`
	SemiAxisX float64    `json:"semi_axis_x"`
	SemiAxisY float64    `json:"semi_axis_y"`
}

// Marker is a placed point's screen position.
type Marker struct {
	Role   string     `json:"role"`
	Screen geom.Point `json:"screen"`
}

// Overlay bundles the rendering primitives for the current viewport. Lines
// and the ellipse appear only once their points are placed.
type Overlay struct {
	Markers     []Marker `json:"markers"`
	Lines       []Line   `json:"lines"`
	Ellipse     *Ellipse `json:"ellipse,omitempty"`
	Calibration *Line    `json:"calibration,omitempty"`
}

package geom

// Mapper converts between image-pixel coordinates and display coordinates
// for an image rendered contained inside a viewport: uniform scale,
// preserved aspect ratio, centered with letterbox or pillarbox margins.
//
// The inverse direction always uses the reciprocal of the forward scale.
// Deriving it independently (min(W/Dw, H/Dh)) is only the true inverse when
// the aspect ratios match exactly, and silently skews points otherwise.
type Mapper struct {
	scale   float64
	offsetX float64
	offsetY float64
}

// NewMapper builds a mapper for an image of size img shown in a viewport of
// size view. Returns ErrInvalidGeometry when any dimension is not positive.
func NewMapper(img, view Size) (*Mapper, error) {
	if !img.Valid() || !view.Valid() {
		return nil, ErrInvalidGeometry
	}
	s := view.W / img.W
	if alt := view.H / img.H; alt < s {
		s = alt
	}
	return &Mapper{
		scale:   s,
		offsetX: (view.W - img.W*s) / 2,
		offsetY: (view.H - img.H*s) / 2,
	}, nil
}

// Scale returns the display units per image pixel.
func (m *Mapper) Scale() float64 { return m.scale }

// ToScreen maps an image-space point to display coordinates.
func (m *Mapper) ToScreen(p Point) Point {
	return Point{
		X: p.X*m.scale + m.offsetX,
		Y: p.Y*m.scale + m.offsetY,
	}
}

// ToImage maps a display-space point back to image coordinates.
func (m *Mapper) ToImage(p Point) Point {
	return Point{
		X: (p.X - m.offsetX) / m.scale,
		Y: (p.Y - m.offsetY) / m.scale,
	}
}

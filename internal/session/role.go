package session

import "fmt"

// Role identifies a draggable point by its anatomical meaning. A point's
// identity is its role, not its coordinates.
type Role int

// Point roles, in hit-test enumeration order. The calibration endpoints come
// last and participate only while calibration mode is active.
const (
	Belly Role = iota
	Spine
	Neck
	Rear
	GirthLeft
	GirthRight
	CalibrationStart
	CalibrationEnd

	roleCount = 8
)

var roleNames = [roleCount]string{
	"belly",
	"spine",
	"neck",
	"rear",
	"girth_left",
	"girth_right",
	"calibration_start",
	"calibration_end",
}

// String returns the wire name of the role.
func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return "unknown"
	}
	return roleNames[r]
}

// IsCalibration reports whether the role is one of the calibration endpoints.
func (r Role) IsCalibration() bool {
	return r == CalibrationStart || r == CalibrationEnd
}

// ParseRole parses a wire-format role name.
func ParseRole(s string) (Role, error) {
	for i, name := range roleNames {
		if name == s {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

package hex

import (
	"strings"

	"github.com/hexforge/hexforge/pkg/errors"
)

// Orientation selects which way hexagons face: a flat edge upward or a
// pointed vertex upward. It changes offset-coordinate skewing and pixel
// positions, never the cube-space topology.
type Orientation int

const (
	// FlatTop hexagons present a flat edge upward; columns stagger.
	FlatTop Orientation = iota
	// PointyTop hexagons present a vertex upward; rows stagger.
	PointyTop
)

// String returns the canonical tag for the orientation.
func (o Orientation) String() string {
	switch o {
	case FlatTop:
		return "FLAT_TOP"
	case PointyTop:
		return "POINTY_TOP"
	}
	return "UNKNOWN"
}

// IsValid reports whether o is one of the two defined orientations.
func (o Orientation) IsValid() bool {
	return o == FlatTop || o == PointyTop
}

// ParseOrientation converts a string tag to an Orientation. It accepts the
// canonical tags ("FLAT_TOP", "POINTY_TOP") case-insensitively, plus the
// short forms "flat" and "pointy" used by the CLI.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FLAT_TOP", "FLAT":
		return FlatTop, nil
	case "POINTY_TOP", "POINTY":
		return PointyTop, nil
	}
	return FlatTop, errors.New(errors.ErrCodeInvalidOrientation,
		"unknown orientation %q (expected flat or pointy)", s)
}

package layout

import (
	"strings"

	"github.com/hexforge/hexforge/pkg/errors"
	"github.com/hexforge/hexforge/pkg/hex"
)

// Shape identifies one of the four supported grid silhouettes.
type Shape int

const (
	ShapeRectangular Shape = iota
	ShapeTriangular
	ShapeTrapezoid
	ShapeHexagonal
)

// String returns the canonical tag for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeRectangular:
		return "RECTANGULAR"
	case ShapeTriangular:
		return "TRIANGULAR"
	case ShapeTrapezoid:
		return "TRAPEZOID"
	case ShapeHexagonal:
		return "HEXAGONAL"
	}
	return "UNKNOWN"
}

// ParseShape converts a string tag to a Shape. Tags are matched
// case-insensitively; both the canonical tags and the short CLI forms
// ("rectangular", "triangular", "trapezoid", "hexagonal") are accepted.
func ParseShape(s string) (Shape, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RECTANGULAR", "RECTANGLE":
		return ShapeRectangular, nil
	case "TRIANGULAR", "TRIANGLE":
		return ShapeTriangular, nil
	case "TRAPEZOID":
		return ShapeTrapezoid, nil
	case "HEXAGONAL", "HEXAGON":
		return ShapeHexagonal, nil
	}
	return ShapeRectangular, errors.New(errors.ErrCodeInvalidShape,
		"unknown grid shape %q (expected rectangular, triangular, trapezoid, or hexagonal)", s)
}

// Strategy enumerates the coordinates belonging to one grid silhouette.
//
// Implementations hold no state: GridCoords is restartable and CheckSize is a
// pure function of its inputs. GridCoords assumes CheckSize has already
// accepted the size pair and never fails.
type Strategy interface {
	// GridCoords returns the ordered coordinate sequence for a width×height
	// grid of this shape. Row-major order: coordinates of row z precede
	// those of row z+1.
	GridCoords(width, height int, o hex.Orientation) []hex.Cube

	// CheckSize validates the size pair against the shape's constraints.
	// Failures carry an INVALID_SIZE code and name the offending pair.
	CheckSize(width, height int) error

	// Name returns the shape tag, one of RECTANGULAR, TRIANGULAR,
	// TRAPEZOID, or HEXAGONAL.
	Name() string
}

// strategies is the closed dispatch table; the shape set never grows at
// runtime, so instances are created once and shared.
var strategies = map[Shape]Strategy{
	ShapeRectangular: Rectangle{},
	ShapeTriangular:  Triangle{},
	ShapeTrapezoid:   Trapezoid{},
	ShapeHexagonal:   Hexagon{},
}

// ForShape returns the strategy implementing the given shape.
func ForShape(s Shape) (Strategy, error) {
	strat, ok := strategies[s]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidShape, "unknown grid shape %d", int(s))
	}
	return strat, nil
}

package layout

import (
	"github.com/hexforge/hexforge/pkg/errors"
	"github.com/hexforge/hexforge/pkg/hex"
)

// Trapezoid enumerates a width×height trapezoid grid. Trapezoid coordinates
// are already axial, so no offset conversion is applied; the silhouette
// shears with the grid's natural skew.
type Trapezoid struct{}

// GridCoords returns the trapezoid's coordinates in row-major order.
func (Trapezoid) GridCoords(width, height int, _ hex.Orientation) []hex.Cube {
	coords := make([]hex.Cube, 0, width*height)
	for z := 0; z < height; z++ {
		for x := 0; x < width; x++ {
			coords = append(coords, hex.At(x, z))
		}
	}
	return coords
}

// CheckSize requires both dimensions to be positive.
func (Trapezoid) CheckSize(width, height int) error {
	if width > 0 && height > 0 {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidSize,
		"attempted to build a grid with invalid size %d, %d: trapezoid dimensions must be larger than zero",
		width, height)
}

// Name returns the shape tag.
func (Trapezoid) Name() string { return ShapeTrapezoid.String() }

package layout

import (
	"github.com/hexforge/hexforge/pkg/errors"
	"github.com/hexforge/hexforge/pkg/hex"
)

// Triangle enumerates a triangular grid: row z holds height-z hexagons, so
// row lengths shrink strictly as z grows. The two equal legs are governed by
// a single size parameter, which is why CheckSize rejects unequal pairs.
type Triangle struct{}

// GridCoords returns the triangle's coordinates in row-major order.
func (Triangle) GridCoords(_, height int, _ hex.Orientation) []hex.Cube {
	coords := make([]hex.Cube, 0, height*(height+1)/2)
	for z := 0; z < height; z++ {
		endX := height - z
		for x := 0; x < endX; x++ {
			coords = append(coords, hex.At(x, z))
		}
	}
	return coords
}

// CheckSize requires equal, positive dimensions.
func (Triangle) CheckSize(width, height int) error {
	if width > 0 && height > 0 && width == height {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidSize,
		"attempted to build a grid with invalid size %d, %d: triangle dimensions must be equal and larger than zero",
		width, height)
}

// Name returns the shape tag.
func (Triangle) Name() string { return ShapeTriangular.String() }

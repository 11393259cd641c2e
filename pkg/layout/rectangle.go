package layout

import (
	"github.com/hexforge/hexforge/pkg/errors"
	"github.com/hexforge/hexforge/pkg/hex"
)

// Rectangle enumerates a width×height rectangular grid. Offset (col, row)
// cells are converted to cube coordinates per orientation, so the rendered
// outline is a rectangle regardless of how rows or columns stagger.
type Rectangle struct{}

// GridCoords returns the rectangle's coordinates in row-major order.
func (Rectangle) GridCoords(width, height int, o hex.Orientation) []hex.Cube {
	coords := make([]hex.Cube, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			coords = append(coords, hex.OffsetToCube(x, y, o))
		}
	}
	return coords
}

// CheckSize requires both dimensions to be positive.
func (Rectangle) CheckSize(width, height int) error {
	if width > 0 && height > 0 {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidSize,
		"attempted to build a grid with invalid size %d, %d: rectangle dimensions must be larger than zero",
		width, height)
}

// Name returns the shape tag.
func (Rectangle) Name() string { return ShapeRectangular.String() }

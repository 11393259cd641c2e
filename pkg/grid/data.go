package grid

import (
	"github.com/google/uuid"

	"github.com/hexforge/hexforge/pkg/hex"
	"github.com/hexforge/hexforge/pkg/layout"
)

// Data is the shared grid-level metadata: the parameters one build was made
// from, plus a generated ID for referencing the grid in caches and APIs.
// It is constructed once per build and shared by reference among all
// hexagons of that grid; treat it as immutable.
type Data struct {
	ID          uuid.UUID
	Shape       layout.Shape
	Orientation hex.Orientation
	Radius      float64
	Width       int
	Height      int
}

// NewData creates grid metadata with a fresh ID.
func NewData(shape layout.Shape, o hex.Orientation, radius float64, width, height int) *Data {
	return &Data{
		ID:          uuid.New(),
		Shape:       shape,
		Orientation: o,
		Radius:      radius,
		Width:       width,
		Height:      height,
	}
}

// HexRadius returns the grid-shape radius (half the side length) for
// hexagonal grids, and zero for other shapes.
func (d *Data) HexRadius() int {
	if d.Shape != layout.ShapeHexagonal {
		return 0
	}
	return d.Height / 2
}

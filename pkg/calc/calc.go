// Package calc provides derived grid computations: distances, movement
// ranges, rotations, and pixel-to-hexagon lookup over an assembled grid.
//
// A Calculator is bound to one grid and holds no other state; it is safe
// for concurrent use once the grid is assembled.
package calc

import (
	"github.com/hexforge/hexforge/pkg/grid"
	"github.com/hexforge/hexforge/pkg/hex"
)

// Calculator answers queries about one assembled grid.
type Calculator struct {
	grid *grid.Grid
}

// New creates a calculator bound to g.
func New(g *grid.Grid) *Calculator {
	return &Calculator{grid: g}
}

// Distance returns the hex distance between two hexagons.
func (c *Calculator) Distance(a, b *grid.Hexagon) int {
	return hex.Distance(a.Cube(), b.Cube())
}

// MovementRange returns all grid hexagons within distance n of from,
// including from itself. Candidates come from the cube-space disk, filtered
// to coordinates the grid actually contains, so holes at the board edge are
// handled naturally.
func (c *Calculator) MovementRange(from *grid.Hexagon, n int) []*grid.Hexagon {
	if n < 0 {
		return nil
	}
	var res []*grid.Hexagon
	for _, cc := range hex.Disk(from.Cube(), n) {
		if h, ok := c.grid.ByCube(cc); ok {
			res = append(res, h)
		}
	}
	return res
}

// RingAround returns the grid hexagons at exact distance k from center, in
// ring-traversal order. Off-grid ring cells are skipped.
func (c *Calculator) RingAround(center *grid.Hexagon, k int) []*grid.Hexagon {
	var res []*grid.Hexagon
	for _, cc := range hex.Ring(center.Cube(), k) {
		if h, ok := c.grid.ByCube(cc); ok {
			res = append(res, h)
		}
	}
	return res
}

// RotateRight returns the hexagon occupying target's position after a 60°
// clockwise rotation around center. The second result is false when the
// rotated coordinate falls outside the grid.
func (c *Calculator) RotateRight(center, target *grid.Hexagon) (*grid.Hexagon, bool) {
	return c.grid.ByCube(hex.RotateRight(center.Cube(), target.Cube()))
}

// RotateLeft returns the hexagon occupying target's position after a 60°
// counter-clockwise rotation around center. The second result is false when
// the rotated coordinate falls outside the grid.
func (c *Calculator) RotateLeft(center, target *grid.Hexagon) (*grid.Hexagon, bool) {
	return c.grid.ByCube(hex.RotateLeft(center.Cube(), target.Cube()))
}

// ByPixel returns the hexagon whose center is nearest to the pixel position
// (x, y). The second result is false when the position falls outside the
// grid.
func (c *Calculator) ByPixel(x, y float64) (*grid.Hexagon, bool) {
	d := c.grid.Data()
	return c.grid.ByCube(hex.NearestCube(x, y, d.Orientation, d.Radius))
}

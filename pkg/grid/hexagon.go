package grid

import "github.com/hexforge/hexforge/pkg/hex"

// Hexagon is one tile of an assembled grid: its cube coordinate plus a
// reference to the shared grid metadata. Satellite carries optional
// caller-owned payload (terrain, occupancy, whatever the application needs);
// the grid itself never touches it.
type Hexagon struct {
	coord hex.Cube
	data  *Data

	Satellite any
}

// NewHexagon creates a hexagon record for the given coordinate.
func NewHexagon(data *Data, coord hex.Cube) *Hexagon {
	return &Hexagon{coord: coord, data: data}
}

// Cube returns the hexagon's coordinate.
func (h *Hexagon) Cube() hex.Cube { return h.coord }

// GridData returns the shared grid metadata.
func (h *Hexagon) GridData() *Data { return h.data }

// Center returns the hexagon's pixel center under the grid's orientation
// and radius.
func (h *Hexagon) Center() hex.Point {
	return hex.Center(h.coord, h.data.Orientation, h.data.Radius)
}

// Corners returns the hexagon's six pixel corner points in drawing order.
func (h *Hexagon) Corners() []hex.Point {
	return hex.Corners(h.coord, h.data.Orientation, h.data.Radius)
}

package grid

import (
	"github.com/hexforge/hexforge/pkg/hex"
)

// Grid is an assembled hexagon grid: the ordered hexagon list in enumeration
// order plus the coordinate-keyed storage for lookups.
type Grid struct {
	data     *Data
	storage  Storage
	hexagons []*Hexagon
}

// New creates an empty grid over the given storage. Use the builder package
// to produce populated grids; New exists for tests and custom assembly.
func New(data *Data, storage Storage) *Grid {
	if storage == nil {
		storage = NewMapStorage()
	}
	return &Grid{data: data, storage: storage}
}

// Add inserts a hexagon into storage and appends it to the ordered list.
// Fails without mutating anything if the coordinate is already present.
func (g *Grid) Add(h *Hexagon) error {
	if err := g.storage.Add(h.Cube(), h); err != nil {
		return err
	}
	g.hexagons = append(g.hexagons, h)
	return nil
}

// Data returns the shared grid metadata.
func (g *Grid) Data() *Data { return g.data }

// Hexagons returns the grid's hexagons in enumeration order. The returned
// slice is the grid's own; callers must not modify it.
func (g *Grid) Hexagons() []*Hexagon { return g.hexagons }

// Len returns the number of hexagons in the grid.
func (g *Grid) Len() int { return len(g.hexagons) }

// ByCube returns the hexagon at coordinate c, if the grid contains it.
func (g *Grid) ByCube(c hex.Cube) (*Hexagon, bool) {
	return g.storage.Get(c)
}

// Contains reports whether coordinate c is part of the grid.
func (g *Grid) Contains(c hex.Cube) bool {
	return g.storage.Contains(c)
}

// Neighbors returns the hexagons adjacent to h that exist in this grid.
// Border hexagons return fewer than six.
func (g *Grid) Neighbors(h *Hexagon) []*Hexagon {
	res := make([]*Hexagon, 0, 6)
	for _, c := range h.Cube().Neighbors() {
		if n, ok := g.storage.Get(c); ok {
			res = append(res, n)
		}
	}
	return res
}

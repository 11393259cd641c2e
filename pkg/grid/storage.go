package grid

import (
	"github.com/hexforge/hexforge/pkg/errors"
	"github.com/hexforge/hexforge/pkg/hex"
)

// Storage indexes hexagons by cube coordinate. Implementations are not
// required to be goroutine-safe; each build populates its own instance.
type Storage interface {
	// Add inserts a hexagon keyed by coordinate. Inserting a coordinate
	// that is already present is an invariant violation and fails with a
	// DUPLICATE_COORD error; nothing is overwritten.
	Add(c hex.Cube, h *Hexagon) error

	// Get returns the hexagon at c, if present.
	Get(c hex.Cube) (*Hexagon, bool)

	// Contains reports whether a hexagon exists at c.
	Contains(c hex.Cube) bool

	// Len returns the number of stored hexagons.
	Len() int
}

// MapStorage is the default Storage backed by a plain map.
type MapStorage struct {
	hexes map[hex.Cube]*Hexagon
}

// NewMapStorage creates an empty map-backed storage.
func NewMapStorage() *MapStorage {
	return &MapStorage{hexes: make(map[hex.Cube]*Hexagon)}
}

// Add implements Storage.
func (s *MapStorage) Add(c hex.Cube, h *Hexagon) error {
	if _, ok := s.hexes[c]; ok {
		return errors.New(errors.ErrCodeDuplicateCoord,
			"coordinate (%d, %d) inserted twice", c.X, c.Z)
	}
	s.hexes[c] = h
	return nil
}

// Get implements Storage.
func (s *MapStorage) Get(c hex.Cube) (*Hexagon, bool) {
	h, ok := s.hexes[c]
	return h, ok
}

// Contains implements Storage.
func (s *MapStorage) Contains(c hex.Cube) bool {
	_, ok := s.hexes[c]
	return ok
}

// Len implements Storage.
func (s *MapStorage) Len() int { return len(s.hexes) }

var _ Storage = (*MapStorage)(nil)

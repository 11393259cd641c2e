package layout

import (
	"math"

	"github.com/hexforge/hexforge/pkg/errors"
	"github.com/hexforge/hexforge/pkg/hex"
)

// Hexagon enumerates a hexagon-of-hexagons: row lengths grow then shrink
// symmetrically around the middle row, and a per-row skew keeps the outline
// a regular hexagon instead of a parallelogram.
//
// The starting-column formulas differ by orientation (gridSize/2 flat-top,
// round(gridSize/4) pointy-top) and are reproduced as-is from the reference
// behavior. Off-by-one changes here alter the silhouette; resist the urge to
// simplify the math.
type Hexagon struct{}

// GridCoords returns the hexagon's coordinates in row-major order. Both
// dimensions are equal after CheckSize, so only height is read.
func (Hexagon) GridCoords(_, height int, o hex.Orientation) []hex.Cube {
	gridSize := height
	hexRadius := gridSize / 2
	coords := make([]hex.Cube, 0, 3*hexRadius*hexRadius+3*hexRadius+1)

	startX := int(math.Round(float64(gridSize) / 4.0))
	if o == hex.FlatTop {
		startX = gridSize / 2
	}
	minX := startX - hexRadius

	for y := 0; y < gridSize; y++ {
		distFromMid := abs(hexRadius - y)
		base := max(startX, minX)
		for x := base; x <= base+2*hexRadius-distFromMid; x++ {
			z := y
			if o == hex.FlatTop {
				z = y - gridSize/4
			}
			coords = append(coords, hex.At(x, z))
		}
		startX--
	}
	return coords
}

// CheckSize requires equal, odd, positive dimensions. An even size would
// leave no single middle row.
func (Hexagon) CheckSize(width, height int) error {
	if width > 0 && height > 0 && width == height && height%2 == 1 {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidSize,
		"attempted to build a grid with invalid size %d, %d: hexagon dimensions must be equal, odd, and larger than zero",
		width, height)
}

// Name returns the shape tag.
func (Hexagon) Name() string { return ShapeHexagonal.String() }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

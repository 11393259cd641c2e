package render

import (
	"strings"

	"github.com/hexforge/hexforge/pkg/builder"
	"github.com/hexforge/hexforge/pkg/hex"
)

// ASCII returns a coarse terminal map of the grid, one rune per hexagon.
// Hexagons are placed on doubled coordinates so the stagger is visible:
// pointy-top rows interleave horizontally, flat-top columns vertically.
func ASCII(ctl *builder.Control) string {
	hexes := ctl.Grid.Hexagons()
	if len(hexes) == 0 {
		return ""
	}
	o := ctl.Data.Orientation

	// Doubled coordinates: spacing 2 along the staggered axis keeps rows
	// and columns from colliding after integer placement.
	cols := make([]int, len(hexes))
	rows := make([]int, len(hexes))
	minCol, minRow := int(^uint(0)>>1), int(^uint(0)>>1)
	maxCol, maxRow := -minCol, -minRow
	for i, h := range hexes {
		c := h.Cube()
		var col, row int
		if o == hex.PointyTop {
			col = 2*c.X + c.Z
			row = c.Z
		} else {
			col = c.X
			row = 2*c.Z + c.X
		}
		cols[i], rows[i] = col, row
		minCol, maxCol = min(minCol, col), max(maxCol, col)
		minRow, maxRow = min(minRow, row), max(maxRow, row)
	}

	lines := make([][]byte, maxRow-minRow+1)
	for i := range lines {
		lines[i] = []byte(strings.Repeat(" ", maxCol-minCol+1))
	}
	for i := range hexes {
		lines[rows[i]-minRow][cols[i]-minCol] = '*'
	}

	var b strings.Builder
	for _, line := range lines {
		b.Write([]byte(strings.TrimRight(string(line), " ")))
		b.WriteByte('\n')
	}
	return b.String()
}

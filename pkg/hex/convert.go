package hex

// Offset coordinates index hexagons by (col, row), the natural iteration
// space of width×height loops. Adjacent offset cells map to adjacent cube
// coordinates only after undoing the stagger: pointy-top grids shift odd
// rows, flat-top grids shift odd columns. Conversions use floor division so
// negative indices skew the same way as positive ones.

// OffsetToCubeX converts an offset (col, row) pair to the cube X axis.
func OffsetToCubeX(col, row int, o Orientation) int {
	if o == FlatTop {
		return col
	}
	return col - floorDiv(row, 2)
}

// OffsetToCubeZ converts an offset (col, row) pair to the cube Z axis.
func OffsetToCubeZ(col, row int, o Orientation) int {
	if o == FlatTop {
		return row - floorDiv(col, 2)
	}
	return row
}

// OffsetToCube converts an offset (col, row) pair to a cube coordinate.
func OffsetToCube(col, row int, o Orientation) Cube {
	return Cube{X: OffsetToCubeX(col, row, o), Z: OffsetToCubeZ(col, row, o)}
}

// floorDiv divides a by b rounding toward negative infinity. Go's integer
// division truncates toward zero, which would skew negative rows/columns in
// the wrong direction.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

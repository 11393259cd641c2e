package hex

// Cube represents cube coordinates for one hexagon, with Y derived as -X-Z
// so the x+y+z=0 invariant holds by construction. The zero value is the
// origin hexagon. Cube is a comparable value type and is used directly as a
// map key by grid storage.
type Cube struct {
	X int
	Z int
}

// At constructs a cube coordinate from its stored axes.
func At(x, z int) Cube { return Cube{X: x, Z: z} }

// Y returns the derived third axis, -X-Z.
func (c Cube) Y() int { return -c.X - c.Z }

// Add returns c+d componentwise.
func (c Cube) Add(d Cube) Cube { return Cube{c.X + d.X, c.Z + d.Z} }

// Sub returns c-d componentwise.
func (c Cube) Sub(d Cube) Cube { return Cube{c.X - d.X, c.Z - d.Z} }

// Scale multiplies both stored axes by k.
func (c Cube) Scale(k int) Cube { return Cube{c.X * k, c.Z * k} }

// Directions lists the six neighbor offsets in cube space, starting east of
// the origin and proceeding counter-clockwise. The order is stable; ring
// traversal and rotation math depend on it.
var Directions = [6]Cube{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// Neighbors returns the six adjacent cube coordinates of c.
// Adjacency is orientation-independent in cube space.
func (c Cube) Neighbors() []Cube {
	res := make([]Cube, 6)
	for i, d := range Directions {
		res[i] = c.Add(d)
	}
	return res
}

// Distance returns the hex distance between a and b: the minimum number of
// single-hexagon steps connecting them.
func Distance(a, b Cube) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y() - b.Y())
	dz := abs(a.Z - b.Z)
	if dx >= dy && dx >= dz {
		return dx
	}
	if dy >= dz {
		return dy
	}
	return dz
}

// Ring returns the coordinates at exact distance k from center c, starting
// south-east of c and proceeding counter-clockwise. If k==0, returns [c].
func Ring(c Cube, k int) []Cube {
	if k <= 0 {
		return []Cube{c}
	}
	res := make([]Cube, 0, 6*k)
	cur := c.Add(Directions[4].Scale(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return res
}

// Disk returns all coordinates at distance <= r from center c, in column
// order. The result has 1+3r(r+1) elements.
func Disk(c Cube, r int) []Cube {
	if r < 0 {
		return nil
	}
	res := make([]Cube, 0, 1+3*r*(r+1))
	for x := -r; x <= r; x++ {
		zlo := max(-r, -x-r)
		zhi := min(r, -x+r)
		for z := zlo; z <= zhi; z++ {
			res = append(res, c.Add(Cube{x, z}))
		}
	}
	return res
}

// RotateRight rotates target 60 degrees clockwise around center.
func RotateRight(center, target Cube) Cube {
	v := target.Sub(center)
	// (x, y, z) -> (-z, -x, -y)
	return center.Add(Cube{X: -v.Z, Z: -v.Y()})
}

// RotateLeft rotates target 60 degrees counter-clockwise around center.
func RotateLeft(center, target Cube) Cube {
	v := target.Sub(center)
	// (x, y, z) -> (-y, -z, -x)
	return center.Add(Cube{X: -v.Y(), Z: -v.X})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

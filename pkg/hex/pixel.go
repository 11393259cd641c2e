package hex

import "math"

// Point is a pixel-space position.
type Point struct {
	X float64
	Y float64
}

var sqrt3 = math.Sqrt(3)

// Center returns the pixel center of hexagon c for the given orientation and
// circumradius (center-to-corner distance).
//
// Pointy-top: adjacent columns are sqrt(3)*radius apart horizontally and rows
// advance by 1.5*radius vertically. Flat-top swaps the roles of the axes.
func Center(c Cube, o Orientation, radius float64) Point {
	x := float64(c.X)
	z := float64(c.Z)
	if o == FlatTop {
		return Point{
			X: radius * 1.5 * x,
			Y: radius * sqrt3 * (z + x/2),
		}
	}
	return Point{
		X: radius * sqrt3 * (x + z/2),
		Y: radius * 1.5 * z,
	}
}

// Corners returns the six corner points of hexagon c in drawing order.
// Flat-top corners sit at 0°, 60°, ... from the center; pointy-top corners
// are rotated by -30° so a vertex faces upward.
func Corners(c Cube, o Orientation, radius float64) []Point {
	center := Center(c, o, radius)
	corners := make([]Point, 6)
	for i := 0; i < 6; i++ {
		angle := math.Pi / 3 * float64(i)
		if o == PointyTop {
			angle -= math.Pi / 6
		}
		corners[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return corners
}

// Width returns the bounding-box width of a single hexagon.
func Width(o Orientation, radius float64) float64 {
	if o == FlatTop {
		return 2 * radius
	}
	return sqrt3 * radius
}

// Height returns the bounding-box height of a single hexagon.
func Height(o Orientation, radius float64) float64 {
	if o == FlatTop {
		return sqrt3 * radius
	}
	return 2 * radius
}

// NearestCube returns the cube coordinate whose center is closest to the
// pixel position (px, py), inverting Center and rounding in cube space so
// the derived axes stay consistent.
func NearestCube(px, py float64, o Orientation, radius float64) Cube {
	var fx, fz float64
	if o == FlatTop {
		fx = px / (radius * 1.5)
		fz = py/(radius*sqrt3) - fx/2
	} else {
		fz = py / (radius * 1.5)
		fx = px/(radius*sqrt3) - fz/2
	}
	return roundCube(fx, fz)
}

// roundCube rounds fractional cube coordinates to the nearest valid cube
// coordinate, fixing up the axis with the largest rounding error so that
// x+y+z remains zero.
func roundCube(fx, fz float64) Cube {
	fy := -fx - fz
	rx := math.Round(fx)
	ry := math.Round(fy)
	rz := math.Round(fz)

	dx := math.Abs(rx - fx)
	dy := math.Abs(ry - fy)
	dz := math.Abs(rz - fz)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		// y is derived; nothing to store
	default:
		rz = -rx - ry
	}
	return Cube{X: int(rx), Z: int(rz)}
}

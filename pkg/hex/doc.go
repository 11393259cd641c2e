// Package hex implements cube coordinates for hexagonal grids.
//
// Hexagons are addressed by cube coordinates (x, y, z) with the invariant
// x+y+z=0. Only X and Z are stored; Y is derived, which makes the invariant
// impossible to violate. Cube coordinates make distance and neighbor math
// orientation-agnostic: the same six direction vectors apply whether hexagons
// are rendered flat-top or pointy-top.
//
// # Coordinate Systems
//
// Three coordinate systems appear in hex-grid code:
//
//   - Cube: (x, y, z), x+y+z=0. Canonical for all grid math. [Cube]
//   - Offset: (col, row) indices, the natural iteration space of
//     width×height loops. Converted to cube via [OffsetToCubeX] and
//     [OffsetToCubeZ]; the conversion depends on [Orientation] because
//     pointy-top grids stagger rows while flat-top grids stagger columns.
//   - Pixel: screen positions computed from cube coordinates and the
//     hexagon radius. See [Center] and [Corners].
//
// # Orientation
//
// [Orientation] has exactly two members, [FlatTop] and [PointyTop]. It is a
// pure parameter: it never changes which coordinates exist in cube space,
// only how offset indices skew and where pixels land.
package hex

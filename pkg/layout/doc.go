// Package layout enumerates the cube coordinates that make up a hex grid of
// a given shape.
//
// Four silhouettes are supported, selected by [Shape]: rectangular,
// triangular, trapezoid, and hexagonal (a hexagon built out of hexagons).
// Each shape is implemented by a [Strategy] that validates width/height
// parameters and produces the finite, ordered coordinate sequence for the
// shape. Strategies are stateless: the same inputs always reproduce the same
// sequence, and instances are safe to share across goroutines.
//
// The shape set is closed. [ForShape] dispatches over a fixed table rather
// than an open registry; there is deliberately no way to plug in new shapes.
//
// # Validation
//
// [Strategy.CheckSize] fails fast with an INVALID_SIZE error before any
// coordinate is generated, so a rejected build never leaves partial state.
// The rules per shape:
//
//	Rectangle  width > 0, height > 0
//	Trapezoid  width > 0, height > 0
//	Triangle   width > 0, height > 0, width == height
//	Hexagon    width > 0, height > 0, width == height, height odd
//
// The triangle's two equal legs are governed by a single size parameter,
// which is why unequal pairs are rejected. The hexagon's oddness constraint
// guarantees a unique center row.
package layout

// Package render emits visual representations of assembled grids.
//
// Two output surfaces exist: SVG for editors and documentation, and a
// coarse ASCII map for terminal inspection. Both read the grid through the
// same corner/center math the rest of the toolkit uses, so what is rendered
// is exactly what the coordinates say.
package render

// Package grid holds assembled hexagon grids: the per-grid metadata, the
// hexagon records, and the storage that indexes them by cube coordinate.
//
// A [Grid] is produced by the builder package and is immutable afterwards:
// the coordinate set is fixed at assembly time, and only the per-hexagon
// Satellite payload may change. Reads are safe from multiple goroutines once
// assembly completes; assembly itself is single-writer.
//
// # Storage
//
// [Storage] is the associative collaborator keyed by [hex.Cube]. Enumeration
// never produces duplicate coordinates, so a duplicate insert is an
// invariant violation and fails with a DUPLICATE_COORD error rather than
// silently overwriting.
package grid

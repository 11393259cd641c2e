// Package pkg provides the core libraries for hexforge grid assembly.
//
// # Overview
//
// hexforge turns a shape, an orientation and a pair of dimensions into a
// hexagonal tile grid with pixel-space geometry. The pkg directory is
// organized into three main areas:
//
//  1. Domain logic (coordinates, layout strategies, grid assembly)
//  2. Serialization and output (JSON documents, board specs, SVG/ASCII)
//  3. Infrastructure (structured errors, caching, observability hooks)
//
// # Architecture
//
// The typical data flow through hexforge:
//
//	shape + orientation + width × height
//	         ↓
//	    [layout] package (enumerate cube coordinates)
//	         ↓
//	    [grid] package (coordinate-keyed storage + metadata)
//	         ↓
//	    [calc] / [render] packages (queries, SVG/ASCII output)
//	         ↓
//	    JSON/SVG/ASCII output
//
// # Quick Start
//
// Build a hexagonal board and query it:
//
//	import (
//	    "context"
//	    "github.com/hexforge/hexforge/pkg/builder"
//	    "github.com/hexforge/hexforge/pkg/hex"
//	)
//
//	// 1. Assemble the grid
//	ctl, err := builder.New().BuildHexagon(context.Background(), hex.PointyTop, 10, 5, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// 2. Query it
//	center, _ := ctl.Grid.ByCube(hex.At(1, 2))
//	reachable := ctl.Calc.MovementRange(center, 2)
//
// # Main Packages
//
// [hex] - Cube coordinates, orientations, offset conversion and pixel math.
// Everything else is built on this package.
//
// [layout] - The four layout strategies (rectangular, triangular, trapezoid,
// hexagonal) behind a common Strategy interface, with size validation.
//
// [grid] - Assembled grids: coordinate-keyed storage, grid metadata, and the
// hexagon handle type carrying pixel geometry and a satellite payload.
//
// [builder] - The assembly entry point. Validates sizes, runs a layout
// strategy and returns a Control bundling the grid with its calculator.
//
// [calc] - Grid-aware queries: distance, movement range, rings, rotation and
// pixel-to-hexagon lookup.
//
// [gridio] - JSON grid documents and YAML board specs.
//
// [render] - SVG and ASCII output.
//
// [cache] - Built-grid caching with file, redis and no-op backends.
//
// [errors] - Structured error codes shared by the library, CLI and HTTP API.
//
// [observability] - Build and cache hooks for metrics collection.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//	go test -run Example       # Examples only
//
// [hex]: https://pkg.go.dev/github.com/hexforge/hexforge/pkg/hex
// [layout]: https://pkg.go.dev/github.com/hexforge/hexforge/pkg/layout
// [grid]: https://pkg.go.dev/github.com/hexforge/hexforge/pkg/grid
// [builder]: https://pkg.go.dev/github.com/hexforge/hexforge/pkg/builder
// [calc]: https://pkg.go.dev/github.com/hexforge/hexforge/pkg/calc
// [gridio]: https://pkg.go.dev/github.com/hexforge/hexforge/pkg/gridio
// [render]: https://pkg.go.dev/github.com/hexforge/hexforge/pkg/render
// [cache]: https://pkg.go.dev/github.com/hexforge/hexforge/pkg/cache
// [errors]: https://pkg.go.dev/github.com/hexforge/hexforge/pkg/errors
// [observability]: https://pkg.go.dev/github.com/hexforge/hexforge/pkg/observability
package pkg

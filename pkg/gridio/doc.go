// Package gridio provides serialization for assembled hexagon grids and for
// declarative board-spec files.
//
// This package defines the canonical wire format for hexforge grid data,
// used for JSON files, API responses, caching, and cross-tool
// interoperability.
//
// # Grid Serialization
//
// Grids use a flat JSON format carrying the build parameters and the
// coordinate list:
//
//	{
//	  "id": "7d4df816-...",
//	  "shape": "HEXAGONAL",
//	  "orientation": "POINTY_TOP",
//	  "radius": 10,
//	  "width": 5,
//	  "height": 5,
//	  "hexes": [{"x": 1, "z": 0}, ...]
//	}
//
// The format is designed for round-trip fidelity: build → export →
// re-import produces a grid with the same coordinates in the same order.
//
// Common operations:
//
//	ctl, _ := gridio.ReadGridFile("board.json")   // File → Control
//	gridio.WriteGridFile(ctl, "board.json")       // Control → File
//	data, _ := gridio.MarshalGrid(ctl)            // Control → []byte
//
// # Board Specs
//
// Board-spec files describe a set of boards declaratively in YAML:
//
//	boards:
//	  - name: skirmish
//	    shape: hexagonal
//	    orientation: pointy
//	    radius: 24
//	    width: 9
//	    height: 9
//
// Load them with [ReadSpecFile]; each entry validates and builds
// independently, so one bad board does not block the others.
package gridio

package gridio

import (
	"github.com/google/uuid"

	"github.com/hexforge/hexforge/pkg/builder"
	"github.com/hexforge/hexforge/pkg/errors"
	"github.com/hexforge/hexforge/pkg/grid"
	"github.com/hexforge/hexforge/pkg/hex"
	"github.com/hexforge/hexforge/pkg/layout"
)

// GridDoc is the canonical serialization format for assembled grids.
type GridDoc struct {
	ID          string   `json:"id" bson:"id"`
	Shape       string   `json:"shape" bson:"shape"`
	Orientation string   `json:"orientation" bson:"orientation"`
	Radius      float64  `json:"radius" bson:"radius"`
	Width       int      `json:"width" bson:"width"`
	Height      int      `json:"height" bson:"height"`
	Hexes       []HexDoc `json:"hexes" bson:"hexes"`
}

// HexDoc is one serialized hexagon: the stored cube axes plus the optional
// caller payload.
type HexDoc struct {
	X         int `json:"x" bson:"x"`
	Z         int `json:"z" bson:"z"`
	Satellite any `json:"satellite,omitempty" bson:"satellite,omitempty"`
}

// FromControl converts an assembled grid to its serialization format.
// Hexes appear in the grid's enumeration order.
func FromControl(ctl *builder.Control) GridDoc {
	d := ctl.Data
	doc := GridDoc{
		ID:          d.ID.String(),
		Shape:       d.Shape.String(),
		Orientation: d.Orientation.String(),
		Radius:      d.Radius,
		Width:       d.Width,
		Height:      d.Height,
		Hexes:       make([]HexDoc, 0, ctl.Grid.Len()),
	}
	for _, h := range ctl.Grid.Hexagons() {
		doc.Hexes = append(doc.Hexes, HexDoc{
			X:         h.Cube().X,
			Z:         h.Cube().Z,
			Satellite: h.Satellite,
		})
	}
	return doc
}

// ToControl reconstructs an assembled grid from its serialization format.
// The stored coordinate list is authoritative: coordinates are re-inserted
// as-is rather than re-enumerated, so documents survive format evolution of
// the layout algorithms. Duplicate coordinates fail with DUPLICATE_COORD.
func ToControl(doc GridDoc) (*builder.Control, error) {
	shape, err := layout.ParseShape(doc.Shape)
	if err != nil {
		return nil, err
	}
	o, err := hex.ParseOrientation(doc.Orientation)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "grid id %q", doc.ID)
	}

	data := &grid.Data{
		ID:          id,
		Shape:       shape,
		Orientation: o,
		Radius:      doc.Radius,
		Width:       doc.Width,
		Height:      doc.Height,
	}
	g := grid.New(data, grid.NewMapStorage())
	for _, hd := range doc.Hexes {
		h := grid.NewHexagon(data, hex.At(hd.X, hd.Z))
		h.Satellite = hd.Satellite
		if err := g.Add(h); err != nil {
			return nil, err
		}
	}
	return builder.Attach(g), nil
}

package gridio

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hexforge/hexforge/pkg/builder"
	"github.com/hexforge/hexforge/pkg/errors"
	"github.com/hexforge/hexforge/pkg/hex"
	"github.com/hexforge/hexforge/pkg/layout"
)

func buildGrid(t *testing.T) *builder.Control {
	t.Helper()
	ctl, err := builder.New().BuildHexagon(context.Background(), hex.PointyTop, 12, 5, 5)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return ctl
}

func TestGridRoundTrip(t *testing.T) {
	ctl := buildGrid(t)
	ctl.Grid.Hexagons()[0].Satellite = map[string]any{"terrain": "water"}

	data, err := MarshalGrid(ctl)
	if err != nil {
		t.Fatalf("MarshalGrid: %v", err)
	}

	got, err := UnmarshalGrid(data)
	if err != nil {
		t.Fatalf("UnmarshalGrid: %v", err)
	}

	if got.Data.ID != ctl.Data.ID {
		t.Errorf("ID = %v, want %v", got.Data.ID, ctl.Data.ID)
	}
	if got.Data.Shape != layout.ShapeHexagonal || got.Data.Orientation != hex.PointyTop {
		t.Errorf("metadata mismatch: %+v", got.Data)
	}
	if got.Data.Radius != 12 {
		t.Errorf("radius = %g, want 12", got.Data.Radius)
	}
	if got.Grid.Len() != ctl.Grid.Len() {
		t.Fatalf("len = %d, want %d", got.Grid.Len(), ctl.Grid.Len())
	}
	for i, h := range ctl.Grid.Hexagons() {
		if got.Grid.Hexagons()[i].Cube() != h.Cube() {
			t.Fatalf("hexagon %d: %v, want %v (order must survive round-trip)",
				i, got.Grid.Hexagons()[i].Cube(), h.Cube())
		}
	}

	sat, ok := got.Grid.Hexagons()[0].Satellite.(map[string]any)
	if !ok || sat["terrain"] != "water" {
		t.Errorf("satellite payload lost: %v", got.Grid.Hexagons()[0].Satellite)
	}

	// The reconstructed control has a working calculator.
	center, ok := got.Grid.ByCube(hex.At(1, 2))
	if !ok {
		t.Fatal("reconstructed grid missing center")
	}
	if n := len(got.Calc.MovementRange(center, 2)); n != 19 {
		t.Errorf("reconstructed MovementRange = %d, want 19", n)
	}
}

func TestGridFileRoundTrip(t *testing.T) {
	ctl := buildGrid(t)
	path := filepath.Join(t.TempDir(), "board.json")

	if err := WriteGridFile(ctl, path); err != nil {
		t.Fatalf("WriteGridFile: %v", err)
	}
	got, err := ReadGridFile(path)
	if err != nil {
		t.Fatalf("ReadGridFile: %v", err)
	}
	if got.Grid.Len() != 19 {
		t.Errorf("len = %d, want 19", got.Grid.Len())
	}
}

func TestToControlRejectsBadDocs(t *testing.T) {
	base := FromControl(buildGrid(t))

	tests := []struct {
		name   string
		mutate func(*GridDoc)
		code   errors.Code
	}{
		{"BadShape", func(d *GridDoc) { d.Shape = "RHOMBUS" }, errors.ErrCodeInvalidShape},
		{"BadOrientation", func(d *GridDoc) { d.Orientation = "SIDEWAYS" }, errors.ErrCodeInvalidOrientation},
		{"BadID", func(d *GridDoc) { d.ID = "not-a-uuid" }, errors.ErrCodeInvalidSpec},
		{"DuplicateHex", func(d *GridDoc) { d.Hexes = append(d.Hexes, d.Hexes[0]) }, errors.ErrCodeDuplicateCoord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := base
			doc.Hexes = append([]HexDoc(nil), base.Hexes...)
			tt.mutate(&doc)

			_, err := ToControl(doc)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %q, want %q", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestReadGridRejectsGarbage(t *testing.T) {
	if _, err := ReadGrid(strings.NewReader("{not json")); err == nil {
		t.Error("expected decode error")
	}
}

func TestWriteGridOutput(t *testing.T) {
	ctl := buildGrid(t)
	var buf bytes.Buffer
	if err := WriteGrid(ctl, &buf); err != nil {
		t.Fatalf("WriteGrid: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"shape": "HEXAGONAL"`, `"orientation": "POINTY_TOP"`, `"hexes"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}
}

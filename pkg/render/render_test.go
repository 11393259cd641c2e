package render

import (
	"context"
	"strings"
	"testing"

	"github.com/hexforge/hexforge/pkg/builder"
	"github.com/hexforge/hexforge/pkg/grid"
	"github.com/hexforge/hexforge/pkg/hex"
	"github.com/hexforge/hexforge/pkg/layout"
)

func build(t *testing.T, fn func() (*builder.Control, error)) *builder.Control {
	t.Helper()
	ctl, err := fn()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return ctl
}

func TestSVG(t *testing.T) {
	ctl := build(t, func() (*builder.Control, error) {
		return builder.New().BuildHexagon(context.Background(), hex.PointyTop, 10, 5, 5)
	})

	var buf strings.Builder
	if err := SVG(&buf, ctl, DefaultSVGOptions()); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<svg ") {
		t.Error("output does not start with an svg element")
	}
	if got := strings.Count(out, "<polygon "); got != 19 {
		t.Errorf("polygons = %d, want 19", got)
	}
	if strings.Contains(out, "<text") {
		t.Error("labels rendered without Labels option")
	}
	if strings.Contains(out, `points="-`) {
		t.Error("corner points not translated into the viewport")
	}
}

func TestSVGEmptyGrid(t *testing.T) {
	// Deserialized documents can carry zero hexes; the viewport must stay
	// finite instead of collapsing to Inf/NaN dimensions.
	g := grid.New(grid.NewData(layout.ShapeRectangular, hex.PointyTop, 10, 1, 1), grid.NewMapStorage())
	ctl := builder.Attach(g)

	var buf strings.Builder
	if err := SVG(&buf, ctl, DefaultSVGOptions()); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<svg ") {
		t.Errorf("output does not start with an svg element:\n%s", out)
	}
	for _, bad := range []string{"Inf", "NaN"} {
		if strings.Contains(out, bad) {
			t.Errorf("output contains %s:\n%s", bad, out)
		}
	}
}

func TestSVGLabels(t *testing.T) {
	ctl := build(t, func() (*builder.Control, error) {
		return builder.New().BuildTriangle(context.Background(), hex.FlatTop, 10, 3, 3)
	})

	opts := DefaultSVGOptions()
	opts.Labels = true

	var buf strings.Builder
	if err := SVG(&buf, ctl, opts); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if got := strings.Count(buf.String(), "<text"); got != 6 {
		t.Errorf("labels = %d, want 6", got)
	}
	if !strings.Contains(buf.String(), ">0,0<") {
		t.Error("origin label missing")
	}
}

func TestASCIITriangle(t *testing.T) {
	ctl := build(t, func() (*builder.Control, error) {
		return builder.New().BuildTriangle(context.Background(), hex.PointyTop, 1, 3, 3)
	})

	out := ASCII(ctl)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), out)
	}
	for i, want := range []int{3, 2, 1} {
		if got := strings.Count(lines[i], "*"); got != want {
			t.Errorf("row %d has %d hexagons, want %d:\n%s", i, got, want, out)
		}
	}
	// Each pointy-top row is staggered one cell right of the previous.
	if !strings.HasPrefix(lines[0], "*") || !strings.HasPrefix(lines[1], " *") {
		t.Errorf("stagger missing:\n%s", out)
	}
}

func TestASCIICounts(t *testing.T) {
	for _, o := range []hex.Orientation{hex.FlatTop, hex.PointyTop} {
		ctl := build(t, func() (*builder.Control, error) {
			return builder.New().BuildHexagon(context.Background(), o, 1, 5, 5)
		})
		out := ASCII(ctl)
		if got := strings.Count(out, "*"); got != 19 {
			t.Errorf("%v: rendered %d hexagons, want 19", o, got)
		}
	}
}

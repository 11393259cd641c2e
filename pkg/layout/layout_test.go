package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hexforge/hexforge/pkg/errors"
	"github.com/hexforge/hexforge/pkg/hex"
)

func TestCheckSize(t *testing.T) {
	tests := []struct {
		name          string
		strat         Strategy
		width, height int
		wantErr       bool
		wantSubstr    string
	}{
		{"RectangleValid", Rectangle{}, 3, 2, false, ""},
		{"RectangleZeroWidth", Rectangle{}, 0, 3, true, "larger than zero"},
		{"RectangleZeroHeight", Rectangle{}, 5, 0, true, "larger than zero"},
		{"RectangleNegative", Rectangle{}, -1, 3, true, "larger than zero"},

		{"TrapezoidValid", Trapezoid{}, 4, 7, false, ""},
		{"TrapezoidZeroWidth", Trapezoid{}, 0, 5, true, "larger than zero"},
		{"TrapezoidZeroHeight", Trapezoid{}, 5, 0, true, "larger than zero"},

		{"TriangleValid", Triangle{}, 5, 5, false, ""},
		{"TriangleUnequal", Triangle{}, 3, 4, true, "must be equal"},
		{"TriangleZero", Triangle{}, 0, 0, true, "larger than zero"},
		{"TriangleZeroWidth", Triangle{}, 0, 5, true, ""},
		{"TriangleZeroHeight", Triangle{}, 5, 0, true, ""},

		{"HexagonValid", Hexagon{}, 5, 5, false, ""},
		{"HexagonOne", Hexagon{}, 1, 1, false, ""},
		{"HexagonEven", Hexagon{}, 4, 4, true, "odd"},
		{"HexagonUnequal", Hexagon{}, 3, 5, true, "must be equal"},
		{"HexagonZeroWidth", Hexagon{}, 0, 5, true, ""},
		{"HexagonZeroHeight", Hexagon{}, 5, 0, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.strat.CheckSize(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckSize(%d, %d) error = %v, wantErr %v",
					tt.width, tt.height, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, errors.ErrCodeInvalidSize) {
				t.Errorf("error code = %q, want INVALID_SIZE", errors.GetCode(err))
			}
			if tt.wantSubstr != "" && !strings.Contains(err.Error(), tt.wantSubstr) {
				t.Errorf("error %q missing %q", err, tt.wantSubstr)
			}
		})
	}
}

// Validation messages must name the offending size pair so callers can fix
// their input without guessing.
func TestCheckSizeNamesOffendingPair(t *testing.T) {
	err := Rectangle{}.CheckSize(0, 3)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "0, 3") {
		t.Errorf("error %q does not name the size pair", err)
	}
}

func TestGridCoordCounts(t *testing.T) {
	tests := []struct {
		name          string
		strat         Strategy
		width, height int
		want          int
	}{
		{"Rectangle3x2", Rectangle{}, 3, 2, 6},
		{"Rectangle7x5", Rectangle{}, 7, 5, 35},
		{"Trapezoid4x3", Trapezoid{}, 4, 3, 12},
		{"Triangle3", Triangle{}, 3, 3, 6},
		{"Triangle5", Triangle{}, 5, 5, 15},
		{"Hexagon1", Hexagon{}, 1, 1, 1},
		{"Hexagon3", Hexagon{}, 3, 3, 7},
		{"Hexagon5", Hexagon{}, 5, 5, 19},
		{"Hexagon7", Hexagon{}, 7, 7, 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, o := range []hex.Orientation{hex.FlatTop, hex.PointyTop} {
				coords := tt.strat.GridCoords(tt.width, tt.height, o)
				if len(coords) != tt.want {
					t.Errorf("%v: got %d coords, want %d", o, len(coords), tt.want)
				}
				seen := make(map[hex.Cube]bool, len(coords))
				for _, c := range coords {
					if seen[c] {
						t.Errorf("%v: duplicate coordinate %v", o, c)
					}
					seen[c] = true
				}
			}
		})
	}
}

func TestRectangleCoords(t *testing.T) {
	tests := []struct {
		name string
		o    hex.Orientation
		want []hex.Cube
	}{
		{
			name: "Pointy3x2",
			o:    hex.PointyTop,
			want: []hex.Cube{
				{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 2, Z: 0},
				{X: 0, Z: 1}, {X: 1, Z: 1}, {X: 2, Z: 1},
			},
		},
		{
			name: "Flat3x2",
			o:    hex.FlatTop,
			want: []hex.Cube{
				{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 2, Z: -1},
				{X: 0, Z: 1}, {X: 1, Z: 1}, {X: 2, Z: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rectangle{}.GridCoords(3, 2, tt.o)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("coords mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTriangleCoords(t *testing.T) {
	want := []hex.Cube{
		{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 2, Z: 0},
		{X: 0, Z: 1}, {X: 1, Z: 1},
		{X: 0, Z: 2},
	}
	// Orientation does not influence triangle coordinates.
	for _, o := range []hex.Orientation{hex.FlatTop, hex.PointyTop} {
		got := Triangle{}.GridCoords(3, 3, o)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v coords mismatch (-want +got):\n%s", o, diff)
		}
	}
}

func TestTrapezoidCoords(t *testing.T) {
	want := []hex.Cube{
		{X: 0, Z: 0}, {X: 1, Z: 0},
		{X: 0, Z: 1}, {X: 1, Z: 1},
		{X: 0, Z: 2}, {X: 1, Z: 2},
	}
	got := Trapezoid{}.GridCoords(2, 3, hex.PointyTop)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("coords mismatch (-want +got):\n%s", diff)
	}
}

func TestHexagonCoordsPointy(t *testing.T) {
	want := []hex.Cube{
		{X: 1, Z: 0}, {X: 2, Z: 0}, {X: 3, Z: 0},
		{X: 0, Z: 1}, {X: 1, Z: 1}, {X: 2, Z: 1}, {X: 3, Z: 1},
		{X: -1, Z: 2}, {X: 0, Z: 2}, {X: 1, Z: 2}, {X: 2, Z: 2}, {X: 3, Z: 2},
		{X: -1, Z: 3}, {X: 0, Z: 3}, {X: 1, Z: 3}, {X: 2, Z: 3},
		{X: -1, Z: 4}, {X: 0, Z: 4}, {X: 1, Z: 4},
	}
	got := Hexagon{}.GridCoords(5, 5, hex.PointyTop)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("coords mismatch (-want +got):\n%s", diff)
	}
}

func TestHexagonCoordsFlat(t *testing.T) {
	want := []hex.Cube{
		{X: 2, Z: -1}, {X: 3, Z: -1}, {X: 4, Z: -1},
		{X: 1, Z: 0}, {X: 2, Z: 0}, {X: 3, Z: 0}, {X: 4, Z: 0},
		{X: 0, Z: 1}, {X: 1, Z: 1}, {X: 2, Z: 1}, {X: 3, Z: 1}, {X: 4, Z: 1},
		{X: 0, Z: 2}, {X: 1, Z: 2}, {X: 2, Z: 2}, {X: 3, Z: 2},
		{X: 0, Z: 3}, {X: 1, Z: 3}, {X: 2, Z: 3},
	}
	got := Hexagon{}.GridCoords(5, 5, hex.FlatTop)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("coords mismatch (-want +got):\n%s", diff)
	}
}

// Hexagon grids must form a perfect disk in cube space: every coordinate
// within hexRadius of the grid's center, and nothing else.
func TestHexagonIsDisk(t *testing.T) {
	for _, o := range []hex.Orientation{hex.FlatTop, hex.PointyTop} {
		for _, size := range []int{1, 3, 5, 7, 9} {
			coords := Hexagon{}.GridCoords(size, size, o)
			radius := size / 2

			// Locate the middle-row anchor: the grid's center hexagon.
			var center hex.Cube
			found := false
			for _, c := range coords {
				ok := true
				for _, d := range coords {
					if hex.Distance(c, d) > radius {
						ok = false
						break
					}
				}
				if ok {
					center = c
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("%v size %d: no center within radius %d", o, size, radius)
			}
			for _, c := range coords {
				if hex.Distance(center, c) > radius {
					t.Errorf("%v size %d: %v outside radius %d of center %v",
						o, size, c, radius, center)
				}
			}
		}
	}
}

func TestGridCoordsIdempotent(t *testing.T) {
	strats := []Strategy{Rectangle{}, Triangle{}, Trapezoid{}, Hexagon{}}
	for _, s := range strats {
		a := s.GridCoords(5, 5, hex.PointyTop)
		b := s.GridCoords(5, 5, hex.PointyTop)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: repeated enumeration differs:\n%s", s.Name(), diff)
		}
	}
}

func TestForShape(t *testing.T) {
	tests := []struct {
		shape Shape
		name  string
	}{
		{ShapeRectangular, "RECTANGULAR"},
		{ShapeTriangular, "TRIANGULAR"},
		{ShapeTrapezoid, "TRAPEZOID"},
		{ShapeHexagonal, "HEXAGONAL"},
	}
	for _, tt := range tests {
		strat, err := ForShape(tt.shape)
		if err != nil {
			t.Fatalf("ForShape(%v): %v", tt.shape, err)
		}
		if strat.Name() != tt.name {
			t.Errorf("ForShape(%v).Name() = %q, want %q", tt.shape, strat.Name(), tt.name)
		}
	}

	if _, err := ForShape(Shape(42)); !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("ForShape(42) error = %v, want INVALID_SHAPE", err)
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"rectangular", ShapeRectangular, false},
		{"RECTANGLE", ShapeRectangular, false},
		{"triangle", ShapeTriangular, false},
		{"trapezoid", ShapeTrapezoid, false},
		{"Hexagonal", ShapeHexagonal, false},
		{"hexagon", ShapeHexagonal, false},
		{"rhombus", ShapeRectangular, true},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseShape(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

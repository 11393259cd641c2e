package gridio

import (
	"context"
	"strings"
	"testing"

	"github.com/hexforge/hexforge/pkg/builder"
	"github.com/hexforge/hexforge/pkg/errors"
)

const validSpec = `
boards:
  - name: skirmish
    shape: hexagonal
    orientation: pointy
    radius: 24
    width: 5
    height: 5
  - name: campaign
    shape: rectangular
    orientation: flat
    radius: 16
    width: 12
    height: 8
`

func TestReadSpec(t *testing.T) {
	spec, err := ReadSpec(strings.NewReader(validSpec))
	if err != nil {
		t.Fatalf("ReadSpec: %v", err)
	}
	if len(spec.Boards) != 2 {
		t.Fatalf("boards = %d, want 2", len(spec.Boards))
	}
	if spec.Boards[0].Name != "skirmish" || spec.Boards[1].Name != "campaign" {
		t.Errorf("board names = %q, %q", spec.Boards[0].Name, spec.Boards[1].Name)
	}
}

func TestSpecBuild(t *testing.T) {
	spec, err := ReadSpec(strings.NewReader(validSpec))
	if err != nil {
		t.Fatalf("ReadSpec: %v", err)
	}

	bld := builder.New()
	ctl, err := spec.Boards[0].Build(context.Background(), bld)
	if err != nil {
		t.Fatalf("Build(skirmish): %v", err)
	}
	if ctl.Grid.Len() != 19 {
		t.Errorf("skirmish grid = %d hexagons, want 19", ctl.Grid.Len())
	}

	ctl, err = spec.Boards[1].Build(context.Background(), bld)
	if err != nil {
		t.Fatalf("Build(campaign): %v", err)
	}
	if ctl.Grid.Len() != 96 {
		t.Errorf("campaign grid = %d hexagons, want 96", ctl.Grid.Len())
	}
}

func TestReadSpecValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"Empty", "boards: []"},
		{"MissingName", `
boards:
  - shape: hexagonal
    orientation: pointy
    radius: 10
    width: 5
    height: 5
`},
		{"DuplicateName", `
boards:
  - name: a
    shape: hexagonal
    orientation: pointy
    radius: 10
    width: 5
    height: 5
  - name: a
    shape: trapezoid
    orientation: flat
    radius: 10
    width: 3
    height: 3
`},
		{"BadShape", `
boards:
  - name: a
    shape: rhombus
    orientation: pointy
    radius: 10
    width: 5
    height: 5
`},
		{"BadOrientation", `
boards:
  - name: a
    shape: hexagonal
    orientation: upside-down
    radius: 10
    width: 5
    height: 5
`},
		{"ZeroRadius", `
boards:
  - name: a
    shape: hexagonal
    orientation: pointy
    radius: 0
    width: 5
    height: 5
`},
		{"UnknownField", `
boards:
  - name: a
    shape: hexagonal
    orientation: pointy
    radius: 10
    width: 5
    height: 5
    colour: red
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSpec(strings.NewReader(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidSpec) {
				t.Errorf("code = %q, want INVALID_SPEC", errors.GetCode(err))
			}
		})
	}
}

// Size violations are deliberately not caught by spec validation; they
// surface when the board builds, carrying the strategy's message.
func TestSpecDefersSizeValidation(t *testing.T) {
	spec, err := ReadSpec(strings.NewReader(`
boards:
  - name: broken
    shape: hexagonal
    orientation: pointy
    radius: 10
    width: 4
    height: 4
`))
	if err != nil {
		t.Fatalf("ReadSpec: %v", err)
	}

	_, err = spec.Boards[0].Build(context.Background(), builder.New())
	if !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Errorf("Build error = %v, want INVALID_SIZE", err)
	}
}

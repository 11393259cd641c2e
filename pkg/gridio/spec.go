package gridio

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hexforge/hexforge/pkg/builder"
	"github.com/hexforge/hexforge/pkg/errors"
	"github.com/hexforge/hexforge/pkg/hex"
	"github.com/hexforge/hexforge/pkg/layout"
)

// Spec is a declarative board-spec file: a named list of boards to build.
type Spec struct {
	Boards []BoardSpec `yaml:"boards"`
}

// BoardSpec describes one board in a spec file.
type BoardSpec struct {
	Name        string  `yaml:"name"`
	Shape       string  `yaml:"shape"`
	Orientation string  `yaml:"orientation"`
	Radius      float64 `yaml:"radius"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
}

// ReadSpecFile reads and validates a YAML board-spec file.
func ReadSpecFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSpec(f)
}

// ReadSpec decodes and validates a YAML board spec from an io.Reader.
func ReadSpec(r io.Reader) (*Spec, error) {
	var spec Spec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "decode board spec")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks structural requirements of the spec: at least one board,
// unique non-empty names, and parseable shape/orientation tags. Size
// validation is the layout strategies' job and happens at build time.
func (s *Spec) Validate() error {
	if len(s.Boards) == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "board spec contains no boards")
	}
	seen := make(map[string]bool, len(s.Boards))
	for i, b := range s.Boards {
		if b.Name == "" {
			return errors.New(errors.ErrCodeInvalidSpec, "board %d has no name", i)
		}
		if seen[b.Name] {
			return errors.New(errors.ErrCodeInvalidSpec, "duplicate board name %q", b.Name)
		}
		seen[b.Name] = true
		if _, err := layout.ParseShape(b.Shape); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSpec, err, "board %q", b.Name)
		}
		if _, err := hex.ParseOrientation(b.Orientation); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSpec, err, "board %q", b.Name)
		}
		if b.Radius <= 0 {
			return errors.New(errors.ErrCodeInvalidSpec,
				"board %q: radius %g must be larger than zero", b.Name, b.Radius)
		}
	}
	return nil
}

// Build assembles the board described by b. Size violations surface as the
// usual INVALID_SIZE build errors.
func (b BoardSpec) Build(ctx context.Context, bld *builder.Builder) (*builder.Control, error) {
	shape, err := layout.ParseShape(b.Shape)
	if err != nil {
		return nil, err
	}
	o, err := hex.ParseOrientation(b.Orientation)
	if err != nil {
		return nil, err
	}
	return bld.Build(ctx, shape, o, b.Radius, b.Width, b.Height)
}

package gridio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hexforge/hexforge/pkg/builder"
)

// MarshalGrid converts an assembled grid to JSON bytes.
func MarshalGrid(ctl *builder.Control) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGridTo(ctl, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalGrid decodes JSON bytes into an assembled grid.
func UnmarshalGrid(data []byte) (*builder.Control, error) {
	return readGridFrom(bytes.NewReader(data))
}

// WriteGridFile writes an assembled grid to a JSON file.
// The file is created with 0644 permissions.
func WriteGridFile(ctl *builder.Control, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGridTo(ctl, f)
}

// WriteGrid writes an assembled grid as JSON to an io.Writer.
// Use MarshalGrid for in-memory serialization or WriteGridFile for files.
func WriteGrid(ctl *builder.Control, w io.Writer) error {
	return writeGridTo(ctl, w)
}

// ReadGridFile reads a JSON file and returns the decoded grid.
// Returns validation errors for malformed documents.
func ReadGridFile(path string) (*builder.Control, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readGridFrom(f)
}

// ReadGrid decodes a JSON grid from an io.Reader.
// Use ReadGridFile for files or pass bytes.NewReader for in-memory data.
func ReadGrid(r io.Reader) (*builder.Control, error) {
	return readGridFrom(r)
}

func writeGridTo(ctl *builder.Control, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromControl(ctl)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readGridFrom(r io.Reader) (*builder.Control, error) {
	var doc GridDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToControl(doc)
}

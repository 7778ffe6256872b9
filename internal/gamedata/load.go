package gamedata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LoadError reports an I/O failure reading or writing a document.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("gamedata: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// InvalidDataError reports a document that does not match the schema.
type InvalidDataError struct {
	Path string
	Err  error
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("gamedata: invalid %s: %v", e.Path, e.Err)
}

func (e *InvalidDataError) Unwrap() error { return e.Err }

// Decode parses and validates a document. path is only used in errors.
func Decode(r io.Reader, path string) (*GameData, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var g GameData
	if err := dec.Decode(&g); err != nil {
		return nil, &InvalidDataError{Path: path, Err: err}
	}
	if dec.More() {
		return nil, &InvalidDataError{Path: path, Err: errors.New("trailing data after document")}
	}
	if err := g.Validate(); err != nil {
		return nil, &InvalidDataError{Path: path, Err: err}
	}
	return &g, nil
}

// Load reads a document from disk.
func Load(path string) (*GameData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return Decode(bytes.NewReader(data), path)
}

// Encode writes the document as indented JSON.
func Encode(w io.Writer, g *GameData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

// Save writes the document atomically: to a temporary file in the same
// directory which is then renamed over path.
func Save(path string, g *GameData) error {
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return &InvalidDataError{Path: path, Err: err}
	}
	if err := WriteFileAtomic(path, buf.Bytes()); err != nil {
		return &LoadError{Path: path, Err: err}
	}
	return nil
}

// WriteFileAtomic replaces path with data via a temporary file and rename.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}

package gamedata

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/weegames/internal/core"
)

// Playthrough is a recorded run of one microgame: the mouse sample of every
// frame plus everything needed to reproduce it.
type Playthrough struct {
	Path       string
	Inputs     []core.Mouse
	Difficulty uint32
	Seed       int64
	HasBeenWon bool
}

// WritePlaythrough encodes a record in binary form.
func WritePlaythrough(w io.Writer, p *Playthrough) error {
	if err := gob.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("gamedata: encode playthrough: %w", err)
	}
	return nil
}

// ReadPlaythrough decodes a record.
func ReadPlaythrough(r io.Reader) (*Playthrough, error) {
	var p Playthrough
	if err := gob.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("gamedata: decode playthrough: %w", err)
	}
	return &p, nil
}

// SavePlaythrough writes a record to path.
func SavePlaythrough(path string, p *Playthrough) error {
	f, err := os.Create(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return WritePlaythrough(f, p)
}

// LoadPlaythrough reads a record from path.
func LoadPlaythrough(path string) (*Playthrough, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return ReadPlaythrough(f)
}

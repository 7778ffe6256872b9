package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Bundle packages many documents keyed by their path relative to the games
// root. It is written as all-games.json.
type Bundle struct {
	Games map[string]*GameData `json:"games"`
}

// NewBundle creates an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{Games: make(map[string]*GameData)}
}

// Add stores a document under path.
func (b *Bundle) Add(path string, g *GameData) {
	b.Games[path] = g
}

// Paths returns the bundled paths in sorted order.
func (b *Bundle) Paths() []string {
	paths := make([]string, 0, len(b.Games))
	for p := range b.Games {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Write encodes the bundle.
func (b *Bundle) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(b)
}

// ReadBundle decodes and validates a bundle.
func ReadBundle(r io.Reader) (*Bundle, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	b := NewBundle()
	if err := dec.Decode(b); err != nil {
		return nil, &InvalidDataError{Path: "all-games.json", Err: err}
	}
	for _, p := range b.Paths() {
		if err := b.Games[p].Validate(); err != nil {
			return nil, &InvalidDataError{Path: p, Err: err}
		}
	}
	return b, nil
}

// Attributions formats the non-empty attribution of every bundled document,
// one block per game.
func (b *Bundle) Attributions() string {
	var sb strings.Builder
	for _, p := range b.Paths() {
		a := strings.TrimSpace(b.Games[p].Attribution)
		if a == "" {
			continue
		}
		fmt.Fprintf(&sb, "%s\n%s\n\n", p, a)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Clone deep-copies a document through its JSON form.
func Clone(g *GameData) (*GameData, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(g); err != nil {
		return nil, err
	}
	return Decode(&buf, "clone")
}

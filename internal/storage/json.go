package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/weegames/internal/gamedata"
)

// File names of the JSON back-end, inside each games directory.
const (
	HighScoresFile  = "high-scores.json"
	PlayedGamesFile = "played-games.json"
)

// JSONStore keeps each directory's records in JSON files next to its games.
// dir arguments are directory paths.
type JSONStore struct{}

// NewJSONStore creates a JSON file store.
func NewJSONStore() *JSONStore {
	return &JSONStore{}
}

// HighScores reads dir's high scores. A missing file reads as zeros.
func (s *JSONStore) HighScores(dir string) (HighScores, error) {
	var h HighScores
	if err := readJSON(filepath.Join(dir, HighScoresFile), &h); err != nil {
		return HighScores{}, err
	}
	return h, nil
}

// SaveHighScores replaces dir's high scores.
func (s *JSONStore) SaveHighScores(dir string, scores HighScores) error {
	return writeJSON(filepath.Join(dir, HighScoresFile), scores)
}

// PlayedGames reads dir's played-games set. A missing file reads as empty.
func (s *JSONStore) PlayedGames(dir string) ([]string, error) {
	var games []string
	if err := readJSON(filepath.Join(dir, PlayedGamesFile), &games); err != nil {
		return nil, err
	}
	return games, nil
}

// SavePlayedGames replaces dir's played-games set.
func (s *JSONStore) SavePlayedGames(dir string, games []string) error {
	if games == nil {
		games = []string{}
	}
	return writeJSON(filepath.Join(dir, PlayedGamesFile), games)
}

// ClearScores removes dir's record files.
func (s *JSONStore) ClearScores(dir string) error {
	for _, name := range []string{HighScoresFile, PlayedGamesFile} {
		err := os.Remove(filepath.Join(dir, name))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("storage: cannot clear %s: %w", name, err)
		}
	}
	return nil
}

// Close is a no-op.
func (s *JSONStore) Close() error { return nil }

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("storage: cannot read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("storage: cannot parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: cannot encode %s: %w", path, err)
	}
	if err := gamedata.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", path, err)
	}
	return nil
}

// Package storage persists per-directory high scores and the set of played
// games. Two back-ends share one contract: JSON files inside each games
// directory, and a SQLite database using the pure-Go modernc.org/sqlite
// driver.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// HighScores is the top three scores of a directory, highest first.
type HighScores [3]int

// Insert returns the top three of the existing scores plus score.
func (h HighScores) Insert(score int) HighScores {
	all := []int{h[0], h[1], h[2], score}
	sort.Sort(sort.Reverse(sort.IntSlice(all)))
	return HighScores{all[0], all[1], all[2]}
}

// Store is a persistent sink for session results. dir is the path of a
// games directory.
type Store interface {
	HighScores(dir string) (HighScores, error)
	SaveHighScores(dir string, scores HighScores) error
	PlayedGames(dir string) ([]string, error)
	SavePlayedGames(dir string, games []string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open creates the store named by backend. path is the SQLite database
// file; the JSON back-end writes next to each directory's games instead and
// ignores it.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendJSON:
		return NewJSONStore(), nil
	case BackendSQLite:
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("storage: unknown backend %q", backend)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// mergePlayed returns the sorted union of two game sets.
func mergePlayed(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, g := range append(append([]string(nil), a...), b...) {
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	sort.Strings(out)
	return out
}

// ScoreRecorder is implemented by stores that keep a history of every
// session, not only the top three.
type ScoreRecorder interface {
	SaveScore(dir string, score int) (int64, error)
}

// Clearer is implemented by stores that can forget a directory.
type Clearer interface {
	ClearScores(dir string) error
}

// Commit records a finished session for dir: the score joins the high
// scores and played joins the played-games set.
func Commit(s Store, dir string, score int, played []string) (HighScores, error) {
	if r, ok := s.(ScoreRecorder); ok {
		if _, err := r.SaveScore(dir, score); err != nil {
			return HighScores{}, err
		}
	}
	scores, err := s.HighScores(dir)
	if err != nil {
		return HighScores{}, err
	}
	scores = scores.Insert(score)
	if err := s.SaveHighScores(dir, scores); err != nil {
		return HighScores{}, err
	}

	known, err := s.PlayedGames(dir)
	if err != nil {
		return scores, err
	}
	if err := s.SavePlayedGames(dir, mergePlayed(known, played)); err != nil {
		return scores, err
	}
	return scores, nil
}

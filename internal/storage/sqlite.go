package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Keys of the kv table.
const (
	keyHighScores  = "high-scores"
	keyPlayedGames = "played-games"
)

// SQLiteStore keeps every directory's records in one SQLite database.
// dir arguments may be directory paths; records are keyed by the base name
// so a games root can move without losing them. Besides the top three it
// keeps the full history of session scores.
type SQLiteStore struct {
	db *sql.DB
}

// ScoreEntry represents a single finished session.
type ScoreEntry struct {
	ID        int64
	Directory string
	Score     int
	CreatedAt time.Time
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			directory TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (directory, key)
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			directory TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_directory ON scores(directory);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(directory, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) get(dir, key string, v any) error {
	dir = filepath.Base(dir)
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE directory = ? AND key = ?", dir, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("storage: cannot read %s/%s: %w", dir, key, err)
	}
	if err := json.Unmarshal([]byte(value), v); err != nil {
		return fmt.Errorf("storage: cannot parse %s/%s: %w", dir, key, err)
	}
	return nil
}

func (s *SQLiteStore) put(dir, key string, v any) error {
	dir = filepath.Base(dir)
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: cannot encode %s/%s: %w", dir, key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (directory, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(directory, key) DO UPDATE SET value = excluded.value`,
		dir, key, string(value),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s/%s: %w", dir, key, err)
	}
	return nil
}

// HighScores returns dir's top three. Absent records read as zeros.
func (s *SQLiteStore) HighScores(dir string) (HighScores, error) {
	var h HighScores
	err := s.get(dir, keyHighScores, &h)
	return h, err
}

// SaveHighScores replaces dir's top three.
func (s *SQLiteStore) SaveHighScores(dir string, scores HighScores) error {
	return s.put(dir, keyHighScores, scores)
}

// PlayedGames returns dir's played-games set.
func (s *SQLiteStore) PlayedGames(dir string) ([]string, error) {
	var games []string
	err := s.get(dir, keyPlayedGames, &games)
	return games, err
}

// SavePlayedGames replaces dir's played-games set.
func (s *SQLiteStore) SavePlayedGames(dir string, games []string) error {
	if games == nil {
		games = []string{}
	}
	return s.put(dir, keyPlayedGames, games)
}

// SaveScore records a finished session for the given directory.
// Returns the ID of the inserted record.
func (s *SQLiteStore) SaveScore(dir string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (directory, score) VALUES (?, ?)",
		filepath.Base(dir), score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N session scores for the given directory.
// Results are ordered by score descending.
func (s *SQLiteStore) TopScores(dir string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, directory, score, created_at
		 FROM scores
		 WHERE directory = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		filepath.Base(dir), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Directory, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearScores deletes the score history and records of the given directory.
func (s *SQLiteStore) ClearScores(dir string) error {
	dir = filepath.Base(dir)
	if _, err := s.db.Exec("DELETE FROM scores WHERE directory = ?", dir); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM kv WHERE directory = ?", dir); err != nil {
		return fmt.Errorf("storage: cannot clear records: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for a directory.
type Stats struct {
	Directory  string
	Sessions   int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// AllStats retrieves statistics for every directory that has been played.
func (s *SQLiteStore) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT directory, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM scores
		 GROUP BY directory`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Directory, &st.Sessions, &st.HighScore, &st.AvgScore, &st.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Directory] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

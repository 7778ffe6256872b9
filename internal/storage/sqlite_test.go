package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created in the nested directory
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteRecords(t *testing.T) {
	store := openTestDB(t)

	scores, err := store.HighScores("games/yellow")
	if err != nil {
		t.Fatalf("HighScores() failed: %v", err)
	}
	if scores != (HighScores{}) {
		t.Errorf("HighScores() = %v, expected zeros", scores)
	}
	played, err := store.PlayedGames("games/yellow")
	if err != nil {
		t.Fatalf("PlayedGames() failed: %v", err)
	}
	if len(played) != 0 {
		t.Errorf("PlayedGames() = %v, expected empty", played)
	}

	if err := store.SaveHighScores("games/yellow", HighScores{9, 4, 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveHighScores("games/yellow", HighScores{12, 9, 4}); err != nil {
		t.Fatal(err)
	}
	if err := store.SavePlayedGames("games/yellow", []string{"a", "b"}); err != nil {
		t.Fatal(err)
	}

	// Records are keyed by directory name.
	scores, _ = store.HighScores("elsewhere/yellow")
	if scores != (HighScores{12, 9, 4}) {
		t.Errorf("HighScores() = %v, expected [12 9 4]", scores)
	}
	played, _ = store.PlayedGames("yellow")
	if !reflect.DeepEqual(played, []string{"a", "b"}) {
		t.Errorf("PlayedGames() = %v", played)
	}
	scores, _ = store.HighScores("green")
	if scores != (HighScores{}) {
		t.Errorf("other directory affected: %v", scores)
	}
}

func TestSQLiteSaveAndRetrieve(t *testing.T) {
	store := openTestDB(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("yellow", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("green", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("yellow", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	green, err := store.TopScores("green", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(green) != 1 {
		t.Errorf("Expected 1 green score, got %d", len(green))
	}
}

func TestSQLiteTopScoresLimit(t *testing.T) {
	store := openTestDB(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*10)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestSQLiteClearScores(t *testing.T) {
	store := openTestDB(t)

	store.SaveScore("yellow", 10)
	store.SaveHighScores("yellow", HighScores{10})
	store.SaveScore("green", 30)

	if err := store.ClearScores("yellow"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	yellow, _ := store.TopScores("yellow", 10)
	if len(yellow) != 0 {
		t.Errorf("Expected 0 yellow scores after clear, got %d", len(yellow))
	}
	if h, _ := store.HighScores("yellow"); h != (HighScores{}) {
		t.Errorf("HighScores() after clear = %v", h)
	}
	green, _ := store.TopScores("green", 10)
	if len(green) != 1 {
		t.Errorf("Green scores should not be affected by clearing yellow")
	}
}

func TestSQLiteAllStats(t *testing.T) {
	store := openTestDB(t)

	store.SaveScore("yellow", 10)
	store.SaveScore("yellow", 20)
	store.SaveScore("green", 7)

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 directories, got %d", len(stats))
	}

	y := stats["yellow"]
	if y.Sessions != 2 || y.HighScore != 20 || y.TotalScore != 30 || y.AvgScore != 15 {
		t.Errorf("yellow stats = %+v", y)
	}
}

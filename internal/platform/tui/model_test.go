package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/weegames/internal/registry"
	"github.com/vovakirdan/weegames/internal/session"
	"github.com/vovakirdan/weegames/internal/storage"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	root := t.TempDir()
	c := &registry.Catalog{Root: root}
	c.Add(registry.Directory{
		Name:  "yellow",
		Path:  filepath.Join(root, "yellow"),
		Games: []string{filepath.Join(root, "yellow", "click.json")},
	})
	s := session.New(root, session.WithCatalog(c), session.WithLogger(log.New(io.Discard)))
	t.Cleanup(s.Close)
	return s
}

func step(t *testing.T, m tea.Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func TestModelMenu(t *testing.T) {
	m := NewModel(newSession(t), nil, 100, 30)

	view := m.View()
	for _, want := range []string{"W E E G A M E S", "yellow", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := step(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if got := m.session.State(); got != session.StateModeSelect {
		t.Errorf("State() = %v, expected ModeSelect", got)
	}
	if !strings.Contains(m.View(), session.OptionPractice) {
		t.Error("mode menu should offer practice")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newSession(t), nil, 100, 30)

	m, _ = step(t, m, runes("q"))
	m, cmd := step(t, m, TickMsg(time.Now()))
	if !m.session.Done() {
		t.Fatal("session should be done after q")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelCtrlC(t *testing.T) {
	m := NewModel(newSession(t), nil, 100, 30)

	_, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(newSession(t), nil, 100, 30)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if m.screen.Width() != 60 || m.screen.Height() != 20-statusRows {
		t.Errorf("screen = %dx%d, expected 60x%d", m.screen.Width(), m.screen.Height(), 20-statusRows)
	}
}

func TestModelErrorView(t *testing.T) {
	m := NewModel(newSession(t), nil, 100, 30)

	// The directory's only game does not exist on disk.
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyEnter}, TickMsg(time.Now()),
		tea.KeyMsg{Type: tea.KeyEnter}, TickMsg(time.Now()),
	} {
		m, _ = step(t, m, msg)
	}

	deadline := time.Now().Add(5 * time.Second)
	for m.session.State() != session.StateError && m.session.State() != session.StateFatal {
		if time.Now().After(deadline) {
			t.Fatalf("State() = %v, expected an error screen", m.session.State())
		}
		time.Sleep(time.Millisecond)
		m, _ = step(t, m, TickMsg(time.Now()))
	}
	if !strings.Contains(m.View(), "Enter") {
		t.Errorf("error view should explain how to continue:\n%s", m.View())
	}
}

func TestScoreboardHighScores(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewJSONStore()
	if err := store.SaveHighScores(dir, storage.HighScores{7, 3, 0}); err != nil {
		t.Fatal(err)
	}
	if err := store.SavePlayedGames(dir, []string{"a.json", "b.json"}); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel([]ScoreboardDir{{Name: "yellow", Path: dir}}, store, 100, 30)
	rows := m.table.Rows()
	expected := []string{"yellow", "7", "3", "-", "2"}
	if len(rows) != 1 || strings.Join(rows[0], ",") != strings.Join(expected, ",") {
		t.Errorf("rows = %v, expected [%v]", rows, expected)
	}
	if !strings.Contains(m.View(), "2 games played") {
		t.Errorf("View() should count played games:\n%s", m.View())
	}
}

func TestScoreboardShowsStoreErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, storage.HighScoresFile), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel([]ScoreboardDir{{Name: "yellow", Path: dir}}, storage.NewJSONStore(), 100, 30)
	if m.err == nil {
		t.Fatal("a corrupt high score file was not reported")
	}
	if !strings.Contains(m.View(), "could not be read") {
		t.Errorf("View() should mention the store error:\n%s", m.View())
	}
	if rows := m.table.Rows(); len(rows) != 1 || rows[0][1] != "-" {
		t.Errorf("rows = %v, expected an empty record for yellow", rows)
	}
}

func TestScoreboardHistory(t *testing.T) {
	store, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, score := range []int{4, 9, 1, 6} {
		if _, err := store.SaveScore("yellow", score); err != nil {
			t.Fatal(err)
		}
	}

	dirs := []ScoreboardDir{{Name: "yellow", Path: "/games/yellow"}, {Name: "empty", Path: "/games/empty"}}
	m := NewScoreboardModel(dirs, store, 100, 30)
	if len(m.recent) != 4 || m.recent[0].Score != 9 {
		t.Errorf("recent = %+v, expected four, best first", m.recent)
	}
	if st := m.records[0].stats; st == nil || st.Sessions != 4 {
		t.Errorf("stats = %+v, expected 4 sessions", st)
	}
	if row := m.table.Rows()[0]; row[5] != "4" || row[6] != "5.0" {
		t.Errorf("history columns = %v, expected 4 runs averaging 5.0", row[5:])
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(ScoreboardModel)
	if m.selected() != 1 || len(m.recent) != 0 {
		t.Errorf("after down selected = %d recent = %d, expected the empty directory", m.selected(), len(m.recent))
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty directory should say so")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if cmd == nil || !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should leave the scoreboard going back")
	}
}

package desktop

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsWatched(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"games/yellow/catch.json", true},
		{"images/Ball.PNG", true},
		{"sounds/pop.wav", true},
		{"fonts/Roboto.ttf", true},
		{"notes.txt", false},
		{"catch.json~", false},
	}
	for _, tt := range tests {
		if got := isWatched(tt.path); got != tt.expected {
			t.Errorf("isWatched(%q) = %v, expected %v", tt.path, got, tt.expected)
		}
	}
}

func TestWatcherReportsDocumentChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc := filepath.Join(dir, "catch.json")
	if err := os.WriteFile(doc, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != doc {
			t.Errorf("event = %q, expected %q", name, doc)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the changed document")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	for range w.Events {
	}
	// Closing twice is harmless.
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

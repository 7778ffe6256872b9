package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/weegames/internal/session"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	if got := embedded(); !reflect.DeepEqual(got, DefaultConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", got, DefaultConfig())
	}
}

func TestDefaultRulesMatchSession(t *testing.T) {
	if got := DefaultConfig().Session.Rules(); got != session.DefaultRules() {
		t.Errorf("Rules() = %+v, expected %+v", got, session.DefaultRules())
	}
}

func TestLoadPartial(t *testing.T) {
	path := writeConfig(t, `
games:
  root: /srv/games
storage:
  backend: sqlite
  path: /tmp/w.db
session:
  start_lives: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Games.Root != "/srv/games" || cfg.Storage.Backend != "sqlite" || cfg.Storage.Path != "/tmp/w.db" {
		t.Errorf("Load() games/storage = %+v %+v", cfg.Games, cfg.Storage)
	}
	if cfg.Session.StartLives != 2 || cfg.Session.MaxLives != 4 || cfg.Session.BossEvery != 15 {
		t.Errorf("Load() session = %+v, expected defaults except start_lives", cfg.Session)
	}
	if !reflect.DeepEqual(cfg.Keys.PauseDesktop, []string{"P", "Escape"}) {
		t.Errorf("Load() pause keys = %v", cfg.Keys.PauseDesktop)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "games: [unclosed"},
		{"unknown backend", "storage:\n  backend: floppy\n"},
		{"too many lives", "session:\n  start_lives: 9\n"},
		{"slow cap", "session:\n  max_playback_rate: 0.5\n"},
		{"empty window", "window:\n  width: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load() succeeded, expected an error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit file succeeded")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultConfig().Session

	tests := []struct {
		preset DifficultyPreset
		check  func(SessionConfig) bool
	}{
		{DifficultyNormal, func(c SessionConfig) bool {
			c.Preset = base.Preset
			return c == base
		}},
		{DifficultyEasy, func(c SessionConfig) bool {
			return c.SpeedUpStep == 0.05 && c.Difficulty2At == 30 && c.Difficulty3At == 60
		}},
		{DifficultyHard, func(c SessionConfig) bool {
			return c.StartLives == 3 && c.Difficulty2At == 10 && c.Difficulty3At == 20
		}},
		{DifficultyFixed, func(c SessionConfig) bool {
			return c.SpeedUpEvery == 0 && c.Difficulty2At == never
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := base
			ApplyPreset(&cfg, tt.preset)
			if cfg.Preset != tt.preset || !tt.check(cfg) {
				t.Errorf("ApplyPreset(%s) = %+v", tt.preset, cfg)
			}
		})
	}
}

func TestFixedPresetNeverSpeedsUp(t *testing.T) {
	cfg := DefaultConfig().Session
	ApplyPreset(&cfg, DifficultyFixed)
	rules := cfg.Rules()

	p := session.NewProgress(rules)
	for i := 0; i < 60; i++ {
		p.Update(rules, true, false)
	}
	if p.PlaybackRate != 1 || p.Difficulty != 1 {
		t.Errorf("fixed preset progress = %+v", p)
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) error: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) succeeded")
	}
}

func TestSaveAndLoad(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Games.Root = "/opt/weegames/games"
	cfg.Session.NextUpWindow = 3
	path := filepath.Join(t.TempDir(), "nested", FileName)

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Games.Root != cfg.Games.Root || got.Session != cfg.Session {
		t.Errorf("Load() = %+v, expected %+v", got, cfg)
	}
}

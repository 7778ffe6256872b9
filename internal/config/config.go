// Package config provides YAML-based runtime configuration for weegames:
// where games live, how results are stored, audio, window and key settings,
// and the session progression rules.
package config

import (
	"fmt"

	"github.com/vovakirdan/weegames/internal/session"
	"github.com/vovakirdan/weegames/internal/storage"
)

// Config is the complete runtime configuration.
type Config struct {
	Games   GamesConfig   `yaml:"games"`
	Storage StorageConfig `yaml:"storage"`
	Audio   AudioConfig   `yaml:"audio"`
	Window  WindowConfig  `yaml:"window"`
	Keys    KeysConfig    `yaml:"keys"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

// GamesConfig locates the games root.
type GamesConfig struct {
	Root string `yaml:"root"`
}

// StorageConfig selects where high scores and played games are kept.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "json" or "sqlite"
	Path    string `yaml:"path"`    // SQLite database file
}

// AudioConfig defines the audio back-end settings.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SampleRate  int     `yaml:"sample_rate"`
	MusicVolume float64 `yaml:"music_volume"` // 0.0 = silent, 1.0 = full
	SoundVolume float64 `yaml:"sound_volume"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// KeysConfig lists the keys that toggle the pause layer on each host.
type KeysConfig struct {
	PauseDesktop  []string `yaml:"pause_desktop"`
	PauseTerminal []string `yaml:"pause_terminal"`
}

// SessionConfig holds the progression rules.
type SessionConfig struct {
	Preset          DifficultyPreset `yaml:"preset"`
	MaxLives        int              `yaml:"max_lives"`
	StartLives      int              `yaml:"start_lives"`
	SpeedUpEvery    int              `yaml:"speed_up_every"`
	SpeedUpStep     float64          `yaml:"speed_up_step"`
	MaxPlaybackRate float64          `yaml:"max_playback_rate"`
	BossEvery       int              `yaml:"boss_every"`
	Difficulty2At   int              `yaml:"difficulty_2_at"`
	Difficulty3At   int              `yaml:"difficulty_3_at"`
	NextUpWindow    int              `yaml:"next_up_window"`
}

// LogConfig sets the log verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Rules converts the session section into progression rules.
func (c SessionConfig) Rules() session.Rules {
	return session.Rules{
		MaxLives:        c.MaxLives,
		StartLives:      c.StartLives,
		SpeedUpEvery:    c.SpeedUpEvery,
		SpeedUpStep:     c.SpeedUpStep,
		MaxPlaybackRate: c.MaxPlaybackRate,
		BossEvery:       c.BossEvery,
		Difficulty2At:   c.Difficulty2At,
		Difficulty3At:   c.Difficulty3At,
		NextUpWindow:    c.NextUpWindow,
	}
}

// Validate reports settings no session could run with.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case storage.BackendJSON, storage.BackendSQLite:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if c.Games.Root == "" {
		return fmt.Errorf("config: games root is empty")
	}
	s := c.Session
	if s.MaxLives < 1 || s.StartLives < 1 || s.StartLives > s.MaxLives {
		return fmt.Errorf("config: start_lives %d must be within 1..max_lives (%d)", s.StartLives, s.MaxLives)
	}
	if s.MaxPlaybackRate < 1 {
		return fmt.Errorf("config: max_playback_rate %v is below 1", s.MaxPlaybackRate)
	}
	if s.NextUpWindow < 1 {
		return fmt.Errorf("config: next_up_window must be at least 1")
	}
	if c.Audio.MusicVolume < 0 || c.Audio.SoundVolume < 0 {
		return fmt.Errorf("config: negative volume")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

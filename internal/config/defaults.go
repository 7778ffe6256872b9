package config

import (
	_ "embed"
)

//go:embed defaults/weegames.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/weegames.yaml and is used if that file fails to parse.
func DefaultConfig() Config {
	return Config{
		Games: GamesConfig{
			Root: "games",
		},
		Storage: StorageConfig{
			Backend: "json",
			Path:    "~/.weegames/weegames.db",
		},
		Audio: AudioConfig{
			Enabled:     true,
			SampleRate:  44100,
			MusicVolume: 0.8,
			SoundVolume: 1.0,
		},
		Window: WindowConfig{
			Title:  "Weegames",
			Width:  1280,
			Height: 720,
		},
		Keys: KeysConfig{
			PauseDesktop:  []string{"P", "Escape"},
			PauseTerminal: []string{"p", "esc"},
		},
		Session: SessionConfig{
			Preset:          DifficultyNormal,
			MaxLives:        4,
			StartLives:      4,
			SpeedUpEvery:    5,
			SpeedUpStep:     0.1,
			MaxPlaybackRate: 2.0,
			BossEvery:       15,
			Difficulty2At:   20,
			Difficulty3At:   40,
			NextUpWindow:    5,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

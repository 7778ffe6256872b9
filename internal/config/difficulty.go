package config

import "fmt"

// DifficultyPreset represents a named progression profile.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty preset %q (easy, normal, hard, fixed)", name)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// never is a score no session reaches.
const never = 1 << 30

// ApplyPreset modifies the session rules based on a difficulty preset.
// Normal keeps the configured values.
func ApplyPreset(cfg *SessionConfig, preset DifficultyPreset) {
	cfg.Preset = preset
	switch preset {
	case DifficultyEasy:
		cfg.SpeedUpStep = cfg.SpeedUpStep / 2
		cfg.Difficulty2At = cfg.Difficulty2At * 3 / 2
		cfg.Difficulty3At = cfg.Difficulty3At * 3 / 2
	case DifficultyHard:
		cfg.StartLives = max(1, cfg.StartLives-1)
		cfg.SpeedUpStep = cfg.SpeedUpStep * 3 / 2
		cfg.Difficulty2At = cfg.Difficulty2At / 2
		cfg.Difficulty3At = cfg.Difficulty3At / 2
	case DifficultyFixed:
		// No speed-ups and no difficulty increases: every game plays as
		// the first one did.
		cfg.SpeedUpEvery = 0
		cfg.Difficulty2At = never
		cfg.Difficulty3At = never
	}
}

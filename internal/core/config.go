package core

// Projection plane dimensions. Every simulation coordinate lives on this plane.
const (
	ProjectionWidth  = 1600
	ProjectionHeight = 900
)

// FPS is the logical simulation rate.
const FPS = 60

// Difficulty bounds.
const (
	MinDifficulty = 1
	MaxDifficulty = 3
)

// RuntimeConfig contains configuration passed to a scene at instantiation.
type RuntimeConfig struct {
	Seed         int64   // RNG seed for deterministic gameplay
	Difficulty   uint32  // Session difficulty in 1..=3
	PlaybackRate float64 // Simulation speed multiplier, 1.0 = 60 Hz
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:         0, // 0 means use current time in platform layer
		Difficulty:   MinDifficulty,
		PlaybackRate: 1,
	}
}

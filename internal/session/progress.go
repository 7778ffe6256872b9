package session

import (
	"math"

	"github.com/vovakirdan/weegames/internal/core"
)

// Rules are the progression constants of a session.
type Rules struct {
	MaxLives        int
	StartLives      int
	SpeedUpEvery    int     // score interval between playback-rate increases
	SpeedUpStep     float64 // playback-rate increase
	MaxPlaybackRate float64
	BossEvery       int // score interval between boss games
	Difficulty2At   int
	Difficulty3At   int
	NextUpWindow    int // upcoming games kept in the next-up list
	// InfiniteLives is practice mode: losses never cost a life and
	// nothing is saved.
	InfiniteLives bool
}

// DefaultRules returns the standard progression.
func DefaultRules() Rules {
	return Rules{
		MaxLives:        4,
		StartLives:      4,
		SpeedUpEvery:    5,
		SpeedUpStep:     0.1,
		MaxPlaybackRate: 2.0,
		BossEvery:       15,
		Difficulty2At:   20,
		Difficulty3At:   40,
		NextUpWindow:    5,
	}
}

// LastGame describes the outcome of the most recently finished game.
type LastGame struct {
	HasWon        bool
	WasLifeGained bool
	SpeedUp       bool
	WasBoss       bool
}

// Progress is the running tally of a session.
type Progress struct {
	Score            int
	Lives            int
	PlaybackRate     float64
	BossPlaybackRate float64
	Difficulty       uint32
	LastGame         *LastGame
}

// NewProgress returns the progress at the start of a session.
func NewProgress(r Rules) Progress {
	return Progress{
		Lives:            r.StartLives,
		PlaybackRate:     1,
		BossPlaybackRate: 1,
		Difficulty:       core.MinDifficulty,
	}
}

// Update applies the result of a finished game.
func (p *Progress) Update(r Rules, hasWon, isBoss bool) {
	last := &LastGame{HasWon: hasWon, WasBoss: isBoss}

	p.Score++
	if r.SpeedUpEvery > 0 && p.Score%r.SpeedUpEvery == 0 {
		rate := speedUp(p.PlaybackRate, r)
		last.SpeedUp = rate != p.PlaybackRate
		p.PlaybackRate = rate
	}
	switch {
	case p.Score >= r.Difficulty3At:
		p.Difficulty = max(p.Difficulty, 3)
	case p.Score >= r.Difficulty2At:
		p.Difficulty = max(p.Difficulty, 2)
	}

	if !hasWon && !r.InfiniteLives {
		p.Lives = max(0, p.Lives-1)
	}
	if hasWon && isBoss {
		p.BossPlaybackRate = speedUp(p.BossPlaybackRate, r)
		if p.Lives < r.MaxLives {
			p.Lives++
			last.WasLifeGained = true
		}
	}
	p.LastGame = last
}

// speedUp adds one step, rounded to hundredths so repeated steps don't drift.
func speedUp(rate float64, r Rules) float64 {
	rate = math.Round((rate+r.SpeedUpStep)*100) / 100
	return math.Min(rate, r.MaxPlaybackRate)
}

// BossNext reports whether the next game is a boss game.
func (p Progress) BossNext(r Rules) bool {
	return r.BossEvery > 0 && p.Score > 0 && p.Score%r.BossEvery == 0
}

// GameOver reports whether the session has run out of lives.
func (p Progress) GameOver() bool {
	return p.Lives <= 0
}

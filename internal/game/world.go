package game

import (
	"github.com/vovakirdan/weegames/internal/gamedata"
)

// WorldActionKind enumerates effects a scene asks its host to perform.
type WorldActionKind int

const (
	WorldPlaySound WorldActionKind = iota
	WorldStopMusic
	WorldDrawText
	WorldEndEarly
)

func (k WorldActionKind) String() string {
	switch k {
	case WorldPlaySound:
		return "PlaySound"
	case WorldStopMusic:
		return "StopMusic"
	case WorldDrawText:
		return "DrawText"
	case WorldEndEarly:
		return "EndEarly"
	default:
		return "Unknown"
	}
}

// WorldAction is emitted by a frame, in execution order.
type WorldAction struct {
	Kind   WorldActionKind
	Name   string // sound name
	Object string // DrawText source object
	Text   gamedata.DrawText
}

// Status is a scene's win/lose state.
type Status struct {
	Current     gamedata.WinStatus
	Next        gamedata.WinStatus
	HasBeenWon  bool
	HasBeenLost bool
}

// matches reports whether a WinStatus trigger holds.
func (s Status) matches(w gamedata.WinStatus) bool {
	switch w {
	case gamedata.Won:
		return s.Current == gamedata.Won || s.Current == gamedata.JustWon
	case gamedata.Lost:
		return s.Current == gamedata.Lost || s.Current == gamedata.JustLost
	case gamedata.NotYetWon:
		return s.Current != gamedata.Won && s.Current != gamedata.JustWon
	case gamedata.NotYetLost:
		return s.Current != gamedata.Lost && s.Current != gamedata.JustLost
	case gamedata.HasBeenWon:
		return s.HasBeenWon
	case gamedata.HasBeenLost:
		return s.HasBeenLost
	}
	return s.Current == w
}

func (s *Status) win() {
	if s.Next != gamedata.JustWon && s.Next != gamedata.Won {
		s.Next = gamedata.JustWon
	}
}

func (s *Status) lose() {
	if s.Next != gamedata.JustLost && s.Next != gamedata.Lost {
		s.Next = gamedata.JustLost
	}
}

// commit makes the staged status current. Just* values last one frame.
func (s *Status) commit() {
	s.Current = s.Next
	switch s.Next {
	case gamedata.JustWon:
		s.HasBeenWon = true
		s.Next = gamedata.Won
	case gamedata.JustLost:
		s.HasBeenLost = true
		s.Next = gamedata.Lost
	}
}

// HasWon reports whether the scene currently counts as won.
func (s Status) HasWon() bool {
	return s.Current == gamedata.Won || s.Current == gamedata.JustWon
}

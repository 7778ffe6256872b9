package game

import (
	"math"

	"github.com/vovakirdan/weegames/internal/gamedata"
)

// Animation cycles an object's sprite.
type Animation struct {
	Sprites []gamedata.Sprite
	Loop    bool
	Index   int
	// Finished is true only on the frame a one-shot animation runs out.
	Finished bool

	every int
	since int
	done  bool
}

func newAnimation(a gamedata.Animation) *Animation {
	return &Animation{
		Sprites: a.Sprites,
		Loop:    a.Type == gamedata.Loop,
		every:   framesPerSprite(a.Speed),
	}
}

// Current returns the sprite being shown.
func (a *Animation) Current() gamedata.Sprite {
	return a.Sprites[a.Index]
}

// step advances the animation by one frame.
func (a *Animation) step() {
	a.Finished = false
	if a.done || len(a.Sprites) == 0 {
		return
	}
	a.since++
	if a.since < a.every {
		return
	}
	a.since = 0
	a.Index++
	if a.Index < len(a.Sprites) {
		return
	}
	if a.Loop {
		a.Index = 0
		return
	}
	a.Index = len(a.Sprites) - 1
	a.Finished = true
	a.done = true
}

// framesPerSprite is how long each sprite of an animation is shown.
func framesPerSprite(s gamedata.Speed) int {
	switch s.Kind {
	case gamedata.VerySlow:
		return 16
	case gamedata.Slow:
		return 12
	case gamedata.Normal:
		return 8
	case gamedata.Fast:
		return 4
	case gamedata.VeryFast:
		return 2
	}
	return max(1, int(math.Round(float64(s.Value))))
}

// unitsPerFrame is the distance a motion covers each frame.
func unitsPerFrame(s gamedata.Speed) float32 {
	switch s.Kind {
	case gamedata.VerySlow:
		return 2
	case gamedata.Slow:
		return 4
	case gamedata.Normal:
		return 8
	case gamedata.Fast:
		return 12
	case gamedata.VeryFast:
		return 16
	}
	return s.Value
}

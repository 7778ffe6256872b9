package game

import (
	"github.com/vovakirdan/weegames/internal/collision"
	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/gamedata"
)

// allTriggered reports whether every trigger of ins holds for o this frame.
// Evaluation stops at the first false trigger, so later triggers do not
// consume random draws.
func (g *Game) allTriggered(o *Object, ins *instruction) (bool, error) {
	for i, t := range ins.triggers {
		ok, err := g.triggered(o, ins, i, t)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (g *Game) triggered(o *Object, ins *instruction, i int, t gamedata.Trigger) (bool, error) {
	switch t.Kind {
	case gamedata.TriggerTime:
		return g.timeReached(ins, i, t.When), nil

	case gamedata.TriggerCollision:
		if t.Collision.Kind == gamedata.CollideArea {
			return collision.Intersects(o.Polygon(), collision.FromAABB(t.Collision.Area)), nil
		}
		other, err := g.lookup(t.Collision.Name)
		if err != nil {
			return false, err
		}
		return collision.Intersects(o.Polygon(), other.Polygon()), nil

	case gamedata.TriggerInput:
		over, err := g.mouseOver(t.Input.Over)
		if err != nil || !over {
			return false, err
		}
		return mouseInteracts(g.mouse.State, t.Input.Interaction), nil

	case gamedata.TriggerWinStatus:
		return g.status.matches(t.WinStatus), nil

	case gamedata.TriggerRandom:
		return g.rng.Chance(t.Chance), nil

	case gamedata.TriggerCheckProperty:
		target, err := g.lookup(t.Name)
		if err != nil {
			return false, err
		}
		return checkProperty(target, t.Check), nil

	case gamedata.TriggerDifficultyLevel:
		return g.cfg.Difficulty == t.Level, nil
	}
	return false, ErrInternal
}

func (g *Game) timeReached(ins *instruction, i int, w gamedata.When) bool {
	ran := g.frames.Ran
	switch w.Kind {
	case gamedata.WhenStart:
		return ran == 0
	case gamedata.WhenEnd:
		return !g.frames.Total.Infinite && ran+1 == g.frames.Total.N
	case gamedata.WhenExact:
		return ran == w.Time
	case gamedata.WhenRandom:
		return ran == ins.times[i]
	}
	return false
}

func (g *Game) mouseOver(over gamedata.MouseOver) (bool, error) {
	switch over.Kind {
	case gamedata.OverAnywhere:
		return true, nil
	case gamedata.OverArea:
		return over.Area.Contains(g.mouse.Position), nil
	}
	o, err := g.lookup(over.Name)
	if err != nil {
		return false, err
	}
	return collision.Intersects(o.Polygon(), collision.MousePoint(g.mouse.Position)), nil
}

// mouseInteracts matches a button trigger. Down and Up are levels, so Down
// also holds on the press frame and Up on the release frame.
func mouseInteracts(state core.ButtonState, want gamedata.MouseInteraction) bool {
	if want.Hover {
		return true
	}
	switch want.State {
	case core.ButtonDown:
		return state.Held()
	case core.ButtonUp:
		return !state.Held()
	}
	return state == want.State
}

func checkProperty(o *Object, check gamedata.PropertyCheck) bool {
	switch check.Kind {
	case gamedata.CheckSwitch:
		switch check.Switch {
		case gamedata.StateOn:
			return o.Switch == gamedata.On
		case gamedata.StateOff:
			return o.Switch == gamedata.Off
		case gamedata.SwitchedOn:
			return o.switchedOn()
		case gamedata.SwitchedOff:
			return o.switchedOff()
		}
	case gamedata.CheckSprite:
		return o.Sprite == check.Sprite
	case gamedata.CheckFinishedAnimation:
		return o.Animation != nil && o.Animation.Finished
	case gamedata.CheckTimer:
		return o.timerFired
	}
	return false
}

// edge derives this frame's button state from the host sample and the
// previous frame's level.
func edge(wasHeld bool, sample core.ButtonState) core.ButtonState {
	held := sample.Held()
	switch {
	case held && !wasHeld:
		return core.ButtonPress
	case held:
		return core.ButtonDown
	case wasHeld:
		return core.ButtonRelease
	}
	return core.ButtonUp
}

package game

import (
	"math"

	"github.com/vovakirdan/weegames/internal/assets"
	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/gamedata"
)

func (g *Game) applyActions(o *Object, actions []gamedata.Action) error {
	for _, a := range actions {
		if err := g.apply(o, a); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) apply(o *Object, a gamedata.Action) error {
	switch a.Kind {
	case gamedata.ActionWin:
		g.status.win()
	case gamedata.ActionLose:
		g.status.lose()
	case gamedata.ActionEffect:
		o.Frozen = a.Effect == gamedata.EffectFreeze
	case gamedata.ActionMotion:
		o.queued = append(o.queued, a.Motion)
	case gamedata.ActionPlaySound:
		if !g.assets.HasSound(a.Name) {
			return &assets.MissingAssetError{Kind: assets.KindSound, Name: a.Name}
		}
		g.emit(WorldAction{Kind: WorldPlaySound, Name: a.Name})
	case gamedata.ActionStopMusic:
		g.emit(WorldAction{Kind: WorldStopMusic})
	case gamedata.ActionSetProperty:
		return g.setProperty(o, a.Setter)
	case gamedata.ActionAnimate:
		if len(a.Animation.Sprites) == 0 {
			return ErrInternal
		}
		o.Animation = newAnimation(a.Animation)
		o.Sprite = o.Animation.Current()
	case gamedata.ActionDrawText:
		return g.drawText(o, a.Text)
	case gamedata.ActionRandom:
		sub, ok := core.Choose(g.rng, a.RandomActions)
		if !ok {
			return nil
		}
		return g.apply(o, sub)
	case gamedata.ActionEndEarly:
		g.endedEarly = true
		g.emit(WorldAction{Kind: WorldEndEarly})
	default:
		return ErrInternal
	}
	return nil
}

func (g *Game) emit(a WorldAction) {
	g.pending = append(g.pending, a)
}

func (g *Game) drawText(o *Object, t gamedata.DrawText) error {
	if t.Resize == gamedata.MatchText {
		size, err := g.assets.MeasureText(t.Font, t.Text)
		if err != nil {
			return err
		}
		o.pendingSize = &size
	}
	o.Text = &TextOverlay{Text: t.Text, Font: t.Font, Colour: t.Colour, Justify: t.Justify}
	g.emit(WorldAction{Kind: WorldDrawText, Object: o.Name, Text: t})
	return nil
}

func (g *Game) setProperty(o *Object, p gamedata.PropertySetter) error {
	switch p.Kind {
	case gamedata.SetSprite:
		o.Sprite = p.Sprite
		o.Animation = nil
	case gamedata.SetAngle:
		return g.setAngle(o, p.Angle)
	case gamedata.SetSize:
		o.setSize(resize(o.Size, p.Size))
	case gamedata.SetSwitch:
		o.Switch = p.Switch
	case gamedata.SetTimer:
		o.Timer = p.Time
	case gamedata.SetFlipHorizontal:
		o.Flip.Horizontal = flip(o.Flip.Horizontal, p.Flip)
	case gamedata.SetFlipVertical:
		o.Flip.Vertical = flip(o.Flip.Vertical, p.Flip)
	case gamedata.SetLayer:
		o.Layer = relayer(o.Layer, p.Layer)
	default:
		return ErrInternal
	}
	return nil
}

func (g *Game) setAngle(o *Object, a gamedata.AngleSetter) error {
	switch a.Kind {
	case gamedata.AngleValue:
		o.Angle = a.Value
	case gamedata.AngleIncrease:
		o.Angle += a.Value
	case gamedata.AngleDecrease:
		o.Angle -= a.Value
	case gamedata.AngleMatch:
		other, err := g.lookup(a.Name)
		if err != nil {
			return err
		}
		o.Angle = other.Angle
	case gamedata.AngleClamp:
		o.Angle = core.ClampF(o.Angle, a.Min, a.Max)
	case gamedata.AngleRotateToObject:
		other, err := g.lookup(a.Name)
		if err != nil {
			return err
		}
		o.Angle = angleTo(o.Position, other.Position)
	case gamedata.AngleRotateToMouse:
		o.Angle = angleTo(o.Position, g.mouse.Position)
	default:
		return ErrInternal
	}
	return nil
}

func angleTo(from, to core.Vec2) float32 {
	d := to.Sub(from)
	return float32(math.Atan2(float64(d.Y), float64(d.X)) * 180 / math.Pi)
}

func resize(cur core.Size, s gamedata.SizeSetter) core.Size {
	switch s.Kind {
	case gamedata.SizeValue:
		return s.Value
	case gamedata.SizeGrow:
		d := delta(cur, s.Diff)
		return core.Size{W: cur.W + d.W, H: cur.H + d.H}
	case gamedata.SizeShrink:
		d := delta(cur, s.Diff)
		return core.Size{W: cur.W - d.W, H: cur.H - d.H}
	case gamedata.SizeClamp:
		return core.Size{
			W: core.ClampF(cur.W, s.Min.W, s.Max.W),
			H: core.ClampF(cur.H, s.Min.H, s.Max.H),
		}
	}
	return cur
}

// delta converts a size difference into absolute units.
func delta(cur core.Size, d gamedata.SizeDifference) core.Size {
	if !d.Percent {
		return d.Size
	}
	return core.Size{W: cur.W * d.Size.W / 100, H: cur.H * d.Size.H / 100}
}

func flip(cur bool, f gamedata.FlipSetter) bool {
	if f.Set {
		return f.Value
	}
	return !cur
}

func relayer(cur uint8, l gamedata.LayerSetter) uint8 {
	switch l.Kind {
	case gamedata.LayerIncrease:
		if cur == math.MaxUint8 {
			return cur
		}
		return cur + 1
	case gamedata.LayerDecrease:
		if cur == 0 {
			return 0
		}
		return cur - 1
	}
	return l.Value
}

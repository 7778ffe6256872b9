package gamedata

import (
	"github.com/vovakirdan/weegames/internal/core"
)

// ActionKind enumerates action variants.
type ActionKind int

const (
	ActionWin ActionKind = iota
	ActionLose
	ActionEffect
	ActionMotion
	ActionPlaySound
	ActionStopMusic
	ActionSetProperty
	ActionAnimate
	ActionDrawText
	ActionRandom
	ActionEndEarly
)

// Action is an effect executed when all of an instruction's triggers hold.
type Action struct {
	Kind          ActionKind
	Effect        Effect         // ActionEffect
	Motion        Motion         // ActionMotion
	Name          string         // ActionPlaySound
	Setter        PropertySetter // ActionSetProperty
	Animation     Animation      // ActionAnimate
	Text          DrawText       // ActionDrawText
	RandomActions []Action       // ActionRandom
}

// Animation is the content of an Animate action.
type Animation struct {
	Type    AnimationType `json:"animation_type"`
	Sprites []Sprite      `json:"sprites"`
	Speed   Speed         `json:"speed"`
}

// DrawText is the content of a DrawText action.
type DrawText struct {
	Text    string      `json:"text"`
	Font    string      `json:"font"`
	Colour  core.Colour `json:"colour"`
	Resize  TextResize  `json:"resize"`
	Justify JustifyText `json:"justify"`
}

type randomActionsContent struct {
	RandomActions []Action `json:"random_actions"`
}

func (a Action) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case ActionWin:
		return unit("Win")
	case ActionLose:
		return unit("Lose")
	case ActionEffect:
		return tagged("Effect", a.Effect)
	case ActionMotion:
		return tagged("Motion", a.Motion)
	case ActionPlaySound:
		return tagged("PlaySound", nameContent{a.Name})
	case ActionStopMusic:
		return unit("StopMusic")
	case ActionSetProperty:
		return tagged("SetProperty", a.Setter)
	case ActionAnimate:
		return tagged("Animate", a.Animation)
	case ActionDrawText:
		return tagged("DrawText", a.Text)
	case ActionRandom:
		return tagged("Random", randomActionsContent{a.RandomActions})
	case ActionEndEarly:
		return unit("EndEarly")
	}
	return nil, unknownVariant("action", "")
}

func (a *Action) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	var out Action
	switch tag {
	case "Win":
		out.Kind = ActionWin
		err = noContent("action", tag, content)
	case "Lose":
		out.Kind = ActionLose
		err = noContent("action", tag, content)
	case "StopMusic":
		out.Kind = ActionStopMusic
		err = noContent("action", tag, content)
	case "EndEarly":
		out.Kind = ActionEndEarly
		err = noContent("action", tag, content)
	case "Effect":
		out.Kind = ActionEffect
		err = strict(content, &out.Effect)
	case "Motion":
		out.Kind = ActionMotion
		err = strict(content, &out.Motion)
	case "PlaySound":
		var n nameContent
		err = strict(content, &n)
		out.Kind, out.Name = ActionPlaySound, n.Name
	case "SetProperty":
		out.Kind = ActionSetProperty
		err = strict(content, &out.Setter)
	case "Animate":
		out.Kind = ActionAnimate
		err = strict(content, &out.Animation)
	case "DrawText":
		out.Kind = ActionDrawText
		err = strict(content, &out.Text)
	case "Random":
		var r randomActionsContent
		err = strict(content, &r)
		out.Kind, out.RandomActions = ActionRandom, r.RandomActions
	default:
		return unknownVariant("action", tag)
	}
	if err != nil {
		return err
	}
	*a = out
	return nil
}

// SetterKind enumerates property setters.
type SetterKind int

const (
	SetSprite SetterKind = iota
	SetAngle
	SetSize
	SetSwitch
	SetTimer
	SetFlipHorizontal
	SetFlipVertical
	SetLayer
)

// PropertySetter is the content of a SetProperty action.
type PropertySetter struct {
	Kind   SetterKind
	Sprite Sprite      // SetSprite
	Angle  AngleSetter // SetAngle
	Size   SizeSetter  // SetSize
	Switch Switch      // SetSwitch
	Time   uint32      // SetTimer
	Flip   FlipSetter  // SetFlipHorizontal, SetFlipVertical
	Layer  LayerSetter // SetLayer
}

type timerContent struct {
	Time uint32 `json:"time"`
}

func (p PropertySetter) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case SetSprite:
		return tagged("Sprite", p.Sprite)
	case SetAngle:
		return tagged("Angle", p.Angle)
	case SetSize:
		return tagged("Size", p.Size)
	case SetSwitch:
		return tagged("Switch", p.Switch)
	case SetTimer:
		return tagged("Timer", timerContent{p.Time})
	case SetFlipHorizontal:
		return tagged("FlipHorizontal", p.Flip)
	case SetFlipVertical:
		return tagged("FlipVertical", p.Flip)
	case SetLayer:
		return tagged("Layer", p.Layer)
	}
	return nil, unknownVariant("property setter", "")
}

func (p *PropertySetter) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	if err := needContent("property setter", tag, content); err != nil {
		return err
	}
	var out PropertySetter
	switch tag {
	case "Sprite":
		out.Kind = SetSprite
		err = strict(content, &out.Sprite)
	case "Angle":
		out.Kind = SetAngle
		err = strict(content, &out.Angle)
	case "Size":
		out.Kind = SetSize
		err = strict(content, &out.Size)
	case "Switch":
		out.Kind = SetSwitch
		err = strict(content, &out.Switch)
	case "Timer":
		var c timerContent
		err = strict(content, &c)
		out.Kind, out.Time = SetTimer, c.Time
	case "FlipHorizontal":
		out.Kind = SetFlipHorizontal
		err = strict(content, &out.Flip)
	case "FlipVertical":
		out.Kind = SetFlipVertical
		err = strict(content, &out.Flip)
	case "Layer":
		out.Kind = SetLayer
		err = strict(content, &out.Layer)
	default:
		return unknownVariant("property setter", tag)
	}
	if err != nil {
		return err
	}
	*p = out
	return nil
}

// AngleSetterKind enumerates angle setters.
type AngleSetterKind int

const (
	AngleValue AngleSetterKind = iota
	AngleIncrease
	AngleDecrease
	AngleMatch
	AngleClamp
	AngleRotateToObject
	AngleRotateToMouse
)

// AngleSetter changes an object's angle in degrees.
type AngleSetter struct {
	Kind     AngleSetterKind
	Value    float32 // AngleValue, AngleIncrease, AngleDecrease
	Name     string  // AngleMatch, AngleRotateToObject
	Min, Max float32 // AngleClamp
}

type minMaxContent struct {
	Min float32 `json:"min"`
	Max float32 `json:"max"`
}

func (a AngleSetter) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AngleValue:
		return tagged("Value", a.Value)
	case AngleIncrease:
		return tagged("Increase", a.Value)
	case AngleDecrease:
		return tagged("Decrease", a.Value)
	case AngleMatch:
		return tagged("Match", nameContent{a.Name})
	case AngleClamp:
		return tagged("Clamp", minMaxContent{a.Min, a.Max})
	case AngleRotateToObject:
		return tagged("RotateToObject", nameContent{a.Name})
	case AngleRotateToMouse:
		return unit("RotateToMouse")
	}
	return nil, unknownVariant("angle setter", "")
}

func (a *AngleSetter) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	var out AngleSetter
	switch tag {
	case "Value", "Increase", "Decrease":
		out.Kind = map[string]AngleSetterKind{"Value": AngleValue, "Increase": AngleIncrease, "Decrease": AngleDecrease}[tag]
		err = strict(content, &out.Value)
	case "Match", "RotateToObject":
		var n nameContent
		err = strict(content, &n)
		out.Kind, out.Name = AngleMatch, n.Name
		if tag == "RotateToObject" {
			out.Kind = AngleRotateToObject
		}
	case "Clamp":
		var c minMaxContent
		err = strict(content, &c)
		out.Kind, out.Min, out.Max = AngleClamp, c.Min, c.Max
	case "RotateToMouse":
		out.Kind = AngleRotateToMouse
		err = noContent("angle setter", tag, content)
	default:
		return unknownVariant("angle setter", tag)
	}
	if err != nil {
		return err
	}
	*a = out
	return nil
}

// SizeSetterKind enumerates size setters.
type SizeSetterKind int

const (
	SizeValue SizeSetterKind = iota
	SizeGrow
	SizeShrink
	SizeClamp
)

// SizeSetter changes an object's size.
type SizeSetter struct {
	Kind     SizeSetterKind
	Value    core.Size      // SizeValue
	Diff     SizeDifference // SizeGrow, SizeShrink
	Min, Max core.Size      // SizeClamp
}

// SizeDifference is an absolute or percentage change in size.
type SizeDifference struct {
	Percent bool
	Size    core.Size
}

type sizeClampContent struct {
	Min core.Size `json:"min"`
	Max core.Size `json:"max"`
}

func (s SizeSetter) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case SizeValue:
		return tagged("Value", s.Value)
	case SizeGrow:
		return tagged("Grow", s.Diff)
	case SizeShrink:
		return tagged("Shrink", s.Diff)
	case SizeClamp:
		return tagged("Clamp", sizeClampContent{s.Min, s.Max})
	}
	return nil, unknownVariant("size setter", "")
}

func (s *SizeSetter) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	var out SizeSetter
	switch tag {
	case "Value":
		out.Kind = SizeValue
		err = strict(content, &out.Value)
	case "Grow":
		out.Kind = SizeGrow
		err = strict(content, &out.Diff)
	case "Shrink":
		out.Kind = SizeShrink
		err = strict(content, &out.Diff)
	case "Clamp":
		var c sizeClampContent
		err = strict(content, &c)
		out.Kind, out.Min, out.Max = SizeClamp, c.Min, c.Max
	default:
		return unknownVariant("size setter", tag)
	}
	if err != nil {
		return err
	}
	*s = out
	return nil
}

func (d SizeDifference) MarshalJSON() ([]byte, error) {
	if d.Percent {
		return tagged("Percent", d.Size)
	}
	return tagged("Value", d.Size)
}

func (d *SizeDifference) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	var out SizeDifference
	switch tag {
	case "Value":
	case "Percent":
		out.Percent = true
	default:
		return unknownVariant("size difference", tag)
	}
	if err := strict(content, &out.Size); err != nil {
		return err
	}
	*d = out
	return nil
}

// FlipSetter toggles or sets one flip axis.
type FlipSetter struct {
	Set   bool // false toggles
	Value bool
}

func (f FlipSetter) MarshalJSON() ([]byte, error) {
	if f.Set {
		return tagged("SetFlip", f.Value)
	}
	return unit("Flip")
}

func (f *FlipSetter) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Flip":
		*f = FlipSetter{}
		return noContent("flip setter", tag, content)
	case "SetFlip":
		var v bool
		if err := strict(content, &v); err != nil {
			return err
		}
		*f = FlipSetter{Set: true, Value: v}
		return nil
	}
	return unknownVariant("flip setter", tag)
}

// LayerSetterKind enumerates layer setters.
type LayerSetterKind int

const (
	LayerValue LayerSetterKind = iota
	LayerIncrease
	LayerDecrease
)

// LayerSetter changes an object's draw layer, saturating at 0 and 255.
type LayerSetter struct {
	Kind  LayerSetterKind
	Value uint8 // LayerValue
}

func (l LayerSetter) MarshalJSON() ([]byte, error) {
	switch l.Kind {
	case LayerIncrease:
		return unit("Increase")
	case LayerDecrease:
		return unit("Decrease")
	}
	return tagged("Value", l.Value)
}

func (l *LayerSetter) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Value":
		var v uint8
		if err := strict(content, &v); err != nil {
			return err
		}
		*l = LayerSetter{Kind: LayerValue, Value: v}
		return nil
	case "Increase":
		*l = LayerSetter{Kind: LayerIncrease}
		return noContent("layer setter", tag, content)
	case "Decrease":
		*l = LayerSetter{Kind: LayerDecrease}
		return noContent("layer setter", tag, content)
	}
	return unknownVariant("layer setter", tag)
}

package gamedata

import (
	"github.com/vovakirdan/weegames/internal/core"
)

// TriggerKind enumerates trigger variants.
type TriggerKind int

const (
	TriggerTime TriggerKind = iota
	TriggerCollision
	TriggerInput
	TriggerWinStatus
	TriggerRandom
	TriggerCheckProperty
	TriggerDifficultyLevel
)

// Trigger is a predicate evaluated every frame. Only the fields belonging to
// Kind are meaningful.
type Trigger struct {
	Kind      TriggerKind
	When      When          // TriggerTime
	Collision CollisionWith // TriggerCollision
	Input     Input         // TriggerInput
	WinStatus WinStatus     // TriggerWinStatus
	Chance    float32       // TriggerRandom
	Name      string        // TriggerCheckProperty
	Check     PropertyCheck // TriggerCheckProperty
	Level     uint32        // TriggerDifficultyLevel
}

type checkPropertyContent struct {
	Name  string        `json:"name"`
	Check PropertyCheck `json:"check"`
}

type chanceContent struct {
	Chance float32 `json:"chance"`
}

type levelContent struct {
	Level uint32 `json:"level"`
}

func (t Trigger) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case TriggerTime:
		return tagged("Time", t.When)
	case TriggerCollision:
		return tagged("Collision", t.Collision)
	case TriggerInput:
		return tagged("Input", t.Input)
	case TriggerWinStatus:
		return tagged("WinStatus", t.WinStatus)
	case TriggerRandom:
		return tagged("Random", chanceContent{t.Chance})
	case TriggerCheckProperty:
		return tagged("CheckProperty", checkPropertyContent{t.Name, t.Check})
	case TriggerDifficultyLevel:
		return tagged("DifficultyLevel", levelContent{t.Level})
	}
	return nil, unknownVariant("trigger", "")
}

func (t *Trigger) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	if err := needContent("trigger", tag, content); err != nil {
		return err
	}
	var out Trigger
	switch tag {
	case "Time":
		out.Kind = TriggerTime
		err = strict(content, &out.When)
	case "Collision":
		out.Kind = TriggerCollision
		err = strict(content, &out.Collision)
	case "Input":
		out.Kind = TriggerInput
		err = strict(content, &out.Input)
	case "WinStatus":
		out.Kind = TriggerWinStatus
		err = strict(content, &out.WinStatus)
	case "Random":
		var c chanceContent
		err = strict(content, &c)
		out.Kind, out.Chance = TriggerRandom, c.Chance
	case "CheckProperty":
		var c checkPropertyContent
		err = strict(content, &c)
		out.Kind, out.Name, out.Check = TriggerCheckProperty, c.Name, c.Check
	case "DifficultyLevel":
		var c levelContent
		err = strict(content, &c)
		out.Kind, out.Level = TriggerDifficultyLevel, c.Level
	default:
		return unknownVariant("trigger", tag)
	}
	if err != nil {
		return err
	}
	*t = out
	return nil
}

// WhenKind enumerates time trigger variants.
type WhenKind int

const (
	WhenStart WhenKind = iota
	WhenEnd
	WhenExact
	WhenRandom
)

// When is the frame a Time trigger fires on.
type When struct {
	Kind  WhenKind
	Time  uint32 // WhenExact
	Start uint32 // WhenRandom
	End   uint32 // WhenRandom
}

type exactContent struct {
	Time uint32 `json:"time"`
}

type randomTimeContent struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

func (w When) MarshalJSON() ([]byte, error) {
	switch w.Kind {
	case WhenStart:
		return unit("Start")
	case WhenEnd:
		return unit("End")
	case WhenExact:
		return tagged("Exact", exactContent{w.Time})
	case WhenRandom:
		return tagged("Random", randomTimeContent{w.Start, w.End})
	}
	return nil, unknownVariant("when", "")
}

func (w *When) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Start":
		*w = When{Kind: WhenStart}
		return noContent("when", tag, content)
	case "End":
		*w = When{Kind: WhenEnd}
		return noContent("when", tag, content)
	case "Exact":
		var c exactContent
		if err := strict(content, &c); err != nil {
			return err
		}
		*w = When{Kind: WhenExact, Time: c.Time}
		return nil
	case "Random":
		var c randomTimeContent
		if err := strict(content, &c); err != nil {
			return err
		}
		*w = When{Kind: WhenRandom, Start: c.Start, End: c.End}
		return nil
	}
	return unknownVariant("when", tag)
}

// CollisionKind enumerates collision targets.
type CollisionKind int

const (
	CollideObject CollisionKind = iota
	CollideArea
)

// CollisionWith is what an object is tested against.
type CollisionWith struct {
	Kind CollisionKind
	Name string    // CollideObject
	Area core.AABB // CollideArea
}

func (c CollisionWith) MarshalJSON() ([]byte, error) {
	if c.Kind == CollideArea {
		return tagged("Area", c.Area)
	}
	return tagged("Object", nameContent{c.Name})
}

func (c *CollisionWith) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Object":
		var n nameContent
		if err := strict(content, &n); err != nil {
			return err
		}
		*c = CollisionWith{Kind: CollideObject, Name: n.Name}
		return nil
	case "Area":
		var a core.AABB
		if err := strict(content, &a); err != nil {
			return err
		}
		*c = CollisionWith{Kind: CollideArea, Area: a}
		return nil
	}
	return unknownVariant("collision", tag)
}

// Input is a mouse test. It is stored as {"Mouse": {...}}.
type Input struct {
	Over        MouseOver
	Interaction MouseInteraction
}

type mouseContent struct {
	Over        MouseOver        `json:"over"`
	Interaction MouseInteraction `json:"interaction"`
}

func (i Input) MarshalJSON() ([]byte, error) {
	return tagged("Mouse", mouseContent{i.Over, i.Interaction})
}

func (i *Input) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	if tag != "Mouse" {
		return unknownVariant("input", tag)
	}
	var m mouseContent
	if err := strict(content, &m); err != nil {
		return err
	}
	*i = Input{Over: m.Over, Interaction: m.Interaction}
	return nil
}

// MouseOverKind enumerates where the mouse is tested.
type MouseOverKind int

const (
	OverObject MouseOverKind = iota
	OverArea
	OverAnywhere
)

// MouseOver is the region a mouse trigger considers.
type MouseOver struct {
	Kind MouseOverKind
	Name string    // OverObject
	Area core.AABB // OverArea
}

func (m MouseOver) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case OverObject:
		return tagged("Object", nameContent{m.Name})
	case OverArea:
		return tagged("Area", m.Area)
	}
	return unit("Anywhere")
}

func (m *MouseOver) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Object":
		var n nameContent
		if err := strict(content, &n); err != nil {
			return err
		}
		*m = MouseOver{Kind: OverObject, Name: n.Name}
		return nil
	case "Area":
		var a core.AABB
		if err := strict(content, &a); err != nil {
			return err
		}
		*m = MouseOver{Kind: OverArea, Area: a}
		return nil
	case "Anywhere":
		*m = MouseOver{Kind: OverAnywhere}
		return noContent("mouse over", tag, content)
	}
	return unknownVariant("mouse over", tag)
}

// MouseInteraction is either a button test or hovering.
type MouseInteraction struct {
	Hover bool
	State core.ButtonState // when !Hover
}

type buttonContent struct {
	State core.ButtonState `json:"state"`
}

func (m MouseInteraction) MarshalJSON() ([]byte, error) {
	if m.Hover {
		return unit("Hover")
	}
	return tagged("Button", buttonContent{m.State})
}

func (m *MouseInteraction) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Hover":
		*m = MouseInteraction{Hover: true}
		return noContent("mouse interaction", tag, content)
	case "Button":
		var b buttonContent
		if err := strict(content, &b); err != nil {
			return err
		}
		*m = MouseInteraction{State: b.State}
		return nil
	}
	return unknownVariant("mouse interaction", tag)
}

// CheckKind enumerates property checks.
type CheckKind int

const (
	CheckSwitch CheckKind = iota
	CheckSprite
	CheckFinishedAnimation
	CheckTimer
)

// PropertyCheck is the test a CheckProperty trigger applies to an object.
type PropertyCheck struct {
	Kind   CheckKind
	Switch SwitchState // CheckSwitch
	Sprite Sprite      // CheckSprite
}

func (p PropertyCheck) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case CheckSwitch:
		return tagged("Switch", p.Switch)
	case CheckSprite:
		return tagged("Sprite", p.Sprite)
	case CheckFinishedAnimation:
		return unit("FinishedAnimation")
	case CheckTimer:
		return unit("Timer")
	}
	return nil, unknownVariant("property check", "")
}

func (p *PropertyCheck) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Switch":
		var s SwitchState
		if err := strict(content, &s); err != nil {
			return err
		}
		*p = PropertyCheck{Kind: CheckSwitch, Switch: s}
		return nil
	case "Sprite":
		var s Sprite
		if err := strict(content, &s); err != nil {
			return err
		}
		*p = PropertyCheck{Kind: CheckSprite, Sprite: s}
		return nil
	case "FinishedAnimation":
		*p = PropertyCheck{Kind: CheckFinishedAnimation}
		return noContent("property check", tag, content)
	case "Timer":
		*p = PropertyCheck{Kind: CheckTimer}
		return noContent("property check", tag, content)
	}
	return unknownVariant("property check", tag)
}

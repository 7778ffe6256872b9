package game

import (
	"github.com/vovakirdan/weegames/internal/collision"
	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/gamedata"
)

// Object is a live scene entity.
type Object struct {
	Name          string
	Sprite        gamedata.Sprite
	Position      core.Vec2
	Size          core.Size
	Angle         float32
	Origin        *core.Vec2
	CollisionArea *core.AABB
	Flip          core.Flip
	Layer         uint8
	Switch        gamedata.Switch
	Timer         uint32
	Frozen        bool
	Animation     *Animation
	Text          *TextOverlay

	instructions []instruction
	motion       activeMotion
	queued       []gamedata.Motion

	// Switch level at the start of this frame and of the previous one.
	switchNow, switchBefore gamedata.Switch
	timerFired              bool
	pendingSize             *core.Size
}

// instruction is a document instruction with its random trigger times
// resolved for this scene.
type instruction struct {
	triggers []gamedata.Trigger
	actions  []gamedata.Action
	// times[i] is the frame a Time(Random) trigger at index i fires on.
	times map[int]uint32
}

// TextOverlay is text drawn over an object for the current frame.
type TextOverlay struct {
	Text    string
	Font    string
	Colour  core.Colour
	Justify gamedata.JustifyText
}

func newObject(def gamedata.Object, rng *core.Rng) *Object {
	o := &Object{
		Name:          def.Name,
		Sprite:        def.Sprite,
		Position:      def.Position,
		Size:          def.Size,
		Angle:         def.Angle,
		Origin:        def.Origin,
		CollisionArea: def.CollisionArea,
		Flip:          def.Flip,
		Layer:         def.Layer,
	}
	for _, ins := range def.Instructions {
		o.instructions = append(o.instructions, newInstruction(ins, rng))
	}
	return o
}

func newInstruction(ins gamedata.Instruction, rng *core.Rng) instruction {
	out := instruction{triggers: ins.Triggers, actions: ins.Actions}
	for i, t := range ins.Triggers {
		if t.Kind == gamedata.TriggerTime && t.When.Kind == gamedata.WhenRandom {
			if out.times == nil {
				out.times = make(map[int]uint32)
			}
			out.times[i] = uint32(rng.IntRange(int(t.When.Start), int(t.When.End)))
		}
	}
	return out
}

// Body returns the object's placement for collision tests.
func (o *Object) Body() collision.Body {
	return collision.Body{
		Position:      o.Position,
		Size:          o.Size,
		Angle:         o.Angle,
		Origin:        o.Origin,
		CollisionArea: o.CollisionArea,
		Flip:          o.Flip,
	}
}

// Polygon returns the world-space collision polygon.
func (o *Object) Polygon() collision.Polygon {
	return o.Body().Polygon()
}

// Rect returns the unrotated draw rectangle.
func (o *Object) Rect() core.AABB {
	return core.RectAt(o.Position, o.Size)
}

// switchedOn reports a rising edge between the previous and current frame.
func (o *Object) switchedOn() bool {
	return o.switchNow == gamedata.On && o.switchBefore == gamedata.Off
}

func (o *Object) switchedOff() bool {
	return o.switchNow == gamedata.Off && o.switchBefore == gamedata.On
}

// beginFrame snapshots edge state and applies changes staged last frame.
func (o *Object) beginFrame() {
	o.switchBefore = o.switchNow
	o.switchNow = o.Switch
	o.Text = nil
	if o.Animation != nil {
		o.Animation.Finished = false
	}
	if o.pendingSize != nil {
		o.setSize(*o.pendingSize)
		o.pendingSize = nil
	}
}

// tickTimer counts the timer down, flagging the frame it reaches zero.
func (o *Object) tickTimer() {
	o.timerFired = false
	if o.Timer == 0 {
		return
	}
	o.Timer--
	if o.Timer == 0 {
		o.timerFired = true
	}
}

func (o *Object) setSize(s core.Size) {
	o.Size = core.Size{W: max(1, s.W), H: max(1, s.H)}
}

// ObjectState is the observable state of an object, used to compare runs.
type ObjectState struct {
	Name     string
	Sprite   gamedata.Sprite
	Position core.Vec2
	Size     core.Size
	Angle    float32
	Flip     core.Flip
	Layer    uint8
	Switch   gamedata.Switch
	Timer    uint32
	Frozen   bool
}

// State returns a copy of the object's observable state.
func (o *Object) State() ObjectState {
	return ObjectState{
		Name:     o.Name,
		Sprite:   o.Sprite,
		Position: o.Position,
		Size:     o.Size,
		Angle:    o.Angle,
		Flip:     o.Flip,
		Layer:    o.Layer,
		Switch:   o.Switch,
		Timer:    o.Timer,
		Frozen:   o.Frozen,
	}
}

package gamedata

import (
	"github.com/vovakirdan/weegames/internal/core"
)

// MotionKind enumerates motion variants.
type MotionKind int

const (
	MotionStop MotionKind = iota
	MotionGoStraight
	MotionJumpTo
	MotionRoam
	MotionSwap
	MotionTarget
	MotionAccelerate
)

// Motion is a movement behaviour installed on an object.
type Motion struct {
	Kind       MotionKind
	Direction  MovementDirection // MotionGoStraight
	Speed      Speed             // MotionGoStraight, MotionRoam, MotionTarget
	Jump       JumpLocation      // MotionJumpTo
	Movement   MovementType      // MotionRoam
	Area       core.AABB         // MotionRoam
	Name       string            // MotionSwap
	Target     Target            // MotionTarget
	TargetType TargetType        // MotionTarget
	Offset     core.Vec2         // MotionTarget
	Accelerate Acceleration      // MotionAccelerate
}

type goStraightContent struct {
	Direction MovementDirection `json:"direction"`
	Speed     Speed             `json:"speed"`
}

type roamContent struct {
	MovementType MovementType `json:"movement_type"`
	Area         core.AABB    `json:"area"`
	Speed        Speed        `json:"speed"`
}

type targetContent struct {
	Target     Target     `json:"target"`
	TargetType TargetType `json:"target_type"`
	Offset     core.Vec2  `json:"offset"`
	Speed      Speed      `json:"speed"`
}

func (m Motion) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case MotionStop:
		return unit("Stop")
	case MotionGoStraight:
		return tagged("GoStraight", goStraightContent{m.Direction, m.Speed})
	case MotionJumpTo:
		return tagged("JumpTo", m.Jump)
	case MotionRoam:
		return tagged("Roam", roamContent{m.Movement, m.Area, m.Speed})
	case MotionSwap:
		return tagged("Swap", nameContent{m.Name})
	case MotionTarget:
		return tagged("Target", targetContent{m.Target, m.TargetType, m.Offset, m.Speed})
	case MotionAccelerate:
		return tagged("Accelerate", m.Accelerate)
	}
	return nil, unknownVariant("motion", "")
}

func (m *Motion) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	var out Motion
	switch tag {
	case "Stop":
		out.Kind = MotionStop
		err = noContent("motion", tag, content)
	case "GoStraight":
		var c goStraightContent
		err = strict(content, &c)
		out.Kind, out.Direction, out.Speed = MotionGoStraight, c.Direction, c.Speed
	case "JumpTo":
		out.Kind = MotionJumpTo
		err = strict(content, &out.Jump)
	case "Roam":
		var c roamContent
		err = strict(content, &c)
		out.Kind, out.Movement, out.Area, out.Speed = MotionRoam, c.MovementType, c.Area, c.Speed
	case "Swap":
		var n nameContent
		err = strict(content, &n)
		out.Kind, out.Name = MotionSwap, n.Name
	case "Target":
		var c targetContent
		err = strict(content, &c)
		out.Kind = MotionTarget
		out.Target, out.TargetType, out.Offset, out.Speed = c.Target, c.TargetType, c.Offset, c.Speed
	case "Accelerate":
		out.Kind = MotionAccelerate
		err = strict(content, &out.Accelerate)
	default:
		return unknownVariant("motion", tag)
	}
	if err != nil {
		return err
	}
	*m = out
	return nil
}

// MovementDirection is resolved to a unit vector once, when a motion starts.
type MovementDirection struct {
	Compass  bool
	Angle    Angle              // !Compass
	Possible []CompassDirection // Compass
}

// AngleDirection returns a direction given by an angle.
func AngleDirection(a Angle) MovementDirection {
	return MovementDirection{Angle: a}
}

// CompassDirections returns a direction chosen among compass points.
func CompassDirections(dirs ...CompassDirection) MovementDirection {
	return MovementDirection{Compass: true, Possible: dirs}
}

type possibleDirectionsContent struct {
	PossibleDirections []CompassDirection `json:"possible_directions"`
}

func (d MovementDirection) MarshalJSON() ([]byte, error) {
	if d.Compass {
		dirs := d.Possible
		if dirs == nil {
			dirs = []CompassDirection{}
		}
		return tagged("Direction", possibleDirectionsContent{dirs})
	}
	return tagged("Angle", d.Angle)
}

func (d *MovementDirection) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Angle":
		var a Angle
		if err := strict(content, &a); err != nil {
			return err
		}
		*d = AngleDirection(a)
		return nil
	case "Direction":
		var c possibleDirectionsContent
		if err := strict(content, &c); err != nil {
			return err
		}
		*d = CompassDirections(c.PossibleDirections...)
		return nil
	}
	return unknownVariant("movement direction", tag)
}

// AngleKind enumerates angle specifications.
type AngleKind int

const (
	AngleCurrent AngleKind = iota
	AngleDegrees
	AngleRandom
)

// Angle is an angle used to pick a movement direction.
type Angle struct {
	Kind     AngleKind
	Degrees  float32 // AngleDegrees
	Min, Max float32 // AngleRandom
}

// Degrees returns a fixed angle.
func Degrees(d float32) Angle { return Angle{Kind: AngleDegrees, Degrees: d} }

func (a Angle) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AngleDegrees:
		return tagged("Degrees", a.Degrees)
	case AngleRandom:
		return tagged("Random", minMaxContent{a.Min, a.Max})
	}
	return unit("Current")
}

func (a *Angle) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Current":
		*a = Angle{Kind: AngleCurrent}
		return noContent("angle", tag, content)
	case "Degrees":
		var d float32
		if err := strict(content, &d); err != nil {
			return err
		}
		*a = Degrees(d)
		return nil
	case "Random":
		var c minMaxContent
		if err := strict(content, &c); err != nil {
			return err
		}
		*a = Angle{Kind: AngleRandom, Min: c.Min, Max: c.Max}
		return nil
	}
	return unknownVariant("angle", tag)
}

// JumpKind enumerates jump destinations.
type JumpKind int

const (
	JumpPoint JumpKind = iota
	JumpArea
	JumpMouse
	JumpObject
	JumpRelative
	JumpClampPosition
)

// JumpLocation is the destination of an instantaneous JumpTo motion.
type JumpLocation struct {
	Kind     JumpKind
	Point    core.Vec2  // JumpPoint
	Area     core.AABB  // JumpArea, JumpClampPosition
	Name     string     // JumpObject
	To       RelativeTo // JumpRelative
	Distance core.Vec2  // JumpRelative
}

type relativeContent struct {
	To       RelativeTo `json:"to"`
	Distance core.Vec2  `json:"distance"`
}

type areaContent struct {
	Area core.AABB `json:"area"`
}

func (j JumpLocation) MarshalJSON() ([]byte, error) {
	switch j.Kind {
	case JumpPoint:
		return tagged("Point", j.Point)
	case JumpArea:
		return tagged("Area", j.Area)
	case JumpMouse:
		return unit("Mouse")
	case JumpObject:
		return tagged("Object", nameContent{j.Name})
	case JumpRelative:
		return tagged("Relative", relativeContent{j.To, j.Distance})
	case JumpClampPosition:
		return tagged("ClampPosition", areaContent{j.Area})
	}
	return nil, unknownVariant("jump location", "")
}

func (j *JumpLocation) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	var out JumpLocation
	switch tag {
	case "Point":
		out.Kind = JumpPoint
		err = strict(content, &out.Point)
	case "Area":
		out.Kind = JumpArea
		err = strict(content, &out.Area)
	case "Mouse":
		out.Kind = JumpMouse
		err = noContent("jump location", tag, content)
	case "Object":
		var n nameContent
		err = strict(content, &n)
		out.Kind, out.Name = JumpObject, n.Name
	case "Relative":
		var c relativeContent
		err = strict(content, &c)
		out.Kind, out.To, out.Distance = JumpRelative, c.To, c.Distance
	case "ClampPosition":
		var c areaContent
		err = strict(content, &c)
		out.Kind, out.Area = JumpClampPosition, c.Area
	default:
		return unknownVariant("jump location", tag)
	}
	if err != nil {
		return err
	}
	*j = out
	return nil
}

// MovementTypeKind enumerates roaming styles.
type MovementTypeKind int

const (
	Wiggle MovementTypeKind = iota
	Insect
	Reflect
	Bounce
)

// MovementType is the style of a Roam motion.
type MovementType struct {
	Kind      MovementTypeKind
	Direction MovementDirection // Reflect
	Handling  MovementHandling  // Reflect
	Bounce    *BounceDirection  // Bounce, nil for straight up
}

type reflectContent struct {
	InitialDirection MovementDirection `json:"initial_direction"`
	MovementHandling MovementHandling  `json:"movement_handling"`
}

type bounceContent struct {
	InitialDirection *BounceDirection `json:"initial_direction"`
}

func (m MovementType) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case Wiggle:
		return unit("Wiggle")
	case Insect:
		return unit("Insect")
	case Reflect:
		return tagged("Reflect", reflectContent{m.Direction, m.Handling})
	case Bounce:
		return tagged("Bounce", bounceContent{m.Bounce})
	}
	return nil, unknownVariant("movement type", "")
}

func (m *MovementType) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Wiggle":
		*m = MovementType{Kind: Wiggle}
		return noContent("movement type", tag, content)
	case "Insect":
		*m = MovementType{Kind: Insect}
		return noContent("movement type", tag, content)
	case "Reflect":
		var c reflectContent
		if err := strict(content, &c); err != nil {
			return err
		}
		*m = MovementType{Kind: Reflect, Direction: c.InitialDirection, Handling: c.MovementHandling}
		return nil
	case "Bounce":
		var c bounceContent
		if err := strict(content, &c); err != nil {
			return err
		}
		*m = MovementType{Kind: Bounce, Bounce: c.InitialDirection}
		return nil
	}
	return unknownVariant("movement type", tag)
}

// Target is what a Target motion chases.
type Target struct {
	Mouse bool
	Name  string // !Mouse
}

func (t Target) MarshalJSON() ([]byte, error) {
	if t.Mouse {
		return unit("Mouse")
	}
	return tagged("Object", nameContent{t.Name})
}

func (t *Target) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Mouse":
		*t = Target{Mouse: true}
		return noContent("target", tag, content)
	case "Object":
		var n nameContent
		if err := strict(content, &n); err != nil {
			return err
		}
		*t = Target{Name: n.Name}
		return nil
	}
	return unknownVariant("target", tag)
}

// Acceleration changes an object's velocity every frame.
type Acceleration struct {
	SlowDown  bool
	Direction MovementDirection // !SlowDown
	Speed     Speed
}

type speedContent struct {
	Speed Speed `json:"speed"`
}

func (a Acceleration) MarshalJSON() ([]byte, error) {
	if a.SlowDown {
		return tagged("SlowDown", speedContent{a.Speed})
	}
	return tagged("Continuous", goStraightContent{a.Direction, a.Speed})
}

func (a *Acceleration) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Continuous":
		var c goStraightContent
		if err := strict(content, &c); err != nil {
			return err
		}
		*a = Acceleration{Direction: c.Direction, Speed: c.Speed}
		return nil
	case "SlowDown":
		var c speedContent
		if err := strict(content, &c); err != nil {
			return err
		}
		*a = Acceleration{SlowDown: true, Speed: c.Speed}
		return nil
	}
	return unknownVariant("acceleration", tag)
}

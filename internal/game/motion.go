package game

import (
	"math"

	"github.com/vovakirdan/weegames/internal/collision"
	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/gamedata"
)

const (
	gravity = 0.5
	// accelScale turns a Speed into a per-frame change of velocity.
	accelScale = 40
	// insectTurnChance is the per-frame chance an insect changes direction.
	insectTurnChance = 1.0 / 15
)

type motionKind int

const (
	motionStop motionKind = iota
	motionStraight
	motionRoam
	motionTarget
	motionAccelerate
)

// activeMotion is the movement an object performs every frame.
type activeMotion struct {
	kind     motionKind
	velocity core.Vec2
	speed    float32

	// roam
	roam     gamedata.MovementType
	area     core.AABB
	bounceVY float32

	// target
	target     gamedata.Target
	targetType gamedata.TargetType
	offset     core.Vec2

	// accelerate
	accel    core.Vec2
	slowDown bool
}

var compassVectors = [...]core.Vec2{
	gamedata.Up:        {X: 0, Y: -1},
	gamedata.UpRight:   {X: math.Sqrt2 / 2, Y: -math.Sqrt2 / 2},
	gamedata.Right:     {X: 1, Y: 0},
	gamedata.DownRight: {X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
	gamedata.Down:      {X: 0, Y: 1},
	gamedata.DownLeft:  {X: -math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
	gamedata.Left:      {X: -1, Y: 0},
	gamedata.UpLeft:    {X: -math.Sqrt2 / 2, Y: -math.Sqrt2 / 2},
}

// direction resolves a movement direction to a unit vector.
func (g *Game) direction(o *Object, d gamedata.MovementDirection) core.Vec2 {
	if d.Compass {
		c, ok := core.Choose(g.rng, d.Possible)
		if !ok {
			return core.Vec2{}
		}
		return compassVectors[c]
	}
	switch d.Angle.Kind {
	case gamedata.AngleDegrees:
		return core.FromAngle(d.Angle.Degrees)
	case gamedata.AngleRandom:
		return core.FromAngle(g.rng.FloatRange(d.Angle.Min, d.Angle.Max))
	}
	return core.FromAngle(o.Angle)
}

// moveObjects applies every queued motion and then advances the active
// ones. Swaps read the positions objects had before this phase.
func (g *Game) moveObjects() {
	before := make(map[*Object]core.Vec2, len(g.objects))
	for _, o := range g.objects {
		before[o] = o.Position
	}

	for _, o := range g.objects {
		queued := o.queued
		o.queued = nil
		if o.Frozen {
			continue
		}
		for _, m := range queued {
			if err := g.startMotion(o, m, before); err != nil {
				g.warn(o, err)
			}
		}
	}

	for _, o := range g.objects {
		if o.Frozen {
			continue
		}
		if err := g.advance(o); err != nil {
			g.warn(o, err)
		}
	}
}

func (g *Game) startMotion(o *Object, m gamedata.Motion, before map[*Object]core.Vec2) error {
	speed := unitsPerFrame(m.Speed)
	switch m.Kind {
	case gamedata.MotionStop:
		o.motion = activeMotion{}

	case gamedata.MotionGoStraight:
		o.motion = activeMotion{
			kind:     motionStraight,
			speed:    speed,
			velocity: g.direction(o, m.Direction).Scale(speed),
		}

	case gamedata.MotionJumpTo:
		return g.jump(o, m.Jump)

	case gamedata.MotionRoam:
		g.startRoam(o, m, speed)

	case gamedata.MotionSwap:
		other, err := g.lookup(m.Name)
		if err != nil {
			return err
		}
		o.Position, other.Position = before[other], before[o]

	case gamedata.MotionTarget:
		o.motion = activeMotion{
			kind:       motionTarget,
			speed:      speed,
			target:     m.Target,
			targetType: m.TargetType,
			offset:     m.Offset,
		}

	case gamedata.MotionAccelerate:
		a := m.Accelerate
		step := unitsPerFrame(a.Speed) / accelScale
		next := activeMotion{
			kind:     motionAccelerate,
			velocity: o.motion.velocity,
			speed:    step,
			slowDown: a.SlowDown,
		}
		if !a.SlowDown {
			next.accel = g.direction(o, a.Direction).Scale(step)
		}
		o.motion = next

	default:
		return ErrInternal
	}
	return nil
}

func (g *Game) jump(o *Object, j gamedata.JumpLocation) error {
	switch j.Kind {
	case gamedata.JumpPoint:
		o.Position = j.Point
	case gamedata.JumpArea:
		o.Position = g.rng.PointIn(j.Area)
	case gamedata.JumpMouse:
		o.Position = g.mouse.Position
	case gamedata.JumpObject:
		other, err := g.lookup(j.Name)
		if err != nil {
			return err
		}
		o.Position = other.Position
	case gamedata.JumpRelative:
		d := j.Distance
		if j.To == gamedata.CurrentAngle {
			d = d.Rotate(o.Angle)
		}
		o.Position = o.Position.Add(d)
	case gamedata.JumpClampPosition:
		o.Position = j.Area.ClampPoint(o.Position)
	default:
		return ErrInternal
	}
	return nil
}

func (g *Game) startRoam(o *Object, m gamedata.Motion, speed float32) {
	next := activeMotion{kind: motionRoam, speed: speed, roam: m.Movement, area: m.Area}
	switch m.Movement.Kind {
	case gamedata.Insect:
		next.velocity = g.insectHeading(o.Position, m.Area).Scale(speed)
	case gamedata.Reflect:
		next.velocity = g.direction(o, m.Movement.Direction).Scale(speed)
	case gamedata.Bounce:
		if m.Movement.Bounce != nil {
			next.velocity.X = speed
			if *m.Movement.Bounce == gamedata.BounceLeft {
				next.velocity.X = -speed
			}
		}
		next.velocity.Y = -launchSpeed(o.Position.Y - m.Area.Min.Y)
		next.bounceVY = launchSpeed(m.Area.Height())
	}
	o.motion = next
}

// launchSpeed is the upward speed that peaks height units higher.
func launchSpeed(height float32) float32 {
	if height <= 0 {
		return 0
	}
	return float32(math.Sqrt(2 * gravity * float64(height)))
}

// insectHeading picks an axis-aligned heading, preferring ones that keep
// the position inside area.
func (g *Game) insectHeading(pos core.Vec2, area core.AABB) core.Vec2 {
	options := []core.Vec2{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	inward := options[:0:0]
	for _, d := range options {
		if area.Contains(pos.Add(d)) {
			inward = append(inward, d)
		}
	}
	if len(inward) == 0 {
		inward = options
	}
	d, _ := core.Choose(g.rng, inward)
	return d
}

func (g *Game) advance(o *Object) error {
	m := &o.motion
	switch m.kind {
	case motionStraight:
		o.Position = o.Position.Add(m.velocity)

	case motionRoam:
		g.roam(o)

	case motionTarget:
		dest, err := g.targetPosition(m.target)
		if err != nil {
			return err
		}
		dest = dest.Add(m.offset)
		d := dest.Sub(o.Position)
		if d.Len() <= m.speed {
			o.Position = dest
			if m.targetType == gamedata.StopWhenReached {
				*m = activeMotion{}
			}
			return nil
		}
		o.Position = o.Position.Add(d.Normalize().Scale(m.speed))

	case motionAccelerate:
		if m.slowDown {
			l := max(0, m.velocity.Len()-m.speed)
			m.velocity = m.velocity.Normalize().Scale(l)
		} else {
			m.velocity = m.velocity.Add(m.accel)
		}
		o.Position = o.Position.Add(m.velocity)
	}
	return nil
}

func (g *Game) targetPosition(t gamedata.Target) (core.Vec2, error) {
	if t.Mouse {
		return g.mouse.Position, nil
	}
	other, err := g.lookup(t.Name)
	if err != nil {
		return core.Vec2{}, err
	}
	return other.Position, nil
}

func (g *Game) roam(o *Object) {
	m := &o.motion
	area := m.area
	switch m.roam.Kind {
	case gamedata.Wiggle:
		jitter := core.V(g.rng.FloatRange(-m.speed, m.speed), g.rng.FloatRange(-m.speed, m.speed))
		o.Position = area.ClampPoint(o.Position.Add(jitter))

	case gamedata.Insect:
		next := o.Position.Add(m.velocity)
		if !area.Contains(next) || g.rng.Chance(insectTurnChance) {
			m.velocity = g.insectHeading(o.Position, area).Scale(m.speed)
			next = o.Position.Add(m.velocity)
		}
		o.Position = area.ClampPoint(next)

	case gamedata.Reflect:
		if m.roam.Handling == gamedata.TryNotToOverlap {
			g.steerClear(o)
		}
		o.Position = o.Position.Add(m.velocity)
		reflectOff(&o.Position, &m.velocity, area)

	case gamedata.Bounce:
		m.velocity.Y += gravity
		o.Position = o.Position.Add(m.velocity)
		if o.Position.Y >= area.Max.Y {
			o.Position.Y = area.Max.Y
			m.velocity.Y = -m.bounceVY
		}
		if o.Position.X < area.Min.X || o.Position.X > area.Max.X {
			m.velocity.X = -m.velocity.X
			o.Position.X = core.ClampF(o.Position.X, area.Min.X, area.Max.X)
		}
	}
}

// reflectOff keeps pos inside area, flipping the velocity component of each
// wall it crossed.
func reflectOff(pos, vel *core.Vec2, area core.AABB) {
	if pos.X < area.Min.X || pos.X > area.Max.X {
		vel.X = -vel.X
		pos.X = core.ClampF(pos.X, area.Min.X, area.Max.X)
	}
	if pos.Y < area.Min.Y || pos.Y > area.Max.Y {
		vel.Y = -vel.Y
		pos.Y = core.ClampF(pos.Y, area.Min.Y, area.Max.Y)
	}
}

// steerClear turns o away from every object it currently overlaps.
func (g *Game) steerClear(o *Object) {
	poly := o.Polygon()
	vel := &o.motion.velocity
	for _, other := range g.objects {
		if other == o || !collision.Intersects(poly, other.Polygon()) {
			continue
		}
		away := o.Position.Sub(other.Position)
		if vel.X*away.X < 0 {
			vel.X = -vel.X
		}
		if vel.Y*away.Y < 0 {
			vel.Y = -vel.Y
		}
	}
}

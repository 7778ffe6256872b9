package collision

import (
	"github.com/vovakirdan/weegames/internal/core"
)

// Polygon is a convex polygon with vertices in clockwise screen order.
type Polygon []core.Vec2

// Support returns the vertex furthest along d.
func (p Polygon) Support(d core.Vec2) core.Vec2 {
	best := p[0]
	bestDot := best.Dot(d)
	for _, v := range p[1:] {
		if dot := v.Dot(d); dot > bestDot {
			best, bestDot = v, dot
		}
	}
	return best
}

// Centre returns the vertex average.
func (p Polygon) Centre() core.Vec2 {
	var c core.Vec2
	for _, v := range p {
		c = c.Add(v)
	}
	return c.Scale(1 / float32(len(p)))
}

// FromAABB returns the four corners of a box.
func FromAABB(a core.AABB) Polygon {
	c := a.Corners()
	return Polygon(c[:])
}

// Circle is used for mouse hit-testing.
type Circle struct {
	Centre core.Vec2
	Radius float32
}

// Support returns the point of the circle furthest along d.
func (c Circle) Support(d core.Vec2) core.Vec2 {
	return c.Centre.Add(d.Normalize().Scale(c.Radius))
}

// MousePoint is the unit circle every mouse test uses.
func MousePoint(p core.Vec2) Circle {
	return Circle{Centre: p, Radius: 1}
}

// Body is the placement of an object on the projection plane.
type Body struct {
	Position      core.Vec2  // centre
	Size          core.Size
	Angle         float32    // degrees, clockwise on screen
	Origin        *core.Vec2 // rotation pivot relative to the top-left, nil for centre
	CollisionArea *core.AABB // relative to the top-left, nil for the full rect
	Flip          core.Flip
}

// Polygon derives the world-space collision polygon: the collision area is
// mirrored per flip inside the size rect, rotated about the origin and
// placed so the size rect is centred on Position.
func (b Body) Polygon() Polygon {
	local := core.AABB{Max: b.Size.Vec()}
	if b.CollisionArea != nil {
		local = *b.CollisionArea
	}
	if b.Flip.Horizontal {
		local.Min.X, local.Max.X = b.Size.W-local.Max.X, b.Size.W-local.Min.X
	}
	if b.Flip.Vertical {
		local.Min.Y, local.Max.Y = b.Size.H-local.Max.Y, b.Size.H-local.Min.Y
	}

	pivot := b.Size.Half()
	if b.Origin != nil {
		pivot = *b.Origin
	}
	topLeft := b.Position.Sub(b.Size.Half())

	corners := local.Corners()
	poly := make(Polygon, len(corners))
	for i, c := range corners {
		rel := c.Sub(pivot)
		if b.Angle != 0 {
			rel = rel.Rotate(b.Angle)
		}
		poly[i] = topLeft.Add(pivot).Add(rel)
	}
	return poly
}

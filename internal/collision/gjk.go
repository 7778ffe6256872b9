// Package collision implements oriented-rectangle polygons and the 2-D
// Gilbert–Johnson–Keerthi distance algorithm used for every overlap test in
// the runtime.
package collision

import (
	"math"

	"github.com/vovakirdan/weegames/internal/core"
)

// Shape is any convex shape with a support mapping.
type Shape interface {
	// Support returns the point of the shape furthest along d.
	Support(d core.Vec2) core.Vec2
}

const (
	maxIterations = 64
	// Touching shapes have a distance of exactly zero; this absorbs
	// floating point noise from rotation.
	touchTolerance = 1e-4
	relTolerance   = 1e-10
)

// Intersects reports whether two convex shapes overlap. Touching counts.
func Intersects(a, b Shape) bool {
	return Distance(a, b) <= touchTolerance
}

type vec struct{ x, y float64 }

func toVec(v core.Vec2) vec { return vec{float64(v.X), float64(v.Y)} }

func (v vec) sub(o vec) vec { return vec{v.x - o.x, v.y - o.y} }
func (v vec) add(o vec) vec { return vec{v.x + o.x, v.y + o.y} }
func (v vec) scale(s float64) vec { return vec{v.x * s, v.y * s} }
func (v vec) dot(o vec) float64 { return v.x*o.x + v.y*o.y }
func (v vec) cross(o vec) float64 { return v.x*o.y - v.y*o.x }
func (v vec) neg() vec { return vec{-v.x, -v.y} }
func (v vec) f32() core.Vec2 { return core.Vec2{X: float32(v.x), Y: float32(v.y)} }

// minkowski returns the support point of A − B in direction d.
func minkowski(a, b Shape, d vec) vec {
	return toVec(a.Support(d.f32())).sub(toVec(b.Support(d.neg().f32())))
}

// Distance returns the Euclidean distance between two convex shapes,
// zero when they overlap.
func Distance(a, b Shape) float64 {
	v := minkowski(a, b, vec{1, 0})
	simplex := make([]vec, 0, 3)

	for i := 0; i < maxIterations; i++ {
		vv := v.dot(v)
		if vv <= touchTolerance*touchTolerance {
			return 0
		}
		w := minkowski(a, b, v.neg())
		// No support point gets meaningfully closer than v: converged.
		if vv-v.dot(w) <= relTolerance*vv {
			return math.Sqrt(vv)
		}
		simplex = append(simplex, w)
		v, simplex = closestOnSimplex(simplex)
		if len(simplex) == 3 {
			return 0
		}
	}
	return math.Sqrt(v.dot(v))
}

// closestOnSimplex returns the point of the simplex nearest the origin and
// the smallest sub-simplex containing it. A full triangle means the origin
// is enclosed.
func closestOnSimplex(s []vec) (vec, []vec) {
	switch len(s) {
	case 1:
		return s[0], s
	case 2:
		return closestOnSegment(s[0], s[1])
	}

	a, b, c := s[0], s[1], s[2]
	area := b.sub(a).cross(c.sub(a))
	if math.Abs(area) > 1e-12 {
		d1 := b.sub(a).cross(a.neg())
		d2 := c.sub(b).cross(b.neg())
		d3 := a.sub(c).cross(c.neg())
		if area > 0 && d1 >= 0 && d2 >= 0 && d3 >= 0 ||
			area < 0 && d1 <= 0 && d2 <= 0 && d3 <= 0 {
			return vec{}, s
		}
	}

	best, bestSet := closestOnSegment(a, b)
	for _, pair := range [][2]vec{{b, c}, {c, a}} {
		p, set := closestOnSegment(pair[0], pair[1])
		if p.dot(p) < best.dot(best) {
			best, bestSet = p, set
		}
	}
	return best, bestSet
}

func closestOnSegment(a, b vec) (vec, []vec) {
	ab := b.sub(a)
	l := ab.dot(ab)
	if l == 0 {
		return a, []vec{a}
	}
	t := -a.dot(ab) / l
	switch {
	case t <= 0:
		return a, []vec{a}
	case t >= 1:
		return b, []vec{b}
	}
	return a.add(ab.scale(t)), []vec{a, b}
}

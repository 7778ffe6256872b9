// Package core provides fundamental types and utilities for the weegames runtime.
// It contains no rendering or audio dependencies to keep game logic pure and
// testable. All simulation happens on a fixed 1600×900 projection plane.
package core

import "math"

// Vec2 is a point or displacement on the projection plane.
// The y axis points down.
type Vec2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// V returns a vector with the given components.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}
func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate rotates v clockwise (on screen) by deg degrees around the origin.
func (v Vec2) Rotate(deg float32) Vec2 {
	s, c := math.Sincos(float64(deg) * math.Pi / 180)
	x, y := float64(v.X), float64(v.Y)
	return Vec2{
		X: float32(x*c - y*s),
		Y: float32(x*s + y*c),
	}
}

// AngleDeg returns the direction of v in degrees, 0° pointing along +x.
func (v Vec2) AngleDeg() float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)) * 180 / math.Pi)
}

// FromAngle returns the unit vector pointing at deg degrees.
func FromAngle(deg float32) Vec2 {
	s, c := math.Sincos(float64(deg) * math.Pi / 180)
	return Vec2{X: float32(c), Y: float32(s)}
}

// Size holds a width and height. Object sizes must be strictly positive.
type Size struct {
	W float32 `json:"width"`
	H float32 `json:"height"`
}

// Vec returns the size as a vector.
func (s Size) Vec() Vec2 { return Vec2{s.W, s.H} }

// Half returns half the size as a vector.
func (s Size) Half() Vec2 { return Vec2{s.W / 2, s.H / 2} }

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min Vec2 `json:"min"`
	Max Vec2 `json:"max"`
}

// NewAABB creates a box from two corners.
func NewAABB(minX, minY, maxX, maxY float32) AABB {
	return AABB{Min: Vec2{minX, minY}, Max: Vec2{maxX, maxY}}
}

// RectAt creates the box of the given size centred on pos.
func RectAt(pos Vec2, size Size) AABB {
	h := size.Half()
	return AABB{Min: pos.Sub(h), Max: pos.Add(h)}
}

func (a AABB) Width() float32 { return a.Max.X - a.Min.X }
func (a AABB) Height() float32 { return a.Max.Y - a.Min.Y }

// Center returns the center point of the box.
func (a AABB) Center() Vec2 {
	return Vec2{(a.Min.X + a.Max.X) / 2, (a.Min.Y + a.Max.Y) / 2}
}

// Contains returns true if p is inside the box, edges included.
func (a AABB) Contains(p Vec2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X && p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

// Intersects returns true if the boxes overlap or touch.
func (a AABB) Intersects(b AABB) bool {
	if a.Max.X < b.Min.X || b.Max.X < a.Min.X {
		return false
	}
	if a.Max.Y < b.Min.Y || b.Max.Y < a.Min.Y {
		return false
	}
	return true
}

// ClampPoint moves p to the nearest point inside the box.
func (a AABB) ClampPoint(p Vec2) Vec2 {
	return Vec2{
		X: ClampF(p.X, a.Min.X, a.Max.X),
		Y: ClampF(p.Y, a.Min.Y, a.Max.Y),
	}
}

// Corners returns the four corners clockwise from the top-left.
func (a AABB) Corners() [4]Vec2 {
	return [4]Vec2{
		{a.Min.X, a.Min.Y},
		{a.Max.X, a.Min.Y},
		{a.Max.X, a.Max.Y},
		{a.Min.X, a.Max.Y},
	}
}

// Flip records mirroring of an object's sprite and collision area.
type Flip struct {
	Horizontal bool `json:"horizontal"`
	Vertical   bool `json:"vertical"`
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float32 value to be within [min, max].
func ClampF(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF returns the absolute value of a float32.
func AbsF(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

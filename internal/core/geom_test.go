package core

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestAABBIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(5, 5, 15, 15),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(15, 0, 25, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(0, 15, 10, 25),
			expected: false,
		},
		{
			name:     "touching edges count",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(10, 0, 20, 10),
			expected: true,
		},
		{
			name:     "contained box",
			a:        NewAABB(0, 0, 20, 20),
			b:        NewAABB(5, 5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestAABBContains(t *testing.T) {
	a := NewAABB(10, 10, 20, 20)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"top-left corner", V(10, 10), true},
		{"inside", V(15, 15), true},
		{"bottom-right corner", V(20, 20), true},
		{"left of box", V(9, 15), false},
		{"below box", V(15, 21), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectAtCorners(t *testing.T) {
	box := RectAt(V(800, 450), Size{W: 200, H: 100})
	want := [4]Vec2{V(700, 400), V(900, 400), V(900, 500), V(700, 500)}

	if got := box.Corners(); got != want {
		t.Errorf("Corners() = %v, expected %v", got, want)
	}
}

func TestVecRotate(t *testing.T) {
	tests := []struct {
		name string
		deg  float32
		want Vec2
	}{
		{"zero", 0, V(1, 0)},
		{"quarter turn points down", 90, V(0, 1)},
		{"half turn", 180, V(-1, 0)},
		{"negative quarter points up", -90, V(0, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := V(1, 0).Rotate(tc.deg)
			if !near(got.X, tc.want.X) || !near(got.Y, tc.want.Y) {
				t.Errorf("Rotate(%v) = %v, expected %v", tc.deg, got, tc.want)
			}
			dir := FromAngle(tc.deg)
			if !near(dir.X, tc.want.X) || !near(dir.Y, tc.want.Y) {
				t.Errorf("FromAngle(%v) = %v, expected %v", tc.deg, dir, tc.want)
			}
		})
	}
}

func TestAngleDeg(t *testing.T) {
	if got := V(0, 10).AngleDeg(); !near(got, 90) {
		t.Errorf("AngleDeg() = %v, expected 90", got)
	}
	if got := V(-5, 0).AngleDeg(); !near(got, 180) {
		t.Errorf("AngleDeg() = %v, expected 180", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize() of zero = %v, expected zero", got)
	}
}

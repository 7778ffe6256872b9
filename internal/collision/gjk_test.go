package collision

import (
	"math"
	"testing"

	"github.com/vovakirdan/weegames/internal/core"
)

func square(x, y, size float32) Polygon {
	return FromAABB(core.NewAABB(x, y, x+size, y+size))
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Shape
		expected bool
	}{
		{"overlapping squares", square(0, 0, 10), square(5, 5, 10), true},
		{"separated horizontally", square(0, 0, 10), square(20, 0, 10), false},
		{"separated diagonally", square(0, 0, 10), square(11, 11, 10), false},
		{"touching edges", square(0, 0, 10), square(10, 0, 10), true},
		{"touching corners", square(0, 0, 10), square(10, 10, 10), true},
		{"contained", square(0, 0, 100), square(40, 40, 10), true},
		{"identical", square(3, 3, 7), square(3, 3, 7), true},
		{"mouse inside", square(0, 0, 10), MousePoint(core.V(5, 5)), true},
		{"mouse just outside", square(0, 0, 10), MousePoint(core.V(12, 5)), false},
		{"mouse grazing edge", square(0, 0, 10), MousePoint(core.V(10.5, 5)), true},
		{
			name:     "rotated diamond misses corner box",
			a:        Body{Position: core.V(0, 0), Size: core.Size{W: 10, H: 10}, Angle: 45}.Polygon(),
			b:        square(5, 5, 5),
			expected: false,
		},
		{
			name:     "rotated diamond reaches along axis",
			a:        Body{Position: core.V(0, 0), Size: core.Size{W: 10, H: 10}, Angle: 45}.Polygon(),
			b:        square(6.5, -1, 2),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Intersects(tc.a, tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v (distance %v)", got, tc.expected, Distance(tc.a, tc.b))
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Shape
		expected float64
	}{
		{"horizontal gap", square(0, 0, 10), square(20, 0, 10), 10},
		{"vertical gap", square(0, 0, 10), square(0, 13, 10), 3},
		{"diagonal gap", square(0, 0, 10), square(13, 14, 10), 5},
		{"overlap", square(0, 0, 10), square(5, 5, 10), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.a, tc.b)
			if math.Abs(got-tc.expected) > 1e-3 {
				t.Errorf("Distance() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBodyPolygonUnrotated(t *testing.T) {
	b := Body{Position: core.V(800, 450), Size: core.Size{W: 200, H: 100}}
	want := Polygon{core.V(700, 400), core.V(900, 400), core.V(900, 500), core.V(700, 500)}

	got := b.Polygon()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Polygon() = %v, expected %v", got, want)
		}
	}
}

func TestBodyPolygonTransforms(t *testing.T) {
	area := core.NewAABB(0, 0, 10, 20)
	origin := core.V(0, 0)

	tests := []struct {
		name string
		body Body
		want Polygon
	}{
		{
			name: "collision area is relative to the top-left",
			body: Body{Position: core.V(50, 50), Size: core.Size{W: 40, H: 40}, CollisionArea: &area},
			want: Polygon{core.V(30, 30), core.V(40, 30), core.V(40, 50), core.V(30, 50)},
		},
		{
			name: "horizontal flip mirrors the collision area",
			body: Body{Position: core.V(50, 50), Size: core.Size{W: 40, H: 40}, CollisionArea: &area, Flip: core.Flip{Horizontal: true}},
			want: Polygon{core.V(60, 30), core.V(70, 30), core.V(70, 50), core.V(60, 50)},
		},
		{
			name: "quarter turn about the centre",
			body: Body{Position: core.V(0, 0), Size: core.Size{W: 20, H: 10}, Angle: 90},
			want: Polygon{core.V(5, -10), core.V(5, 10), core.V(-5, 10), core.V(-5, -10)},
		},
		{
			name: "quarter turn about the top-left origin",
			body: Body{Position: core.V(10, 5), Size: core.Size{W: 20, H: 10}, Angle: 90, Origin: &origin},
			want: Polygon{core.V(0, 0), core.V(0, 20), core.V(-10, 20), core.V(-10, 0)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.body.Polygon()
			for i := range tc.want {
				if math.Abs(float64(got[i].X-tc.want[i].X)) > 1e-3 || math.Abs(float64(got[i].Y-tc.want[i].Y)) > 1e-3 {
					t.Fatalf("Polygon() = %v, expected %v", got, tc.want)
				}
			}
		})
	}
}

func TestIdenticalBodiesHaveZeroDistance(t *testing.T) {
	b := Body{Position: core.V(123, 456), Size: core.Size{W: 37, H: 81}, Angle: 33}
	if d := Distance(b.Polygon(), b.Polygon()); d != 0 {
		t.Errorf("Distance() of identical bodies = %v, expected 0", d)
	}
}

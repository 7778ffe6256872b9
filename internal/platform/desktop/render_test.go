package desktop

import (
	"math"
	"testing"

	"github.com/vovakirdan/weegames/internal/core"
)

func TestSpriteTransform(t *testing.T) {
	rect := core.AABB{Min: core.Vec2{X: 10, Y: 20}, Max: core.Vec2{X: 110, Y: 70}}
	mid := core.Vec2{X: 50, Y: 25}

	tests := []struct {
		name   string
		angle  float32
		origin core.Vec2
		flip   core.Flip
		in     [2]float64
		out    [2]float64
	}{
		{"top left", 0, mid, core.Flip{}, [2]float64{0, 0}, [2]float64{10, 20}},
		{"bottom right", 0, mid, core.Flip{}, [2]float64{10, 10}, [2]float64{110, 70}},
		{"horizontal flip", 0, mid, core.Flip{Horizontal: true}, [2]float64{0, 0}, [2]float64{110, 20}},
		{"vertical flip", 0, mid, core.Flip{Vertical: true}, [2]float64{0, 0}, [2]float64{10, 70}},
		{"quarter turn", 90, mid, core.Flip{}, [2]float64{0, 0}, [2]float64{85, -5}},
		{"centre is fixed", 37, mid, core.Flip{}, [2]float64{5, 5}, [2]float64{60, 45}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := spriteTransform(10, 10, rect, tt.angle, tt.origin, tt.flip)
			x, y := m.Apply(tt.in[0], tt.in[1])
			if math.Abs(x-tt.out[0]) > 1e-3 || math.Abs(y-tt.out[1]) > 1e-3 {
				t.Errorf("Apply(%v) = (%v, %v), expected %v", tt.in, x, y, tt.out)
			}
		})
	}
}

func TestSpriteTransformEmptySource(t *testing.T) {
	rect := core.AABB{Max: core.Vec2{X: 100, Y: 100}}
	m := spriteTransform(0, 0, rect, 0, core.Vec2{}, core.Flip{})
	if x, y := m.Apply(3, 4); x != 3 || y != 4 {
		t.Errorf("Apply() = (%v, %v), expected the identity", x, y)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"", 10, ""},
		{"short", 10, "short"},
		{"cannot load   game file", 10, "cannot\nload game\nfile"},
		{"averyveryverylongword fits", 5, "averyveryverylongword\nfits"},
	}
	for _, tt := range tests {
		if got := wrapText(tt.text, tt.width); got != tt.expected {
			t.Errorf("wrapText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.expected)
		}
	}
}

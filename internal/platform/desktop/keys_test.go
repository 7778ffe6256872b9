package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/weegames/internal/core"
)

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys([]string{"P", "escape", "F1"})
	if err != nil {
		t.Fatalf("ParseKeys() error = %v", err)
	}
	expected := []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape, ebiten.KeyF1}
	if len(keys) != len(expected) {
		t.Fatalf("ParseKeys() returned %d keys, expected %d", len(keys), len(expected))
	}
	for i := range expected {
		if keys[i] != expected[i] {
			t.Errorf("ParseKeys()[%d] = %v, expected %v", i, keys[i], expected[i])
		}
	}

	if _, err := ParseKeys([]string{"Hyper"}); err == nil {
		t.Error("ParseKeys(Hyper) succeeded, expected an error")
	}
}

func TestNewBindingsDefaults(t *testing.T) {
	b, err := NewBindings(nil)
	if err != nil {
		t.Fatalf("NewBindings() error = %v", err)
	}
	if len(b.Pause) != 2 || b.Pause[0] != ebiten.KeyP || b.Pause[1] != ebiten.KeyEscape {
		t.Errorf("NewBindings(nil).Pause = %v, expected [P Escape]", b.Pause)
	}
}

func TestBindingsRead(t *testing.T) {
	tests := []struct {
		name     string
		pause    []ebiten.Key
		pressed  []ebiten.Key
		expected []core.Action
		absent   []core.Action
	}{
		{"arrow up", []ebiten.Key{ebiten.KeyP}, []ebiten.Key{ebiten.KeyArrowUp}, []core.Action{core.ActionUp}, []core.Action{core.ActionPause}},
		{"vim down", []ebiten.Key{ebiten.KeyP}, []ebiten.Key{ebiten.KeyJ}, []core.Action{core.ActionDown}, nil},
		{"enter", []ebiten.Key{ebiten.KeyP}, []ebiten.Key{ebiten.KeyEnter}, []core.Action{core.ActionConfirm}, nil},
		{"pause", []ebiten.Key{ebiten.KeyP}, []ebiten.Key{ebiten.KeyP}, []core.Action{core.ActionPause}, nil},
		{"pause wins over back", []ebiten.Key{ebiten.KeyB}, []ebiten.Key{ebiten.KeyB}, []core.Action{core.ActionPause}, []core.Action{core.ActionBack}},
		{"quit", nil, []ebiten.Key{ebiten.KeyQ}, []core.Action{core.ActionQuit}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			down := make(map[ebiten.Key]bool)
			for _, k := range tt.pressed {
				down[k] = true
			}
			frame := core.NewInputFrame()
			Bindings{Pause: tt.pause}.Read(&frame, func(k ebiten.Key) bool { return down[k] })

			for _, a := range tt.expected {
				if !frame.Has(a) {
					t.Errorf("Read() did not set %v", a)
				}
			}
			for _, a := range tt.absent {
				if frame.Has(a) {
					t.Errorf("Read() set %v, expected it unset", a)
				}
			}
		})
	}
}

func TestCursor(t *testing.T) {
	// 800x450 is exactly half the projection plane.
	m := cursor(400, 225, core.Size{W: 800, H: 450}, true)
	if m.Position.X != 800 || m.Position.Y != 450 {
		t.Errorf("cursor() position = %v, expected (800, 450)", m.Position)
	}
	if m.State != core.ButtonDown {
		t.Errorf("cursor() state = %v, expected Down", m.State)
	}
	if m := cursor(0, 0, core.Size{W: 800, H: 450}, false); m.State != core.ButtonUp {
		t.Errorf("cursor() state = %v, expected Up", m.State)
	}
}

package core

import "fmt"

// ButtonState is the mouse button state seen by the runtime.
// Press and Release are one-frame edges; Up and Down are levels.
type ButtonState int

const (
	ButtonUp ButtonState = iota
	ButtonDown
	ButtonPress
	ButtonRelease
)

// String returns a human-readable name for the button state.
func (b ButtonState) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonPress:
		return "Press"
	case ButtonRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the state by name.
func (b ButtonState) MarshalText() ([]byte, error) {
	if b < ButtonUp || b > ButtonRelease {
		return nil, fmt.Errorf("invalid button state %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText decodes a state name.
func (b *ButtonState) UnmarshalText(text []byte) error {
	for s := ButtonUp; s <= ButtonRelease; s++ {
		if s.String() == string(text) {
			*b = s
			return nil
		}
	}
	return fmt.Errorf("unknown button state %q", text)
}

// Held reports whether the button is physically down.
// A host may report a Press edge directly; it counts as held.
func (b ButtonState) Held() bool {
	return b == ButtonDown || b == ButtonPress
}

// Mouse is one mouse sample in projection coordinates.
type Mouse struct {
	Position Vec2
	State    ButtonState
}

// Action represents a semantic host action, abstracted from physical key presses.
// Microgames only see the mouse; keys drive menus and the pause layer.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, K - previous menu entry
	ActionDown           // Down arrow, J - next menu entry
	ActionConfirm        // Enter, Space - confirm selection
	ActionBack           // B, Backspace - go back to the previous menu
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P, Escape - pause the running scene
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents host input during one tick: the mouse sample plus
// the actions triggered since the previous tick.
type InputFrame struct {
	Mouse Mouse

	// Actions maps action types to whether they were triggered this tick.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this tick.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this tick.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next tick. The mouse sample is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Mouse = f.Mouse
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

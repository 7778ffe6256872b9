package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/weegames/internal/core"
)

// DefaultPauseKeys toggle the pause layer when no keys are configured.
var DefaultPauseKeys = []string{"p", "esc"}

// KeyMapper translates Bubble Tea key messages to session actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	pause map[string]bool
}

// NewKeyMapper creates a key mapper. pauseKeys are Bubble Tea key names
// such as "p" or "esc"; an empty list uses DefaultPauseKeys.
func NewKeyMapper(pauseKeys []string) *KeyMapper {
	if len(pauseKeys) == 0 {
		pauseKeys = DefaultPauseKeys
	}
	km := &KeyMapper{pause: make(map[string]bool, len(pauseKeys))}
	for _, k := range pauseKeys {
		km.pause[k] = true
	}
	return km
}

// MapKey translates a key message to an action.
// Returns ActionNone for keys without a binding.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	key := msg.String()

	// Pause keys win over the defaults below, so "esc" can pause.
	if km.pause[key] {
		return core.ActionPause
	}

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "up", "k": // vim-style k for up
		return core.ActionUp
	case "s", "down", "j": // vim-style j for down
		return core.ActionDown
	case "enter", " ":
		return core.ActionConfirm
	case "b", "backspace", "esc":
		return core.ActionBack
	}

	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action == core.ActionQuit
}

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2

// cellWindow is the terminal measured in square "pixels".
func cellWindow(width, height int) core.Size {
	return core.Size{W: float32(width), H: float32(height) * cellAspect}
}

// cellCentre returns the window pixel at the centre of a cell.
func cellCentre(x, y int) core.Vec2 {
	return core.Vec2{X: float32(x) + 0.5, Y: (float32(y) + 0.5) * cellAspect}
}

// pointer tracks the left mouse button between ticks.
// A click that presses and releases inside one tick still reads as held
// for that tick, so the runtime sees both edges.
type pointer struct {
	x, y    int
	held    bool
	clicked bool
}

// update records a mouse message.
func (p *pointer) update(msg tea.MouseMsg) {
	p.x, p.y = msg.X, msg.Y
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.held = true
			p.clicked = true
		}
	case tea.MouseActionRelease:
		// Some terminals report releases without the button.
		p.held = false
	}
}

// sample returns the mouse in projection coordinates for a terminal of the
// given size and forgets the pending click.
func (p *pointer) sample(width, height int) core.Mouse {
	state := core.ButtonUp
	if p.held || p.clicked {
		state = core.ButtonDown
	}
	p.clicked = false
	return core.Mouse{
		Position: core.Project(cellCentre(p.x, p.y), cellWindow(width, height)),
		State:    state,
	}
}

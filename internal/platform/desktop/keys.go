package desktop

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/weegames/internal/core"
)

// DefaultPauseKeys toggle the pause layer when no keys are configured.
var DefaultPauseKeys = []string{"P", "Escape"}

var (
	keyNamesOnce sync.Once
	keyNames     map[string]ebiten.Key
)

// lookupKey finds a key by its ebiten name, ignoring case.
func lookupKey(name string) (ebiten.Key, bool) {
	keyNamesOnce.Do(func() {
		keyNames = make(map[string]ebiten.Key)
		for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
			keyNames[strings.ToLower(k.String())] = k
		}
	})
	k, ok := keyNames[strings.ToLower(name)]
	return k, ok
}

// ParseKeys converts configured key names such as "P" or "Escape".
func ParseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		k, ok := lookupKey(name)
		if !ok {
			return nil, fmt.Errorf("desktop: unknown key %q", name)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Bindings maps keyboard keys to session actions.
type Bindings struct {
	Pause []ebiten.Key
}

var fixedBindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyBackspace, ebiten.KeyB}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// NewBindings builds bindings from configured pause key names.
func NewBindings(pause []string) (Bindings, error) {
	if len(pause) == 0 {
		pause = DefaultPauseKeys
	}
	keys, err := ParseKeys(pause)
	if err != nil {
		return Bindings{}, err
	}
	return Bindings{Pause: keys}, nil
}

// Read sets the actions whose keys were just pressed. A pause key bound to
// another action only pauses.
func (b Bindings) Read(frame *core.InputFrame, justPressed func(ebiten.Key) bool) {
	isPause := make(map[ebiten.Key]bool, len(b.Pause))
	for _, k := range b.Pause {
		isPause[k] = true
		if justPressed(k) {
			frame.Set(core.ActionPause)
		}
	}
	for _, fb := range fixedBindings {
		for _, k := range fb.keys {
			if !isPause[k] && justPressed(k) {
				frame.Set(fb.action)
			}
		}
	}
}

// cursor converts a window cursor position to a projection mouse sample.
func cursor(x, y int, window core.Size, held bool) core.Mouse {
	state := core.ButtonUp
	if held {
		state = core.ButtonDown
	}
	return core.Mouse{
		Position: core.Project(core.Vec2{X: float32(x), Y: float32(y)}, window),
		State:    state,
	}
}

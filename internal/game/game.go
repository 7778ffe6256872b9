// Package game runs one microgame scene: it schedules logical frames,
// evaluates triggers, executes actions and moves objects.
package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/weegames/internal/assets"
	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/gamedata"
)

// Game is one running instance of a game document.
type Game struct {
	data   *gamedata.GameData
	assets *assets.Assets
	cfg    core.RuntimeConfig
	rng    *core.Rng
	logger *log.Logger

	objects []*Object
	byName  map[string]*Object

	frames     FrameInfo
	status     Status
	mouse      core.Mouse
	wasHeld    bool
	pending    []WorldAction
	endedEarly bool

	recording bool
	inputs    []core.Mouse

	// warned holds runtime errors already logged, so a broken instruction
	// reports once instead of every frame.
	warned map[string]bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger runtime warnings go to.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithRecording keeps every frame's mouse sample so the run can be saved
// as a playthrough.
func WithRecording() Option {
	return func(g *Game) { g.recording = true }
}

// New instantiates a scene. A nil registry is treated as empty.
func New(data *gamedata.GameData, a *assets.Assets, cfg core.RuntimeConfig, opts ...Option) (*Game, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil game data", ErrInternal)
	}
	if a == nil {
		a = assets.New()
	}
	cfg.Difficulty = uint32(core.Clamp(int(cfg.Difficulty), core.MinDifficulty, core.MaxDifficulty))
	if cfg.PlaybackRate <= 0 {
		cfg.PlaybackRate = 1
	}

	g := &Game{
		data:   data,
		assets: a,
		cfg:    cfg,
		rng:    core.NewRng(cfg.Seed),
		byName: make(map[string]*Object, len(data.Objects)),
		warned: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "weegames",
		})
	}

	total := Infinite
	if n, ok := data.Length.Frames(); ok {
		total = Frames(n)
	}
	g.frames = NewFrameInfo(total)

	for _, def := range data.Objects {
		if _, dup := g.byName[def.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate object %q", gamedata.ErrInvalid, def.Name)
		}
		o := newObject(def, g.rng)
		g.objects = append(g.objects, o)
		g.byName[def.Name] = o
	}
	return g, nil
}

// Tick runs as many frames as the wall clock calls for and returns the
// world actions they emitted, in order. The same mouse sample feeds every
// frame of the tick.
func (g *Game) Tick(now time.Time, mouse core.Mouse) []WorldAction {
	n := g.frames.FramesToRun(now, g.cfg.PlaybackRate)
	var out []WorldAction
	for i := uint32(0); i < n && !g.Finished(); i++ {
		out = append(out, g.Update(mouse)...)
	}
	return out
}

// Resume restarts the scheduler after a pause.
func (g *Game) Resume(now time.Time) {
	g.frames.Resume(now)
}

// Update simulates exactly one logical frame.
func (g *Game) Update(mouse core.Mouse) []WorldAction {
	if g.recording {
		g.inputs = append(g.inputs, mouse)
	}
	g.mouse = core.Mouse{Position: mouse.Position, State: edge(g.wasHeld, mouse.State)}
	g.wasHeld = mouse.State.Held()

	for _, o := range g.objects {
		o.beginFrame()
	}
	for _, o := range g.objects {
		o.tickTimer()
		if o.Animation != nil && !o.Frozen {
			o.Animation.step()
			o.Sprite = o.Animation.Current()
		}
	}

	for _, o := range g.objects {
		for i := range o.instructions {
			ins := &o.instructions[i]
			ok, err := g.allTriggered(o, ins)
			if err == nil && ok {
				err = g.applyActions(o, ins.actions)
			}
			if err != nil {
				g.warn(o, err)
			}
		}
	}

	g.moveObjects()
	g.status.commit()
	g.frames.Ran++

	out := g.pending
	g.pending = nil
	return out
}

// warn logs a runtime error once. The failing instruction is skipped.
func (g *Game) warn(o *Object, err error) {
	msg := o.Name + ": " + err.Error()
	if g.warned[msg] {
		return
	}
	g.warned[msg] = true

	var missingObj *MissingObjectError
	var missingAsset *assets.MissingAssetError
	switch {
	case errors.As(err, &missingObj), errors.As(err, &missingAsset):
		g.logger.Warn("instruction skipped", "object", o.Name, "error", err)
	default:
		g.logger.Error("runtime error", "object", o.Name, "error", err)
	}
}

func (g *Game) lookup(name string) (*Object, error) {
	o, ok := g.byName[name]
	if !ok {
		return nil, &MissingObjectError{Name: name}
	}
	return o, nil
}

// Finished reports whether the scene is over: it ran out of frames or an
// EndEarly action fired.
func (g *Game) Finished() bool {
	rem := g.frames.Remaining()
	return g.endedEarly || (!rem.Infinite && rem.N == 0)
}

// EndedEarly reports whether an EndEarly action cut the scene short.
func (g *Game) EndedEarly() bool { return g.endedEarly }

// HasWon reports whether the scene currently counts as won.
func (g *Game) HasWon() bool { return g.status.HasWon() }

// Status returns the win/lose state.
func (g *Game) Status() Status { return g.status }

// Frames returns the scheduler state.
func (g *Game) Frames() FrameInfo { return g.frames }

// Data returns the document the scene was built from.
func (g *Game) Data() *gamedata.GameData { return g.data }

// Assets returns the scene's asset registry.
func (g *Game) Assets() *assets.Assets { return g.assets }

// Mouse returns the mouse as seen by the last frame, with edges derived.
func (g *Game) Mouse() core.Mouse { return g.mouse }

// Playthrough returns the recorded run. It is only complete when the game
// was created WithRecording.
func (g *Game) Playthrough(path string) *gamedata.Playthrough {
	return &gamedata.Playthrough{
		Path:       path,
		Inputs:     append([]core.Mouse(nil), g.inputs...),
		Difficulty: g.cfg.Difficulty,
		Seed:       g.cfg.Seed,
		HasBeenWon: g.status.HasBeenWon,
	}
}

// Replay runs a recorded playthrough against data from the first frame and
// reports whether it reproduced the recorded outcome.
func Replay(data *gamedata.GameData, a *assets.Assets, p *gamedata.Playthrough, opts ...Option) (bool, error) {
	cfg := core.RuntimeConfig{Seed: p.Seed, Difficulty: p.Difficulty, PlaybackRate: 1}
	g, err := New(data, a, cfg, opts...)
	if err != nil {
		return false, err
	}
	for _, m := range p.Inputs {
		if g.Finished() {
			break
		}
		g.Update(m)
	}
	return g.status.HasBeenWon == p.HasBeenWon, nil
}

// Object returns the named object.
func (g *Game) Object(name string) (*Object, bool) {
	o, ok := g.byName[name]
	return o, ok
}

// Objects returns the objects in insertion order.
func (g *Game) Objects() []*Object { return g.objects }

// Snapshot captures every object's observable state.
func (g *Game) Snapshot() []ObjectState {
	out := make([]ObjectState, len(g.objects))
	for i, o := range g.objects {
		out[i] = o.State()
	}
	return out
}

// Package session strings microgames into a playlist: it walks the player
// from the directory menu through prelude, interludes and games to the game
// over screen, keeping score, lives and the ever-rising playback rate.
//
// A Session is driven by its host once per display refresh through Tick and
// is not safe for concurrent use. The only background work is the preload of
// the next game, handed over through an assets.Task.
package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/weegames/internal/assets"
	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/game"
	"github.com/vovakirdan/weegames/internal/gamedata"
	"github.com/vovakirdan/weegames/internal/registry"
	"github.com/vovakirdan/weegames/internal/storage"
)

// State is the orchestrator's current screen.
type State int

const (
	StateLoading State = iota
	StateMenu
	StateModeSelect
	StatePrelude
	StateInterlude
	StatePlay
	StateGameOver
	StateError // a game failed to load; acknowledging returns to the menu
	StateFatal // a system scene is unusable; acknowledging quits
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateMenu:
		return "Menu"
	case StateModeSelect:
		return "ModeSelect"
	case StatePrelude:
		return "Prelude"
	case StateInterlude:
		return "Interlude"
	case StatePlay:
		return "Play"
	case StateGameOver:
		return "GameOver"
	case StateError:
		return "Error"
	case StateFatal:
		return "Fatal"
	case StateQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Menu entries.
const (
	OptionQuit     = "Quit"
	OptionShuffle  = "Shuffle"
	OptionPractice = "Practice"
	OptionBack     = "Back"
)

// Objects of the pause scene that end the pause when switched on.
const (
	ContinueObject = "Continue"
	QuitObject     = "Quit"
)

// MenuView is what a host draws in the Menu and ModeSelect states.
type MenuView struct {
	Title   string
	Options []string
	Cursor  int
}

// Selected returns the highlighted option.
func (m MenuView) Selected() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Options) {
		return ""
	}
	return m.Options[m.Cursor]
}

type running struct {
	scene  *Scene
	game   *game.Game
	path   string
	rate   float64
	isBoss bool
}

// Session is the top-level state machine.
type Session struct {
	root   string
	rules  Rules
	loader Loader
	audio  Audio
	store  storage.Store
	logger *log.Logger
	rng    *core.Rng

	ctx    context.Context
	cancel context.CancelFunc

	state       State
	catalogTask *assets.Task[*registry.Catalog]
	catalog     *registry.Catalog
	menu        MenuView
	message     string

	dir        registry.Directory
	practice   bool
	progress   Progress
	played     []string
	nextUp     []string
	lastPath   string
	highScores storage.HighScores

	current *running
	pause   *running

	next     *assets.Task[*Scene]
	nextPath string
	nextBoss bool
}

// Option configures a Session.
type Option func(*Session)

// WithRules replaces the default progression.
func WithRules(r Rules) Option {
	return func(s *Session) { s.rules = r }
}

// WithLoader sets how scenes are loaded. The default reads from disk.
func WithLoader(l Loader) Option {
	return func(s *Session) { s.loader = l }
}

// WithAudio sets the audio back-end. The default is silent.
func WithAudio(a Audio) Option {
	return func(s *Session) { s.audio = a }
}

// WithStore sets where high scores are saved. Without one nothing is saved.
func WithStore(st storage.Store) Option {
	return func(s *Session) { s.store = st }
}

// WithLogger sets the session and game logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithSeed seeds the playlist shuffle and every game's random source.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = core.NewRng(seed) }
}

// WithCatalog skips the Loading state with an already scanned catalog.
func WithCatalog(c *registry.Catalog) Option {
	return func(s *Session) { s.catalog = c }
}

// New creates a session over the games root. Unless a catalog is given the
// root is scanned in the background while the session is Loading.
func New(root string, opts ...Option) *Session {
	s := &Session{
		root:   root,
		rules:  DefaultRules(),
		loader: FileLoader{},
		audio:  silence{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "weegames",
		})
	}
	if s.rng == nil {
		s.rng = core.NewRng(time.Now().UnixNano())
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	if s.catalog != nil {
		s.root = s.catalog.Root
		s.toMenu()
		return s
	}
	s.state = StateLoading
	s.catalogTask = assets.Preload(s.ctx, func(context.Context) (*registry.Catalog, error) {
		return registry.Scan(root)
	}, nil)
	return s
}

// Close abandons any preload and releases loaded scenes.
func (s *Session) Close() {
	s.cancelNext()
	s.closeScenes()
	s.cancel()
}

// Tick advances the session by one host refresh.
func (s *Session) Tick(now time.Time, in core.InputFrame) {
	if s.pause != nil {
		s.tickPause(now, in)
		return
	}

	switch s.state {
	case StateLoading:
		s.tickLoading()
	case StateMenu:
		s.tickMenu(in)
	case StateModeSelect:
		s.tickModeSelect(in)
	case StatePrelude, StateInterlude, StatePlay, StateGameOver:
		if in.Has(core.ActionPause) {
			s.openPause()
			return
		}
		s.tickScene(now, in.Mouse)
	case StateError:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			s.toMenu()
		}
	case StateFatal:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionQuit) {
			s.setState(StateQuit)
		}
	}
}

func (s *Session) setState(st State) {
	if s.state != st {
		s.logger.Debug("session state", "from", s.state, "to", st)
	}
	s.state = st
}

func (s *Session) tickLoading() {
	if !s.catalogTask.Done() {
		return
	}
	c, err := s.catalogTask.Result()
	s.catalogTask = nil
	if err != nil {
		s.fatal(fmt.Errorf("session: cannot scan %s: %w", s.root, err))
		return
	}
	for _, p := range c.Problems() {
		s.logger.Warn("skipping game", "err", p)
	}
	s.catalog = c
	s.toMenu()
}

func (s *Session) tickMenu(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		s.setState(StateQuit)
		return
	}
	if !s.moveCursor(in) {
		return
	}
	choice := s.menu.Selected()
	if choice == OptionQuit {
		s.setState(StateQuit)
		return
	}
	dir, err := s.catalog.Lookup(choice)
	if err != nil {
		s.fail(err)
		return
	}
	s.dir = dir
	s.menu = MenuView{Title: dir.Name, Options: []string{OptionShuffle, OptionPractice, OptionBack}}
	s.setState(StateModeSelect)
}

func (s *Session) tickModeSelect(in core.InputFrame) {
	if in.Has(core.ActionBack) || in.Has(core.ActionQuit) {
		s.toMenu()
		return
	}
	if !s.moveCursor(in) {
		return
	}
	switch s.menu.Selected() {
	case OptionShuffle:
		s.start(false)
	case OptionPractice:
		s.start(true)
	case OptionBack:
		s.toMenu()
	}
}

// moveCursor applies Up and Down and reports whether Confirm was pressed.
func (s *Session) moveCursor(in core.InputFrame) bool {
	n := len(s.menu.Options)
	if n == 0 {
		return false
	}
	if in.Has(core.ActionUp) {
		s.menu.Cursor = (s.menu.Cursor - 1 + n) % n
	}
	if in.Has(core.ActionDown) {
		s.menu.Cursor = (s.menu.Cursor + 1) % n
	}
	return in.Has(core.ActionConfirm)
}

// start begins a run through the selected directory.
func (s *Session) start(practice bool) {
	if len(s.dir.Games) == 0 {
		s.fail(fmt.Errorf("session: %s has no games", s.dir.Name))
		return
	}
	s.practice = practice
	rules := s.rules
	rules.InfiniteLives = practice
	s.rules = rules
	s.progress = NewProgress(rules)
	s.played = nil
	s.nextUp = nil
	s.lastPath = ""
	s.highScores = storage.HighScores{}

	s.queueNext()
	s.enterSystemScene(StatePrelude, registry.ScenePrelude, 1)
}

func (s *Session) tickScene(now time.Time, mouse core.Mouse) {
	r := s.current
	if r == nil {
		return
	}
	s.handleWorld(r, r.game.Tick(now, mouse))
	if !r.game.Finished() {
		return
	}

	switch s.state {
	case StatePrelude:
		s.enterInterlude()
	case StateInterlude:
		s.finishInterlude()
	case StatePlay:
		s.finishPlay()
	case StateGameOver:
		s.toMenu()
	}
}

func (s *Session) handleWorld(r *running, actions []game.WorldAction) {
	for _, a := range actions {
		switch a.Kind {
		case game.WorldPlaySound:
			buf, err := r.scene.Assets.Sound(a.Name)
			if err != nil {
				s.logger.Warn("cannot play sound", "game", registry.GameName(r.path), "err", err)
				continue
			}
			if err := s.audio.PlaySound(a.Name, buf, r.rate); err != nil {
				s.logger.Warn("cannot play sound", "sound", a.Name, "err", err)
			}
		case game.WorldStopMusic:
			s.audio.StopMusic()
		}
	}
}

// queueNext picks the next game and starts preloading it. It does nothing
// while a preload is outstanding.
func (s *Session) queueNext() {
	if s.next != nil {
		return
	}
	s.nextBoss = s.progress.BossNext(s.rules) && len(s.dir.Bosses) > 0
	if s.nextBoss {
		s.nextPath, _ = core.Choose(s.rng, s.dir.Bosses)
	} else {
		s.nextPath = s.popNextUp()
	}
	path := s.nextPath
	s.next = assets.Preload(s.ctx, func(ctx context.Context) (*Scene, error) {
		return s.loader.Load(ctx, path)
	}, (*Scene).Close)
}

func (s *Session) cancelNext() {
	if s.next != nil {
		s.next.Cancel()
		s.next = nil
	}
}

// fillNextUp tops up the next-up window. A game never directly follows
// itself unless it is the directory's only one.
func (s *Session) fillNextUp() {
	window := max(1, s.rules.NextUpWindow)
	for len(s.nextUp) < window {
		prev := s.lastPath
		if n := len(s.nextUp); n > 0 {
			prev = s.nextUp[n-1]
		}
		candidates := make([]string, 0, len(s.dir.Games))
		for _, g := range s.dir.Games {
			if g != prev {
				candidates = append(candidates, g)
			}
		}
		if len(candidates) == 0 {
			candidates = s.dir.Games
		}
		choice, _ := core.Choose(s.rng, candidates)
		s.nextUp = append(s.nextUp, choice)
	}
}

func (s *Session) popNextUp() string {
	s.fillNextUp()
	path := s.nextUp[0]
	s.nextUp = s.nextUp[1:]
	s.fillNextUp()
	return path
}

func (s *Session) enterInterlude() {
	if !s.progress.GameOver() {
		s.queueNext()
	}
	s.enterSystemScene(StateInterlude, registry.SceneInterlude, s.progress.PlaybackRate)
}

func (s *Session) finishInterlude() {
	if s.progress.GameOver() {
		s.enterGameOver()
		return
	}
	// The interlude holds its last frame until the next game is ready.
	if s.next == nil || !s.next.Done() {
		return
	}
	sc, err := s.next.Result()
	s.next = nil
	if err != nil {
		s.fail(fmt.Errorf("session: cannot load %s: %w", registry.GameName(s.nextPath), err))
		return
	}
	s.enterPlay(sc, s.nextPath, s.nextBoss)
}

func (s *Session) enterPlay(sc *Scene, path string, isBoss bool) {
	rate := s.progress.PlaybackRate
	if isBoss {
		rate = s.progress.BossPlaybackRate
	}
	g, err := game.New(sc.Data, sc.Assets, s.runtimeConfig(rate), game.WithLogger(s.logger))
	if err != nil {
		sc.Close()
		s.fail(fmt.Errorf("session: cannot start %s: %w", registry.GameName(path), err))
		return
	}
	s.closeScenes()
	s.current = &running{scene: sc, game: g, path: path, rate: rate, isBoss: isBoss}
	s.played = append(s.played, filepath.Base(path))
	s.lastPath = path
	s.startMusic(s.current)
	s.setState(StatePlay)
}

func (s *Session) finishPlay() {
	r := s.current
	won := r.game.HasWon()
	s.audio.StopMusic()
	s.progress.Update(s.rules, won, r.isBoss)
	s.logger.Debug("game finished",
		"game", registry.GameName(r.path),
		"won", won,
		"score", s.progress.Score,
		"lives", s.progress.Lives,
	)
	s.enterInterlude()
}

func (s *Session) enterGameOver() {
	if !s.practice && s.store != nil {
		scores, err := storage.Commit(s.store, s.dir.Path, s.progress.Score, s.played)
		if err != nil {
			s.logger.Error("cannot save results", "directory", s.dir.Name, "err", err)
		}
		s.highScores = scores
	}
	s.enterSystemScene(StateGameOver, registry.SceneGameOver, 1)
}

// enterSystemScene loads and starts one of the session's own scenes. A
// scene that cannot be started even from the shared copy is fatal.
func (s *Session) enterSystemScene(st State, name string, rate float64) {
	r, err := s.startSystemScene(name, rate)
	if err != nil {
		s.fatal(err)
		return
	}
	s.audio.StopMusic()
	s.closeScenes()
	s.current = r
	s.startMusic(r)
	s.setState(st)
}

func (s *Session) startSystemScene(name string, rate float64) (*running, error) {
	sc, err := s.loadSystem(name)
	if err != nil {
		return nil, err
	}
	data := sc.Data
	if name != registry.ScenePause {
		if data, err = gamedata.Clone(sc.Data); err != nil {
			sc.Close()
			return nil, err
		}
		replaceText(data, s.placeholders())
	}
	g, err := game.New(data, sc.Assets, s.runtimeConfig(rate), game.WithLogger(s.logger))
	if err != nil {
		sc.Close()
		return nil, fmt.Errorf("session: cannot start %s scene: %w", name, err)
	}
	if name == registry.SceneInterlude {
		for _, obj := range s.interludeSwitches() {
			if o, ok := g.Object(obj); ok {
				o.Switch = gamedata.On
			}
		}
	}
	return &running{scene: sc, game: g, path: sc.Path, rate: rate}, nil
}

// loadSystem tries the directory's copy of a system scene, then the shared
// one under the games root.
func (s *Session) loadSystem(name string) (*Scene, error) {
	if s.dir.Path != "" {
		path := s.dir.SystemScene(name)
		sc, err := s.loader.Load(s.ctx, path)
		if err == nil {
			return sc, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no directory scene", "scene", name, "directory", s.dir.Name)
		} else {
			s.logger.Warn("falling back to shared scene", "scene", name, "err", err)
		}
	}
	path := filepath.Join(s.root, registry.SystemDir, name+".json")
	sc, err := s.loader.Load(s.ctx, path)
	if err != nil {
		return nil, fmt.Errorf("session: cannot load %s scene: %w", name, err)
	}
	return sc, nil
}

func (s *Session) startMusic(r *running) {
	m, err := r.scene.Assets.Music()
	if err != nil {
		return
	}
	if err := s.audio.PlayMusic(m, r.rate); err != nil {
		s.logger.Warn("cannot play music", "music", m.Name, "err", err)
	}
}

func (s *Session) runtimeConfig(rate float64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:         int64(s.rng.IntRange(0, math.MaxInt32)),
		Difficulty:   s.progress.Difficulty,
		PlaybackRate: rate,
	}
}

func (s *Session) openPause() {
	r, err := s.startSystemScene(registry.ScenePause, 1)
	if err != nil {
		s.fatal(err)
		return
	}
	s.audio.PauseMusic()
	s.audio.StopAllSounds()
	s.pause = r
	s.logger.Debug("paused", "state", s.state)
}

func (s *Session) tickPause(now time.Time, in core.InputFrame) {
	p := s.pause
	s.handleWorld(p, p.game.Tick(now, in.Mouse))

	switch {
	case switchedOn(p.game, QuitObject):
		s.toMenu()
	case in.Has(core.ActionPause), switchedOn(p.game, ContinueObject), p.game.Finished():
		s.closePause()
		s.audio.StopAllSounds()
		s.audio.ResumeMusic()
		if s.current != nil {
			s.current.game.Resume(now)
		}
		s.logger.Debug("resumed", "state", s.state)
	}
}

func switchedOn(g *game.Game, name string) bool {
	o, ok := g.Object(name)
	return ok && o.Switch == gamedata.On
}

func (s *Session) closePause() {
	if s.pause != nil {
		s.pause.scene.Close()
		s.pause = nil
	}
}

func (s *Session) closeScenes() {
	s.closePause()
	if s.current != nil {
		s.current.scene.Close()
		s.current = nil
	}
}

// toMenu abandons any run in progress and shows the directory menu.
func (s *Session) toMenu() {
	s.cancelNext()
	s.closeScenes()
	s.audio.StopMusic()
	s.audio.StopAllSounds()
	s.dir = registry.Directory{}
	s.rules.InfiniteLives = false
	var names []string
	if s.catalog != nil {
		names = s.catalog.Names()
	}
	s.menu = MenuView{Title: "weegames", Options: append(names, OptionQuit)}
	s.setState(StateMenu)
}

// fail shows a recoverable error; acknowledging it returns to the menu.
func (s *Session) fail(err error) {
	s.logger.Error("game failed", "err", err)
	s.cancelNext()
	s.closeScenes()
	s.audio.StopMusic()
	s.message = err.Error()
	s.setState(StateError)
}

func (s *Session) fatal(err error) {
	s.logger.Error("fatal", "err", err)
	s.cancelNext()
	s.closeScenes()
	s.audio.StopMusic()
	s.message = err.Error()
	s.setState(StateFatal)
}

// State returns the current screen.
func (s *Session) State() State { return s.state }

// Done reports whether the player has quit.
func (s *Session) Done() bool { return s.state == StateQuit }

// Paused reports whether the pause scene is showing.
func (s *Session) Paused() bool { return s.pause != nil }

// Scene returns the scene to draw: the pause scene while paused, otherwise
// the running scene. It is nil outside scene states.
func (s *Session) Scene() *game.Game {
	if s.pause != nil {
		return s.pause.game
	}
	if s.current != nil {
		return s.current.game
	}
	return nil
}

// Menu returns the menu to draw in the Menu and ModeSelect states.
func (s *Session) Menu() MenuView { return s.menu }

// Message returns the error shown in the Error and Fatal states.
func (s *Session) Message() string { return s.message }

// Progress returns the score, lives and rates of the current run.
func (s *Session) Progress() Progress { return s.progress }

// HighScores returns the directory's top three after a saved game over.
func (s *Session) HighScores() storage.HighScores { return s.highScores }

// Directory returns the directory being played.
func (s *Session) Directory() registry.Directory { return s.dir }

// NextUp returns the names of the upcoming games, soonest first. A boss
// game chosen for the next slot is not listed.
func (s *Session) NextUp() []string {
	names := make([]string, len(s.nextUp))
	for i, p := range s.nextUp {
		names[i] = registry.GameName(p)
	}
	return names
}

// Catalog returns the scanned catalog, or nil while Loading.
func (s *Session) Catalog() *registry.Catalog { return s.catalog }

package desktop

import (
	"context"
	"fmt"
	"image/color"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/game"
	"github.com/vovakirdan/weegames/internal/gamedata"
	"github.com/vovakirdan/weegames/internal/registry"
	"github.com/vovakirdan/weegames/internal/session"
)

// SingleOptions configures a single-game run.
type SingleOptions struct {
	Config core.RuntimeConfig
	// Watch reloads the game when its document or assets change.
	Watch bool
	// Record saves a playthrough of every finished run to this path.
	Record string
	Audio  session.Audio
	Logger *log.Logger
}

// Single plays one microgame over and over, for authoring.
type Single struct {
	path    string
	opts    SingleOptions
	loader  session.Loader
	render  *Renderer
	watcher *Watcher
	logger  *log.Logger
	window  core.Size

	scene *session.Scene
	game  *game.Game
	runs  int
}

// NewSingle loads the game at path.
func NewSingle(path string, opts SingleOptions) (*Single, error) {
	if opts.Config.PlaybackRate <= 0 {
		opts.Config.PlaybackRate = 1
	}
	if opts.Config.Difficulty == 0 {
		opts.Config.Difficulty = core.MinDifficulty
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := &Single{
		path:   path,
		opts:   opts,
		loader: session.FileLoader{},
		render: NewRenderer(),
		logger: opts.Logger.With("game", registry.GameName(path)),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	if opts.Watch {
		w, err := NewWatcher(filepath.Dir(path))
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("desktop: watch %s: %w", path, err)
		}
		s.watcher = w
	}
	return s, nil
}

// load reads the document and its assets and starts a fresh run.
func (s *Single) load() error {
	sc, err := s.loader.Load(context.Background(), s.path)
	if err != nil {
		return err
	}
	old := s.scene
	s.scene = sc
	if err := s.restart(); err != nil {
		sc.Close()
		s.scene = old
		return err
	}
	if old != nil {
		old.Close()
	}
	return nil
}

// restart begins another run of the loaded scene.
func (s *Single) restart() error {
	cfg := s.opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	opts := []game.Option{game.WithLogger(s.logger)}
	if s.opts.Record != "" {
		opts = append(opts, game.WithRecording())
	}
	g, err := game.New(s.scene.Data, s.scene.Assets, cfg, opts...)
	if err != nil {
		return err
	}
	s.game = g
	s.runs++

	if s.opts.Audio != nil {
		s.opts.Audio.StopAllSounds()
		if m, err := s.scene.Assets.Music(); err == nil {
			if err := s.opts.Audio.PlayMusic(m, cfg.PlaybackRate); err != nil {
				s.logger.Warn("cannot play music", "err", err)
			}
		}
	}
	return nil
}

func (s *Single) stopAudio() {
	if s.opts.Audio != nil {
		s.opts.Audio.StopMusic()
		s.opts.Audio.StopAllSounds()
	}
}

// Close releases the watcher and the loaded scene.
func (s *Single) Close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
		s.watcher = nil
	}
	s.stopAudio()
	if s.scene != nil {
		s.scene.Close()
		s.scene = nil
	}
}

// Update runs the frames due this refresh.
func (s *Single) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	s.pollWatcher()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := s.restart(); err != nil {
			s.logger.Error("restart failed", "err", err)
		}
	}

	x, y := ebiten.CursorPosition()
	mouse := cursor(x, y, s.window, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	s.handleWorld(s.game.Tick(time.Now(), mouse))

	if s.game.Finished() {
		s.finish()
	}
	return nil
}

func (s *Single) pollWatcher() {
	if s.watcher == nil {
		return
	}
	select {
	case name, ok := <-s.watcher.Events:
		if !ok {
			return
		}
		s.logger.Info("reloading", "changed", filepath.Base(name))
		if err := s.load(); err != nil {
			// Keep playing the last good version.
			s.logger.Error("reload failed", "err", err)
		}
	case err, ok := <-s.watcher.Errors:
		if ok {
			s.logger.Warn("watch error", "err", err)
		}
	default:
	}
}

func (s *Single) handleWorld(actions []game.WorldAction) {
	if s.opts.Audio == nil {
		return
	}
	for _, a := range actions {
		switch a.Kind {
		case game.WorldPlaySound:
			buf, err := s.scene.Assets.Sound(a.Name)
			if err != nil {
				s.logger.Warn("cannot play sound", "err", err)
				continue
			}
			if err := s.opts.Audio.PlaySound(a.Name, buf, s.opts.Config.PlaybackRate); err != nil {
				s.logger.Warn("cannot play sound", "sound", a.Name, "err", err)
			}
		case game.WorldStopMusic:
			s.opts.Audio.StopMusic()
		}
	}
}

// finish logs the outcome, saves the recording and starts over.
func (s *Single) finish() {
	s.logger.Info("finished", "run", s.runs, "won", s.game.Status().HasBeenWon, "frames", s.game.Frames().Ran)
	if s.opts.Record != "" {
		if err := gamedata.SavePlaythrough(s.opts.Record, s.game.Playthrough(s.path)); err != nil {
			s.logger.Error("cannot save playthrough", "err", err)
		} else {
			s.logger.Info("saved playthrough", "path", s.opts.Record)
		}
	}
	if err := s.restart(); err != nil {
		s.logger.Error("restart failed", "err", err)
	}
}

// Draw renders the running game.
func (s *Single) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	s.window = core.Size{W: float32(b.Dx()), H: float32(b.Dy())}
	screen.Fill(color.Black)
	s.render.Draw(screen, s.game.DrawList(), s.game.Assets())
}

// Layout uses the window size as the screen size.
func (s *Single) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// RunGame opens a window playing the game at path until Escape or Q.
func RunGame(path string, opts SingleOptions, window WindowOptions) error {
	s, err := NewSingle(path, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	if window.Title == "" {
		window.Title = "Weegames - " + registry.GameName(path)
	}
	window.apply()
	if err := ebiten.RunGame(s); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/weegames/internal/platform/desktop"
	"github.com/vovakirdan/weegames/internal/platform/tui"
)

var flagFullscreen bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a desktop window",
	Long: `Open the weegames menu in a desktop window.

Controls:
  Mouse      - Play microgames
  Up/Down    - Navigate menus
  Enter      - Select
  P/Esc      - Pause (configurable under keys.pause_desktop)
  B          - Back
  Q          - Quit

Examples:
  weegames play
  weegames play --games ./games --fullscreen
  weegames play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Open the weegames menu in the terminal. Each character cell is drawn
as two pixels of the playfield and the mouse is read from the terminal.

Controls:
  Mouse      - Play microgames
  Up/Down    - Navigate menus
  Enter      - Select
  P/Esc      - Pause (configurable under keys.pause_terminal)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	Run:  runTerm,
}

func init() {
	playCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	keys, err := desktop.NewBindings(cfg.Keys.PauseDesktop)
	if err != nil {
		fail("%v", err)
	}

	s, cleanup := newSession(cfg, logger)
	window := desktop.WindowOptions{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen || flagFullscreen,
	}
	runErr := desktop.Run(s, keys, window, logger)

	// Close the session and store before a potential exit
	cleanup()
	if runErr != nil {
		fail("%v", runErr)
	}
}

func runTerm(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	// Get terminal size early; the first resize message replaces it.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Log lines would tear the alternate screen, so they go to a file.
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logger.SetOutput(f)
	} else {
		logger.SetOutput(io.Discard)
	}

	s, cleanup := newSession(cfg, logger)
	runErr := tui.Run(s, tui.NewKeyMapper(cfg.Keys.PauseTerminal), width, height)

	cleanup()
	if runErr != nil {
		fail("%v", runErr)
	}
}

// openLogFile opens ~/.weegames/weegames.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".weegames")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "weegames.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

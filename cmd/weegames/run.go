package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/weegames/internal/assets"
	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/game"
	"github.com/vovakirdan/weegames/internal/gamedata"
	"github.com/vovakirdan/weegames/internal/platform/desktop"
)

var (
	flagWatch      bool
	flagRecord     string
	flagDifficulty uint32
	flagPlayback   float64
)

var runCmd = &cobra.Command{
	Use:   "run <game.json>",
	Short: "Play one microgame over and over",
	Long: `Play a single microgame in a desktop window, restarting it each time it
finishes. Meant for authoring games.

Controls:
  Mouse      - Play
  R          - Restart
  Esc/Q      - Quit

Examples:
  weegames run games/yellow/catch.json
  weegames run games/yellow/catch.json --watch
  weegames run games/yellow/catch.json --difficulty 3 --playback 1.5
  weegames run games/yellow/catch.json --seed 7 --record catch.rec`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

var replayCmd = &cobra.Command{
	Use:   "replay <record>",
	Short: "Check a recorded playthrough",
	Long: `Re-run a playthrough recorded with 'weegames run --record' against the
current version of its game, without a window, and report whether the
outcome is unchanged. Exits with status 1 on a mismatch.`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	runCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the game when its files change")
	runCmd.Flags().StringVar(&flagRecord, "record", "", "Save a playthrough of each finished run to this file")
	runCmd.Flags().Uint32Var(&flagDifficulty, "difficulty", core.MinDifficulty, "Difficulty level (1-3)")
	runCmd.Flags().Float64Var(&flagPlayback, "playback", 1, "Playback rate (1 = normal speed)")
}

func runRun(cmd *cobra.Command, args []string) {
	path := args[0]
	if flagDifficulty < core.MinDifficulty || flagDifficulty > core.MaxDifficulty {
		fail("difficulty %d is outside %d..%d", flagDifficulty, core.MinDifficulty, core.MaxDifficulty)
	}
	if flagPlayback <= 0 {
		fail("playback rate must be positive")
	}

	cfg := loadConfig()
	logger := newLogger(cfg)
	if flagPlayback > cfg.Session.MaxPlaybackRate {
		logger.Warn("playback rate clamped", "requested", flagPlayback, "max", cfg.Session.MaxPlaybackRate)
		flagPlayback = cfg.Session.MaxPlaybackRate
	}
	player := startAudio(cfg, logger)

	opts := desktop.SingleOptions{
		Config: core.RuntimeConfig{
			Seed:         flagSeed,
			Difficulty:   flagDifficulty,
			PlaybackRate: flagPlayback,
		},
		Watch:  flagWatch,
		Record: flagRecord,
		Logger: logger,
	}
	if player != nil {
		opts.Audio = player
	}
	window := desktop.WindowOptions{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
	}

	runErr := desktop.RunGame(path, opts, window)
	if player != nil {
		player.Close()
	}
	if runErr != nil {
		fail("%v", runErr)
	}
}

func runReplay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	p, err := gamedata.LoadPlaythrough(args[0])
	if err != nil {
		fail("%v", err)
	}
	data, err := gamedata.Load(p.Path)
	if err != nil {
		fail("%v", err)
	}
	a, err := assets.Load(context.Background(), filepath.Dir(p.Path), data.AssetFiles)
	if err != nil {
		fail("%v", err)
	}
	defer a.Close()

	same, err := game.Replay(data, a, p, game.WithLogger(logger))
	if err != nil {
		a.Close()
		fail("%v", err)
	}

	outcome := "lost"
	if p.HasBeenWon {
		outcome = "won"
	}
	if !same {
		fmt.Printf("MISMATCH: %s was recorded as %s over %d frames (seed %d, difficulty %d)\n",
			p.Path, outcome, len(p.Inputs), p.Seed, p.Difficulty)
		a.Close()
		os.Exit(1)
	}
	fmt.Printf("OK: %s %s again over %d frames\n", p.Path, outcome, len(p.Inputs))
}

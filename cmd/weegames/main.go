// weegames plays directories of microgames, either in a desktop window or
// in the terminal, and provides tools for authoring them.
//
// Usage:
//
//	weegames play                - Play in a desktop window
//	weegames term                - Play in the terminal
//	weegames run <game.json>     - Play one microgame over and over
//	weegames replay <record>     - Check a recorded playthrough
//	weegames list                - List games directories
//	weegames scores [directory]  - Show high scores
//	weegames bundle              - Package every microgame into one file
//	weegames attribution         - Print the attributions of every game
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search order)
//	--games <path>      - Games root (overrides the config)
//	--seed <value>      - RNG seed for reproducible sessions
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/weegames/internal/audio"
	"github.com/vovakirdan/weegames/internal/config"
	"github.com/vovakirdan/weegames/internal/registry"
	"github.com/vovakirdan/weegames/internal/session"
	"github.com/vovakirdan/weegames/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagGames    string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "weegames",
	Short: "Weegames - fast microgames, one after another",
	Long: `Weegames plays directories of five-second microgames back to back,
speeding up as you win and ending when you run out of lives.

Available commands:
  play         - Play in a desktop window
  term         - Play in the terminal
  run          - Play one microgame, for authoring
  replay       - Check a recorded playthrough
  list         - Show games directories
  scores       - View high scores
  bundle       - Package all microgames into one file
  attribution  - Print game attributions

Examples:
  weegames play
  weegames term --games ./games
  weegames run games/yellow/catch.json --watch
  weegames scores yellow`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagGames, "games", "", "Games root directory (overrides the config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bundleCmd)
	rootCmd.AddCommand(attributionCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the configuration and applies the global flags.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagGames != "" {
		cfg.Games.Root = flagGames
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// newLogger builds the logger every package shares.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "weegames",
	})
	if cfg.Log.Level != "" {
		level, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			fail("invalid log level %q", cfg.Log.Level)
		}
		logger.SetLevel(level)
	}
	return logger
}

// openStore opens the configured store. A store that cannot be opened only
// costs high scores, so the caller continues without one.
func openStore(cfg config.Config, logger *log.Logger) storage.Store {
	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open score storage", "backend", cfg.Storage.Backend, "err", err)
		return nil
	}
	return store
}

// startAudio opens the audio device. It returns nil when audio is disabled
// or the device is unavailable.
func startAudio(cfg config.Config, logger *log.Logger) *audio.Player {
	if !cfg.Audio.Enabled {
		return nil
	}
	p := audio.New(audio.Options{
		SampleRate:  cfg.Audio.SampleRate,
		MusicVolume: cfg.Audio.MusicVolume,
		SoundVolume: cfg.Audio.SoundVolume,
	})
	if err := p.Start(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return nil
	}
	return p
}

// scanGames scans the games root, logging documents that failed to load.
func scanGames(cfg config.Config, logger *log.Logger) *registry.Catalog {
	catalog, err := registry.Scan(cfg.Games.Root)
	if err != nil {
		fail("%v", err)
	}
	for _, p := range catalog.Problems() {
		logger.Warn("skipped game", "err", p)
	}
	return catalog
}

// newSession builds a session from the configuration. The returned cleanup
// closes the session, the store and the audio player.
func newSession(cfg config.Config, logger *log.Logger) (*session.Session, func()) {
	opts := []session.Option{
		session.WithLogger(logger),
		session.WithRules(cfg.Session.Rules()),
	}
	if flagSeed != 0 {
		opts = append(opts, session.WithSeed(flagSeed))
	}

	store := openStore(cfg, logger)
	if store != nil {
		opts = append(opts, session.WithStore(store))
	}
	player := startAudio(cfg, logger)
	if player != nil {
		opts = append(opts, session.WithAudio(player))
	}

	s := session.New(cfg.Games.Root, opts...)
	return s, func() {
		s.Close()
		if player != nil {
			player.Close()
		}
		if store != nil {
			store.Close()
		}
	}
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/weegames/internal/platform/tui"
	"github.com/vovakirdan/weegames/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [directory]",
	Short: "Show high scores",
	Long: `Browse the high scores of every games directory, or of just one.

Examples:
  weegames scores
  weegames scores yellow
  weegames scores yellow --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Forget the directory's high scores and played games")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	catalog := scanGames(cfg, logger)

	var dirs []tui.ScoreboardDir
	if len(args) == 1 {
		d, err := catalog.Lookup(args[0])
		if err != nil {
			fail("unknown directory %q\nRun 'weegames list' to see available directories.", args[0])
		}
		dirs = append(dirs, tui.ScoreboardDir{Name: d.Name, Path: d.Path})
	} else {
		for _, name := range catalog.Names() {
			d, err := catalog.Lookup(name)
			if err != nil {
				continue
			}
			dirs = append(dirs, tui.ScoreboardDir{Name: d.Name, Path: d.Path})
		}
	}

	store := openStore(cfg, logger)
	if store == nil {
		fail("cannot open score storage")
	}

	if flagClear {
		if len(args) == 0 {
			store.Close()
			fail("--clear needs a directory")
		}
		c, ok := store.(storage.Clearer)
		if !ok {
			store.Close()
			fail("the %s storage backend cannot clear scores", cfg.Storage.Backend)
		}
		err := c.ClearScores(dirs[0].Path)
		store.Close()
		if err != nil {
			fail("%v", err)
		}
		logger.Info("scores cleared", "directory", dirs[0].Name)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	_, runErr := tui.RunScoreboard(dirs, store, width, height)
	store.Close()
	if runErr != nil {
		fail("%v", runErr)
	}
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/weegames/internal/gamedata"
	"github.com/vovakirdan/weegames/internal/registry"
)

var flagBundleOut string

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Package all microgames into one file",
	Long: `Write every microgame and boss under the games root into a single JSON
file, keyed by path relative to the root.

Examples:
  weegames bundle
  weegames bundle --out dist/all-games.json`,
	Args: cobra.NoArgs,
	Run:  runBundle,
}

var attributionCmd = &cobra.Command{
	Use:   "attribution",
	Short: "Print game attributions",
	Long:  `Print the attribution text of every game that has one.`,
	Args:  cobra.NoArgs,
	Run:   runAttribution,
}

func init() {
	bundleCmd.Flags().StringVar(&flagBundleOut, "out", "all-games.json", "Output file")
}

// buildBundle loads every game in the catalog into a bundle.
func buildBundle(catalog *registry.Catalog) (*gamedata.Bundle, error) {
	b := gamedata.NewBundle()
	for _, path := range catalog.AllGames() {
		g, err := gamedata.Load(path)
		if err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(catalog.Root, path)
		if err != nil {
			rel = path
		}
		b.Add(filepath.ToSlash(rel), g)
	}
	return b, nil
}

func runBundle(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	catalog := scanGames(cfg, logger)

	b, err := buildBundle(catalog)
	if err != nil {
		fail("%v", err)
	}

	f, err := os.Create(flagBundleOut)
	if err != nil {
		fail("%v", err)
	}
	w := bufio.NewWriter(f)
	if err := b.Write(w); err != nil {
		f.Close()
		fail("write bundle: %v", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		fail("write bundle: %v", err)
	}
	if err := f.Close(); err != nil {
		fail("%v", err)
	}
	logger.Info("bundle written", "path", flagBundleOut, "games", len(b.Games))
}

func runAttribution(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	catalog := scanGames(cfg, logger)

	b, err := buildBundle(catalog)
	if err != nil {
		fail("%v", err)
	}
	text := b.Attributions()
	if text == "" {
		fmt.Println("No attributions.")
		return
	}
	fmt.Println(text)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/weegames/internal/registry"
)

var flagListPaths bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games directories",
	Long:  `Shows every games directory under the games root with its microgames and bosses.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListPaths, "paths", false, "Print only game document paths, one per line")
}

func runList(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	catalog := scanGames(cfg, logger)

	if flagListPaths {
		for _, path := range catalog.AllGames() {
			fmt.Println(path)
		}
		return
	}

	dirs := catalog.List()
	fmt.Printf("Games directories in %s:\n", catalog.Root)
	fmt.Println()

	// Calculate column widths
	maxNameLen := 9 // "Directory" header
	for _, d := range dirs {
		if len(d.Name) > maxNameLen {
			maxNameLen = len(d.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %5s  %6s\n", maxNameLen, "Directory", "Games", "Bosses")
	fmt.Printf("  %-*s  %5s  %6s\n", maxNameLen, "---------", "-----", "------")

	for _, info := range dirs {
		fmt.Printf("  %-*s  %5d  %6d\n", maxNameLen, info.Name, info.Games, info.Bosses)
		d, err := catalog.Lookup(info.Name)
		if err != nil {
			continue
		}
		for _, g := range d.Games {
			fmt.Printf("      %s\n", registry.GameName(g))
		}
		for _, b := range d.Bosses {
			fmt.Printf("      %s (boss)\n", registry.GameName(b))
		}
	}

	fmt.Println()
	fmt.Println("Run 'weegames play' or 'weegames term' to play.")
}

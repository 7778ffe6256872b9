package registry

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/gamedata"
)

func writeGame(t *testing.T, path string, kind gamedata.GameType) {
	t.Helper()
	g := &gamedata.GameData{
		GameType: kind,
		Length:   gamedata.Seconds(4),
		Objects: []gamedata.Object{{
			Name:   "Thing",
			Sprite: gamedata.Colour(core.Red),
			Size:   core.Size{W: 10, H: 10},
		}},
	}
	if err := gamedata.Save(path, g); err != nil {
		t.Fatal(err)
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeGame(t, filepath.Join(root, "yellow", "b.json"), gamedata.Minigame)
	writeGame(t, filepath.Join(root, "yellow", "a.json"), gamedata.Minigame)
	writeGame(t, filepath.Join(root, "yellow", "boss.json"), gamedata.BossGame)
	writeGame(t, filepath.Join(root, "green", "only.json"), gamedata.Minigame)
	writeGame(t, filepath.Join(root, "system", "interlude.json"), gamedata.Other)
	if err := os.WriteFile(filepath.Join(root, "green", "broken.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0755); err != nil {
		t.Fatal(err)
	}

	c, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	expected := []DirectoryInfo{
		{Name: "green", Games: 1},
		{Name: "yellow", Games: 2, Bosses: 1},
	}
	if got := c.List(); !reflect.DeepEqual(got, expected) {
		t.Errorf("List() = %+v, expected %+v", got, expected)
	}

	yellow, err := c.Lookup("yellow")
	if err != nil {
		t.Fatal(err)
	}
	if yellow.Games[0] != filepath.Join(root, "yellow", "a.json") {
		t.Errorf("games not sorted: %v", yellow.Games)
	}
	if len(c.Problems()) != 1 {
		t.Errorf("Problems() = %v, expected the broken document", c.Problems())
	}
	if c.Exists("system") || c.Exists("empty") {
		t.Error("system or empty directory listed as playable")
	}
	if got := len(c.AllGames()); got != 4 {
		t.Errorf("AllGames() has %d entries, expected 4", got)
	}
}

func TestScanEmptyRoot(t *testing.T) {
	if _, err := Scan(t.TempDir()); !errors.Is(err, ErrNoDirectories) {
		t.Errorf("Scan() error = %v, expected ErrNoDirectories", err)
	}
}

func TestSystemScenePaths(t *testing.T) {
	c := &Catalog{Root: "games"}
	d := Directory{Name: "yellow", Path: filepath.Join("games", "yellow")}

	if got := c.SystemScene(SceneInterlude); got != filepath.Join("games", "system", "interlude.json") {
		t.Errorf("SystemScene() = %q", got)
	}
	if got := d.SystemScene(ScenePause); got != filepath.Join("games", "yellow", "system", "pause.json") {
		t.Errorf("Directory.SystemScene() = %q", got)
	}
	if got := GameName("games/yellow/catch-the-cat.json"); got != "catch-the-cat" {
		t.Errorf("GameName() = %q", got)
	}
}

func TestLookupUnknown(t *testing.T) {
	c := &Catalog{}
	if _, err := c.Lookup("nope"); err == nil {
		t.Error("Lookup() of an unknown directory succeeded")
	}
}

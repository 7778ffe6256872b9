// Package registry catalogs the games directories under a games root.
// Each subdirectory holds microgame and boss game documents; the "system"
// directory holds the shared session scenes (prelude, interlude, pause,
// game over) that directories may override with their own system/ folder.
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/weegames/internal/gamedata"
)

// SystemDir is the name of the shared system scene directory.
const SystemDir = "system"

// System scene names.
const (
	ScenePrelude   = "prelude"
	SceneInterlude = "interlude"
	SceneGameOver  = "game-over"
	ScenePause     = "pause"
)

// Directory is one playable games directory.
type Directory struct {
	Name string
	Path string
	// Games and Bosses are document paths, sorted.
	Games  []string
	Bosses []string
}

// SystemScene returns the directory's own copy of a system scene.
func (d Directory) SystemScene(name string) string {
	return filepath.Join(d.Path, SystemDir, name+".json")
}

// GameName returns the display name of a game document path.
func GameName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// DirectoryInfo contains summary metadata about a directory.
type DirectoryInfo struct {
	Name   string
	Games  int
	Bosses int
}

// Catalog is the set of directories found under a games root.
type Catalog struct {
	Root string

	mu   sync.RWMutex
	dirs map[string]Directory
	// Problems lists documents that were skipped because they failed to load.
	problems []error
}

// ErrNoDirectories is returned by Scan when the root holds nothing playable.
var ErrNoDirectories = errors.New("registry: no games directories")

// Scan builds a catalog from root. Documents that fail to load are recorded
// in Problems and skipped.
func Scan(root string) (*Catalog, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot read games root: %w", err)
	}

	c := &Catalog{Root: root, dirs: make(map[string]Directory)}
	for _, e := range entries {
		if !e.IsDir() || e.Name() == SystemDir || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		d, problems := scanDirectory(filepath.Join(root, e.Name()))
		c.problems = append(c.problems, problems...)
		if len(d.Games) > 0 || len(d.Bosses) > 0 {
			c.Add(d)
		}
	}
	if len(c.dirs) == 0 {
		return c, ErrNoDirectories
	}
	return c, nil
}

func scanDirectory(path string) (Directory, []error) {
	d := Directory{Name: filepath.Base(path), Path: path}
	files, err := filepath.Glob(filepath.Join(path, "*.json"))
	if err != nil {
		return d, []error{err}
	}
	sort.Strings(files)

	var problems []error
	for _, f := range files {
		data, err := gamedata.Load(f)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		switch data.GameType {
		case gamedata.Minigame:
			d.Games = append(d.Games, f)
		case gamedata.BossGame:
			d.Bosses = append(d.Bosses, f)
		}
	}
	return d, problems
}

// Add registers a directory, replacing any with the same name.
func (c *Catalog) Add(d Directory) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dirs == nil {
		c.dirs = make(map[string]Directory)
	}
	c.dirs[d.Name] = d
}

// List returns information about all directories, sorted by name.
func (c *Catalog) List() []DirectoryInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]DirectoryInfo, 0, len(c.dirs))
	for _, d := range c.dirs {
		result = append(result, DirectoryInfo{
			Name:   d.Name,
			Games:  len(d.Games),
			Bosses: len(d.Bosses),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Names returns the directory names, sorted.
func (c *Catalog) Names() []string {
	infos := c.List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

// Lookup returns a directory by name.
func (c *Catalog) Lookup(name string) (Directory, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.dirs[name]
	if !ok {
		return Directory{}, fmt.Errorf("registry: unknown directory %q", name)
	}
	return d, nil
}

// Exists checks if a directory with the given name is registered.
func (c *Catalog) Exists(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.dirs[name]
	return ok
}

// SystemScene returns the shared copy of a system scene.
func (c *Catalog) SystemScene(name string) string {
	return filepath.Join(c.Root, SystemDir, name+".json")
}

// Problems returns the load errors met while scanning.
func (c *Catalog) Problems() []error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]error(nil), c.problems...)
}

// AllGames returns every game and boss document path in the catalog, sorted.
func (c *Catalog) AllGames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []string
	for _, d := range c.dirs {
		out = append(out, d.Games...)
		out = append(out, d.Bosses...)
	}
	sort.Strings(out)
	return out
}

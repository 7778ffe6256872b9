package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/weegames/internal/gamedata"
)

// LoadError reports a file that could not be read or decoded.
type LoadError struct {
	Kind Kind
	Name string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("assets: load %s %q from %s: %v", e.Kind, e.Name, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load decodes every file a document lists. Paths are relative to baseDir.
// Cancelling ctx stops between files; anything loaded so far is released.
func Load(ctx context.Context, baseDir string, files gamedata.AssetFiles) (*Assets, error) {
	a := New()
	if err := load(ctx, a, baseDir, files); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func load(ctx context.Context, a *Assets, baseDir string, files gamedata.AssetFiles) error {
	for _, name := range sortedKeys(files.Images) {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(baseDir, files.Images[name])
		img, err := loadImage(path)
		if err != nil {
			return &LoadError{Kind: KindImage, Name: name, Path: path, Err: err}
		}
		a.AddImage(name, img)
	}

	for _, name := range sortedKeys(files.Audio) {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(baseDir, files.Audio[name])
		buf, err := loadSound(path)
		if err != nil {
			return &LoadError{Kind: KindSound, Name: name, Path: path, Err: err}
		}
		a.AddSound(name, buf)
	}

	for _, name := range sortedKeys(files.Fonts) {
		if err := ctx.Err(); err != nil {
			return err
		}
		info := files.Fonts[name]
		path := filepath.Join(baseDir, info.Filename)
		face, err := loadFont(path, float64(info.Size))
		if err != nil {
			return &LoadError{Kind: KindFont, Name: name, Path: path, Err: err}
		}
		a.AddFont(name, face)
	}

	if m := files.Music; m != nil {
		path := filepath.Join(baseDir, m.Filename)
		if _, err := os.Stat(path); err != nil {
			return &LoadError{Kind: KindMusic, Name: m.Filename, Path: path, Err: err}
		}
		a.SetMusic(&Music{Name: m.Filename, Path: path, Looped: m.Looped})
	}
	return ctx.Err()
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// loadSound decodes a WAV file fully into memory so it can be replayed and
// overlapped freely.
func loadSound(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

func loadFont(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = defaultFontSize
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

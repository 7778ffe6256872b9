// Package assets holds the decoded images, sounds, fonts and music a scene
// refers to by name. An Assets value is read-only while a scene runs.
package assets

import (
	"fmt"
	"image"
	"sync"

	"github.com/gopxl/beep"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/weegames/internal/core"
)

// Kind names an asset category in errors.
type Kind string

const (
	KindImage Kind = "image"
	KindSound Kind = "sound"
	KindFont  Kind = "font"
	KindMusic Kind = "music"
)

// DefaultFont is always available, backed by Go Regular.
const DefaultFont = "default"

const defaultFontSize = 40

// MissingAssetError reports a lookup of an unregistered name.
type MissingAssetError struct {
	Kind Kind
	Name string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("missing %s %q", e.Kind, e.Name)
}

// Image is a decoded image and its average colour, which text-mode hosts
// paint in place of the pixels.
type Image struct {
	Img     image.Image
	Average core.Colour
}

// Music is the scene's background track. It is streamed by the audio
// back-end rather than decoded up front.
type Music struct {
	Name   string
	Path   string
	Looped bool
}

// Assets is a name → asset registry.
type Assets struct {
	images map[string]Image
	sounds map[string]*beep.Buffer
	fonts  map[string]font.Face
	music  *Music

	closeOnce sync.Once
}

// New creates an empty registry.
func New() *Assets {
	return &Assets{
		images: make(map[string]Image),
		sounds: make(map[string]*beep.Buffer),
		fonts:  make(map[string]font.Face),
	}
}

// AddImage registers an image and computes its average colour.
func (a *Assets) AddImage(name string, img image.Image) {
	a.images[name] = Image{Img: img, Average: AverageColour(img)}
}

// AddSound registers a decoded sound.
func (a *Assets) AddSound(name string, buf *beep.Buffer) {
	a.sounds[name] = buf
}

// AddFont registers a font face. The registry takes ownership.
func (a *Assets) AddFont(name string, face font.Face) {
	a.fonts[name] = face
}

// SetMusic registers the background track.
func (a *Assets) SetMusic(m *Music) {
	a.music = m
}

// Image looks up an image.
func (a *Assets) Image(name string) (Image, error) {
	img, ok := a.images[name]
	if !ok {
		return Image{}, &MissingAssetError{Kind: KindImage, Name: name}
	}
	return img, nil
}

// Sound looks up a sound.
func (a *Assets) Sound(name string) (*beep.Buffer, error) {
	s, ok := a.sounds[name]
	if !ok {
		return nil, &MissingAssetError{Kind: KindSound, Name: name}
	}
	return s, nil
}

// HasSound reports whether name is registered.
func (a *Assets) HasSound(name string) bool {
	_, ok := a.sounds[name]
	return ok
}

// Font looks up a font face. DefaultFont resolves even when not loaded.
func (a *Assets) Font(name string) (font.Face, error) {
	if f, ok := a.fonts[name]; ok {
		return f, nil
	}
	if name == DefaultFont {
		f, err := goRegular(defaultFontSize)
		if err != nil {
			return nil, err
		}
		a.fonts[name] = f
		return f, nil
	}
	return nil, &MissingAssetError{Kind: KindFont, Name: name}
}

// Music returns the background track.
func (a *Assets) Music() (*Music, error) {
	if a.music == nil {
		return nil, &MissingAssetError{Kind: KindMusic, Name: "music"}
	}
	return a.music, nil
}

// HasMusic reports whether a background track is registered.
func (a *Assets) HasMusic() bool {
	return a.music != nil
}

// MeasureText returns the extent of text in the named font.
func (a *Assets) MeasureText(fontName, text string) (core.Size, error) {
	face, err := a.Font(fontName)
	if err != nil {
		return core.Size{}, err
	}
	return Measure(face, text), nil
}

// Measure returns the advance width and line height of text.
func Measure(face font.Face, text string) core.Size {
	w := font.MeasureString(face, text)
	h := face.Metrics().Height
	return core.Size{W: i26ToF(w), H: i26ToF(h)}
}

func i26ToF(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Close releases font faces. It is safe to call more than once.
func (a *Assets) Close() error {
	var first error
	a.closeOnce.Do(func() {
		for name, f := range a.fonts {
			if err := f.Close(); err != nil && first == nil {
				first = fmt.Errorf("assets: close font %q: %w", name, err)
			}
		}
	})
	return first
}

var (
	goRegularOnce sync.Once
	goRegularFont *opentype.Font
	goRegularErr  error
)

func goRegular(size float64) (font.Face, error) {
	goRegularOnce.Do(func() {
		goRegularFont, goRegularErr = opentype.Parse(goregular.TTF)
	})
	if goRegularErr != nil {
		return nil, fmt.Errorf("assets: parse default font: %w", goRegularErr)
	}
	return opentype.NewFace(goRegularFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// AverageColour returns the mean colour of an image, weighting by alpha.
func AverageColour(img image.Image) core.Colour {
	b := img.Bounds()
	if b.Empty() {
		return core.Colour{}
	}
	// Sample at most 64×64 points.
	stepX := max(1, b.Dx()/64)
	stepY := max(1, b.Dy()/64)

	var r, g, bl, al, n float64
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			c := core.FromColor(img.At(x, y))
			r += float64(c.R * c.A)
			g += float64(c.G * c.A)
			bl += float64(c.B * c.A)
			al += float64(c.A)
			n++
		}
	}
	if al == 0 {
		return core.Colour{}
	}
	return core.Colour{
		R: float32(r / al),
		G: float32(g / al),
		B: float32(bl / al),
		A: float32(al / n),
	}
}

package gamedata

import (
	"encoding/json"

	"github.com/vovakirdan/weegames/internal/core"
)

// SpriteKind distinguishes image sprites from flat colour rectangles.
type SpriteKind int

const (
	SpriteImage SpriteKind = iota
	SpriteColour
)

// Sprite is either a named image or a colour.
type Sprite struct {
	Kind   SpriteKind
	Name   string      // SpriteImage
	Colour core.Colour // SpriteColour
}

// Image returns an image sprite.
func Image(name string) Sprite {
	return Sprite{Kind: SpriteImage, Name: name}
}

// Colour returns a colour sprite.
func Colour(c core.Colour) Sprite {
	return Sprite{Kind: SpriteColour, Colour: c}
}

type nameContent struct {
	Name string `json:"name"`
}

func (s Sprite) MarshalJSON() ([]byte, error) {
	if s.Kind == SpriteColour {
		return tagged("Colour", s.Colour)
	}
	return tagged("Image", nameContent{s.Name})
}

func (s *Sprite) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Image":
		var n nameContent
		if err := strict(content, &n); err != nil {
			return err
		}
		*s = Image(n.Name)
	case "Colour":
		var c core.Colour
		if err := strict(content, &c); err != nil {
			return err
		}
		*s = Colour(c)
	default:
		return unknownVariant("sprite", tag)
	}
	return nil
}

// Length is a scene length: finite seconds or infinite.
type Length struct {
	Infinite bool
	Seconds  float32
}

// Seconds returns a finite length.
func Seconds(s float32) Length {
	return Length{Seconds: s}
}

// InfiniteLength never ends on its own.
var InfiniteLength = Length{Infinite: true}

// Frames converts the length to 60 Hz frames. ok is false when infinite.
func (l Length) Frames() (n uint32, ok bool) {
	if l.Infinite {
		return 0, false
	}
	return uint32(l.Seconds*core.FPS + 0.5), true
}

func (l Length) MarshalJSON() ([]byte, error) {
	if l.Infinite {
		return unit("Infinite")
	}
	return tagged("Seconds", l.Seconds)
}

func (l *Length) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "Infinite":
		*l = InfiniteLength
		return noContent("length", tag, content)
	case "Seconds":
		var s float32
		if err := strict(content, &s); err != nil {
			return err
		}
		*l = Seconds(s)
		return nil
	}
	return unknownVariant("length", tag)
}

// SpeedKind names a speed tier or an explicit value.
type SpeedKind int

const (
	VerySlow SpeedKind = iota
	Slow
	Normal
	Fast
	VeryFast
	SpeedValue
)

var speedNames = []string{"VerySlow", "Slow", "Normal", "Fast", "VeryFast", "Value"}

// Speed is used by motions (units per frame) and animations
// (frames per sprite), each of which resolves the tiers with its own table.
type Speed struct {
	Kind  SpeedKind
	Value float32 // SpeedValue
}

// SpeedOf returns a named tier.
func SpeedOf(k SpeedKind) Speed { return Speed{Kind: k} }

// SpeedOfValue returns an explicit speed.
func SpeedOfValue(v float32) Speed { return Speed{Kind: SpeedValue, Value: v} }

func (s Speed) MarshalJSON() ([]byte, error) {
	if s.Kind == SpeedValue {
		return tagged("Value", s.Value)
	}
	b, err := enumText(speedNames, "speed", int(s.Kind))
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(b))
}

func (s *Speed) UnmarshalJSON(data []byte) error {
	tag, content, err := splitTagged(data)
	if err != nil {
		return err
	}
	if tag == "Value" {
		var v float32
		if err := strict(content, &v); err != nil {
			return err
		}
		*s = SpeedOfValue(v)
		return nil
	}
	var k SpeedKind
	if err := parseEnum(speedNames[:SpeedValue], "speed", []byte(tag), &k); err != nil {
		return err
	}
	*s = SpeedOf(k)
	return noContent("speed", tag, content)
}

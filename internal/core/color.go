package core

import "image/color"

// Colour is an RGBA colour with components in [0, 1].
type Colour struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// Predefined colours used by system scenes and hosts.
var (
	Black = Colour{0, 0, 0, 1}
	White = Colour{1, 1, 1, 1}
	Red   = Colour{1, 0, 0, 1}
	Green = Colour{0, 1, 0, 1}
	Blue  = Colour{0, 0, 1, 1}
)

// RGB creates an opaque colour.
func RGB(r, g, b float32) Colour {
	return Colour{R: r, G: g, B: b, A: 1}
}

// RGBA converts the colour to a non-premultiplied 8-bit colour.
func (c Colour) RGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// FromColor converts any image colour to a Colour.
func FromColor(c color.Color) Colour {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Colour{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

func to8(v float32) uint8 {
	return uint8(ClampF(v, 0, 1)*255 + 0.5)
}

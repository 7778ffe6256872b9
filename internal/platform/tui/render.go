package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/weegames/internal/assets"
	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/game"
	"github.com/vovakirdan/weegames/internal/gamedata"
)

type cellColours struct {
	fg, bg core.Colour
}

// styleCache maps cell colours to lipgloss styles.
type styleCache map[cellColours]lipgloss.Style

func (c styleCache) style(fg, bg core.Colour) lipgloss.Style {
	key := cellColours{fg, bg}
	if st, ok := c[key]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(fg))).
		Background(lipgloss.Color(hex(bg)))
	c[key] = st
	return st
}

func hex(c core.Colour) string {
	n := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styles.style(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}

// Rasterise paints a draw list into the screen, letterboxed to the
// terminal. Images are painted with their average colour and rotated
// objects are sampled cell by cell.
func Rasterise(s *core.Screen, dl game.DrawList, a *assets.Assets) {
	s.Clear()
	vp := core.Letterbox(cellWindow(s.Width(), s.Height()))

	fillRect(s, vp, vp.Playfield(), dl.Clear, true)
	for _, part := range dl.Background {
		if c, ok := spriteColour(part.Sprite, a); ok {
			fillRect(s, vp, part.Area, c, false)
		}
	}

	// Highest layer first; later objects land on top.
	for _, o := range dl.Objects {
		if c, ok := spriteColour(o.Sprite, a); ok {
			fillObject(s, vp, o, c)
		}
		if o.Text != nil {
			drawOverlay(s, vp, o)
		}
	}

	if dl.IntroText != "" {
		centre := vp.ToWindow(core.Vec2{X: core.ProjectionWidth / 2, Y: core.ProjectionHeight / 2})
		row := int(centre.Y / cellAspect)
		s.DrawTextCentered(int(centre.X), row, " "+dl.IntroText+" ", core.White)
	}
}

// spriteColour returns the colour a sprite paints in a cell.
func spriteColour(sp gamedata.Sprite, a *assets.Assets) (core.Colour, bool) {
	if sp.Kind == gamedata.SpriteColour {
		return sp.Colour, sp.Colour.A > 0
	}
	if a == nil {
		return core.Colour{}, false
	}
	img, err := a.Image(sp.Name)
	if err != nil {
		return core.Colour{}, false
	}
	return img.Average, img.Average.A > 0
}

// cellRange returns the cells whose centres fall inside a window rect.
func cellRange(s *core.Screen, r core.AABB) (x0, y0, x1, y1 int) {
	x0 = max(0, int(math.Ceil(float64(r.Min.X-0.5))))
	x1 = min(s.Width()-1, int(math.Floor(float64(r.Max.X-0.5))))
	y0 = max(0, int(math.Ceil(float64(r.Min.Y/cellAspect-0.5))))
	y1 = min(s.Height()-1, int(math.Floor(float64(r.Max.Y/cellAspect-0.5))))
	return x0, y0, x1, y1
}

// fillRect paints a projection rect. When window is true r is already in
// window pixels.
func fillRect(s *core.Screen, vp core.Viewport, r core.AABB, c core.Colour, window bool) {
	if !window {
		r = core.AABB{Min: vp.ToWindow(r.Min), Max: vp.ToWindow(r.Max)}
	}
	x0, y0, x1, y1 := cellRange(s, r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.Paint(x, y, c)
		}
	}
}

func fillObject(s *core.Screen, vp core.Viewport, o game.DrawObject, c core.Colour) {
	if o.Angle == 0 {
		fillRect(s, vp, o.Rect, c, false)
		return
	}

	pivot := o.Rect.Min.Add(o.Origin)
	corners := o.Rect.Corners()
	bounds := core.AABB{
		Min: core.Vec2{X: math.MaxFloat32, Y: math.MaxFloat32},
		Max: core.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32},
	}
	for _, p := range corners {
		w := vp.ToWindow(pivot.Add(p.Sub(pivot).Rotate(o.Angle)))
		bounds.Min.X = min(bounds.Min.X, w.X)
		bounds.Min.Y = min(bounds.Min.Y, w.Y)
		bounds.Max.X = max(bounds.Max.X, w.X)
		bounds.Max.Y = max(bounds.Max.Y, w.Y)
	}

	x0, y0, x1, y1 := cellRange(s, bounds)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := vp.ToProjection(cellCentre(x, y))
			local := pivot.Add(p.Sub(pivot).Rotate(-o.Angle))
			if o.Rect.Contains(local) {
				s.Paint(x, y, c)
			}
		}
	}
}

// drawOverlay writes an object's text on the row through its centre.
func drawOverlay(s *core.Screen, vp core.Viewport, o game.DrawObject) {
	t := o.Text
	for i, line := range strings.Split(t.Text, "\n") {
		anchor := vp.ToWindow(core.Vec2{X: o.Rect.Min.X, Y: o.Rect.Center().Y})
		row := int(anchor.Y/cellAspect) + i
		if t.Justify == gamedata.JustifyCentre {
			s.DrawTextCentered(int(vp.ToWindow(o.Rect.Center()).X), row, line, t.Colour)
			continue
		}
		s.DrawText(int(anchor.X), row, line, t.Colour)
	}
}

package game

import (
	"sort"

	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/gamedata"
)

// introFrames is how long the intro text stays on screen.
const introFrames = 60

// DrawList is everything a renderer needs for one frame, in projection
// coordinates.
type DrawList struct {
	Clear      core.Colour
	Background []gamedata.BackgroundPart
	// Objects are sorted by layer, highest first, ties in insertion order.
	Objects []DrawObject
	// IntroText is non-empty during the first second of the scene.
	IntroText string
}

// DrawObject is one object to render.
type DrawObject struct {
	Name   string
	Sprite gamedata.Sprite
	Rect   core.AABB
	Angle  float32
	// Origin is the rotation pivot relative to Rect.Min.
	Origin core.Vec2
	Flip   core.Flip
	Layer  uint8
	Text   *TextOverlay
}

// DrawList builds the render list for the current frame.
func (g *Game) DrawList() DrawList {
	dl := DrawList{
		Clear:      core.Black,
		Background: g.data.Background,
		Objects:    make([]DrawObject, 0, len(g.objects)),
	}
	for _, o := range g.objects {
		origin := o.Size.Half()
		if o.Origin != nil {
			origin = *o.Origin
		}
		dl.Objects = append(dl.Objects, DrawObject{
			Name:   o.Name,
			Sprite: o.Sprite,
			Rect:   o.Rect(),
			Angle:  o.Angle,
			Origin: origin,
			Flip:   o.Flip,
			Layer:  o.Layer,
			Text:   o.Text,
		})
	}
	sort.SliceStable(dl.Objects, func(i, j int) bool {
		return dl.Objects[i].Layer > dl.Objects[j].Layer
	})
	if g.frames.Ran < introFrames {
		dl.IntroText = g.data.Intro()
	}
	return dl
}

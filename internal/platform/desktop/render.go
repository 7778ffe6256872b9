package desktop

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/weegames/internal/assets"
	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/game"
	"github.com/vovakirdan/weegames/internal/gamedata"
)

// Renderer draws draw lists onto an offscreen projection-sized image and
// letterboxes it into the window. GPU images are cached per scene.
type Renderer struct {
	playfield *ebiten.Image
	pixel     *ebiten.Image

	owner    *assets.Assets
	textures map[string]*ebiten.Image
	faces    map[string]text.Face
}

// NewRenderer creates a renderer. GPU resources are allocated on first draw.
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) init() {
	if r.playfield != nil {
		return
	}
	r.playfield = ebiten.NewImage(core.ProjectionWidth, core.ProjectionHeight)
	r.pixel = ebiten.NewImage(1, 1)
	r.pixel.Fill(color.White)
}

// use switches the texture cache to a scene's assets.
func (r *Renderer) use(a *assets.Assets) {
	if a == r.owner {
		return
	}
	for _, img := range r.textures {
		if img != nil {
			img.Deallocate()
		}
	}
	r.owner = a
	r.textures = make(map[string]*ebiten.Image)
	r.faces = make(map[string]text.Face)
}

func (r *Renderer) texture(name string) *ebiten.Image {
	if img, ok := r.textures[name]; ok {
		return img
	}
	if r.owner == nil {
		return nil
	}
	src, err := r.owner.Image(name)
	if err != nil {
		r.textures[name] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(src.Img)
	r.textures[name] = img
	return img
}

func (r *Renderer) face(name string) text.Face {
	if f, ok := r.faces[name]; ok {
		return f
	}
	if r.owner == nil {
		return nil
	}
	src, err := r.owner.Font(name)
	if err != nil {
		src, err = r.owner.Font(assets.DefaultFont)
		if err != nil {
			return nil
		}
	}
	f := text.NewGoXFace(src)
	r.faces[name] = f
	return f
}

// Draw renders dl with a's images and fonts into screen.
func (r *Renderer) Draw(screen *ebiten.Image, dl game.DrawList, a *assets.Assets) {
	r.init()
	r.use(a)

	pf := r.playfield
	pf.Fill(dl.Clear.RGBA())
	for _, part := range dl.Background {
		r.drawSprite(pf, part.Sprite, part.Area, 0, core.Vec2{}, core.Flip{})
	}
	for _, o := range dl.Objects {
		r.drawSprite(pf, o.Sprite, o.Rect, o.Angle, o.Origin, o.Flip)
		if o.Text != nil {
			r.drawOverlay(pf, o)
		}
	}
	if dl.IntroText != "" {
		r.drawIntro(pf, dl.IntroText)
	}

	b := screen.Bounds()
	vp := core.Letterbox(core.Size{W: float32(b.Dx()), H: float32(b.Dy())})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(vp.Scale), float64(vp.Scale))
	op.GeoM.Translate(float64(vp.Offset.X), float64(vp.Offset.Y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(pf, op)
}

func (r *Renderer) drawSprite(dst *ebiten.Image, sp gamedata.Sprite, rect core.AABB, angle float32, origin core.Vec2, flip core.Flip) {
	op := &ebiten.DrawImageOptions{}
	src := r.pixel
	if sp.Kind == gamedata.SpriteColour {
		op.ColorScale.ScaleWithColor(sp.Colour.RGBA())
	} else if src = r.texture(sp.Name); src == nil {
		return
	}
	b := src.Bounds()
	op.GeoM = spriteTransform(b.Dx(), b.Dy(), rect, angle, origin, flip)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

// spriteTransform maps a srcW×srcH image onto rect, mirrored by flip and
// rotated clockwise by angle degrees about origin (relative to rect.Min).
func spriteTransform(srcW, srcH int, rect core.AABB, angle float32, origin core.Vec2, flip core.Flip) ebiten.GeoM {
	var m ebiten.GeoM
	if srcW <= 0 || srcH <= 0 {
		return m
	}
	if flip.Horizontal {
		m.Scale(-1, 1)
		m.Translate(float64(srcW), 0)
	}
	if flip.Vertical {
		m.Scale(1, -1)
		m.Translate(0, float64(srcH))
	}
	m.Scale(float64(rect.Width())/float64(srcW), float64(rect.Height())/float64(srcH))
	m.Translate(-float64(origin.X), -float64(origin.Y))
	if angle != 0 {
		m.Rotate(float64(angle) * math.Pi / 180)
	}
	m.Translate(float64(rect.Min.X+origin.X), float64(rect.Min.Y+origin.Y))
	return m
}

func (r *Renderer) drawOverlay(dst *ebiten.Image, o game.DrawObject) {
	t := o.Text
	face := r.face(t.Font)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(t.Colour.RGBA())
	m := face.Metrics()
	op.LineSpacing = m.HAscent + m.HDescent + m.HLineGap
	op.SecondaryAlign = text.AlignCenter
	centre := o.Rect.Center()
	x := o.Rect.Min.X
	if t.Justify == gamedata.JustifyCentre {
		op.PrimaryAlign = text.AlignCenter
		x = centre.X
	}
	op.GeoM.Translate(float64(x), float64(centre.Y))
	text.Draw(dst, t.Text, face, op)
}

func (r *Renderer) drawIntro(dst *ebiten.Image, intro string) {
	face := r.face(assets.DefaultFont)
	if face == nil {
		return
	}
	cx, cy := float64(core.ProjectionWidth/2), float64(core.ProjectionHeight/2)
	for _, layer := range []struct {
		offset float64
		colour color.Color
	}{
		{4, color.Black},
		{0, color.White},
	} {
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(layer.colour)
		op.GeoM.Scale(2, 2)
		op.GeoM.Translate(cx+layer.offset, cy+layer.offset)
		text.Draw(dst, intro, face, op)
	}
}

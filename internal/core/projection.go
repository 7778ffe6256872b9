package core

// Viewport describes where the projection plane lands inside a host window.
type Viewport struct {
	Offset Vec2    // Top-left of the playfield in window pixels
	Scale  float32 // Window pixels per projection unit
}

// Letterbox fits the projection plane into a window of the given size,
// preserving aspect ratio and centring it with bars on the long axis.
func Letterbox(window Size) Viewport {
	if window.W <= 0 || window.H <= 0 {
		return Viewport{Scale: 1}
	}
	sx := window.W / ProjectionWidth
	sy := window.H / ProjectionHeight
	scale := sx
	if sy < sx {
		scale = sy
	}
	return Viewport{
		Offset: Vec2{
			X: (window.W - ProjectionWidth*scale) / 2,
			Y: (window.H - ProjectionHeight*scale) / 2,
		},
		Scale: scale,
	}
}

// Project converts a window pixel to projection coordinates.
func Project(pixel Vec2, window Size) Vec2 {
	return Letterbox(window).ToProjection(pixel)
}

// ToProjection converts a window pixel to projection coordinates.
func (v Viewport) ToProjection(pixel Vec2) Vec2 {
	return pixel.Sub(v.Offset).Scale(1 / v.Scale)
}

// ToWindow converts a projection coordinate to window pixels.
func (v Viewport) ToWindow(p Vec2) Vec2 {
	return p.Scale(v.Scale).Add(v.Offset)
}

// Playfield returns the letterboxed playfield rect in window pixels.
func (v Viewport) Playfield() AABB {
	return AABB{
		Min: v.Offset,
		Max: v.ToWindow(Vec2{ProjectionWidth, ProjectionHeight}),
	}
}

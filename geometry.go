package fna3d

import (
	"image"
	"image/color"

	"github.com/gogpu/fna3d/sys"
)

// Rect is FNA3D_Rect, a rectangle in pixels.
type Rect sys.Rect

// RectFromImage converts an image.Rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())}
}

// Image returns r as an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

// Viewport is FNA3D_Viewport.
type Viewport sys.Viewport

// NewViewport returns a viewport at (x, y) of size w x h with the full
// 0..1 depth range.
func NewViewport(x, y, w, h int32) Viewport {
	return Viewport{X: x, Y: y, W: w, H: h, MinDepth: 0, MaxDepth: 1}
}

// Bounds returns the viewport rectangle.
func (v Viewport) Bounds() Rect {
	return Rect{X: v.X, Y: v.Y, W: v.W, H: v.H}
}

// Vec4 is FNA3D_Vec4.
type Vec4 sys.Vec4

// Color is FNA3D_Color, a non-premultiplied RGBA8 color. It implements
// image/color.Color.
type Color sys.Color

// Predefined colors.
var (
	ColorTransparent    = Color{}
	ColorBlack          = Color{A: 255}
	ColorWhite          = Color{R: 255, G: 255, B: 255, A: 255}
	ColorCornflowerBlue = Color{R: 100, G: 149, B: 237, A: 255}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// ColorFrom converts any color.Color to a Color.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Vec4 returns c with every channel scaled to 0..1, the form FNA3D's clear
// takes.
func (c Color) Vec4() Vec4 {
	return Vec4{
		X: float32(c.R) / 255,
		Y: float32(c.G) / 255,
		Z: float32(c.B) / 255,
		W: float32(c.A) / 255,
	}
}

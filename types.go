package smiley

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color is an RGBA color with 8-bit components. Not premultiplied.
// Premultiplication occurs at fill/blit submission time.
type Color struct {
	R, G, B, A uint8
}

// toNRGBA converts to the non-premultiplied stdlib color type.
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// toScale returns a premultiplied ColorScale for drawing the white pixel
// as a solid-color quad.
func (c Color) toScale() ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := float32(c.A) / 255
	cs.Scale(float32(c.R)/255*a, float32(c.G)/255*a, float32(c.B)/255*a, a)
	return cs
}

// clamp8 saturates v to the [0, 255] channel range.
func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Point is an integer coordinate pair. Entities use it for their visual
// center, not their top-left corner.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned integer rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the left/top edges are inside; right/bottom edges are exclusive,
// matching pixel-region semantics.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// WhitePixel is a 1x1 white image used for solid color fills.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(color.White)
}

package smiley

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is an owned, mutable 2D pixel buffer backed by an ebiten.Image.
// Exactly one owner holds a Surface at a time; the owner must call Release
// when replacing or discarding it. A Surface borrowed from the window (see
// borrowSurface) is never released by this package.
type Surface struct {
	img      *ebiten.Image
	w, h     int
	borrowed bool
}

// NewSurface allocates a w×h surface. The buffer starts fully transparent.
func NewSurface(w, h int) *Surface {
	return &Surface{img: ebiten.NewImage(w, h), w: w, h: h}
}

// borrowSurface wraps an image owned by someone else (the window framebuffer).
// Release on a borrowed surface is a no-op.
func borrowSurface(img *ebiten.Image) *Surface {
	b := img.Bounds()
	return &Surface{img: img, w: b.Dx(), h: b.Dy(), borrowed: true}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.w }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.h }

// Fill paints the entire surface with c, replacing existing pixels.
func (s *Surface) Fill(c Color) {
	s.img.Fill(c.toNRGBA())
}

// FillRect paints r with c using source-over blending.
func (s *Surface) FillRect(r Rect, c Color) {
	s.fillRect(r, c, ebiten.BlendSourceOver)
}

// FillRectReplace paints r with c as an opaque copy: destination pixels in r
// are replaced outright, alpha included. This is how transparent cut-outs are
// carved into an otherwise opaque surface.
func (s *Surface) FillRectReplace(r Rect, c Color) {
	s.fillRect(r, c, ebiten.BlendCopy)
}

func (s *Surface) fillRect(r Rect, c Color, blend ebiten.Blend) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W), float64(r.H))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale = c.toScale()
	op.Blend = blend
	s.img.DrawImage(WhitePixel, op)
}

// Blit composites src onto this surface with its top-left corner at (x, y)
// using standard alpha blending. Regions falling outside the destination are
// clipped; a fully off-surface blit simply draws nothing.
func (s *Surface) Blit(src *Surface, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	s.img.DrawImage(src.img, op)
}

// at reads back the pixel at (x, y) as premultiplied 8-bit RGBA.
// Forces a pipeline flush; test use only.
func (s *Surface) at(x, y int) (r, g, b, a uint8) {
	cr, cg, cb, ca := s.img.At(x, y).RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)
}

// Release deallocates the underlying image. The surface must not be used
// afterwards. No-op for borrowed surfaces and double calls.
func (s *Surface) Release() {
	if s.borrowed || s.img == nil {
		return
	}
	s.img.Deallocate()
	s.img = nil
}

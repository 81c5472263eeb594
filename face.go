package smiley

// Face geometry. The face is drawn into a fixed 100×100 surface: a head
// square with a drop shadow offset 10px down-right, and eye/mouth holes
// carved out so the shadow shows through them.
const (
	FaceSize         = 100 // full surface edge, head plus shadow overhang
	faceHeadSize     = 90  // head square edge
	faceShadowOffset = 10  // shadow offset along both axes
)

// shadowColor is the translucent black used for the drop shadow and,
// identically, for the carved eye/mouth regions.
var shadowColor = Color{0, 0, 0, 128}

var (
	faceShadowRect = Rect{faceShadowOffset, faceShadowOffset, faceHeadSize, faceHeadSize}
	faceHeadRect   = Rect{0, 0, faceHeadSize, faceHeadSize}
	faceEyeRects   = [2]Rect{
		{18, 22, 16, 12},
		{56, 22, 16, 12},
	}
	faceMouthRect = Rect{25, 58, 40, 12}
)

// BuildFace renders a fresh face surface for the given head color.
// The caller owns the returned surface.
//
// The eyes and mouth are not blended over the head: they replace it,
// alpha included, so the holes are exactly as translucent as the shadow.
func BuildFace(c Color) *Surface {
	s := NewSurface(FaceSize, FaceSize)
	s.FillRect(faceShadowRect, shadowColor)
	s.FillRect(faceHeadRect, c)
	for _, eye := range faceEyeRects {
		s.FillRectReplace(eye, shadowColor)
	}
	s.FillRectReplace(faceMouthRect, shadowColor)
	return s
}

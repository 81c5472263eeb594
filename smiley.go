package smiley

import (
	"math/rand/v2"
)

// Bounds for RandomizeColor: each channel is drawn from [randMin, randMax].
const (
	randMin = 50
	randMax = 224
)

// Smiley pairs a scene entity with its logical face color. The pairing is the
// type's one invariant: after any mutation, the entity's surface is a fresh
// BuildFace rendering of the stored color. SetColor is the single write path
// that upholds it.
type Smiley struct {
	entity *Entity
	color  Color
}

// NewSmiley creates a smiley centered at (x, y) with the given face color.
func NewSmiley(x, y int, c Color) *Smiley {
	return &Smiley{
		entity: NewEntity(BuildFace(c), x, y),
		color:  c,
	}
}

// Color returns the current face color.
func (s *Smiley) Color() Color { return s.color }

// Entity returns the underlying scene entity (for positioning and drawing).
func (s *Smiley) Entity() *Entity { return s.entity }

// SetColor rebuilds the face surface for c and swaps it in, releasing the old
// surface. Color and surface change together; callers never observe one
// without the other.
func (s *Smiley) SetColor(c Color) {
	s.entity.swapSurface(BuildFace(c))
	s.color = c
}

// MutateColor drifts each color channel by an offset drawn uniformly from the
// closed interval [-delta, delta], clamped to the valid channel range.
// Alpha is reset to fully opaque. delta must be non-negative.
func (s *Smiley) MutateColor(delta int) {
	span := 2*delta + 1
	s.SetColor(Color{
		R: clamp8(int(s.color.R) + rand.IntN(span) - delta),
		G: clamp8(int(s.color.G) + rand.IntN(span) - delta),
		B: clamp8(int(s.color.B) + rand.IntN(span) - delta),
		A: 255,
	})
}

// RandomizeColor replaces the face color with a fully opaque color whose
// channels are drawn independently from [randMin, randMax]. The narrowed
// range keeps the face distinguishable from both the background and the
// shadow.
func (s *Smiley) RandomizeColor() {
	span := randMax - randMin + 1
	s.SetColor(Color{
		R: uint8(randMin + rand.IntN(span)),
		G: uint8(randMin + rand.IntN(span)),
		B: uint8(randMin + rand.IntN(span)),
		A: 255,
	})
}

// Dispose releases the smiley's entity and its surface.
func (s *Smiley) Dispose() {
	s.entity.Dispose()
}

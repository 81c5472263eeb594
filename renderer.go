package smiley

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// sceneBackground is the fixed window clear color.
var sceneBackground = Color{0, 80, 160, 255}

// fadeInDuration is how long the startup background fade takes, in seconds.
const fadeInDuration = 0.5

// Renderer clears the window surface and composites entities back to front.
// The whole scene is redrawn every frame; there is no dirty-rectangle
// tracking.
//
// On startup the background eases from black up to Background so the window
// doesn't pop in at full brightness. Advance drives the fade; once complete
// the fixed background is used forever.
type Renderer struct {
	Background Color

	fade     *gween.Tween
	fadeT    float32
	fadeDone bool
}

// NewRenderer creates a renderer with the fixed scene background and the
// startup fade armed.
func NewRenderer() *Renderer {
	return &Renderer{
		Background: sceneBackground,
		fade:       gween.New(0, 1, fadeInDuration, ease.OutQuad),
	}
}

// Advance steps the startup fade by dt seconds. No-op once the fade is done.
func (r *Renderer) Advance(dt float32) {
	if r.fadeDone {
		return
	}
	r.fadeT, r.fadeDone = r.fade.Update(dt)
}

// CurrentBackground returns the background color for this frame: the fixed
// Background once the fade completes, an interpolation from black before.
// Alpha is always fully opaque.
func (r *Renderer) CurrentBackground() Color {
	if r.fadeDone {
		return r.Background
	}
	return Color{
		R: uint8(float32(r.Background.R) * r.fadeT),
		G: uint8(float32(r.Background.G) * r.fadeT),
		B: uint8(float32(r.Background.B) * r.fadeT),
		A: 255,
	}
}

// Render fills dst with the background and draws entities in the given order.
// Callers pass entities back to front; later entries end up visually on top.
func (r *Renderer) Render(dst *Surface, entities []*Entity) {
	dst.Fill(r.CurrentBackground())
	for _, e := range entities {
		e.Draw(dst)
	}
}

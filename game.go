package smiley

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Default window geometry and starting scene layout.
const (
	defaultWidth  = 640
	defaultHeight = 480

	// pollTPS approximates the 10 ms input poll ceiling: Update runs 100
	// times per second.
	pollTPS = 100
)

var (
	smiley1Start = Point{220, 240}
	smiley2Start = Point{420, 240}
	smiley1Color = Color{255, 220, 40, 255}
	smiley2Color = Color{60, 200, 120, 255}
)

// Config controls Run. Zero values pick sensible defaults.
type Config struct {
	Title     string
	Width     int // logical screen width (default 640)
	Height    int // logical screen height (default 480)
	MinWidth  int // window resize lower bound (default Width/2)
	MinHeight int // window resize lower bound (default Height/2)
	Verbose   bool
	Mute      bool
}

// game adapts the loop to the ebiten.Game interface. Update polls input and
// steps the loop; Draw always repaints the full scene.
type game struct {
	loop     *Loop
	renderer *Renderer
	input    *input
	start    time.Time
	width    int
	height   int
	verbose  bool
}

func (g *game) Update() error {
	now := time.Since(g.start).Milliseconds()
	events := g.input.poll()
	if len(events) == 0 {
		g.loop.Step(now, nil)
	} else {
		for i := range events {
			g.loop.Step(now, &events[i])
		}
	}
	if g.loop.Done() {
		return ebiten.Termination
	}
	g.renderer.Advance(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	// Back to front: Smiley2 first, so Smiley1 sits on top when overlapping.
	g.renderer.Render(borrowSurface(screen), []*Entity{
		g.loop.Smiley2.Entity(),
		g.loop.Smiley1.Entity(),
	})
	if g.verbose {
		drawFPSOverlay(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window, builds the scene, and drives the event loop until a
// quit request. It owns the full lifecycle: the smileys' surfaces are
// released and the audio device closed before Run returns, whether the loop
// ended normally or the backend failed.
func Run(cfg Config) error {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	if cfg.MinWidth <= 0 {
		cfg.MinWidth = cfg.Width / 2
	}
	if cfg.MinHeight <= 0 {
		cfg.MinHeight = cfg.Height / 2
	}
	if cfg.Title == "" {
		cfg.Title = "Smileys"
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(cfg.MinWidth, cfg.MinHeight, -1, -1)
	ebiten.SetTPS(pollTPS)

	s1 := NewSmiley(smiley1Start.X, smiley1Start.Y, smiley1Color)
	s2 := NewSmiley(smiley2Start.X, smiley2Start.Y, smiley2Color)
	defer s1.Dispose()
	defer s2.Dispose()

	var audio *Feedback
	if !cfg.Mute {
		// Missing audio is not worth dying over.
		audio = openFeedback(NewFeedback, os.Stderr)
	}
	defer audio.Close()

	loop := NewLoop(s1, s2)
	loop.Verbose = cfg.Verbose
	loop.Audio = audio

	g := &game{
		loop:     loop,
		renderer: NewRenderer(),
		input:    newInput(),
		start:    time.Now(),
		width:    cfg.Width,
		height:   cfg.Height,
		verbose:  cfg.Verbose,
	}

	return ebiten.RunGame(g)
}

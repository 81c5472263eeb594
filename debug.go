package smiley

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// loopStats counts loop activity for verbose diagnostics.
type loopStats struct {
	ticks   uint64
	events  uint64
	renders uint64
}

// statsEvery is how many ticks pass between verbose stat lines (~6 s at the
// 100 ms tick).
const statsEvery = 60

// logStats prints a periodic activity line to stderr. Only called when the
// loop is verbose.
func (l *Loop) logStats() {
	if l.stats.ticks%statsEvery != 0 {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[smileys] ticks: %d | events: %d | renders: %d\n",
		l.stats.ticks, l.stats.events, l.stats.renders)
}

// logPress reports where a press landed, before Smiley1 jumps to it.
func (l *Loop) logPress(x, y int) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[smileys] press: (%d, %d) | on smiley1: %v | on smiley2: %v\n",
		x, y,
		l.Smiley1.Entity().BoundingRect().Contains(x, y),
		l.Smiley2.Entity().BoundingRect().Contains(x, y))
}

// drawFPSOverlay prints the current FPS/TPS in the window corner.
func drawFPSOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen,
		fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

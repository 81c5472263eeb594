package smiley

import "time"

const (
	// TickInterval is the animation period: every 100 ms the smileys drift
	// their colors regardless of input.
	TickInterval = 100 * time.Millisecond

	// Per-tick color drift amplitudes.
	drift1 = 30
	drift2 = 20

	// arrowStep is how far one arrow press moves Smiley2, in pixels.
	arrowStep = 20
)

// Loop is the event dispatch state machine. It owns the mutable scene state:
// the two smileys, the done flag, and the tick timer. All of it is local to
// the struct; nothing here is process-global.
//
// Each iteration the driver calls Step with the current monotonic time and
// the next event, or nil when the poll timed out with nothing pending.
type Loop struct {
	Smiley1 *Smiley
	Smiley2 *Smiley

	// Render is invoked whenever the scene needs repainting: on every tick
	// and on every event that mutates visible state. Nil is allowed.
	Render func()

	// Audio provides optional key-press feedback. Nil disables it.
	Audio *Feedback

	Verbose bool

	tickInterval int64 // milliseconds
	lastTick     int64
	done         bool

	stats loopStats
}

// NewLoop creates a loop over the two smileys with the standard tick period.
func NewLoop(s1, s2 *Smiley) *Loop {
	return &Loop{
		Smiley1:      s1,
		Smiley2:      s2,
		tickInterval: TickInterval.Milliseconds(),
	}
}

// Done reports whether the loop has reached its terminal state.
func (l *Loop) Done() bool { return l.done }

// Step runs one loop iteration: the periodic tick check first, then dispatch
// of ev if one arrived. now is monotonic milliseconds since startup.
func (l *Loop) Step(now int64, ev *Event) {
	if now-l.lastTick >= l.tickInterval {
		l.Smiley1.MutateColor(drift1)
		l.Smiley2.MutateColor(drift2)
		l.requestRender()
		l.lastTick = now
		l.stats.ticks++
		if l.Verbose {
			l.logStats()
		}
	}

	if ev == nil {
		return
	}
	l.stats.events++

	switch ev.Kind {
	case EventWindow:
		l.requestRender()
	case EventQuit:
		l.done = true
	case EventPointerDown:
		if l.Verbose {
			l.logPress(ev.X, ev.Y)
		}
		l.Smiley1.Entity().SetPosition(ev.X, ev.Y)
		l.requestRender()
	case EventKeyDown:
		l.dispatchKey(ev.Key)
	}
}

func (l *Loop) dispatchKey(key Key) {
	switch key {
	case KeyEscape, KeyQ:
		l.done = true
	case KeySpace:
		l.Smiley1.RandomizeColor()
		l.Smiley2.RandomizeColor()
		l.Audio.Blip(blipFreq, blipDuration)
		l.requestRender()
	case KeyLeft:
		l.Smiley2.Entity().Translate(-arrowStep, 0)
		l.requestRender()
	case KeyRight:
		l.Smiley2.Entity().Translate(arrowStep, 0)
		l.requestRender()
	case KeyUp:
		l.Smiley2.Entity().Translate(0, -arrowStep)
		l.requestRender()
	case KeyDown:
		l.Smiley2.Entity().Translate(0, arrowStep)
		l.requestRender()
	}
}

func (l *Loop) requestRender() {
	l.stats.renders++
	if l.Render != nil {
		l.Render()
	}
}

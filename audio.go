package smiley

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// Feedback blip played when the colors are randomized.
	blipFreq     = 880.0
	blipDuration = 50 * time.Millisecond
)

// Feedback plays short generated sine blips as key-press feedback.
// A nil *Feedback is valid and silent, so audio-less runs (tests, headless,
// -mute) need no special casing at call sites.
type Feedback struct {
	enabled bool
}

// NewFeedback opens the speaker. An error here is not fatal to the demo;
// callers typically log it and continue without audio.
func NewFeedback() (*Feedback, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Feedback{enabled: true}, nil
}

// openFeedback opens audio via open, reporting a failure on w and returning
// nil so the demo continues without sound.
func openFeedback(open func() (*Feedback, error), w io.Writer) *Feedback {
	f, err := open()
	if err != nil {
		_, _ = fmt.Fprintf(w, "[smileys] audio disabled: %v\n", err)
		return nil
	}
	return f
}

// Blip plays a sine tone of the given frequency for the given duration.
func (f *Feedback) Blip(freq float64, d time.Duration) {
	if f == nil || !f.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close shuts the speaker down. Safe on nil.
func (f *Feedback) Close() {
	if f == nil || !f.enabled {
		return
	}
	f.enabled = false
	speaker.Close()
}

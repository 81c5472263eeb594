package smiley

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EventKind identifies a kind of input event.
type EventKind uint8

const (
	EventWindow      EventKind = iota // window state change (resize, expose)
	EventQuit                         // quit request from the environment
	EventPointerDown                  // pointer button press (carries X, Y)
	EventKeyDown                      // key press (carries Key)
)

// Key identifies the key symbols the demo reacts to. Presses of any other key
// produce no event at all.
type Key uint8

const (
	KeyEscape Key = iota
	KeyQ
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Event is a single input occurrence. X and Y are valid for EventPointerDown;
// Key is valid for EventKeyDown.
type Event struct {
	Kind EventKind
	X, Y int
	Key  Key
}

// watchedKeys maps the backend key codes to our key symbols, in a fixed order
// so snapshot key arrays line up.
var watchedKeys = [...]struct {
	eb  ebiten.Key
	key Key
}{
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyQ, KeyQ},
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
}

// snapshot is one update's raw input state. poll gathers it from the backend;
// advance diffs it against the previous update's snapshot.
type snapshot struct {
	keys    [len(watchedKeys)]bool
	left    bool
	cursorX int
	cursorY int
	w, h    int
}

// input turns polled state into edge-triggered events, one batch per update.
// Snapshot diffing makes each physical press or window resize emit exactly
// one event, no matter how long the key or button stays held.
type input struct {
	prev snapshot
	buf  []Event
}

func newInput() *input {
	in := &input{buf: make([]Event, 0, 8)}
	in.prev.w, in.prev.h = ebiten.WindowSize()
	return in
}

// poll gathers this update's backend state and returns the implied events.
func (in *input) poll() []Event {
	var s snapshot
	s.w, s.h = ebiten.WindowSize()
	s.left = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.cursorX, s.cursorY = ebiten.CursorPosition()
	for i := range watchedKeys {
		s.keys[i] = ebiten.IsKeyPressed(watchedKeys[i].eb)
	}
	return in.advance(s)
}

// advance diffs s against the previous snapshot: one EventWindow per size
// change, one EventPointerDown per button press edge, one EventKeyDown per
// key press edge. Held and released state emits nothing. The returned slice
// is reused across calls; callers must not retain it.
func (in *input) advance(s snapshot) []Event {
	events := in.buf[:0]

	if s.w != in.prev.w || s.h != in.prev.h {
		events = append(events, Event{Kind: EventWindow})
	}

	if s.left && !in.prev.left {
		events = append(events, Event{Kind: EventPointerDown, X: s.cursorX, Y: s.cursorY})
	}

	for i := range watchedKeys {
		if s.keys[i] && !in.prev.keys[i] {
			events = append(events, Event{Kind: EventKeyDown, Key: watchedKeys[i].key})
		}
	}

	in.prev = s
	in.buf = events
	return events
}

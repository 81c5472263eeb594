package smiley

import "testing"

// newTestLoop builds a loop over two fresh smileys with a render counter
// attached. Callers dispose via the returned cleanup.
func newTestLoop(t *testing.T) (*Loop, *int) {
	t.Helper()
	s1 := NewSmiley(220, 240, Color{255, 220, 40, 255})
	s2 := NewSmiley(420, 240, Color{60, 200, 120, 255})
	t.Cleanup(func() {
		s1.Dispose()
		s2.Dispose()
	})
	l := NewLoop(s1, s2)
	renders := 0
	l.Render = func() { renders++ }
	return l, &renders
}

func keyEvent(k Key) *Event {
	return &Event{Kind: EventKeyDown, Key: k}
}

func TestPointerPressMovesSmiley1(t *testing.T) {
	l, renders := newTestLoop(t)
	l.Step(0, &Event{Kind: EventPointerDown, X: 120, Y: 80})
	if got := l.Smiley1.Entity().Position(); got != (Point{120, 80}) {
		t.Errorf("Smiley1 position = %+v, want {120 80}", got)
	}
	if *renders != 1 {
		t.Errorf("renders = %d, want 1", *renders)
	}
}

func TestVerbosePointerPressStillMovesAndRenders(t *testing.T) {
	l, renders := newTestLoop(t)
	l.Verbose = true
	// On Smiley1, off Smiley2: the hit diagnostic takes both branches.
	l.Step(0, &Event{Kind: EventPointerDown, X: 220, Y: 240})
	if got := l.Smiley1.Entity().Position(); got != (Point{220, 240}) {
		t.Errorf("Smiley1 position = %+v, want {220 240}", got)
	}
	if *renders != 1 {
		t.Errorf("renders = %d, want 1", *renders)
	}
}

func TestTickFiresAtExactInterval(t *testing.T) {
	l, renders := newTestLoop(t)

	l.Step(99, nil)
	if *renders != 0 {
		t.Fatalf("renders after 99ms = %d, want 0", *renders)
	}

	l.Step(100, nil)
	if *renders != 1 {
		t.Fatalf("renders after 100ms = %d, want 1", *renders)
	}

	// lastTick was reset to 100: the next tick needs 100 more ms.
	l.Step(199, nil)
	if *renders != 1 {
		t.Fatalf("renders after 199ms = %d, want 1", *renders)
	}
	l.Step(200, nil)
	if *renders != 2 {
		t.Fatalf("renders after 200ms = %d, want 2", *renders)
	}
}

func TestTickMutatesBothSmileys(t *testing.T) {
	l, _ := newTestLoop(t)
	c1 := l.Smiley1.Color()
	c2 := l.Smiley2.Color()
	l.Step(100, nil)
	// Alpha is forced opaque by mutation; channels stay within the drift.
	if got := l.Smiley1.Color(); got.A != 255 {
		t.Errorf("Smiley1 alpha = %d, want 255", got.A)
	}
	lo, hi := boundFor(c1.R, drift1)
	assertChannelWithin(t, "Smiley1 R", l.Smiley1.Color().R, lo, hi)
	lo, hi = boundFor(c2.R, drift2)
	assertChannelWithin(t, "Smiley2 R", l.Smiley2.Color().R, lo, hi)
}

func TestEscapeAndQEndTheLoop(t *testing.T) {
	for _, k := range []Key{KeyEscape, KeyQ} {
		l, renders := newTestLoop(t)
		l.Step(0, keyEvent(k))
		if !l.Done() {
			t.Errorf("key %d: Done() = false, want true", k)
		}
		if *renders != 0 {
			t.Errorf("key %d: renders = %d, want 0 (quitting draws nothing)", k, *renders)
		}
	}
}

func TestQuitEventEndsTheLoop(t *testing.T) {
	l, _ := newTestLoop(t)
	l.Step(0, &Event{Kind: EventQuit})
	if !l.Done() {
		t.Error("Done() = false after quit event, want true")
	}
}

func TestArrowsTranslateSmiley2(t *testing.T) {
	l, renders := newTestLoop(t)
	start := l.Smiley2.Entity().Position()

	l.Step(0, keyEvent(KeyLeft))
	if got := l.Smiley2.Entity().Position(); got != (Point{start.X - arrowStep, start.Y}) {
		t.Errorf("after left: position = %+v", got)
	}
	l.Step(0, keyEvent(KeyRight))
	if got := l.Smiley2.Entity().Position(); got != start {
		t.Errorf("after left+right: position = %+v, want back at %+v", got, start)
	}

	l.Step(0, keyEvent(KeyUp))
	l.Step(0, keyEvent(KeyDown))
	if got := l.Smiley2.Entity().Position(); got != start {
		t.Errorf("after up+down: position = %+v, want back at %+v", got, start)
	}

	if *renders != 4 {
		t.Errorf("renders = %d, want 4 (one per arrow press)", *renders)
	}
	// Smiley1 is untouched by arrows.
	if got := l.Smiley1.Entity().Position(); got != (Point{220, 240}) {
		t.Errorf("Smiley1 moved to %+v", got)
	}
}

func TestSpaceRandomizesBothColors(t *testing.T) {
	l, renders := newTestLoop(t)
	l.Step(0, keyEvent(KeySpace))
	for i, s := range []*Smiley{l.Smiley1, l.Smiley2} {
		c := s.Color()
		assertChannelWithin(t, "R", c.R, randMin, randMax)
		assertChannelWithin(t, "G", c.G, randMin, randMax)
		assertChannelWithin(t, "B", c.B, randMin, randMax)
		if c.A != 255 {
			t.Errorf("smiley %d alpha = %d, want 255", i+1, c.A)
		}
	}
	if *renders != 1 {
		t.Errorf("renders = %d, want 1", *renders)
	}
}

func TestWindowEventTriggersRender(t *testing.T) {
	l, renders := newTestLoop(t)
	l.Step(0, &Event{Kind: EventWindow})
	if *renders != 1 {
		t.Errorf("renders = %d, want 1", *renders)
	}
}

func TestTickAndEventInSameStep(t *testing.T) {
	l, renders := newTestLoop(t)
	// The tick check runs before dispatch; both fire on the same call.
	l.Step(150, &Event{Kind: EventPointerDown, X: 10, Y: 10})
	if *renders != 2 {
		t.Errorf("renders = %d, want 2 (tick + pointer)", *renders)
	}
	if got := l.Smiley1.Entity().Position(); got != (Point{10, 10}) {
		t.Errorf("Smiley1 position = %+v, want {10 10}", got)
	}
}

func TestNilRenderIsAllowed(t *testing.T) {
	s1 := NewSmiley(0, 0, Color{100, 100, 100, 255})
	s2 := NewSmiley(0, 0, Color{100, 100, 100, 255})
	defer s1.Dispose()
	defer s2.Dispose()
	l := NewLoop(s1, s2)
	l.Step(100, keyEvent(KeySpace)) // must not panic without a render hook
}

package smiley

// Entity is a positioned drawable: an exclusively owned surface plus the
// coordinates of its visual center. Position is unvalidated; entities may sit
// partly or fully off-screen, in which case they simply do not appear.
type Entity struct {
	surface  *Surface
	pos      Point
	disposed bool
}

// NewEntity creates an entity owning the given surface, centered at (x, y).
// Panics if surface is nil: a live entity always has a surface.
func NewEntity(surface *Surface, x, y int) *Entity {
	if surface == nil {
		panic("smiley: entity requires a surface")
	}
	return &Entity{surface: surface, pos: Point{x, y}}
}

// Position returns the entity's center.
func (e *Entity) Position() Point { return e.pos }

// Surface returns the entity's owned surface. The caller must not release it.
func (e *Entity) Surface() *Surface { return e.surface }

// SetPosition moves the entity's center to (x, y).
func (e *Entity) SetPosition(x, y int) {
	e.pos = Point{x, y}
}

// Translate moves the entity's center by (dx, dy).
func (e *Entity) Translate(dx, dy int) {
	e.pos.X += dx
	e.pos.Y += dy
}

// BoundingRect returns the surface-sized rectangle centered on the entity's
// position. Integer division truncates, so for odd dimensions the extra pixel
// falls on the right/bottom side.
func (e *Entity) BoundingRect() Rect {
	w := e.surface.Width()
	h := e.surface.Height()
	return Rect{
		X: e.pos.X - w/2,
		Y: e.pos.Y - h/2,
		W: w,
		H: h,
	}
}

// Draw composites the entity's surface onto dst at its bounding rectangle.
func (e *Entity) Draw(dst *Surface) {
	r := e.BoundingRect()
	dst.Blit(e.surface, r.X, r.Y)
}

// swapSurface replaces the owned surface, releasing the old one.
// Panics if s is nil.
func (e *Entity) swapSurface(s *Surface) {
	if s == nil {
		panic("smiley: entity requires a surface")
	}
	old := e.surface
	e.surface = s
	old.Release()
}

// Dispose releases the owned surface. The entity must not be drawn afterward.
// Double disposal is a no-op.
func (e *Entity) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.surface.Release()
}

// IsDisposed reports whether Dispose has been called.
func (e *Entity) IsDisposed() bool { return e.disposed }

package interaction

import "fyne.io/fyne/v2"

// Bounds is an axis-aligned rectangle in window coordinates.
type Bounds struct {
	Position fyne.Position
	Size     fyne.Size
}

// NewBounds builds bounds from a position and a size
func NewBounds(pos fyne.Position, size fyne.Size) Bounds {
	return Bounds{Position: pos, Size: size}
}

// Contains reports whether p lies inside b, edges included
func (b Bounds) Contains(p fyne.Position) bool {
	return p.X >= b.Position.X &&
		p.X <= b.Position.X+b.Size.Width &&
		p.Y >= b.Position.Y &&
		p.Y <= b.Position.Y+b.Size.Height
}

// HoverGuard clears a stale hover source when the pointer is observed outside
// a surface without a matching "left" notification, which happens when the
// surface collapses or moves under a stationary cursor.
type HoverGuard struct {
	tracker  *Tracker
	source   Source
	bounds   func() Bounds
	dragging func() bool
}

// NewHoverGuard guards source on tracker. bounds returns the surface's current
// bounding box; dragging reports whether the surface has an active drag
// session, during which the guard never intervenes.
func NewHoverGuard(tracker *Tracker, source Source, bounds func() Bounds, dragging func() bool) *HoverGuard {
	return &HoverGuard{
		tracker:  tracker,
		source:   source,
		bounds:   bounds,
		dragging: dragging,
	}
}

// PointerMoved reconciles the hover source against the pointer position and
// reports whether a stale hover was cleared.
func (g *HoverGuard) PointerMoved(p fyne.Position) bool {
	if g.dragging != nil && g.dragging() {
		return false
	}
	if !g.tracker.Has(g.source) {
		return false
	}
	if g.bounds().Contains(p) {
		return false
	}
	g.tracker.Remove(g.source)
	return true
}

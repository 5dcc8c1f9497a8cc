package drag

import (
	"fyne.io/fyne/v2"
)

// Mode is the state of a surface's controller
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
)

// String returns the mode name used in logs
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Thresholds and limits
const (
	// DefaultMoveThreshold is the distance in either axis a pointer must
	// exceed before a press on a drag handle stops counting as a click.
	DefaultMoveThreshold float32 = 3

	DefaultMinWidth  float32 = 400
	DefaultMinHeight float32 = 400
)

// Session is the transient state of one pointer press on a handle.
type Session struct {
	// Origin is the pointer position at press time.
	Origin fyne.Position

	// Last is the pointer position of the previous move (resizing only).
	Last fyne.Position

	// StartPosition is the element position at press time (dragging only).
	StartPosition fyne.Position

	// Moved is set once movement exceeded the threshold and stays set until
	// the next session begins.
	Moved bool
}

// Config tunes a Controller. Zero values select the defaults.
type Config struct {
	Clamp     Clamp
	Threshold float32
	MinSize   fyne.Size
}

// Controller is the per-surface drag/resize state machine. Dragging moves
// the element by the cumulative delta from the press origin; resizing grows
// it by the incremental delta since the previous move.
type Controller struct {
	mode    Mode
	session Session

	position fyne.Position
	size     fyne.Size

	clamp     Clamp
	threshold float32
	minSize   fyne.Size

	onStart func(Mode)
	onEnd   func(Mode)
}

// NewController creates an idle controller for an element at pos with size
func NewController(pos fyne.Position, size fyne.Size, cfg Config) *Controller {
	c := &Controller{
		position:  pos,
		size:      size,
		clamp:     cfg.Clamp,
		threshold: cfg.Threshold,
		minSize:   cfg.MinSize,
	}
	if c.clamp == nil {
		c.clamp = Unclamped
	}
	if c.threshold <= 0 {
		c.threshold = DefaultMoveThreshold
	}
	if c.minSize.IsZero() {
		c.minSize = fyne.NewSize(DefaultMinWidth, DefaultMinHeight)
	}
	return c
}

// SetHooks sets functions called when a session starts and ends
func (c *Controller) SetHooks(onStart, onEnd func(Mode)) {
	c.onStart = onStart
	c.onEnd = onEnd
}

// BeginDrag starts a drag session at pointer. It is ignored while another
// session is active.
func (c *Controller) BeginDrag(pointer fyne.Position) bool {
	if c.mode != ModeIdle {
		return false
	}
	c.mode = ModeDragging
	c.session = Session{
		Origin:        pointer,
		Last:          pointer,
		StartPosition: c.position,
	}
	c.notify(c.onStart, ModeDragging)
	return true
}

// BeginResize starts a resize session at pointer. Only the pointer is
// recorded. It is ignored while another session is active.
func (c *Controller) BeginResize(pointer fyne.Position) bool {
	if c.mode != ModeIdle {
		return false
	}
	c.mode = ModeResizing
	c.session = Session{
		Origin: pointer,
		Last:   pointer,
	}
	c.notify(c.onStart, ModeResizing)
	return true
}

// Move feeds a pointer position into the active session and reports whether
// the element geometry changed.
func (c *Controller) Move(pointer fyne.Position) bool {
	switch c.mode {
	case ModeDragging:
		return c.drag(pointer)
	case ModeResizing:
		return c.resize(pointer)
	default:
		return false
	}
}

func (c *Controller) drag(pointer fyne.Position) bool {
	dx := pointer.X - c.session.Origin.X
	dy := pointer.Y - c.session.Origin.Y

	if abs(dx) > c.threshold || abs(dy) > c.threshold {
		c.session.Moved = true
	}

	next := c.clamp(c.session.StartPosition.Add(fyne.NewDelta(dx, dy)), c.size)
	if next == c.position {
		return false
	}
	c.position = next
	return true
}

func (c *Controller) resize(pointer fyne.Position) bool {
	dx := pointer.X - c.session.Last.X
	dy := pointer.Y - c.session.Last.Y
	c.session.Last = pointer

	next := fyne.NewSize(
		max(c.minSize.Width, c.size.Width+dx),
		max(c.minSize.Height, c.size.Height+dy),
	)
	if next == c.size {
		return false
	}
	c.size = next
	return true
}

// End finishes the active session. The moved flag remains readable until
// the next session begins.
func (c *Controller) End() {
	if c.mode == ModeIdle {
		return
	}
	ended := c.mode
	c.mode = ModeIdle
	c.notify(c.onEnd, ended)
}

// ShouldSuppressClick reports whether a click on the drag handle belongs to
// a drag and must not run the handle's click action.
func (c *Controller) ShouldSuppressClick() bool {
	return c.session.Moved
}

// Moved reports whether the current or just-ended session exceeded the
// movement threshold
func (c *Controller) Moved() bool {
	return c.session.Moved
}

// Mode returns the current state
func (c *Controller) Mode() Mode {
	return c.mode
}

// Dragging reports whether a drag session is active
func (c *Controller) Dragging() bool {
	return c.mode == ModeDragging
}

// Resizing reports whether a resize session is active
func (c *Controller) Resizing() bool {
	return c.mode == ModeResizing
}

// Position returns the element position
func (c *Controller) Position() fyne.Position {
	return c.position
}

// Size returns the element size
func (c *Controller) Size() fyne.Size {
	return c.size
}

// SetPosition moves the element outside of a session, applying the clamp
func (c *Controller) SetPosition(pos fyne.Position) {
	c.position = c.clamp(pos, c.size)
}

// SetSize resizes the element outside of a session. The minimum size only
// applies to resize sessions.
func (c *Controller) SetSize(size fyne.Size) {
	c.size = size
}

func (c *Controller) notify(fn func(Mode), mode Mode) {
	if fn != nil {
		fn(mode)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/solarclip/internal/drag"
)

// DragSurface feeds primary-button presses on its content into a
// drag.Controller, either moving or resizing the owning element. All
// positions are absolute canvas coordinates.
type DragSurface struct {
	widget.BaseWidget

	content fyne.CanvasObject
	ctrl    *drag.Controller
	resize  bool
	pressed bool

	// OnChanged runs after the controller changed the element geometry.
	OnChanged func()
	// OnClick runs on release when the press did not turn into a drag.
	OnClick func()
	// OnPointer receives pointer positions while a session is active.
	OnPointer func(fyne.Position)
}

// NewDragSurface creates a surface that moves the element owned by ctrl
func NewDragSurface(content fyne.CanvasObject, ctrl *drag.Controller) *DragSurface {
	s := &DragSurface{content: content, ctrl: ctrl}
	s.ExtendBaseWidget(s)
	return s
}

// NewResizeSurface creates a surface that resizes the element owned by ctrl
func NewResizeSurface(content fyne.CanvasObject, ctrl *drag.Controller) *DragSurface {
	s := NewDragSurface(content, ctrl)
	s.resize = true
	return s
}

// CreateRenderer implements fyne.Widget
func (s *DragSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// MouseDown implements desktop.Mouseable
func (s *DragSurface) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.pressed = true
	if s.resize {
		s.ctrl.BeginResize(ev.AbsolutePosition)
	} else {
		s.ctrl.BeginDrag(ev.AbsolutePosition)
	}
}

// MouseUp implements desktop.Mouseable. A release that follows a drag beyond
// the threshold is not a click.
func (s *DragSurface) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	wasPressed := s.pressed
	s.pressed = false
	s.ctrl.End()

	if !wasPressed || s.resize || s.OnClick == nil {
		return
	}
	if s.ctrl.ShouldSuppressClick() {
		return
	}
	s.OnClick()
}

// Dragged implements fyne.Draggable
func (s *DragSurface) Dragged(ev *fyne.DragEvent) {
	if s.ctrl.Mode() == drag.ModeIdle {
		return
	}
	if s.ctrl.Move(ev.AbsolutePosition) && s.OnChanged != nil {
		s.OnChanged()
	}
	if s.OnPointer != nil {
		s.OnPointer(ev.AbsolutePosition)
	}
}

// DragEnd implements fyne.Draggable. The release may land outside the
// surface (e.g. the widget stopped at the rail end), so the session ends here
// as well as in MouseUp.
func (s *DragSurface) DragEnd() {
	s.ctrl.End()
}

// HoverArea reports pointer presence over the non-interactive parts of its
// content. fyne delivers hover to the topmost hoverable object only, so a
// button inside the area produces MouseOut on the area.
type HoverArea struct {
	widget.BaseWidget

	content fyne.CanvasObject

	OnEnter   func()
	OnLeave   func()
	OnPointer func(fyne.Position)
}

// NewHoverArea wraps content
func NewHoverArea(content fyne.CanvasObject) *HoverArea {
	a := &HoverArea{content: content}
	a.ExtendBaseWidget(a)
	return a
}

// CreateRenderer implements fyne.Widget
func (a *HoverArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(a.content)
}

// MouseIn implements desktop.Hoverable
func (a *HoverArea) MouseIn(ev *desktop.MouseEvent) {
	if a.OnEnter != nil {
		a.OnEnter()
	}
	a.pointer(ev.AbsolutePosition)
}

// MouseMoved implements desktop.Hoverable
func (a *HoverArea) MouseMoved(ev *desktop.MouseEvent) {
	a.pointer(ev.AbsolutePosition)
}

// MouseOut implements desktop.Hoverable
func (a *HoverArea) MouseOut() {
	if a.OnLeave != nil {
		a.OnLeave()
	}
}

func (a *HoverArea) pointer(p fyne.Position) {
	if a.OnPointer != nil {
		a.OnPointer(p)
	}
}

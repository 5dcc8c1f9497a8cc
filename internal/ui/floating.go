package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/solarclip/internal/drag"
	"github.com/ytget/solarclip/internal/model"
)

// FloatingWidget is the edge-anchored strip: a drag handle that toggles the
// slot list, the list itself and the Config button.
type FloatingWidget struct {
	localization *Localization
	ctrl         *drag.Controller
	onCopy       func(index int)
	onConfig     func()

	// OnMoved runs after a drag changed the position.
	OnMoved func()
	// OnResized runs after expanding, collapsing or relabelling.
	OnResized func()

	mode        model.ThemeMode
	expanded    bool
	slots       model.Slots
	copiedID    int
	copiedTimer *time.Timer

	background *canvas.Rectangle
	handle     *DragSurface
	list       *fyne.Container
	body       *fyne.Container
	area       *HoverArea
}

// NewFloatingWidget creates a collapsed floating widget
func NewFloatingWidget(localization *Localization, ctrl *drag.Controller, mode model.ThemeMode, onCopy func(index int), onConfig func()) *FloatingWidget {
	w := &FloatingWidget{
		localization: localization,
		ctrl:         ctrl,
		onCopy:       onCopy,
		onConfig:     onConfig,
		mode:         mode,
	}
	w.createUI()
	return w
}

func (w *FloatingWidget) createUI() {
	w.background = canvas.NewRectangle(SurfaceColor(w.mode))
	w.background.CornerRadius = 12
	w.background.StrokeColor = AccentColor()
	w.background.StrokeWidth = 1

	handleBg := canvas.NewRectangle(AccentColor())
	handleBg.CornerRadius = 12
	handleBg.SetMinSize(fyne.NewSize(HandleWidth, HandleMinHeight))

	sun := canvas.NewText(IconSun, colorLightText)
	sun.TextSize = 22
	sun.Alignment = fyne.TextAlignCenter
	grip := canvas.NewText(IconHandle, colorLightText)
	grip.Alignment = fyne.TextAlignCenter

	w.handle = NewDragSurface(container.NewStack(handleBg, container.NewVBox(layout.NewSpacer(), sun, grip, layout.NewSpacer())), w.ctrl)
	w.handle.OnClick = w.Toggle
	w.handle.OnChanged = func() {
		if w.OnMoved != nil {
			w.OnMoved()
		}
	}

	title := widget.NewLabelWithStyle(w.localization.GetText(KeyQuickPaste), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	hint := widget.NewLabel(w.localization.GetText(KeyHandleHint))
	hint.Importance = widget.LowImportance
	hint.SizeName = theme.SizeNameCaptionText

	w.list = container.NewVBox()
	configBtn := widget.NewButtonWithIcon(w.localization.GetText(KeyConfig), theme.SettingsIcon(), func() {
		if w.onConfig != nil {
			w.onConfig()
		}
	})

	w.body = container.NewVBox(title, hint, w.list, widget.NewSeparator(), configBtn)
	w.body.Hide()

	content := container.NewBorder(nil, nil, w.handle, nil, container.NewPadded(w.body))
	w.area = NewHoverArea(container.NewStack(w.background, content))
}

// Object returns the canvas object to place on the overlay
func (w *FloatingWidget) Object() fyne.CanvasObject {
	return w.area
}

// Area returns the hover area covering the whole widget
func (w *FloatingWidget) Area() *HoverArea {
	return w.area
}

// Expanded reports whether the slot list is shown
func (w *FloatingWidget) Expanded() bool {
	return w.expanded
}

// Toggle expands or collapses the slot list
func (w *FloatingWidget) Toggle() {
	w.expanded = !w.expanded
	if w.expanded {
		w.body.Show()
	} else {
		w.body.Hide()
	}
	w.resized()
}

// SetSlots replaces the slot buttons
func (w *FloatingWidget) SetSlots(slots model.Slots) {
	w.slots = slots.Clone()
	w.rebuild()
}

// MarkCopied shows the check mark on slot id for a short time
func (w *FloatingWidget) MarkCopied(id int) {
	w.copiedID = id
	w.rebuild()

	if w.copiedTimer != nil {
		w.copiedTimer.Stop()
	}
	w.copiedTimer = time.AfterFunc(CopiedIndicatorDuration, func() {
		fyne.Do(func() {
			if w.copiedID == id {
				w.copiedID = 0
				w.rebuild()
			}
		})
	})
}

// CopiedID returns the slot currently showing the check mark, or 0
func (w *FloatingWidget) CopiedID() int {
	return w.copiedID
}

// ApplyTheme repaints the surface for mode
func (w *FloatingWidget) ApplyTheme(mode model.ThemeMode) {
	w.mode = mode
	w.background.FillColor = SurfaceColor(mode)
	w.background.Refresh()
	w.area.Refresh()
}

func (w *FloatingWidget) rebuild() {
	w.list.RemoveAll()
	for i, slot := range w.slots {
		index := i
		icon := theme.ContentCopyIcon()
		if slot.ID == w.copiedID {
			icon = theme.ConfirmIcon()
		}
		btn := widget.NewButtonWithIcon(truncateLabel(slot.DisplayLabel()), icon, func() {
			if w.onCopy != nil {
				w.onCopy(index)
			}
		})
		btn.Alignment = widget.ButtonAlignLeading
		btn.IconPlacement = widget.ButtonIconTrailingText
		w.list.Add(container.NewGridWrap(fyne.NewSize(SlotButtonWidth, btn.MinSize().Height), btn))
	}
	w.list.Refresh()
	w.resized()
}

func (w *FloatingWidget) resized() {
	if w.OnResized != nil {
		w.OnResized()
	}
}

// truncateLabel shortens long labels so the strip keeps a fixed width
func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= MaxButtonLabelLen {
		return label
	}
	return string(runes[:MaxButtonLabelLen-1]) + Ellipsis
}

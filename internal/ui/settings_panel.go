package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/solarclip/internal/drag"
	"github.com/ytget/solarclip/internal/model"
)

// Theme toggle glyphs: the button shows the mode it switches to.
const (
	glyphMoon = "☾"
	glyphSun  = "☀"
)

// SettingsPanel edits slot labels and content. It is dragged by its header
// and sidebar and resized from the bottom-right grip; both share one
// controller, so a drag and a resize never overlap.
type SettingsPanel struct {
	localization *Localization
	ctrl         *drag.Controller
	onUpdate     func(id int, field model.SlotField, value string)
	applying     bool

	OnClose       func()
	OnQuit        func()
	OnToggleTheme func()
	OnRevealFile  func()
	// OnChanged runs after a drag or resize changed the geometry.
	OnChanged func()

	mode   model.ThemeMode
	shown  bool
	placed bool

	labelEntries   map[int]*widget.Entry
	contentEntries map[int]*widget.Entry

	background *canvas.Rectangle
	themeBtn   *widget.Button
	form       *fyne.Container
	area       *HoverArea
}

// NewSettingsPanel creates a hidden settings panel
func NewSettingsPanel(localization *Localization, ctrl *drag.Controller, mode model.ThemeMode, onUpdate func(id int, field model.SlotField, value string)) *SettingsPanel {
	p := &SettingsPanel{
		localization:   localization,
		ctrl:           ctrl,
		onUpdate:       onUpdate,
		mode:           mode,
		labelEntries:   make(map[int]*widget.Entry),
		contentEntries: make(map[int]*widget.Entry),
	}
	p.createUI()
	p.area.Hide()
	return p
}

func (p *SettingsPanel) createUI() {
	p.background = canvas.NewRectangle(SurfaceColor(p.mode))
	p.background.CornerRadius = 14
	p.background.StrokeColor = AccentColor()
	p.background.StrokeWidth = 2

	// Header
	sun := canvas.NewText(IconSun, AccentColor())
	sun.TextSize = 18
	title := widget.NewLabelWithStyle(p.localization.GetText(KeySettings), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	headerBg := canvas.NewRectangle(color.Transparent)
	headerBg.SetMinSize(fyne.NewSize(0, HeaderHeight))
	headerDrag := p.dragSurface(container.NewStack(headerBg, container.NewHBox(container.NewCenter(sun), title)))

	closeBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), p.call(&p.OnClose))
	closeBtn.Importance = widget.LowImportance
	header := container.NewBorder(nil, widget.NewSeparator(), nil, closeBtn, headerDrag)

	// Sidebar: the empty upper part drags, the buttons below do not
	sidebarBg := canvas.NewRectangle(color.Transparent)
	sidebarBg.SetMinSize(fyne.NewSize(SidebarWidth, 0))
	sidebarDrag := p.dragSurface(sidebarBg)

	p.themeBtn = widget.NewButton(themeGlyph(p.mode), p.call(&p.OnToggleTheme))
	p.themeBtn.Importance = widget.LowImportance
	quitBtn := widget.NewButtonWithIcon("", theme.LogoutIcon(), p.call(&p.OnQuit))
	quitBtn.Importance = widget.DangerImportance
	sidebar := container.NewBorder(nil, container.NewVBox(p.themeBtn, quitBtn), nil, nil, sidebarDrag)

	// Form
	heading := widget.NewLabelWithStyle(p.localization.GetText(KeyManageSlots), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.form = container.NewVBox()
	note := widget.NewRichTextFromMarkdown(fmt.Sprintf("**%s** %s",
		p.localization.GetText(KeyNote), p.localization.GetText(KeyAutoSaved)))
	revealBtn := widget.NewButtonWithIcon(p.localization.GetText(KeyShowSlotsFile), theme.FolderOpenIcon(), p.call(&p.OnRevealFile))
	revealBtn.Importance = widget.LowImportance
	scroll := container.NewVScroll(container.NewPadded(container.NewVBox(heading, p.form, widget.NewSeparator(), note, revealBtn)))

	// Resize grip
	gripBg := canvas.NewRectangle(color.Transparent)
	gripBg.SetMinSize(fyne.NewSize(GripSize, GripSize))
	gripMark := canvas.NewText("◢", AccentColor())
	gripMark.Alignment = fyne.TextAlignTrailing
	grip := NewResizeSurface(container.NewStack(gripBg, gripMark), p.ctrl)
	grip.OnChanged = p.changed
	footer := container.NewBorder(nil, nil, nil, grip)

	body := container.NewBorder(header, footer, sidebar, nil, scroll)
	p.area = NewHoverArea(container.NewStack(p.background, body))
}

func (p *SettingsPanel) dragSurface(content fyne.CanvasObject) *DragSurface {
	s := NewDragSurface(content, p.ctrl)
	s.OnChanged = p.changed
	return s
}

// call defers reading the callback field until the button is tapped
func (p *SettingsPanel) call(fn *func()) func() {
	return func() {
		if *fn != nil {
			(*fn)()
		}
	}
}

func (p *SettingsPanel) changed() {
	if p.OnChanged != nil {
		p.OnChanged()
	}
}

// Object returns the canvas object to place on the overlay
func (p *SettingsPanel) Object() fyne.CanvasObject {
	return p.area
}

// Area returns the hover area covering the whole panel
func (p *SettingsPanel) Area() *HoverArea {
	return p.area
}

// Shown reports whether the panel is open
func (p *SettingsPanel) Shown() bool {
	return p.shown
}

// Show opens the panel
func (p *SettingsPanel) Show() {
	p.shown = true
	p.area.Show()
}

// Hide closes the panel
func (p *SettingsPanel) Hide() {
	p.shown = false
	p.area.Hide()
}

// SetSlots fills the editors. Entries already showing the value are left
// alone, and programmatic changes are not reported back through onUpdate.
func (p *SettingsPanel) SetSlots(slots model.Slots) {
	if len(slots) != len(p.labelEntries) {
		p.build(slots)
		return
	}
	p.applying = true
	defer func() { p.applying = false }()

	for _, slot := range slots {
		if e, ok := p.labelEntries[slot.ID]; ok && e.Text != slot.Label {
			e.SetText(slot.Label)
		}
		if e, ok := p.contentEntries[slot.ID]; ok && e.Text != slot.Content {
			e.SetText(slot.Content)
		}
	}
}

func (p *SettingsPanel) build(slots model.Slots) {
	p.form.RemoveAll()
	p.labelEntries = make(map[int]*widget.Entry, len(slots))
	p.contentEntries = make(map[int]*widget.Entry, len(slots))

	for _, slot := range slots {
		id := slot.ID

		name := widget.NewLabelWithStyle(fmt.Sprintf(p.localization.GetText(KeySlotName), id), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

		labelEntry := widget.NewEntry()
		labelEntry.SetPlaceHolder(p.localization.GetText(KeyLabelPlaceholder))
		labelEntry.SetText(slot.Label)
		labelEntry.OnChanged = func(value string) {
			p.edited(id, model.SlotFieldLabel, value)
		}

		contentEntry := widget.NewMultiLineEntry()
		contentEntry.SetPlaceHolder(p.localization.GetText(KeyContentPlaceholder))
		contentEntry.SetMinRowsVisible(ContentEntryRows)
		contentEntry.Wrapping = fyne.TextWrapWord
		contentEntry.SetText(slot.Content)
		contentEntry.OnChanged = func(value string) {
			p.edited(id, model.SlotFieldContent, value)
		}

		p.labelEntries[id] = labelEntry
		p.contentEntries[id] = contentEntry
		p.form.Add(container.NewVBox(
			container.NewBorder(nil, nil, name, nil, labelEntry),
			contentEntry,
		))
	}
	p.form.Refresh()
}

func (p *SettingsPanel) edited(id int, field model.SlotField, value string) {
	if p.applying {
		return
	}
	p.onUpdate(id, field, value)
}

// LabelEntry returns the label editor of slot id
func (p *SettingsPanel) LabelEntry(id int) *widget.Entry {
	return p.labelEntries[id]
}

// ContentEntry returns the content editor of slot id
func (p *SettingsPanel) ContentEntry(id int) *widget.Entry {
	return p.contentEntries[id]
}

// ApplyTheme repaints the panel for mode
func (p *SettingsPanel) ApplyTheme(mode model.ThemeMode) {
	p.mode = mode
	p.background.FillColor = SurfaceColor(mode)
	p.background.Refresh()
	p.themeBtn.SetText(themeGlyph(mode))
	p.area.Refresh()
}

func themeGlyph(mode model.ThemeMode) string {
	if mode.IsDark() {
		return glyphSun
	}
	return glyphMoon
}

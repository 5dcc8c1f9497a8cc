package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/solarclip/internal/clip"
	"github.com/ytget/solarclip/internal/config"
	"github.com/ytget/solarclip/internal/drag"
	"github.com/ytget/solarclip/internal/hotkey"
	"github.com/ytget/solarclip/internal/interaction"
	"github.com/ytget/solarclip/internal/model"
	"github.com/ytget/solarclip/internal/platform"
)

// SlotEditor is the slot store as seen by the UI
type SlotEditor interface {
	SetUpdateCallback(func(model.Slots))
	SetLoadCallback(func(model.Slots))
	Slots() model.Slots
	UpdateField(id int, field model.SlotField, value string) model.Slots
}

// Services groups the collaborators the overlay drives.
type Services struct {
	Store      SlotEditor
	Clipboard  *clip.Service
	Dispatch   func(hotkey.Action)
	Visibility *model.Visibility
	Tracker    *interaction.Tracker
	Overlay    *platform.Overlay
	SlotsFile  string
}

// RootUI is the transparent overlay holding the floating widget, the
// settings panel and the missing-clipboard banner.
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	svc          Services

	mode     model.ThemeMode
	viewport fyne.Size

	widget      *FloatingWidget
	widgetCtrl  *drag.Controller
	widgetGuard *interaction.HoverGuard

	panel      *SettingsPanel
	panelCtrl  *drag.Controller
	panelGuard *interaction.HoverGuard

	layer   *HoverArea
	banner  fyne.CanvasObject
	content *fyne.Container

	unsubscribe func()
}

// NewRootUI builds the overlay and sets it as the window content
func NewRootUI(app fyne.App, window fyne.Window, settings *config.Settings, localization *Localization, svc Services) *RootUI {
	ui := &RootUI{
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
		svc:          svc,
		mode:         settings.GetThemeMode(),
	}

	app.Settings().SetTheme(NewSolarTheme(ui.mode))
	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetPadded(false)

	ui.setupUI()
	ui.wireServices()
	return ui
}

func (ui *RootUI) setupUI() {
	tracker := ui.svc.Tracker

	// Floating widget: vertical rail on the right edge
	ui.widgetCtrl = drag.NewController(
		fyne.NewPos(0, WidgetTop),
		fyne.NewSize(HandleWidth, HandleMinHeight),
		drag.Config{Clamp: drag.VerticalRail(0, ui.viewportHeight)},
	)
	ui.widgetCtrl.SetHooks(
		func(drag.Mode) { tracker.Add(interaction.SourceWidgetDrag) },
		func(drag.Mode) { tracker.Remove(interaction.SourceWidgetDrag) },
	)
	ui.widget = NewFloatingWidget(ui.localization, ui.widgetCtrl, ui.mode, ui.onCopySlot, ui.togglePanel)
	ui.widget.OnMoved = ui.placeWidget
	ui.widget.OnResized = ui.placeWidget
	ui.bindHover(ui.widget.Area(), interaction.SourceWidgetHover)
	ui.widgetGuard = interaction.NewHoverGuard(tracker, interaction.SourceWidgetHover, ui.widgetBounds, ui.widgetCtrl.Dragging)

	// Settings panel: free movement, 400x400 resize floor
	ui.panelCtrl = drag.NewController(
		fyne.NewPos(0, PanelTop),
		fyne.NewSize(PanelDefaultWidth, PanelDefaultHeight),
		drag.Config{MinSize: fyne.NewSize(PanelMinWidth, PanelMinHeight)},
	)
	ui.panelCtrl.SetHooks(
		func(m drag.Mode) { tracker.Add(panelSource(m)) },
		func(m drag.Mode) { tracker.Remove(panelSource(m)) },
	)
	ui.panel = NewSettingsPanel(ui.localization, ui.panelCtrl, ui.mode, ui.onUpdateField)
	ui.panel.OnChanged = ui.placePanel
	ui.panel.OnClose = ui.closePanel
	ui.panel.OnQuit = ui.app.Quit
	ui.panel.OnToggleTheme = ui.toggleTheme
	ui.panel.OnRevealFile = ui.onRevealSlotsFile
	ui.bindHover(ui.panel.Area(), interaction.SourcePanelHover)
	ui.panelGuard = interaction.NewHoverGuard(tracker, interaction.SourcePanelHover, ui.panelBounds, func() bool {
		return ui.panelCtrl.Mode() != drag.ModeIdle
	})

	// Background layer sees the pointer wherever no surface is
	ui.layer = NewHoverArea(canvas.NewRectangle(color.Transparent))
	ui.layer.OnPointer = ui.pointerMoved

	ui.banner = ui.createBanner()

	ui.content = container.New(&overlayLayout{ui: ui}, ui.layer, ui.widget.Object(), ui.panel.Object(), ui.banner)
	ui.window.SetContent(ui.content)
}

func (ui *RootUI) wireServices() {
	svc := ui.svc

	slots := svc.Store.Slots()
	ui.widget.SetSlots(slots)
	ui.panel.SetSlots(slots)

	// Update notifications echo the panel's own edits, so only the widget
	// follows them. The panel refreshes when persisted slots arrive.
	svc.Store.SetUpdateCallback(func(slots model.Slots) {
		fyne.Do(func() { ui.widget.SetSlots(slots) })
	})
	svc.Store.SetLoadCallback(func(slots model.Slots) {
		fyne.Do(func() { ui.panel.SetSlots(slots) })
	})

	svc.Clipboard.SetResultCallback(func(res clip.CopyResult) {
		fyne.Do(func() { ui.onCopyResult(res) })
	})

	svc.Visibility.SetChangeCallback(func(visible bool) {
		fyne.Do(func() { ui.applyVisibility(visible) })
	})

	ui.unsubscribe = svc.Tracker.Subscribe(func(active bool) {
		slog.Debug("overlay capture changed", "capture", active, "sources", svc.Tracker.Sources().String())
	})

	if svc.Overlay != nil {
		svc.Overlay.SetPointerCallback(func(p fyne.Position) {
			fyne.Do(func() { ui.pointerMoved(ui.screenToCanvas(p)) })
		})
	}
}

func (ui *RootUI) createBanner() fyne.CanvasObject {
	bg := canvas.NewRectangle(BannerColor())
	bg.CornerRadius = 6
	icon := widget.NewIcon(theme.ErrorIcon())
	text := canvas.NewText(ui.localization.GetText(KeyClipboardMissing), color.White)
	text.TextStyle = fyne.TextStyle{Bold: true}

	banner := container.NewStack(bg, container.NewPadded(container.NewHBox(icon, text)))
	if ui.svc.Clipboard.Available() {
		banner.Hide()
	} else {
		slog.Warn("clipboard integration missing", "backend", ui.svc.Clipboard.BackendName())
	}
	return banner
}

// bindHover maps enter/leave on area to a tracker source
func (ui *RootUI) bindHover(area *HoverArea, src interaction.Source) {
	area.OnEnter = func() { ui.svc.Tracker.Add(src) }
	area.OnLeave = func() { ui.svc.Tracker.Remove(src) }
	area.OnPointer = ui.pointerMoved
}

// pointerMoved re-detects hover from raw coordinates and clears hover
// flags that outlived their surface.
func (ui *RootUI) pointerMoved(p fyne.Position) {
	tracker := ui.svc.Tracker

	if ui.widget.Object().Visible() && ui.widgetBounds().Contains(p) {
		tracker.Add(interaction.SourceWidgetHover)
	} else {
		ui.widgetGuard.PointerMoved(p)
	}

	if ui.panel.Shown() && ui.panel.Object().Visible() && ui.panelBounds().Contains(p) {
		tracker.Add(interaction.SourcePanelHover)
	} else {
		ui.panelGuard.PointerMoved(p)
	}
}

func (ui *RootUI) widgetBounds() interaction.Bounds {
	obj := ui.widget.Object()
	return interaction.NewBounds(obj.Position(), obj.Size())
}

func (ui *RootUI) panelBounds() interaction.Bounds {
	obj := ui.panel.Object()
	return interaction.NewBounds(obj.Position(), obj.Size())
}

func (ui *RootUI) viewportHeight() float32 {
	return ui.viewport.Height
}

// screenToCanvas converts forwarded screen pixels to canvas units. The
// overlay covers the screen from its origin.
func (ui *RootUI) screenToCanvas(p fyne.Position) fyne.Position {
	scale := ui.window.Canvas().Scale()
	if scale <= 0 {
		scale = 1
	}
	return fyne.NewPos(p.X/scale, p.Y/scale)
}

// layout places every surface for a viewport of size
func (ui *RootUI) layout(size fyne.Size) {
	ui.viewport = size

	ui.layer.Move(fyne.NewPos(0, 0))
	ui.layer.Resize(size)

	ui.placeWidget()
	ui.placePanel()

	ui.banner.Move(fyne.NewPos(BannerMargin, BannerMargin))
	ui.banner.Resize(ui.banner.MinSize())
}

// placeWidget anchors the widget to the right edge at the controller's y
func (ui *RootUI) placeWidget() {
	obj := ui.widget.Object()
	size := obj.MinSize()

	ui.widgetCtrl.SetSize(size)
	if ui.viewport.Height > 0 {
		ui.widgetCtrl.SetPosition(ui.widgetCtrl.Position())
	}

	obj.Resize(size)
	obj.Move(fyne.NewPos(ui.viewport.Width-size.Width, ui.widgetCtrl.Position().Y))
}

func (ui *RootUI) placePanel() {
	if !ui.panel.Shown() {
		return
	}
	if !ui.panel.placed && ui.viewport.Width > 0 {
		ui.panelCtrl.SetPosition(fyne.NewPos(ui.viewport.Width/2-PanelDefaultWidth/2, PanelTop))
		ui.panel.placed = true
	}

	obj := ui.panel.Object()
	obj.Move(ui.panelCtrl.Position())
	obj.Resize(ui.panelCtrl.Size())
}

func (ui *RootUI) togglePanel() {
	if ui.panel.Shown() {
		ui.closePanel()
		return
	}
	ui.panel.Show()
	ui.placePanel()
}

func (ui *RootUI) closePanel() {
	ui.panelCtrl.End()
	ui.panel.Hide()
	ui.svc.Tracker.Remove(interaction.SourcePanelHover)
}

func (ui *RootUI) toggleTheme() {
	ui.mode = ui.settings.ToggleThemeMode()
	ui.app.Settings().SetTheme(NewSolarTheme(ui.mode))
	ui.widget.ApplyTheme(ui.mode)
	ui.panel.ApplyTheme(ui.mode)
	slog.Info("theme changed", "mode", ui.mode)
}

func (ui *RootUI) onCopySlot(index int) {
	ui.svc.Dispatch(hotkey.CopySlot(index))
}

func (ui *RootUI) onUpdateField(id int, field model.SlotField, value string) {
	ui.svc.Store.UpdateField(id, field, value)
}

func (ui *RootUI) onCopyResult(res clip.CopyResult) {
	if res.Err == nil {
		ui.widget.MarkCopied(res.SlotID)
		return
	}
	ui.showCopyFallback(res.Content)
}

// applyVisibility shows or hides every surface. Hidden surfaces can not be
// hovered or dragged, so their sources are released.
func (ui *RootUI) applyVisibility(visible bool) {
	if visible {
		ui.widget.Object().Show()
		if ui.panel.Shown() {
			ui.panel.Object().Show()
		}
		ui.content.Refresh()
		return
	}

	ui.widgetCtrl.End()
	ui.panelCtrl.End()
	ui.widget.Object().Hide()
	ui.panel.Object().Hide()

	tracker := ui.svc.Tracker
	tracker.Remove(interaction.SourceWidgetHover)
	tracker.Remove(interaction.SourcePanelHover)
}

func (ui *RootUI) onRevealSlotsFile() {
	if err := platform.RevealInFileManager(ui.svc.SlotsFile); err != nil {
		slog.Warn("failed to reveal slots file", "path", ui.svc.SlotsFile, "err", err)
		ui.showToast(ui.localization.GetText(KeyErrorOpeningFile), err.Error())
	}
}

// Close releases listeners and stops pointer forwarding
func (ui *RootUI) Close() {
	if ui.unsubscribe != nil {
		ui.unsubscribe()
	}
	if ui.svc.Overlay != nil {
		ui.svc.Overlay.Close()
	}
}

// Widget returns the floating widget
func (ui *RootUI) Widget() *FloatingWidget {
	return ui.widget
}

// Panel returns the settings panel
func (ui *RootUI) Panel() *SettingsPanel {
	return ui.panel
}

func panelSource(m drag.Mode) interaction.Source {
	if m == drag.ModeResizing {
		return interaction.SourcePanelResize
	}
	return interaction.SourcePanelDrag
}

// overlayLayout positions surfaces absolutely; the overlay itself has no
// minimum size.
type overlayLayout struct {
	ui *RootUI
}

func (l *overlayLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	l.ui.layout(size)
}

func (l *overlayLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}

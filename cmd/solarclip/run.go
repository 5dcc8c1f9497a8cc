package main

import (
	"context"
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"

	"github.com/ytget/solarclip/internal/clip"
	"github.com/ytget/solarclip/internal/config"
	"github.com/ytget/solarclip/internal/hotkey"
	"github.com/ytget/solarclip/internal/hotkey/global"
	"github.com/ytget/solarclip/internal/interaction"
	"github.com/ytget/solarclip/internal/logging"
	"github.com/ytget/solarclip/internal/model"
	"github.com/ytget/solarclip/internal/platform"
	"github.com/ytget/solarclip/internal/slots"
	"github.com/ytget/solarclip/internal/ui"
)

func runOverlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logging.Setup(logging.ParseFormat(cfg.Log.Format), logging.ParseLevel(cfg.Log.Level))
	slog.Info("solarclip starting", "version", Version, "slots_file", cfg.Slots.File, "slots", cfg.Slots.Count)

	a := app.NewWithID(AppID)
	settings := config.NewSettings(a)

	localization := ui.NewLocalization()
	localization.SetLanguage(cfg.UI.Language)
	title := localization.GetText(ui.KeyAppTitle)
	window := newOverlayWindow(a, title)

	// Services
	overlay := platform.NewOverlay(title)
	tracker := interaction.NewTracker(overlay)
	visibility := model.NewVisibility()
	store := slots.NewService(slots.NewFilePersister(cfg.Slots.File), cfg.Slots.Count)
	copier := clip.NewService(clip.New())
	dispatcher := hotkey.NewDispatcher(store, copier, visibility)

	root := ui.NewRootUI(a, window, settings, localization, ui.Services{
		Store:      store,
		Clipboard:  copier,
		Dispatch:   dispatcher.Dispatch,
		Visibility: visibility,
		Tracker:    tracker,
		Overlay:    overlay,
		SlotsFile:  cfg.Slots.File,
	})

	// Hotkeys: global when enabled and registrable, window shortcuts otherwise
	copyMods, toggle := cfg.CopyModifiers(), cfg.ToggleBinding()
	var system hotkey.Source
	if cfg.Hotkeys.Global {
		system = global.NewSource(copyMods, cfg.Slots.Count, toggle)
	}
	local := hotkey.NewLocalSource(window.Canvas(), copyMods, cfg.Slots.Count, toggle)

	a.Lifecycle().SetOnStarted(func() {
		if err := overlay.PinTopmost(); err != nil && !errors.Is(err, platform.ErrUnsupported) {
			slog.Warn("failed to keep overlay on top", "err", err)
		}
		tracker.Sync()

		if _, err := dispatcher.Attach(system, local); err != nil {
			slog.Error("no hotkeys available", "err", err)
		}

		go store.Load(context.Background())
	})

	a.Lifecycle().SetOnStopped(func() {
		dispatcher.Detach()
		root.Close()
		store.Wait()
		copier.Wait()
		slog.Info("solarclip stopped")
	})

	window.SetFullScreen(true)
	window.ShowAndRun()
	return nil
}

// newOverlayWindow returns a borderless window where the driver supports one
func newOverlayWindow(a fyne.App, title string) fyne.Window {
	if drv, ok := a.(desktop.App); ok {
		w := drv.NewSplashWindow()
		w.SetTitle(title)
		return w
	}
	return a.NewWindow(title)
}

package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/solarclip/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestThemeMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	mode := settings.GetThemeMode()
	if mode != DefaultThemeMode {
		t.Errorf("Expected default theme %s, got %s", DefaultThemeMode, mode)
	}

	// Test setting custom value
	settings.SetThemeMode(model.ThemeDark)

	retrieved := settings.GetThemeMode()
	if retrieved != model.ThemeDark {
		t.Errorf("Expected theme %s, got %s", model.ThemeDark, retrieved)
	}

	// Stored value is the plain string
	if raw := app.Preferences().String(KeyThemeMode); raw != "dark" {
		t.Errorf("Expected stored value 'dark', got %q", raw)
	}
}

func TestThemeMode_InvalidStoredValue(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	app.Preferences().SetString(KeyThemeMode, "sepia")
	if mode := settings.GetThemeMode(); mode != model.ThemeLight {
		t.Errorf("Unknown stored theme should read as light, got %s", mode)
	}
}

func TestToggleThemeMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if mode := settings.ToggleThemeMode(); mode != model.ThemeDark {
		t.Errorf("Expected first toggle to select dark, got %s", mode)
	}
	if mode := settings.ToggleThemeMode(); mode != model.ThemeLight {
		t.Errorf("Expected second toggle to select light, got %s", mode)
	}
	if mode := settings.GetThemeMode(); mode != model.ThemeLight {
		t.Errorf("Expected persisted theme light, got %s", mode)
	}
}

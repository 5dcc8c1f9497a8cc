package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/solarclip/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyThemeMode = "theme_mode"
)

// Default values
const (
	DefaultThemeMode = model.ThemeLight
)

// Settings manages user preferences persisted by Fyne, independently of the
// slot file.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetThemeMode returns the persisted theme mode
func (s *Settings) GetThemeMode() model.ThemeMode {
	mode := s.app.Preferences().String(KeyThemeMode)
	if mode == "" {
		return DefaultThemeMode
	}
	return model.ParseThemeMode(mode)
}

// SetThemeMode persists the theme mode
func (s *Settings) SetThemeMode(mode model.ThemeMode) {
	s.app.Preferences().SetString(KeyThemeMode, string(model.ParseThemeMode(string(mode))))
}

// ToggleThemeMode flips and persists the theme mode, returning the new value
func (s *Settings) ToggleThemeMode() model.ThemeMode {
	next := s.GetThemeMode().Toggle()
	s.SetThemeMode(next)
	return next
}

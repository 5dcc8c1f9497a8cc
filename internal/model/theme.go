package model

// ThemeMode represents the global light/dark appearance
type ThemeMode string

const (
	// ThemeLight is the default appearance
	ThemeLight ThemeMode = "light"

	// ThemeDark is the night appearance
	ThemeDark ThemeMode = "dark"
)

// String returns the string representation of ThemeMode
func (m ThemeMode) String() string {
	return string(m)
}

// IsDark returns true for the dark appearance
func (m ThemeMode) IsDark() bool {
	return m == ThemeDark
}

// Toggle returns the opposite mode
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseThemeMode converts a persisted value to a ThemeMode, defaulting to light
func ParseThemeMode(s string) ThemeMode {
	if ThemeMode(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

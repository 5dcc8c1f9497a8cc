package ui

// Package ui contains the Fyne-based overlay for the application.
// It renders the floating widget and the settings panel, feeds pointer activity
// into the interaction tracker and drag controllers, and reflects slot, theme
// and visibility changes. All UI strings are localized via Localization.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/solarclip/internal/model"
)

// Solar palette
var (
	colorAmber     = color.NRGBA{R: 234, G: 179, B: 8, A: 255}
	colorAmberSoft = color.NRGBA{R: 234, G: 179, B: 8, A: 51}
	colorLightBody = color.NRGBA{R: 254, G: 252, B: 232, A: 245}
	colorDarkBody  = color.NRGBA{R: 28, G: 25, B: 23, A: 245}
	colorLightText = color.NRGBA{R: 66, G: 32, B: 6, A: 255}
	colorDarkText  = color.NRGBA{R: 254, G: 243, B: 199, A: 255}
	colorLightEdit = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorDarkEdit  = color.NRGBA{R: 41, G: 37, B: 36, A: 255}
	colorBanner    = color.NRGBA{R: 239, G: 68, B: 68, A: 255}
)

// SolarTheme is a compact light/dark theme with a transparent window
// background, so only the widget and panel surfaces are painted.
type SolarTheme struct {
	mode model.ThemeMode
}

// NewSolarTheme creates the theme for mode
func NewSolarTheme(mode model.ThemeMode) fyne.Theme {
	return &SolarTheme{mode: mode}
}

func (t *SolarTheme) variant() fyne.ThemeVariant {
	if t.mode.IsDark() {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color returns theme colors. The requested variant is ignored; the
// persisted mode decides.
func (t *SolarTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	v := t.variant()
	switch name {
	case theme.ColorNameBackground:
		return color.Transparent
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return colorAmber
	case theme.ColorNameSelection, theme.ColorNameHover:
		return colorAmberSoft
	case theme.ColorNameError:
		return colorBanner
	case theme.ColorNameForeground:
		return TextColor(t.mode)
	case theme.ColorNameInputBackground:
		return InputColor(t.mode)
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return SurfaceColor(t.mode)
	}

	return theme.DefaultTheme().Color(name, v)
}

// Font returns theme fonts
func (t *SolarTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SolarTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *SolarTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 8
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

// SurfaceColor is the fill of the widget and panel bodies
func SurfaceColor(mode model.ThemeMode) color.Color {
	if mode.IsDark() {
		return colorDarkBody
	}
	return colorLightBody
}

// TextColor is the foreground color for mode
func TextColor(mode model.ThemeMode) color.Color {
	if mode.IsDark() {
		return colorDarkText
	}
	return colorLightText
}

// InputColor is the fill behind entries for mode
func InputColor(mode model.ThemeMode) color.Color {
	if mode.IsDark() {
		return colorDarkEdit
	}
	return colorLightEdit
}

// AccentColor is the handle and border color
func AccentColor() color.Color {
	return colorAmber
}

// BannerColor is the fill of the missing-integration banner
func BannerColor() color.Color {
	return colorBanner
}

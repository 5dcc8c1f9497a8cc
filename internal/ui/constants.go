package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSun    = "☀"
	IconHandle = "⋮"
	IconCopy   = "📋"
	IconCheck  = "✓"
	IconClose  = "×"
	IconError  = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	Ellipsis           = "…"
	MaxButtonLabelLen  = 18
)

// Floating widget sizing
const (
	HandleWidth     float32 = 50
	HandleMinHeight float32 = 120
	SlotButtonWidth float32 = 170
	WidgetTop       float32 = 32
)

// Settings panel sizing
const (
	PanelDefaultWidth  float32 = 500
	PanelDefaultHeight float32 = 600
	PanelMinWidth      float32 = 400
	PanelMinHeight     float32 = 400
	PanelTop           float32 = 100
	SidebarWidth       float32 = 64
	HeaderHeight       float32 = 44
	GripSize           float32 = 18
	ContentEntryRows           = 2
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Banner placement
const (
	BannerMargin float32 = 8
)

// Copied indicator
const (
	CopiedIndicatorDuration = 2 * time.Second
)

package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconStop     = "■"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconError    = "❌"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
	FrameResourceName   = "frame.png"
)

// Window sizing
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 560
)

// Timeline sizing
const (
	TimelineHeight      float32 = 36
	TimelineTrackHeight float32 = 8
	TimelineHandleWidth float32 = 10
	TimelinePlayheadW   float32 = 2
	TimelineMinWidth    float32 = 200

	// Touch target minimum size (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Preview sizing and behavior
const (
	PreviewWidth        float32 = 480
	PreviewHeight       float32 = 270
	PreviewTickInterval         = 200 * time.Millisecond
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 460
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Timeline colors
const (
	ColorNameTimelineTrack    fyne.ThemeColorName = "timelineTrack"
	ColorNameTimelineWindow   fyne.ThemeColorName = "timelineWindow"
	ColorNameTimelineHandle   fyne.ThemeColorName = "timelineHandle"
	ColorNameTimelinePlayhead fyne.ThemeColorName = "timelinePlayhead"
)

var (
	accentBlue = color.RGBA{R: 25, G: 118, B: 210, A: 255}
	alertRed   = color.RGBA{R: 183, G: 28, B: 28, A: 255}
)

// sharedColors do not depend on the variant
var sharedColors = map[fyne.ThemeColorName]color.Color{
	theme.ColorNamePrimary:    accentBlue,
	theme.ColorNameError:      alertRed,
	theme.ColorNameSuccess:    color.RGBA{R: 46, G: 160, B: 67, A: 255},
	theme.ColorNameWarning:    color.RGBA{R: 255, G: 193, B: 7, A: 255},
	ColorNameTimelineWindow:   color.RGBA{R: 25, G: 118, B: 210, A: 110},
	ColorNameTimelineHandle:   accentBlue,
	ColorNameTimelinePlayhead: alertRed,
}

var variantColors = map[fyne.ThemeVariant]map[fyne.ThemeColorName]color.Color{
	theme.VariantLight: {
		theme.ColorNameBackground: color.RGBA{R: 250, G: 250, B: 250, A: 255},
		theme.ColorNameForeground: color.RGBA{R: 33, G: 33, B: 33, A: 255},
		ColorNameTimelineTrack:    color.RGBA{R: 224, G: 224, B: 224, A: 255},
	},
	theme.VariantDark: {
		theme.ColorNameBackground: color.RGBA{R: 18, G: 18, B: 18, A: 255},
		theme.ColorNameForeground: color.White,
		ColorNameTimelineTrack:    color.RGBA{R: 66, G: 66, B: 66, A: 255},
	},
}

// compactSizes shrink the default paddings and text a little
var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:            3,
	theme.SizeNameInnerPadding:       6,
	theme.SizeNameLineSpacing:        2,
	theme.SizeNameScrollBar:          12,
	theme.SizeNameText:               13,
	theme.SizeNameHeadingText:        16,
	theme.SizeNameSubHeadingText:     13,
	theme.SizeNameCaptionText:        10,
	theme.SizeNameInputRadius:        3,
	theme.SizeNameSelectionRadius:    2,
	theme.SizeNameInlineIcon:         18,
	theme.SizeNameInputBorder:        1,
	theme.SizeNameSeparatorThickness: 1,
}

// CompactTheme is the default theme with tighter spacing and the timeline
// palette
type CompactTheme struct {
	fyne.Theme
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{Theme: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if c, ok := variantColors[variant][name]; ok {
		return c
	}
	if c, ok := sharedColors[name]; ok {
		return c
	}
	return t.Theme.Color(name, variant)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if s, ok := compactSizes[name]; ok {
		return s
	}
	return t.Theme.Size(name)
}

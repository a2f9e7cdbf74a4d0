package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestCompactTheme_Colors(t *testing.T) {
	th := NewCompactTheme()

	tests := []struct {
		name    string
		color   fyne.ThemeColorName
		variant fyne.ThemeVariant
		want    color.Color
	}{
		{"track light", ColorNameTimelineTrack, theme.VariantLight, color.RGBA{R: 224, G: 224, B: 224, A: 255}},
		{"track dark", ColorNameTimelineTrack, theme.VariantDark, color.RGBA{R: 66, G: 66, B: 66, A: 255}},
		{"handle", ColorNameTimelineHandle, theme.VariantDark, accentBlue},
		{"playhead", ColorNameTimelinePlayhead, theme.VariantLight, alertRed},
		{"dark foreground", theme.ColorNameForeground, theme.VariantDark, color.White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := th.Color(tt.color, tt.variant); got != tt.want {
				t.Errorf("Color(%s) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}

	want := theme.DefaultTheme().Color(theme.ColorNameHover, theme.VariantLight)
	if got := th.Color(theme.ColorNameHover, theme.VariantLight); got != want {
		t.Errorf("hover color = %v, want the default %v", got, want)
	}
}

func TestCompactTheme_Sizes(t *testing.T) {
	th := NewCompactTheme()

	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("padding = %v, want 3", got)
	}
	if got, want := th.Size(theme.SizeNameInlineIcon), float32(18); got != want {
		t.Errorf("inline icon = %v, want %v", got, want)
	}
	if got, want := th.Size(theme.SizeNameScrollBarSmall), theme.DefaultTheme().Size(theme.SizeNameScrollBarSmall); got != want {
		t.Errorf("small scroll bar = %v, want the default %v", got, want)
	}
}

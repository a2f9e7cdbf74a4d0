package ui

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "video-converter.png"
)

// LoadLogoResource loads the app icon from the working directory or from
// next to the executable. Without an icon file the theme video icon is used.
func LoadLogoResource() (fyne.Resource, error) {
	candidates := []string{AppIcon}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), AppIcon))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return fyne.LoadResourceFromPath(path)
	}
	return theme.FileVideoIcon(), nil
}

package ui

import (
	"context"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-converter/internal/config"
	"github.com/ytget/video-converter/internal/model"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings) {
	t.Helper()
	app := test.NewTempApp(t)
	window := test.NewTempWindow(t, widget.NewLabel(""))

	settings := config.NewSettings(app)
	settings.SetOutputDirectory(t.TempDir())

	sd := NewSettingsDialog(settings, NewLocalization(), window)
	sd.loadCurrentSettings()
	return sd, settings
}

func TestSettingsDialog_LoadsCurrentSettings(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	if sd.outputDirEntry.Text != settings.GetOutputDirectory() {
		t.Errorf("output dir entry = %q, want %q", sd.outputDirEntry.Text, settings.GetOutputDirectory())
	}
	if sd.ffmpegEntry.Text != config.DefaultFFmpegPath {
		t.Errorf("ffmpeg entry = %q, want %q", sd.ffmpegEntry.Text, config.DefaultFFmpegPath)
	}
	if sd.modeRadio.Selected != string(config.DefaultMode) {
		t.Errorf("mode = %q, want %q", sd.modeRadio.Selected, config.DefaultMode)
	}
	if sd.languageSelect.Selected != "System Default" {
		t.Errorf("language = %q, want System Default", sd.languageSelect.Selected)
	}
	if !sd.revealAfterCheck.Checked {
		t.Error("reveal after save should default to checked")
	}
}

func TestSettingsDialog_Save(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	var changed []bool
	sd.onSaved = func(enginePathsChanged bool) { changed = append(changed, enginePathsChanged) }

	dir := t.TempDir()
	sd.outputDirEntry.SetText(dir)
	sd.ffmpegEntry.SetText("/opt/ffmpeg/bin/ffmpeg")
	sd.modeRadio.SetSelected(string(model.ModeCrop))
	sd.languageSelect.SetSelected("Português")
	sd.revealAfterCheck.SetChecked(false)
	sd.onSave(true)

	if got := settings.GetOutputDirectory(); got != dir {
		t.Errorf("output dir = %q, want %q", got, dir)
	}
	if got := settings.GetFFmpegPath(); got != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("ffmpeg path = %q", got)
	}
	if got := settings.GetDefaultMode(); got != model.ModeCrop {
		t.Errorf("default mode = %q, want crop", got)
	}
	if got := settings.GetLanguage(); got != "pt" {
		t.Errorf("language = %q, want pt", got)
	}
	if settings.GetRevealAfterSave() {
		t.Error("reveal after save should be off")
	}

	// Saving again without touching the engine paths
	sd.onSave(true)
	if len(changed) != 2 || !changed[0] || changed[1] {
		t.Errorf("enginePathsChanged = %v, want [true false]", changed)
	}
}

func TestSettingsDialog_CancelKeepsSettings(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)
	before := settings.GetOutputDirectory()

	sd.outputDirEntry.SetText(t.TempDir())
	sd.onSave(false)

	if got := settings.GetOutputDirectory(); got != before {
		t.Errorf("output dir changed to %q on cancel", got)
	}
}

func TestCheckEngine_MissingBinary(t *testing.T) {
	status := checkEngine(context.Background(), "/nonexistent/ffmpeg-for-test", "", NewLocalization())
	if !strings.HasPrefix(status, IconError) || !strings.Contains(status, "ffmpeg not found") {
		t.Errorf("checkEngine() = %q", status)
	}
}

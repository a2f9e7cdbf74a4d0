package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/ytget/video-converter/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetOutputDirectory()
	if dir == "" {
		t.Error("Output directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/videos"
	settings.SetOutputDirectory(customDir)

	retrievedDir := settings.GetOutputDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, retrievedDir)
	}
}

func TestBinaryPaths(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default values
	if settings.GetFFmpegPath() != DefaultFFmpegPath {
		t.Errorf("Expected default ffmpeg path %s, got %s", DefaultFFmpegPath, settings.GetFFmpegPath())
	}
	if settings.GetFFprobePath() != DefaultFFprobePath {
		t.Errorf("Expected default ffprobe path %s, got %s", DefaultFFprobePath, settings.GetFFprobePath())
	}

	// Test setting custom values
	settings.SetFFmpegPath("  /opt/ffmpeg/bin/ffmpeg ")
	settings.SetFFprobePath("/opt/ffmpeg/bin/ffprobe")

	if settings.GetFFmpegPath() != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("Expected trimmed ffmpeg path, got %q", settings.GetFFmpegPath())
	}
	if settings.GetFFprobePath() != "/opt/ffmpeg/bin/ffprobe" {
		t.Errorf("Expected custom ffprobe path, got %q", settings.GetFFprobePath())
	}

	// Test empty value defaults back
	settings.SetFFmpegPath("")
	if settings.GetFFmpegPath() != DefaultFFmpegPath {
		t.Errorf("Empty path should default to %s, got %s", DefaultFFmpegPath, settings.GetFFmpegPath())
	}
}

func TestDefaultMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetDefaultMode() != model.ModeConvert {
		t.Errorf("Expected default mode convert, got %s", settings.GetDefaultMode())
	}

	// Test setting custom value
	settings.SetDefaultMode(model.ModeCrop)
	if settings.GetDefaultMode() != model.ModeCrop {
		t.Errorf("Expected mode crop, got %s", settings.GetDefaultMode())
	}

	// Unknown modes fall back to convert
	settings.SetDefaultMode(model.Mode("rotate"))
	if settings.GetDefaultMode() != model.ModeConvert {
		t.Errorf("Unknown mode should fall back to convert, got %s", settings.GetDefaultMode())
	}
}

func TestGetModeOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetModeOptions()
	expectedOptions := []model.Mode{model.ModeConvert, model.ModeCrop}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d mode options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Mode option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestRevealAfterSave(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetRevealAfterSave() != DefaultRevealAfterSave {
		t.Errorf("Expected default reveal %v", DefaultRevealAfterSave)
	}

	settings.SetRevealAfterSave(false)
	if settings.GetRevealAfterSave() {
		t.Error("Expected reveal disabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/ytget/video-converter/internal/engine"
	"github.com/ytget/video-converter/internal/model"
	"github.com/ytget/video-converter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir       = "output_directory"
	KeyFFmpegPath      = "ffmpeg_path"
	KeyFFprobePath     = "ffprobe_path"
	KeyDefaultMode     = "default_mode"
	KeyLanguage        = "app_language"
	KeyRevealAfterSave = "reveal_after_save"
)

// Default values
const (
	DefaultFFmpegPath      = engine.FFmpegCommand
	DefaultFFprobePath     = engine.FFprobeCommand
	DefaultMode            = model.ModeConvert
	DefaultLanguage        = "system"
	DefaultRevealAfterSave = true

	// Used under the temp dir when the home directory is unknown
	FallbackOutputDirName = "video-converter"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the directory artifacts are saved to
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = filepath.Join(os.TempDir(), FallbackOutputDirName)
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetFFmpegPath returns the ffmpeg executable name or path
func (s *Settings) GetFFmpegPath() string {
	return s.app.Preferences().StringWithFallback(KeyFFmpegPath, DefaultFFmpegPath)
}

// SetFFmpegPath sets the ffmpeg executable; empty restores the default
func (s *Settings) SetFFmpegPath(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultFFmpegPath
	}
	s.app.Preferences().SetString(KeyFFmpegPath, path)
}

// GetFFprobePath returns the ffprobe executable name or path
func (s *Settings) GetFFprobePath() string {
	return s.app.Preferences().StringWithFallback(KeyFFprobePath, DefaultFFprobePath)
}

// SetFFprobePath sets the ffprobe executable; empty restores the default
func (s *Settings) SetFFprobePath(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultFFprobePath
	}
	s.app.Preferences().SetString(KeyFFprobePath, path)
}

// GetDefaultMode returns the mode the window opens in
func (s *Settings) GetDefaultMode() model.Mode {
	return model.ParseMode(s.app.Preferences().StringWithFallback(KeyDefaultMode, string(DefaultMode)))
}

// SetDefaultMode sets the mode the window opens in
func (s *Settings) SetDefaultMode(mode model.Mode) {
	s.app.Preferences().SetString(KeyDefaultMode, string(model.ParseMode(string(mode))))
}

// GetModeOptions returns available modes
func (s *Settings) GetModeOptions() []model.Mode {
	return []model.Mode{model.ModeConvert, model.ModeCrop}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealAfterSave returns whether saved files are shown in the file manager
func (s *Settings) GetRevealAfterSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealAfterSave, DefaultRevealAfterSave)
}

// SetRevealAfterSave sets whether saved files are shown in the file manager
func (s *Settings) SetRevealAfterSave(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealAfterSave, reveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

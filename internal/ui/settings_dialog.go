package ui

import (
	"context"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-converter/internal/config"
	"github.com/ytget/video-converter/internal/engine"
	"github.com/ytget/video-converter/internal/model"
)

// EngineCheckTimeout bounds the "Check" button probe
const EngineCheckTimeout = 10 * time.Second

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(enginePathsChanged bool)

	// display name -> language code
	languageCodes map[string]string

	// UI components
	outputDirEntry   *widget.Entry
	ffmpegEntry      *widget.Entry
	ffprobeEntry     *widget.Entry
	engineStatus     *widget.Label
	modeRadio        *widget.RadioGroup
	languageSelect   *widget.Select
	revealAfterCheck *widget.Check
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(enginePathsChanged bool)) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.outputDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)

	sd.ffmpegEntry = widget.NewEntry()
	sd.ffmpegEntry.SetPlaceHolder(config.DefaultFFmpegPath)
	sd.ffprobeEntry = widget.NewEntry()
	sd.ffprobeEntry.SetPlaceHolder(config.DefaultFFprobePath)
	checkBtn := widget.NewButton(text(KeyCheckEngine), sd.onCheckEngine)
	sd.engineStatus = widget.NewLabel("")
	sd.engineStatus.Wrapping = fyne.TextWrapWord

	modeLabels := make([]string, 0, len(sd.settings.GetModeOptions()))
	for _, mode := range sd.settings.GetModeOptions() {
		modeLabels = append(modeLabels, string(mode))
	}
	sd.modeRadio = widget.NewRadioGroup(modeLabels, nil)
	sd.modeRadio.Horizontal = true
	sd.modeRadio.Required = true

	names := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	sd.revealAfterCheck = widget.NewCheck(text(KeyRevealAfterSave), nil)

	videoForm := widget.NewForm(
		widget.NewFormItem(text(KeyOutputDirectory), container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)),
		widget.NewFormItem(text(KeyFFmpegPath), sd.ffmpegEntry),
		widget.NewFormItem(text(KeyFFprobePath), container.NewBorder(nil, nil, nil, checkBtn, sd.ffprobeEntry)),
		widget.NewFormItem("", sd.engineStatus),
		widget.NewFormItem(text(KeyDefaultMode), sd.modeRadio),
		widget.NewFormItem("", sd.revealAfterCheck),
	)
	interfaceForm := widget.NewForm(
		widget.NewFormItem(text(KeyLanguage), sd.languageSelect),
	)

	content := container.NewVBox(
		widget.NewCard("", text(KeyVideoSettings), videoForm),
		widget.NewCard("", text(KeyInterfaceSettings), interfaceForm),
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(content),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.ffmpegEntry.SetText(sd.settings.GetFFmpegPath())
	sd.ffprobeEntry.SetText(sd.settings.GetFFprobePath())
	sd.modeRadio.SetSelected(string(sd.settings.GetDefaultMode()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.revealAfterCheck.SetChecked(sd.settings.GetRevealAfterSave())
	sd.engineStatus.SetText("")
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onCheckEngine loads a throwaway engine with the entered binaries
func (sd *SettingsDialog) onCheckEngine() {
	ffmpegBin, ffprobeBin := sd.ffmpegEntry.Text, sd.ffprobeEntry.Text
	sd.engineStatus.SetText("…")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), EngineCheckTimeout)
		defer cancel()

		status := checkEngine(ctx, ffmpegBin, ffprobeBin, sd.localization)
		fyne.Do(func() {
			sd.engineStatus.SetText(status)
		})
	}()
}

// checkEngine returns a one-line report on the given binaries
func checkEngine(ctx context.Context, ffmpegBin, ffprobeBin string, localization *Localization) string {
	eng := engine.NewFFmpeg(engine.WithBinaries(ffmpegBin, ffprobeBin))
	defer eng.Close()

	if err := eng.Load(ctx); err != nil {
		return IconError + " " + localization.GetErrorText(model.ErrorEngineLoadFailed) + ": " + err.Error()
	}
	return localization.GetText(KeyEngineFound) + ": " + eng.Version()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if outputDir := sd.outputDirEntry.Text; outputDir != "" {
		sd.settings.SetOutputDirectory(outputDir)
	}

	// Engine paths only apply after a restart
	oldFFmpeg, oldFFprobe := sd.settings.GetFFmpegPath(), sd.settings.GetFFprobePath()
	sd.settings.SetFFmpegPath(sd.ffmpegEntry.Text)
	sd.settings.SetFFprobePath(sd.ffprobeEntry.Text)
	enginePathsChanged := oldFFmpeg != sd.settings.GetFFmpegPath() || oldFFprobe != sd.settings.GetFFprobePath()

	if sd.modeRadio.Selected != "" {
		sd.settings.SetDefaultMode(model.Mode(sd.modeRadio.Selected))
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetRevealAfterSave(sd.revealAfterCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved(enginePathsChanged)
	}
}

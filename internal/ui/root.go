package ui

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/video-converter/internal/artifact"
	"github.com/ytget/video-converter/internal/config"
	"github.com/ytget/video-converter/internal/converter"
	"github.com/ytget/video-converter/internal/model"
	"github.com/ytget/video-converter/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	converterSvc converter.Converter
	store        *artifact.Store
	settings     *config.Settings
	localization *Localization

	ctx    context.Context
	cancel context.CancelFunc

	// Intake view
	titleLabel    *widget.Label
	selectBtn     *widget.Button
	dropHintLabel *widget.Label
	fileLabel     *widget.Label
	modeRadio     *widget.RadioGroup
	targetLabel   *widget.Label
	formatSelect  *widget.Select
	convertPanel  *fyne.Container
	cropPanel     *fyne.Container
	timelineView  *TimelineWidget
	startLabel    *widget.Label
	positionLabel *widget.Label
	endLabel      *widget.Label
	previewBtn    *widget.Button
	actionBtn     *widget.Button
	progressBar   *widget.ProgressBar
	errorLabel    *widget.Label
	intakeView    *fyne.Container

	// Result view
	resultNameLabel *widget.Label
	playBtn         *widget.Button
	playNotice      *widget.Label
	downloadBtn     *widget.Button
	showFolderBtn   *widget.Button
	savedLabel      *widget.Label
	anotherBtn      *widget.Button
	resultView      *fyne.Container

	preview *framePreview
	player  *previewPlayer

	// Last rendered state; touched on the UI goroutine only
	state     model.State
	rendering bool
	savedPath string

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, converterSvc converter.Converter, store *artifact.Store) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure output directory exists
	if err := platform.CreateDirectoryIfNotExists(settings.GetOutputDirectory()); err != nil {
		log.Printf("Failed to create output directory: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		converterSvc: converterSvc,
		store:        store,
		settings:     settings,
		localization: localization,
		ctx:          ctx,
		cancel:       cancel,
	}

	ui.preview = newFramePreview(ctx, converterSvc.PreviewFrame)
	ui.player = newPreviewPlayer(converterSvc.Timeline(), PreviewTickInterval)

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for converter updates
	ui.converterSvc.SetUpdateCallback(ui.onStateUpdate)

	ui.setupUI()
	ui.wireTimeline()
	ui.render(converterSvc.State())
	return ui
}

// Close stops background work started by the UI
func (ui *RootUI) Close() {
	ui.player.Stop()
	ui.cancel()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	text := ui.localization.GetText

	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.titleLabel = widget.NewLabel(text(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	// Create top panel with logo
	var topPanel *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		topPanel = container.NewBorder(nil, nil, container.NewHBox(logoImage, ui.titleLabel), settingsBtn)
	} else {
		topPanel = container.NewBorder(nil, nil, ui.titleLabel, settingsBtn)
	}

	// Mode selection
	ui.modeRadio = widget.NewRadioGroup(ui.modeLabels(), ui.onModeChanged)
	ui.modeRadio.Horizontal = true
	ui.modeRadio.Required = true

	// Intake
	ui.selectBtn = widget.NewButtonWithIcon(text(KeySelectVideo), theme.FolderOpenIcon(), ui.onSelectFile)
	ui.selectBtn.Importance = widget.HighImportance
	ui.dropHintLabel = widget.NewLabel(text(KeyDropHint))
	ui.dropHintLabel.Wrapping = fyne.TextWrapWord
	ui.fileLabel = widget.NewLabel("")
	ui.fileLabel.Truncation = fyne.TextTruncateEllipsis

	// Convert panel
	ui.targetLabel = widget.NewLabel(text(KeyTargetFormat))
	ui.formatSelect = widget.NewSelect(nil, ui.onTargetChanged)
	ui.convertPanel = container.NewHBox(ui.targetLabel, ui.formatSelect)

	// Crop panel
	ui.timelineView = NewTimelineWidget(ui.converterSvc.Timeline())
	ui.startLabel = widget.NewLabel("")
	ui.positionLabel = widget.NewLabel("")
	ui.positionLabel.Alignment = fyne.TextAlignCenter
	ui.endLabel = widget.NewLabel("")
	ui.endLabel.Alignment = fyne.TextAlignTrailing
	ui.previewBtn = widget.NewButton(IconPlay+" "+text(KeyPreview), ui.player.Toggle)
	ui.cropPanel = container.NewVBox(
		container.NewCenter(ui.preview.image),
		ui.timelineView,
		container.NewGridWithColumns(3, ui.startLabel, ui.positionLabel, ui.endLabel),
		container.NewHBox(layout.NewSpacer(), ui.previewBtn, layout.NewSpacer()),
	)

	// Action row; the error label lives in the top panel so intake errors
	// stay visible over the result view
	ui.actionBtn = widget.NewButton(text(model.ActionLoadingEngine), ui.onStart)
	ui.actionBtn.Importance = widget.HighImportance
	ui.progressBar = widget.NewProgressBar()
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Importance = widget.DangerImportance

	ui.intakeView = container.NewVBox(
		container.NewBorder(nil, nil, ui.selectBtn, nil, ui.dropHintLabel),
		ui.fileLabel,
		ui.convertPanel,
		ui.cropPanel,
		ui.actionBtn,
		ui.progressBar,
	)

	// Result view
	ui.resultNameLabel = widget.NewLabel("")
	ui.resultNameLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.resultNameLabel.Truncation = fyne.TextTruncateEllipsis
	ui.playBtn = widget.NewButtonWithIcon(text(KeyPlay), theme.MediaPlayIcon(), ui.onPlay)
	ui.playNotice = widget.NewLabel(text(KeyPlaybackNotice))
	ui.playNotice.Wrapping = fyne.TextWrapWord
	ui.downloadBtn = widget.NewButtonWithIcon(text(KeyDownload), theme.DownloadIcon(), ui.onDownload)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.showFolderBtn = widget.NewButtonWithIcon(text(KeyShowInFolder), theme.FolderIcon(), ui.onShowInFolder)
	ui.savedLabel = widget.NewLabel("")
	ui.savedLabel.Wrapping = fyne.TextWrapBreak
	ui.anotherBtn = widget.NewButtonWithIcon(text(KeyConvertAnother), theme.ViewRefreshIcon(), ui.onConvertAnother)

	ui.resultView = container.NewVBox(
		ui.resultNameLabel,
		ui.playBtn,
		ui.playNotice,
		container.NewHBox(ui.downloadBtn, ui.showFolderBtn),
		ui.savedLabel,
		widget.NewSeparator(),
		ui.anotherBtn,
	)

	content := container.NewBorder(
		container.NewVBox(topPanel, ui.modeRadio, ui.errorLabel, widget.NewSeparator()), // top
		nil, // bottom
		nil, // left
		nil, // right
		container.NewVScroll(container.NewPadded(container.NewVBox(ui.intakeView, ui.resultView))), // center
	)

	ui.window.SetContent(content)
	ui.window.SetOnDropped(ui.onFilesDropped)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	log.Printf("UI setup completed successfully")
}

// wireTimeline connects the timeline and preview callbacks
func (ui *RootUI) wireTimeline() {
	tl := ui.converterSvc.Timeline()

	tl.OnSeek(func(sec float64) {
		ui.preview.Request(sec)
	})

	tl.OnChange(func() {
		if ui.player.Playing() {
			ui.preview.Request(tl.Position())
		}
		fyne.Do(func() {
			ui.timelineView.Refresh()
			ui.updateTimelineLabels()
		})
	})

	ui.timelineView.OnDragEnd = func() {
		w := tl.Window()
		log.Printf("Trim window set to %s-%s", model.FormatSeconds(w.Start), model.FormatSeconds(w.End))
	}

	ui.player.OnStateChange(func(playing bool) {
		fyne.Do(func() {
			ui.updatePreviewButton(playing)
		})
	})
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenVideo), ui.onSelectFile)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText

	ui.window.SetTitle(text(KeyAppTitle))
	ui.titleLabel.SetText(text(KeyAppTitle))
	ui.selectBtn.SetText(text(KeySelectVideo))
	ui.dropHintLabel.SetText(text(KeyDropHint))
	ui.targetLabel.SetText(text(KeyTargetFormat))
	ui.playBtn.SetText(text(KeyPlay))
	ui.playNotice.SetText(text(KeyPlaybackNotice))
	ui.downloadBtn.SetText(text(KeyDownload))
	ui.showFolderBtn.SetText(text(KeyShowInFolder))
	ui.anotherBtn.SetText(text(KeyConvertAnother))
	ui.updatePreviewButton(ui.player.Playing())

	ui.rendering = true
	ui.modeRadio.Options = ui.modeLabels()
	ui.modeRadio.Selected = ""
	ui.modeRadio.Refresh()
	ui.rendering = false

	ui.render(ui.converterSvc.State())
}

// modeLabels returns the localized radio labels, convert first
func (ui *RootUI) modeLabels() []string {
	return []string{ui.localization.GetText(KeyModeConvert), ui.localization.GetText(KeyModeCrop)}
}

func (ui *RootUI) modeLabel(mode model.Mode) string {
	if mode == model.ModeCrop {
		return ui.localization.GetText(KeyModeCrop)
	}
	return ui.localization.GetText(KeyModeConvert)
}

// onStateUpdate receives converter snapshots from any goroutine
func (ui *RootUI) onStateUpdate(state model.State) {
	if state.Running() && state.Progress < 100 && !ui.shouldUpdate() {
		return
	}
	fyne.Do(func() {
		ui.render(state)
	})
}

// shouldUpdate throttles progress-only renders
func (ui *RootUI) shouldUpdate() bool {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	if time.Since(ui.lastUIUpdate) < UIUpdateDebounce {
		return false
	}
	ui.lastUIUpdate = time.Now()
	return true
}

// render applies a converter snapshot to the widgets
func (ui *RootUI) render(state model.State) {
	text := ui.localization.GetText
	ui.rendering = true
	defer func() { ui.rendering = false }()

	previous := ui.state
	ui.state = state
	running := state.Running()

	ui.modeRadio.SetSelected(ui.modeLabel(state.Mode))
	setEnabled(ui.modeRadio, !running)
	setEnabled(ui.selectBtn, !running)

	// Selected file
	if state.Source != nil {
		info := []string{state.Source.Name, humanize.Bytes(uint64(state.Source.Size()))}
		if state.Duration > 0 {
			info = append(info, model.FormatClock(state.Duration))
		}
		ui.fileLabel.SetText(strings.Join(info, MiddleDotSeparator))
		ui.fileLabel.Show()
	} else {
		ui.fileLabel.SetText("")
		ui.fileLabel.Hide()
	}

	// Convert panel: allow-list minus the source format
	targets := make([]string, 0, len(state.Targets))
	for _, f := range state.Targets {
		targets = append(targets, string(f))
	}
	ui.formatSelect.SetOptions(targets)
	ui.formatSelect.SetSelected(string(state.TargetFormat))
	setEnabled(ui.formatSelect, !running && state.Source != nil)
	showIf(ui.convertPanel, state.Mode == model.ModeConvert && state.Source != nil)

	// Crop panel
	showIf(ui.cropPanel, state.Mode == model.ModeCrop && state.Source != nil)
	setEnabled(ui.previewBtn, state.Duration > 0 && !running)
	ui.updateTimelineLabels()
	ui.timelineView.Refresh()
	if running || state.Mode != model.ModeCrop {
		ui.player.Stop()
	}

	// Action and progress
	ui.actionBtn.SetText(text(state.ActionLabelKey()))
	setEnabled(ui.actionBtn, state.CanStart())
	ui.progressBar.SetValue(state.Progress / 100)
	showIf(ui.progressBar, running)

	if msg := ui.localization.GetErrorText(state.ErrorKind); msg != "" {
		ui.errorLabel.SetText(IconError + " " + msg)
		ui.errorLabel.Show()
	} else {
		ui.errorLabel.SetText("")
		ui.errorLabel.Hide()
	}

	// Result view replaces intake once an artifact exists
	showIf(ui.intakeView, !state.ShowResult())
	showIf(ui.resultView, state.ShowResult())
	if state.ShowResult() {
		a := state.Artifact
		ui.resultNameLabel.SetText(a.Name + MiddleDotSeparator + humanize.Bytes(uint64(a.Size)))
		showIf(ui.playBtn, a.IsPlayable())
		showIf(ui.playNotice, !a.IsPlayable())
		if previous.Artifact != a {
			ui.savedPath = ""
		}
	}
	showIf(ui.showFolderBtn, ui.savedPath != "")
	showIf(ui.savedLabel, ui.savedPath != "")
	if ui.savedPath != "" {
		ui.savedLabel.SetText(text(KeySavedTo) + ": " + ui.savedPath)
	}
}

// updateTimelineLabels shows the trim window and playhead times
func (ui *RootUI) updateTimelineLabels() {
	tl := ui.converterSvc.Timeline()
	if tl.Duration() <= 0 {
		ui.startLabel.SetText(DashPlaceholder)
		ui.positionLabel.SetText("")
		ui.endLabel.SetText(DashPlaceholder)
		return
	}

	window := tl.Window()
	text := ui.localization.GetText
	ui.startLabel.SetText(text(KeyStart) + ": " + model.FormatClock(window.Start))
	ui.positionLabel.SetText(model.FormatClock(tl.Position()))
	ui.endLabel.SetText(text(KeyEnd) + ": " + model.FormatClock(window.End))
}

func (ui *RootUI) updatePreviewButton(playing bool) {
	if playing {
		ui.previewBtn.SetText(IconStop + " " + ui.localization.GetText(KeyStopPreview))
		return
	}
	ui.previewBtn.SetText(IconPlay + " " + ui.localization.GetText(KeyPreview))
}

// onModeChanged handles the mode radio
func (ui *RootUI) onModeChanged(label string) {
	if ui.rendering || label == "" {
		return
	}
	mode := model.ModeConvert
	if label == ui.localization.GetText(KeyModeCrop) {
		mode = model.ModeCrop
	}
	if err := ui.converterSvc.SetMode(mode); err != nil {
		log.Printf("Cannot change mode: %v", err)
	}
}

// onTargetChanged handles the format select
func (ui *RootUI) onTargetChanged(value string) {
	if ui.rendering || value == "" {
		return
	}
	if err := ui.converterSvc.SetTargetFormat(model.Format(value)); err != nil {
		log.Printf("Cannot set target format: %v", err)
	}
}

// onSelectFile opens the file picker filtered to the supported formats
func (ui *RootUI) onSelectFile() {
	if ui.state.Running() {
		return
	}

	fd := dialog.NewFileOpen(ui.onFilePicked, ui.window)
	extensions := model.Extensions()
	for _, ext := range model.Extensions() {
		extensions = append(extensions, strings.ToUpper(ext))
	}
	fd.SetFilter(storage.NewExtensionFileFilter(extensions))
	if dir := ui.settings.GetOutputDirectory(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Show()
}

// onFilePicked handles the picker result
func (ui *RootUI) onFilePicked(reader fyne.URIReadCloser, err error) {
	if err != nil {
		log.Printf("Error opening file: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}
	if reader == nil {
		return // User cancelled
	}

	uri := reader.URI()
	go func() {
		defer reader.Close()
		data, err := io.ReadAll(reader)
		if err != nil {
			ui.showReadError(uri.Name(), err)
			return
		}
		ui.intake(uri.Name(), uri.Path(), data)
	}()
}

// onFilesDropped handles files dropped on the window; only the first is used
func (ui *RootUI) onFilesDropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 || ui.state.Running() {
		return
	}

	uri := uris[0]
	log.Printf("Dropped file: %s", uri.Path())

	go func() {
		data, err := os.ReadFile(uri.Path())
		if err != nil {
			ui.showReadError(uri.Name(), err)
			return
		}
		ui.intake(uri.Name(), uri.Path(), data)
	}()
}

// intake hands a file to the converter and prepares the crop timeline
func (ui *RootUI) intake(name, path string, data []byte) {
	ui.player.Stop()
	ui.preview.Invalidate()
	fyne.Do(ui.preview.clearImage)

	if err := ui.converterSvc.Intake(name, path, data); err != nil {
		log.Printf("Intake of %s failed: %v", name, err)
		return
	}

	if err := ui.converterSvc.ProbeDuration(ui.ctx); err != nil {
		log.Printf("Probe of %s failed: %v", name, err)
		return
	}
	ui.preview.Request(0)
}

func (ui *RootUI) showReadError(name string, err error) {
	log.Printf("Error reading %s: %v", name, err)
	fyne.Do(func() {
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorReadingFile), err), ui.window)
	})
}

// onStart runs the job off the UI goroutine
func (ui *RootUI) onStart() {
	ui.player.Stop()
	go func() {
		if _, err := ui.converterSvc.Start(ui.ctx); err != nil {
			log.Printf("Job did not complete: %v", err)
		}
	}()
}

// onPlay opens the artifact with the default player
func (ui *RootUI) onPlay() {
	a := ui.state.Artifact
	if !a.IsPlayable() {
		return
	}
	if err := platform.OpenFileWithDefaultApp(a.Path); err != nil {
		log.Printf("Error opening file %s: %v", a.Path, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onDownload saves the artifact through a save dialog preset to the output directory
func (ui *RootUI) onDownload() {
	a := ui.state.Artifact
	if a == nil {
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if writer == nil {
			return // User cancelled
		}
		ui.saveArtifact(a, writer)
	}, ui.window)

	fd.SetFileName(a.Name)
	dir := ui.settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Show()
}

func (ui *RootUI) saveArtifact(a *model.OutputArtifact, writer fyne.URIWriteCloser) {
	_, err := ui.store.CopyTo(a, writer)
	closeErr := writer.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		log.Printf("Error saving %s: %v", a.Name, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorSavingFile), err), ui.window)
		return
	}

	ui.savedPath = writer.URI().Path()
	log.Printf("Saved %s to %s", a.Name, ui.savedPath)
	ui.render(ui.state)

	if ui.settings.GetRevealAfterSave() {
		ui.onShowInFolder()
	}
}

// onShowInFolder reveals the saved file
func (ui *RootUI) onShowInFolder() {
	if ui.savedPath == "" {
		return
	}
	if err := platform.OpenFileInManager(ui.savedPath); err != nil {
		log.Printf("Error revealing file %s: %v", ui.savedPath, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onConvertAnother resets the converter back to intake
func (ui *RootUI) onConvertAnother() {
	ui.player.Stop()
	ui.preview.Clear()
	ui.savedPath = ""
	if err := ui.converterSvc.Reset(); err != nil {
		log.Printf("Cannot reset: %v", err)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func(enginePathsChanged bool) {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()

		message := ui.localization.GetText(KeySettingsSaved)
		if enginePathsChanged {
			message += "\n" + ui.localization.GetText(KeyRestartRequired)
		}
		dialog.ShowInformation(ui.localization.GetText(KeySettings), message, ui.window)
	})
}

// setEnabled toggles any disableable widget
func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}

func showIf(o fyne.CanvasObject, visible bool) {
	if visible {
		o.Show()
	} else {
		o.Hide()
	}
}

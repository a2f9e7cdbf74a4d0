package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/video-converter/internal/artifact"
	"github.com/ytget/video-converter/internal/config"
	"github.com/ytget/video-converter/internal/converter"
	"github.com/ytget/video-converter/internal/engine"
	"github.com/ytget/video-converter/internal/platform"
	"github.com/ytget/video-converter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.video-converter"
	AppName = "Video Converter"

	WindowWidth  = 640
	WindowHeight = 560
)

func main() {
	// Log version information
	fmt.Printf("Video Converter v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetOutputDirectory()); err != nil {
		fmt.Printf("failed to ensure output dir: %v\n", err)
	}

	store, err := artifact.NewStore("")
	if err != nil {
		log.Fatalf("failed to create artifact store: %v", err)
	}

	ffmpeg := engine.NewFFmpeg(engine.WithBinaries(settings.GetFFmpegPath(), settings.GetFFprobePath()))
	converterSvc := converter.NewService(ffmpeg, store, converter.WithMode(settings.GetDefaultMode()))

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, converterSvc, store)

	// The engine loads in the background; the start button stays disabled until then
	go func() {
		if err := converterSvc.LoadEngine(context.Background()); err != nil {
			log.Printf("Engine load failed: %v", err)
			return
		}
		log.Printf("Engine loaded: %s", ffmpeg.Version())
	}()

	// Show and run
	myWindow.ShowAndRun()

	rootUI.Close()
	if err := converterSvc.Close(); err != nil {
		log.Printf("failed to close converter: %v", err)
	}
	if err := ffmpeg.Close(); err != nil {
		log.Printf("failed to close engine: %v", err)
	}
	if err := store.Close(); err != nil {
		log.Printf("failed to close artifact store: %v", err)
	}
}

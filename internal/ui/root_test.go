package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-converter/internal/artifact"
	"github.com/ytget/video-converter/internal/config"
	"github.com/ytget/video-converter/internal/converter"
	"github.com/ytget/video-converter/internal/engine"
	"github.com/ytget/video-converter/internal/model"
)

// memEngine copies the input to the output name
type memEngine struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (e *memEngine) Load(context.Context) error     { return nil }
func (e *memEngine) OnProgress(engine.ProgressFunc) {}

func (e *memEngine) WriteFile(_ context.Context, name string, data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.files[name] = data
	return nil
}

func (e *memEngine) Exec(_ context.Context, args []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.files[args[len(args)-1]] = e.files[args[1]]
	return nil
}

func (e *memEngine) ReadFile(_ context.Context, name string) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	data, ok := e.files[name]
	if !ok {
		return nil, fmt.Errorf("%s: no such file", name)
	}
	return data, nil
}

func newTestRootUI(t *testing.T) (*RootUI, *converter.Service, fyne.Window) {
	t.Helper()
	app := test.NewTempApp(t)
	app.Preferences().SetString(config.KeyOutputDir, t.TempDir())
	window := test.NewTempWindow(t, widget.NewLabel(""))

	store, err := artifact.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	svc := converter.NewService(&memEngine{files: make(map[string][]byte)}, store)
	t.Cleanup(func() { svc.Close() })

	root := NewRootUI(window, app, svc, store)
	t.Cleanup(root.Close)

	if err := svc.LoadEngine(context.Background()); err != nil {
		t.Fatalf("LoadEngine: %v", err)
	}
	return root, svc, window
}

// shown reports whether target is reachable from o through visible objects only
func shown(o, target fyne.CanvasObject) bool {
	if o == nil || !o.Visible() {
		return false
	}
	if o == target {
		return true
	}
	switch c := o.(type) {
	case *fyne.Container:
		for _, child := range c.Objects {
			if shown(child, target) {
				return true
			}
		}
	case *container.Scroll:
		return shown(c.Content, target)
	}
	return false
}

func TestRootUI_ResultViewAfterConvert(t *testing.T) {
	root, svc, window := newTestRootUI(t)

	if err := svc.Intake("clip.avi", "", []byte("video")); err != nil {
		t.Fatalf("Intake: %v", err)
	}
	if !shown(window.Content(), root.actionBtn) || root.actionBtn.Disabled() {
		t.Fatal("action button should be shown and enabled for a ready file")
	}
	if _, err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if !shown(window.Content(), root.resultView) || root.intakeView.Visible() {
		t.Error("result view should replace intake after a job")
	}
	if !strings.HasPrefix(root.resultNameLabel.Text, "clip_converted.mp4") {
		t.Errorf("result name = %q", root.resultNameLabel.Text)
	}
	if !root.playBtn.Visible() || root.playNotice.Visible() {
		t.Error("mp4 output should offer Play, not the notice")
	}
}

func TestRootUI_IntakeErrorVisibleOverResult(t *testing.T) {
	root, svc, window := newTestRootUI(t)

	if err := svc.Intake("clip.avi", "", []byte("video")); err != nil {
		t.Fatalf("Intake: %v", err)
	}
	if _, err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// A dropped file that is not a video while the result is shown
	if err := svc.Intake("notes.txt", "", []byte("text")); err == nil {
		t.Fatal("expected the intake to be rejected")
	}

	if !root.resultView.Visible() {
		t.Fatal("result view should stay while the previous artifact is kept")
	}
	if !shown(window.Content(), root.errorLabel) {
		t.Error("error label is hidden behind the result view")
	}
	if !strings.Contains(root.errorLabel.Text, model.ErrorUnsupportedFormat.Message()) {
		t.Errorf("error label = %q", root.errorLabel.Text)
	}

	root.onConvertAnother()
	if root.errorLabel.Visible() {
		t.Error("error label should hide after a reset")
	}
	if !shown(window.Content(), root.intakeView) {
		t.Error("intake should return after a reset")
	}
}

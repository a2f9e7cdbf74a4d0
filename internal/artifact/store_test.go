package artifact

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/video-converter/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreate(t *testing.T) {
	store := newTestStore(t)

	a, err := store.Create("movie_converted.mp4", model.FormatMP4, []byte("video"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if a.Name != "movie_converted.mp4" {
		t.Errorf("Expected name movie_converted.mp4, got %s", a.Name)
	}
	if a.MIMEType != "video/mp4" {
		t.Errorf("Expected MIME type video/mp4, got %s", a.MIMEType)
	}
	if a.Size != 5 {
		t.Errorf("Expected size 5, got %d", a.Size)
	}
	if !strings.HasPrefix(a.URL, "file://") {
		t.Errorf("Expected file:// URL, got %s", a.URL)
	}
	if filepath.Base(a.Path) != a.Name {
		t.Errorf("Expected backing file named %s, got %s", a.Name, a.Path)
	}
	if !store.Live(a) {
		t.Error("Expected artifact to be live")
	}
}

func TestCreate_SameNameTwice(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Create("clip_cropped.mp4", model.FormatMP4, []byte("one"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := store.Create("clip_cropped.mp4", model.FormatMP4, []byte("two"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if first.Path == second.Path || first.URL == second.URL {
		t.Error("Expected distinct backing files for each artifact")
	}
}

func TestRevoke(t *testing.T) {
	store := newTestStore(t)

	a, err := store.Create("movie_converted.avi", model.FormatAVI, []byte("video"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Revoke(a); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}
	if store.Live(a) {
		t.Error("Expected artifact to be revoked")
	}
	if _, err := os.Stat(a.Path); !os.IsNotExist(err) {
		t.Errorf("Expected backing file removed, stat err: %v", err)
	}

	// Revoking twice or revoking nil is a no-op
	if err := store.Revoke(a); err != nil {
		t.Errorf("Second Revoke failed: %v", err)
	}
	if err := store.Revoke(nil); err != nil {
		t.Errorf("Revoke(nil) failed: %v", err)
	}

	var buf bytes.Buffer
	if _, err := store.CopyTo(a, &buf); !errors.Is(err, ErrRevoked) {
		t.Errorf("Expected ErrRevoked from CopyTo, got %v", err)
	}
}

func TestSaveToDir(t *testing.T) {
	store := newTestStore(t)
	outDir := filepath.Join(t.TempDir(), "out")

	a, err := store.Create("movie_cropped.mp4", model.FormatMP4, []byte("cropped"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	first, err := store.SaveToDir(a, outDir)
	if err != nil {
		t.Fatalf("SaveToDir failed: %v", err)
	}
	second, err := store.SaveToDir(a, outDir)
	if err != nil {
		t.Fatalf("Second SaveToDir failed: %v", err)
	}

	if filepath.Base(first) != "movie_cropped.mp4" {
		t.Errorf("Expected movie_cropped.mp4, got %s", filepath.Base(first))
	}
	if filepath.Base(second) != "movie_cropped (1).mp4" {
		t.Errorf("Expected 'movie_cropped (1).mp4', got %s", filepath.Base(second))
	}

	data, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(data) != "cropped" {
		t.Errorf("Expected saved contents 'cropped', got %q", data)
	}
}

func TestClose(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	a, err := store.Create("movie_converted.mkv", model.FormatMKV, []byte("video"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := os.Stat(store.Dir()); !os.IsNotExist(err) {
		t.Errorf("Expected store dir removed, stat err: %v", err)
	}
	if store.Live(a) {
		t.Error("Artifacts should not be live after Close")
	}
	if _, err := store.Create("x.mp4", model.FormatMP4, nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}

package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	// Should end with "Downloads"
	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.mp4")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	err := OpenFileWithDefaultApp("  ")
	if err == nil {
		t.Fatal("Expected error for empty path, got nil")
	}

	if !strings.Contains(err.Error(), "file path is empty") {
		t.Errorf("Expected 'file path is empty' error, got: %v", err)
	}
}

func TestUniquePath(t *testing.T) {
	tempDir := t.TempDir()

	touch := func(name string) {
		if err := os.WriteFile(filepath.Join(tempDir, name), nil, DefaultFilePermissions); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}

	path, err := UniquePath(tempDir, "clip_converted.mp4")
	if err != nil {
		t.Fatalf("UniquePath failed: %v", err)
	}
	if filepath.Base(path) != "clip_converted.mp4" {
		t.Errorf("Expected free name unchanged, got %s", filepath.Base(path))
	}

	touch("clip_converted.mp4")
	touch("clip_converted (1).mp4")

	path, err = UniquePath(tempDir, "clip_converted.mp4")
	if err != nil {
		t.Fatalf("UniquePath failed: %v", err)
	}
	if filepath.Base(path) != "clip_converted (2).mp4" {
		t.Errorf("Expected 'clip_converted (2).mp4', got %s", filepath.Base(path))
	}
	if filepath.Dir(path) != tempDir {
		t.Errorf("Expected path inside %s, got %s", tempDir, path)
	}
}

func TestUniquePath_NoExtension(t *testing.T) {
	tempDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tempDir, "clip"), nil, DefaultFilePermissions); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	path, err := UniquePath(tempDir, "clip")
	if err != nil {
		t.Fatalf("UniquePath failed: %v", err)
	}
	if filepath.Base(path) != "clip (1)" {
		t.Errorf("Expected 'clip (1)', got %s", filepath.Base(path))
	}
}

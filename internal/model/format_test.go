package model

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"mp4", FormatMP4, false},
		{".mkv", FormatMKV, false},
		{"MOV", FormatMOV, false},
		{" .Wmv ", FormatWMV, false},
		{"webm", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseFormat(test.input)
		if test.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("ParseFormat(%q) error = %v, expected ErrUnsupportedFormat", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) unexpected error: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("ParseFormat(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestFormatFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected Format
		wantErr  bool
	}{
		{"movie.avi", FormatAVI, false},
		{"my.holiday.clip.flv", FormatFLV, false},
		{"archive.tar.gz", "", true},
		{"README", "", true},
		{"movie.avi.txt", "", true},
	}

	for _, test := range tests {
		result, err := FormatFromName(test.name)
		if (err != nil) != test.wantErr {
			t.Errorf("FormatFromName(%q) error = %v, wantErr %v", test.name, err, test.wantErr)
			continue
		}
		if result != test.expected {
			t.Errorf("FormatFromName(%q) = %s, expected %s", test.name, result, test.expected)
		}
	}
}

func TestDefaultTarget_NeverSource(t *testing.T) {
	for _, source := range SupportedFormats {
		target := DefaultTarget(source)
		if target == source {
			t.Errorf("DefaultTarget(%s) returned the source format", source)
		}
		if !target.IsTargetFor(source) {
			t.Errorf("DefaultTarget(%s) = %s is not a valid target", source, target)
		}
	}

	if DefaultTarget(FormatMP4) != FormatAVI {
		t.Errorf("Expected default target for mp4 to be avi, got %s", DefaultTarget(FormatMP4))
	}
	if DefaultTarget(FormatAVI) != FormatMP4 {
		t.Errorf("Expected default target for avi to be mp4, got %s", DefaultTarget(FormatAVI))
	}
}

func TestAvailableTargets(t *testing.T) {
	targets := AvailableTargets(FormatMOV)
	expected := []Format{FormatMP4, FormatAVI, FormatMKV, FormatFLV, FormatWMV}

	if len(targets) != len(expected) {
		t.Fatalf("Expected %d targets, got %d", len(expected), len(targets))
	}
	for i, f := range expected {
		if targets[i] != f {
			t.Errorf("Target %d: expected %s, got %s", i, f, targets[i])
		}
	}
}

func TestIsBrowserPlayable(t *testing.T) {
	expected := map[Format]bool{
		FormatMP4: true,
		FormatMOV: true,
		FormatMKV: true,
		FormatAVI: false,
		FormatFLV: false,
		FormatWMV: false,
	}

	for _, f := range SupportedFormats {
		if f.IsBrowserPlayable() != expected[f] {
			t.Errorf("Format(%s).IsBrowserPlayable() = %v, expected %v", f, f.IsBrowserPlayable(), expected[f])
		}
	}
}

func TestMIMETypeAndExtensions(t *testing.T) {
	if FormatMKV.MIMEType() != "video/mkv" {
		t.Errorf("Expected video/mkv, got %s", FormatMKV.MIMEType())
	}

	exts := Extensions()
	if len(exts) != len(SupportedFormats) {
		t.Fatalf("Expected %d extensions, got %d", len(SupportedFormats), len(exts))
	}
	if exts[0] != ".mp4" {
		t.Errorf("Expected first extension .mp4, got %s", exts[0])
	}
}

func TestNewSourceFile(t *testing.T) {
	sf, err := NewSourceFile("/videos/movie.AVI", "/videos/movie.AVI", []byte("data"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if sf.Name != "movie.AVI" {
		t.Errorf("Expected name movie.AVI, got %s", sf.Name)
	}
	if sf.Format != FormatAVI {
		t.Errorf("Expected format avi, got %s", sf.Format)
	}
	if sf.BaseName() != "movie" {
		t.Errorf("Expected base name movie, got %s", sf.BaseName())
	}
	if sf.Size() != 4 {
		t.Errorf("Expected size 4, got %d", sf.Size())
	}

	if _, err := NewSourceFile("notes.txt", "", []byte("x")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat for notes.txt, got %v", err)
	}
}

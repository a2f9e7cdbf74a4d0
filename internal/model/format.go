package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a video container extension accepted by the converter.
type Format string

const (
	FormatMP4 Format = "mp4"
	FormatAVI Format = "avi"
	FormatMOV Format = "mov"
	FormatMKV Format = "mkv"
	FormatFLV Format = "flv"
	FormatWMV Format = "wmv"
)

// SupportedFormats is the ordered allow-list used for intake and for the
// target format selector.
var SupportedFormats = []Format{FormatMP4, FormatAVI, FormatMOV, FormatMKV, FormatFLV, FormatWMV}

// browserPlayable lists formats that can be played back inline.
var browserPlayable = map[Format]bool{
	FormatMP4: true,
	FormatMOV: true,
	FormatMKV: true,
}

// ErrUnsupportedFormat is returned for extensions outside SupportedFormats.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ParseFormat parses an extension such as "mp4", ".MP4" or "Mkv".
func ParseFormat(ext string) (Format, error) {
	normalized := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	for _, f := range SupportedFormats {
		if string(f) == normalized {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// FormatFromName returns the format of the final extension of name.
func FormatFromName(name string) (Format, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, name)
	}
	return ParseFormat(ext)
}

// String returns the extension without a leading dot
func (f Format) String() string {
	return string(f)
}

// MIMEType returns the MIME type used for artifacts of this format.
func (f Format) MIMEType() string {
	return "video/" + string(f)
}

// IsBrowserPlayable reports whether the output can be played inline.
func (f Format) IsBrowserPlayable() bool {
	return browserPlayable[f]
}

// Extensions returns the allow-list as dotted extensions (".mp4", ...),
// suitable for file dialog filters.
func Extensions() []string {
	exts := make([]string, 0, len(SupportedFormats))
	for _, f := range SupportedFormats {
		exts = append(exts, "."+string(f))
	}
	return exts
}

// AvailableTargets returns the allow-list minus source, preserving order.
func AvailableTargets(source Format) []Format {
	targets := make([]Format, 0, len(SupportedFormats))
	for _, f := range SupportedFormats {
		if f != source {
			targets = append(targets, f)
		}
	}
	return targets
}

// DefaultTarget returns the first allow-listed format different from source.
func DefaultTarget(source Format) Format {
	return AvailableTargets(source)[0]
}

// IsTargetFor reports whether f may be chosen as a target for source.
func (f Format) IsTargetFor(source Format) bool {
	if f == source {
		return false
	}
	for _, candidate := range SupportedFormats {
		if candidate == f {
			return true
		}
	}
	return false
}

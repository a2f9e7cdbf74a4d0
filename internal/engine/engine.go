package engine

import (
	"context"
	"errors"
)

// ProgressFunc receives the engine progress as a fraction in [0, 1]
type ProgressFunc func(fraction float64)

// Engine is the transcoding collaborator used by the converter.
type Engine interface {
	// Load prepares the engine. It is idempotent and must succeed before any
	// other call.
	Load(ctx context.Context) error
	// OnProgress replaces the progress listener used by subsequent Exec calls.
	OnProgress(fn ProgressFunc)
	// WriteFile stores data under name in the engine filesystem.
	WriteFile(ctx context.Context, name string, data []byte) error
	// Exec runs the engine with args; it fails on any processing error.
	Exec(ctx context.Context, args []string) error
	// ReadFile returns the contents stored under name.
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// Prober reports the duration in seconds of a media file on disk.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// Remover deletes a file from the engine filesystem.
type Remover interface {
	DeleteFile(ctx context.Context, name string) error
}

// FrameExtractor renders a single PNG frame of a media file at a time offset.
type FrameExtractor interface {
	ExtractFrame(ctx context.Context, path string, at float64) ([]byte, error)
}

var (
	// ErrNotLoaded is returned when the engine is used before Load succeeded.
	ErrNotLoaded = errors.New("engine not loaded")

	// ErrInvalidName is returned for names that are not flat file names.
	ErrInvalidName = errors.New("invalid engine file name")
)

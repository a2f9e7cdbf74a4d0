package converter

import "errors"

// Guard errors returned by the controller
var (
	ErrNoFile          = errors.New("no file selected")
	ErrJobRunning      = errors.New("a job is already running")
	ErrEngineNotLoaded = errors.New("engine not loaded")
	ErrNotReady        = errors.New("converter not ready")
	ErrInvalidTrim     = errors.New("invalid trim window")
	ErrInvalidTarget   = errors.New("invalid target format")
	ErrNoPreview       = errors.New("preview not available")
)

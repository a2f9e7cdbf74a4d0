package model

// JobStatus represents the phase of the converter state machine
type JobStatus string

const (
	// JobStatusIdle means no file is selected
	JobStatusIdle JobStatus = "Idle"

	// JobStatusLoadingEngine means the engine has not finished loading
	JobStatusLoadingEngine JobStatus = "LoadingEngine"

	// JobStatusReady means a file is selected and a job may start
	JobStatusReady JobStatus = "Ready"

	// JobStatusRunning means the engine is processing the file
	JobStatusRunning JobStatus = "Running"

	// JobStatusSucceeded means the last job produced an artifact
	JobStatusSucceeded JobStatus = "Succeeded"

	// JobStatusFailed means intake or the last job failed
	JobStatusFailed JobStatus = "Failed"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true while an engine invocation is in flight
func (js JobStatus) IsActive() bool {
	return js == JobStatusRunning
}

// IsFinished returns true for the terminal states (succeeded or failed)
func (js JobStatus) IsFinished() bool {
	return js == JobStatusSucceeded || js == JobStatusFailed
}

// CanStart returns true if a job may be started from this status
func (js JobStatus) CanStart() bool {
	return js == JobStatusReady
}

// Mode selects between plain conversion and cropping.
type Mode string

const (
	ModeConvert Mode = "convert"
	ModeCrop    Mode = "crop"
)

// ParseMode returns the mode for s, defaulting to ModeConvert.
func ParseMode(s string) Mode {
	if Mode(s) == ModeCrop {
		return ModeCrop
	}
	return ModeConvert
}

// ErrorKind classifies user-facing errors so the UI can localize them.
type ErrorKind string

const (
	ErrorNone              ErrorKind = ""
	ErrorUnsupportedFormat ErrorKind = "unsupported_format"
	ErrorConversionFailed  ErrorKind = "conversion_failed"
	ErrorCroppingFailed    ErrorKind = "cropping_failed"
	ErrorEngineLoadFailed  ErrorKind = "engine_load_failed"
	ErrorProbeFailed       ErrorKind = "probe_failed"
)

// Default English messages for each error kind.
var errorMessages = map[ErrorKind]string{
	ErrorUnsupportedFormat: "Unsupported file format. Please upload a valid video file.",
	ErrorConversionFailed:  "An error occurred during the conversion process.",
	ErrorCroppingFailed:    "An error occurred during the cropping process.",
	ErrorEngineLoadFailed:  "Failed to load FFmpeg. Check the FFmpeg path in settings.",
	ErrorProbeFailed:       "Could not read the video duration.",
}

// Message returns the default English message for the error kind
func (ek ErrorKind) Message() string {
	return errorMessages[ek]
}

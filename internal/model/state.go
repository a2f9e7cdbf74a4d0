package model

// Action label keys, resolved by the UI localization.
const (
	ActionLoadingEngine = "loading_engine"
	ActionConvert       = "convert_video"
	ActionConverting    = "converting"
	ActionCrop          = "crop_video"
	ActionCropping      = "cropping"
)

// State is a read-only snapshot of the converter, rendered by the UI.
type State struct {
	Status       JobStatus
	EngineLoaded bool
	Mode         Mode
	Source       *SourceFile
	TargetFormat Format
	Targets      []Format // allow-list minus the source format
	Trim         TrimWindow
	Duration     float64 // seconds, zero until probed
	Position     float64 // playhead, seconds
	Progress     float64 // 0 to 100
	ErrorKind    ErrorKind
	Error        string
	Artifact     *OutputArtifact
	Job          *Job // last started job, nil before the first one
}

// CanStart reports whether the start-job control should be enabled
func (s State) CanStart() bool {
	if !s.EngineLoaded || s.Source == nil || !s.Status.CanStart() {
		return false
	}
	if s.Mode == ModeCrop {
		return s.Trim.Validate(s.Duration) == nil
	}
	return s.TargetFormat.IsTargetFor(s.Source.Format)
}

// ShowResult reports whether the result view replaces the intake view
func (s State) ShowResult() bool {
	return s.Artifact != nil
}

// Running reports whether a job is in flight
func (s State) Running() bool {
	return s.Status.IsActive()
}

// ActionLabelKey returns the localization key for the start button
func (s State) ActionLabelKey() string {
	switch {
	case !s.EngineLoaded:
		return ActionLoadingEngine
	case s.Mode == ModeCrop && s.Running():
		return ActionCropping
	case s.Mode == ModeCrop:
		return ActionCrop
	case s.Running():
		return ActionConverting
	default:
		return ActionConvert
	}
}

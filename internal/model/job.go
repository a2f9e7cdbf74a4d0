package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobIDPrefix is prepended to generated job IDs
const JobIDPrefix = "job-"

// Job represents a single engine invocation (convert or crop)
type Job struct {
	ID           string
	Mode         Mode
	InputName    string      // name written into the engine filesystem
	OutputName   string      // name read back from the engine filesystem
	TargetFormat Format      // output format
	Trim         *TrimWindow // set for crop jobs only
	Status       JobStatus
	Progress     float64 // 0.0 to 1.0
	Percent      int     // 0 to 100
	LastError    string  // underlying cause, never shown to the user
	StartedAt    time.Time
	FinishedAt   time.Time
}

// NewJob creates a running job for the given mode and file names
func NewJob(mode Mode, inputName, outputName string, target Format, trim *TrimWindow) *Job {
	return &Job{
		ID:           NewJobID(),
		Mode:         mode,
		InputName:    inputName,
		OutputName:   outputName,
		TargetFormat: target,
		Trim:         trim,
		Status:       JobStatusRunning,
		StartedAt:    time.Now(),
	}
}

// SetProgress stores an engine progress fraction, clamped to [0, 1]
func (j *Job) SetProgress(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	j.Progress = fraction
	j.Percent = int(fraction * 100)
}

// Elapsed returns how long the job ran, or has been running so far
func (j *Job) Elapsed() time.Duration {
	if j.StartedAt.IsZero() {
		return 0
	}
	if j.FinishedAt.IsZero() {
		return time.Since(j.StartedAt)
	}
	return j.FinishedAt.Sub(j.StartedAt)
}

// NewJobID generates a unique job ID using UUID v7, which is time ordered
func NewJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}

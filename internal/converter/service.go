package converter

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ytget/video-converter/internal/engine"
	"github.com/ytget/video-converter/internal/model"
	"github.com/ytget/video-converter/internal/timeline"
)

// Engine argument constants
const (
	InputFlag     = "-i"
	SeekStartFlag = "-ss"
	SeekEndFlag   = "-to"
	ProbeDirName  = "video-converter-probe-*"
)

var _ Converter = (*Service)(nil)

// Service is the converter controller. It is safe for concurrent use;
// Start blocks until the engine finishes and is meant to run off the UI loop.
type Service struct {
	engine   engine.Engine
	store    ArtifactStore
	timeline *timeline.Timeline

	mu            sync.Mutex
	state         model.State
	engineLoadErr error
	probeDir      string // on-disk copy of in-memory sources, for ffprobe
	probePath     string
	onUpdate      func(model.State) // callback for UI updates
}

// Option configures a Service
type Option func(*Service)

// WithTimeline shares an existing timeline with the service
func WithTimeline(tl *timeline.Timeline) Option {
	return func(s *Service) {
		if tl != nil {
			s.timeline = tl
		}
	}
}

// WithMode sets the initial mode
func WithMode(mode model.Mode) Option {
	return func(s *Service) {
		s.state.Mode = mode
	}
}

// NewService creates a new converter over eng, storing outputs in store
func NewService(eng engine.Engine, store ArtifactStore, opts ...Option) *Service {
	s := &Service{
		engine:   eng,
		store:    store,
		timeline: timeline.New(),
		state: model.State{
			Status: model.JobStatusLoadingEngine,
			Mode:   model.ModeConvert,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(model.State)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Timeline returns the trim timeline used by crop jobs
func (s *Service) Timeline() *timeline.Timeline {
	return s.timeline
}

// State returns a snapshot of the controller
func (s *Service) State() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// LoadEngine loads the engine once. On failure the controller stays
// unable to start jobs.
func (s *Service) LoadEngine(ctx context.Context) error {
	s.mu.Lock()
	if s.state.EngineLoaded {
		s.mu.Unlock()
		return nil
	}
	s.engineLoadErr = nil
	s.state.Status = s.restingStatusLocked()
	s.mu.Unlock()
	s.notifyUpdate()

	err := s.engine.Load(ctx)

	s.mu.Lock()
	if err != nil {
		log.Printf("Failed to load engine: %v", err)
		s.engineLoadErr = err
		s.state.ErrorKind = model.ErrorEngineLoadFailed
		s.state.Error = model.ErrorEngineLoadFailed.Message()
	} else {
		s.state.EngineLoaded = true
		// The resting status below replaces any Failed left by a load or
		// intake error, so the matching message goes too
		switch s.state.ErrorKind {
		case model.ErrorEngineLoadFailed, model.ErrorUnsupportedFormat:
			s.clearErrorLocked()
		}
	}
	if !s.state.Status.IsActive() {
		s.state.Status = s.restingStatusLocked()
	}
	s.mu.Unlock()
	s.notifyUpdate()

	if err != nil {
		return fmt.Errorf("failed to load engine: %w", err)
	}
	return nil
}

// Intake normalizes a picked or dropped file and selects it
func (s *Service) Intake(name, path string, data []byte) error {
	file, err := model.NewSourceFile(name, path, data)
	if err != nil {
		return s.rejectFile(name, err)
	}
	return s.SelectFile(file)
}

// SelectFile makes file the current source. An unsupported file leaves the
// previous selection untouched and fails the controller.
func (s *Service) SelectFile(file *model.SourceFile) error {
	if file == nil {
		return s.rejectFile("", model.ErrUnsupportedFormat)
	}
	if _, err := model.ParseFormat(string(file.Format)); err != nil {
		return s.rejectFile(file.Name, err)
	}

	s.mu.Lock()
	if s.state.Status.IsActive() {
		s.mu.Unlock()
		return fmt.Errorf("cannot select %s: %w", file.Name, ErrJobRunning)
	}

	previous := s.state.Artifact
	s.state.Source = file
	s.state.TargetFormat = model.DefaultTarget(file.Format)
	s.state.Targets = model.AvailableTargets(file.Format)
	s.state.Artifact = nil
	s.state.Progress = 0
	s.clearErrorLocked()
	s.state.Status = s.restingStatusLocked()
	s.dropProbeCopyLocked()
	s.mu.Unlock()

	s.timeline.Reset()
	s.revoke(previous)

	log.Printf("File selected: %s (%s, %d bytes)", file.Name, file.Format, file.Size())
	s.notifyUpdate()
	return nil
}

// rejectFile records an unsupported intake
func (s *Service) rejectFile(name string, cause error) error {
	s.mu.Lock()
	if s.state.Status.IsActive() {
		s.mu.Unlock()
		return fmt.Errorf("cannot select %s: %w", name, ErrJobRunning)
	}
	s.state.Status = model.JobStatusFailed
	s.state.ErrorKind = model.ErrorUnsupportedFormat
	s.state.Error = model.ErrorUnsupportedFormat.Message()
	s.mu.Unlock()

	log.Printf("Rejected file %q: %v", name, cause)
	s.notifyUpdate()

	if errors.Is(cause, model.ErrUnsupportedFormat) {
		return cause
	}
	return fmt.Errorf("%w: %v", model.ErrUnsupportedFormat, cause)
}

// SetTargetFormat selects the conversion target
func (s *Service) SetTargetFormat(target model.Format) error {
	s.mu.Lock()
	if s.state.Source == nil {
		s.mu.Unlock()
		return ErrNoFile
	}
	if s.state.Status.IsActive() {
		s.mu.Unlock()
		return ErrJobRunning
	}
	if !target.IsTargetFor(s.state.Source.Format) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s for source %s", ErrInvalidTarget, target, s.state.Source.Format)
	}
	s.state.TargetFormat = target
	s.mu.Unlock()

	s.notifyUpdate()
	return nil
}

// SetMode switches between convert and crop
func (s *Service) SetMode(mode model.Mode) error {
	s.mu.Lock()
	if s.state.Status.IsActive() {
		s.mu.Unlock()
		return ErrJobRunning
	}
	s.state.Mode = model.ParseMode(string(mode))
	s.mu.Unlock()

	s.notifyUpdate()
	return nil
}

// ProbeDuration reads the source duration through the engine prober and
// loads it into the timeline. A failure is reported through the error
// fields only; conversion does not need the duration.
func (s *Service) ProbeDuration(ctx context.Context) error {
	prober, ok := s.engine.(engine.Prober)
	if !ok {
		return fmt.Errorf("engine cannot probe durations")
	}

	path, source, err := s.sourcePath()
	if err != nil {
		return err
	}

	duration, err := prober.Duration(ctx, path)
	if err == nil && duration <= 0 {
		err = fmt.Errorf("non-positive duration %v", duration)
	}

	s.mu.Lock()
	if s.state.Source != source {
		// A different file was selected meanwhile
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		s.state.ErrorKind = model.ErrorProbeFailed
		s.state.Error = model.ErrorProbeFailed.Message()
	}
	s.mu.Unlock()

	if err != nil {
		log.Printf("Failed to probe %s: %v", source.Name, err)
		s.notifyUpdate()
		return fmt.Errorf("failed to probe duration: %w", err)
	}

	s.timeline.Load(duration)
	log.Printf("Probed %s: %s seconds", source.Name, model.FormatSeconds(duration))
	s.notifyUpdate()
	return nil
}

// PreviewFrame renders the source frame at the given time
func (s *Service) PreviewFrame(ctx context.Context, at float64) ([]byte, error) {
	extractor, ok := s.engine.(engine.FrameExtractor)
	if !ok {
		return nil, ErrNoPreview
	}

	path, _, err := s.sourcePath()
	if err != nil {
		return nil, err
	}
	return extractor.ExtractFrame(ctx, path, at)
}

// sourcePath returns an on-disk path for the current source, writing the
// bytes to a private temp file when the source has no path.
func (s *Service) sourcePath() (string, *model.SourceFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source := s.state.Source
	if source == nil {
		return "", nil, ErrNoFile
	}
	if source.Path != "" {
		return source.Path, source, nil
	}
	if s.probePath != "" {
		return s.probePath, source, nil
	}

	dir, err := os.MkdirTemp("", ProbeDirName)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create probe dir: %w", err)
	}
	path := filepath.Join(dir, source.Name)
	if err := os.WriteFile(path, source.Data, 0o600); err != nil {
		os.RemoveAll(dir)
		return "", nil, fmt.Errorf("failed to write probe copy: %w", err)
	}

	s.probeDir = dir
	s.probePath = path
	return path, source, nil
}

func (s *Service) dropProbeCopyLocked() {
	if s.probeDir != "" {
		os.RemoveAll(s.probeDir)
	}
	s.probeDir = ""
	s.probePath = ""
}

// Start runs one engine job for the current source and mode. It returns the
// new artifact on success.
func (s *Service) Start(ctx context.Context) (artifact *model.OutputArtifact, err error) {
	s.mu.Lock()
	job, source, err := s.prepareJobLocked()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.state.Status = model.JobStatusRunning
	s.state.Progress = 0
	s.state.Job = job
	s.clearErrorLocked()
	s.mu.Unlock()

	log.Printf("Job %s started: %s %s -> %s", job.ID, job.Mode, job.InputName, job.OutputName)
	s.notifyUpdate()

	s.engine.OnProgress(func(fraction float64) {
		s.updateProgress(job, fraction)
	})

	defer func() {
		s.cleanupScratch(ctx, job)
		s.finishJob(job, artifact, err)
	}()

	artifact, err = s.runJob(ctx, job, source)
	return artifact, err
}

// prepareJobLocked checks the start guards and builds the job
func (s *Service) prepareJobLocked() (*model.Job, *model.SourceFile, error) {
	st := s.state
	switch {
	case st.Source == nil:
		return nil, nil, ErrNoFile
	case !st.EngineLoaded:
		return nil, nil, ErrEngineNotLoaded
	case st.Status.IsActive():
		return nil, nil, ErrJobRunning
	case !st.Status.CanStart():
		return nil, nil, fmt.Errorf("%w: status %s", ErrNotReady, st.Status)
	}

	if st.Mode == model.ModeCrop {
		window := s.timeline.Window()
		if err := window.Validate(s.timeline.Duration()); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidTrim, err)
		}
		output := model.CroppedName(st.Source.Name)
		return model.NewJob(model.ModeCrop, st.Source.Name, output, model.CropFormat, &window), st.Source, nil
	}

	if !st.TargetFormat.IsTargetFor(st.Source.Format) {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidTarget, st.TargetFormat)
	}
	output := model.ConvertedName(st.Source.Name, st.TargetFormat)
	return model.NewJob(model.ModeConvert, st.Source.Name, output, st.TargetFormat, nil), st.Source, nil
}

// runJob performs the engine calls: write, exec, read, store
func (s *Service) runJob(ctx context.Context, job *model.Job, source *model.SourceFile) (*model.OutputArtifact, error) {
	if err := s.engine.WriteFile(ctx, job.InputName, source.Data); err != nil {
		return nil, fmt.Errorf("failed to write input: %w", err)
	}

	if err := s.engine.Exec(ctx, BuildJobArgs(job)); err != nil {
		return nil, fmt.Errorf("failed to run engine: %w", err)
	}

	data, err := s.engine.ReadFile(ctx, job.OutputName)
	if err != nil {
		return nil, fmt.Errorf("failed to read output: %w", err)
	}

	artifact, err := s.store.Create(job.OutputName, job.TargetFormat, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store output: %w", err)
	}
	return artifact, nil
}

// BuildJobArgs returns the engine argv for job
func BuildJobArgs(job *model.Job) []string {
	args := []string{InputFlag, job.InputName}
	if job.Mode == model.ModeCrop && job.Trim != nil {
		args = append(args,
			SeekStartFlag, model.FormatSeconds(job.Trim.Start),
			SeekEndFlag, model.FormatSeconds(job.Trim.End),
		)
	}
	return append(args, job.OutputName)
}

// updateProgress maps an engine fraction to the state percent
func (s *Service) updateProgress(job *model.Job, fraction float64) {
	s.mu.Lock()
	if s.state.Job != job || !s.state.Status.IsActive() {
		s.mu.Unlock()
		return
	}
	job.SetProgress(fraction)
	s.state.Progress = job.Progress * 100
	s.mu.Unlock()

	s.notifyUpdate()
}

// finishJob records the job outcome and clears the running state
func (s *Service) finishJob(job *model.Job, artifact *model.OutputArtifact, err error) {
	s.mu.Lock()
	job.FinishedAt = time.Now()

	var previous *model.OutputArtifact
	if err != nil {
		kind := model.ErrorConversionFailed
		if job.Mode == model.ModeCrop {
			kind = model.ErrorCroppingFailed
		}
		job.Status = model.JobStatusFailed
		job.LastError = err.Error()
		s.state.Status = model.JobStatusFailed
		s.state.ErrorKind = kind
		s.state.Error = kind.Message()
	} else {
		job.Status = model.JobStatusSucceeded
		job.SetProgress(1)
		previous = s.state.Artifact
		s.state.Artifact = artifact
		s.state.Status = model.JobStatusSucceeded
		s.state.Progress = 100
	}
	s.mu.Unlock()

	if err != nil {
		log.Printf("Job %s failed after %v: %v", job.ID, job.Elapsed(), err)
	} else {
		log.Printf("Job %s completed in %v: %s (%d bytes)", job.ID, job.Elapsed(), artifact.Name, artifact.Size)
	}

	s.revoke(previous)
	s.notifyUpdate()
}

// cleanupScratch removes the job files from the engine filesystem
func (s *Service) cleanupScratch(ctx context.Context, job *model.Job) {
	remover, ok := s.engine.(engine.Remover)
	if !ok {
		return
	}
	ctx = context.WithoutCancel(ctx)
	for _, name := range []string{job.InputName, job.OutputName} {
		if err := remover.DeleteFile(ctx, name); err != nil {
			log.Printf("Failed to delete scratch file %s: %v", name, err)
		}
	}
}

// Reset clears the file, artifact, progress, error and trim window
func (s *Service) Reset() error {
	s.mu.Lock()
	if s.state.Status.IsActive() {
		s.mu.Unlock()
		return ErrJobRunning
	}

	previous := s.state.Artifact
	s.state.Source = nil
	s.state.Artifact = nil
	s.state.TargetFormat = ""
	s.state.Targets = nil
	s.state.Progress = 0
	s.state.Job = nil
	s.clearErrorLocked()
	s.state.Status = s.restingStatusLocked()
	s.dropProbeCopyLocked()
	s.mu.Unlock()

	s.timeline.Reset()
	s.revoke(previous)

	log.Printf("Converter reset")
	s.notifyUpdate()
	return nil
}

// Close revokes the current artifact and removes temporary files
func (s *Service) Close() error {
	s.mu.Lock()
	previous := s.state.Artifact
	s.state.Artifact = nil
	s.dropProbeCopyLocked()
	s.mu.Unlock()

	s.revoke(previous)
	return nil
}

// restingStatusLocked returns the status outside of a job
func (s *Service) restingStatusLocked() model.JobStatus {
	switch {
	case s.engineLoadErr != nil:
		return model.JobStatusFailed
	case !s.state.EngineLoaded:
		return model.JobStatusLoadingEngine
	case s.state.Source != nil:
		return model.JobStatusReady
	default:
		return model.JobStatusIdle
	}
}

// clearErrorLocked clears the error fields, except an engine load failure
// which lasts until the engine loads
func (s *Service) clearErrorLocked() {
	if s.engineLoadErr != nil {
		s.state.ErrorKind = model.ErrorEngineLoadFailed
		s.state.Error = model.ErrorEngineLoadFailed.Message()
		return
	}
	s.state.ErrorKind = model.ErrorNone
	s.state.Error = ""
}

func (s *Service) revoke(a *model.OutputArtifact) {
	if a == nil {
		return
	}
	if err := s.store.Revoke(a); err != nil {
		log.Printf("Failed to revoke artifact %s: %v", a.Name, err)
	}
}

// snapshotLocked copies the state and merges in the timeline
func (s *Service) snapshotLocked() model.State {
	st := s.state
	st.Targets = append([]model.Format(nil), s.state.Targets...)
	st.Trim = s.timeline.Window()
	st.Duration = s.timeline.Duration()
	st.Position = s.timeline.Position()
	if s.state.Job != nil {
		job := *s.state.Job
		st.Job = &job
	}
	return st
}

// notifyUpdate sends the current snapshot to the update callback
func (s *Service) notifyUpdate() {
	s.mu.Lock()
	callback := s.onUpdate
	var snapshot model.State
	if callback != nil {
		snapshot = s.snapshotLocked()
	}
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

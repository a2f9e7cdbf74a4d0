package converter

import (
	"context"

	"github.com/ytget/video-converter/internal/model"
	"github.com/ytget/video-converter/internal/timeline"
)

// Converter defines the interface for the conversion controller.
type Converter interface {
	SetUpdateCallback(func(model.State))
	LoadEngine(ctx context.Context) error
	Intake(name, path string, data []byte) error
	SelectFile(file *model.SourceFile) error
	SetTargetFormat(target model.Format) error
	SetMode(mode model.Mode) error
	ProbeDuration(ctx context.Context) error
	PreviewFrame(ctx context.Context, at float64) ([]byte, error)
	Timeline() *timeline.Timeline
	Start(ctx context.Context) (*model.OutputArtifact, error)
	Reset() error
	State() model.State
	Close() error
}

// ArtifactStore creates and revokes job outputs.
type ArtifactStore interface {
	Create(name string, format model.Format, data []byte) (*model.OutputArtifact, error)
	Revoke(a *model.OutputArtifact) error
}

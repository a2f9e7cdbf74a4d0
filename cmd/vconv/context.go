package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/ytget/video-converter/internal/artifact"
	"github.com/ytget/video-converter/internal/converter"
	"github.com/ytget/video-converter/internal/engine"
	"github.com/ytget/video-converter/internal/model"
)

// jobEngine is the engine surface the CLI needs, including probing for crops
type jobEngine interface {
	engine.Engine
	engine.Prober
	Close() error
}

type commandContext struct {
	ffmpegPath  string
	ffprobePath string
	quiet       bool

	// newEngine builds the engine for one command run
	newEngine func(ffmpegBin, ffprobeBin string) jobEngine
}

func newCommandContext() *commandContext {
	return &commandContext{
		newEngine: func(ffmpegBin, ffprobeBin string) jobEngine {
			return engine.NewFFmpeg(engine.WithBinaries(ffmpegBin, ffprobeBin))
		},
	}
}

// jobRequest describes one convert or crop run
type jobRequest struct {
	mode   model.Mode
	input  string
	target model.Format
	start  float64
	end    float64
	outDir string
}

// runJob executes req through a fresh converter and saves the artifact to
// req.outDir, returning the saved path
func (c *commandContext) runJob(ctx context.Context, stdout, stderr io.Writer, req jobRequest) (string, error) {
	if c.quiet {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(stderr)
		defer log.SetOutput(os.Stderr)
	}

	absInput, err := filepath.Abs(req.input)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", req.input, err)
	}
	data, err := os.ReadFile(absInput)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	store, err := artifact.NewStore("")
	if err != nil {
		return "", err
	}
	defer store.Close()

	eng := c.newEngine(c.ffmpegPath, c.ffprobePath)
	defer eng.Close()

	svc := converter.NewService(eng, store, converter.WithMode(req.mode))
	defer svc.Close()

	if err := svc.LoadEngine(ctx); err != nil {
		return "", err
	}
	if err := svc.Intake(filepath.Base(absInput), absInput, data); err != nil {
		return "", err
	}

	switch req.mode {
	case model.ModeCrop:
		if err := svc.ProbeDuration(ctx); err != nil {
			return "", err
		}
		end := req.end
		if end <= 0 {
			end = svc.Timeline().Duration()
		}
		if err := svc.Timeline().SetWindow(req.start, end); err != nil {
			return "", fmt.Errorf("%w: %v", converter.ErrInvalidTrim, err)
		}
	default:
		if req.target != "" {
			if err := svc.SetTargetFormat(req.target); err != nil {
				return "", err
			}
		}
	}

	progress := newProgressReporter(stderr, req.mode)
	svc.SetUpdateCallback(func(st model.State) {
		if st.Running() {
			progress.Update(st.Progress)
		}
	})

	result, err := svc.Start(ctx)
	if err != nil {
		progress.Abort()
		if msg := svc.State().Error; msg != "" {
			return "", fmt.Errorf("%s: %w", msg, err)
		}
		return "", err
	}
	progress.Finish()

	if err := os.MkdirAll(req.outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}
	saved, err := store.SaveToDir(result, req.outDir)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(stdout, "Saved %s (%s)\n", saved, humanize.Bytes(uint64(result.Size)))
	return saved, nil
}

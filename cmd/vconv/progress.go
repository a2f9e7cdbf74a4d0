package main

import (
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/ytget/video-converter/internal/model"
)

// ProgressLogStep is the percent step between log lines on non-terminals
const ProgressLogStep = 10

// progressReporter shows job progress as a bar on terminals and as
// periodic log lines otherwise
type progressReporter struct {
	bar      *progressbar.ProgressBar
	label    string
	lastStep int
}

func newProgressReporter(w io.Writer, mode model.Mode) *progressReporter {
	label := "Converting"
	if mode == model.ModeCrop {
		label = "Cropping"
	}

	r := &progressReporter{label: label, lastStep: -1}
	if isTerminal(w) {
		r.bar = progressbar.NewOptions(100,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(label),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionOnCompletion(func() { _, _ = io.WriteString(w, "\n") }),
		)
	}
	return r
}

// Update reports a percent in [0, 100]
func (r *progressReporter) Update(percent float64) {
	if r.bar != nil {
		_ = r.bar.Set(int(percent))
		return
	}
	step := int(percent) / ProgressLogStep
	if step > r.lastStep {
		r.lastStep = step
		log.Printf("%s: %d%%", r.label, step*ProgressLogStep)
	}
}

// Finish completes the bar
func (r *progressReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
		return
	}
	if r.lastStep < 100/ProgressLogStep {
		log.Printf("%s: 100%%", r.label)
	}
}

// Abort leaves the bar where it stopped
func (r *progressReporter) Abort() {
	if r.bar != nil {
		_ = r.bar.Exit()
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

package ui

import (
	"context"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/ytget/video-converter/internal/timeline"
)

// FrameFunc renders the source frame at a time offset as PNG bytes
type FrameFunc func(ctx context.Context, at float64) ([]byte, error)

// framePreview shows single frames extracted on seek. Requests made while
// an extraction runs are coalesced into the latest one.
type framePreview struct {
	ctx     context.Context
	image   *canvas.Image
	extract FrameFunc

	mu      sync.Mutex
	busy    bool
	next    float64
	hasNext bool
	// generation changes on Invalidate; frames from older generations are dropped
	generation uint64
}

func newFramePreview(ctx context.Context, extract FrameFunc) *framePreview {
	img := &canvas.Image{}
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(PreviewWidth, PreviewHeight))
	return &framePreview{ctx: ctx, image: img, extract: extract}
}

// Request schedules a frame at the given time
func (fp *framePreview) Request(at float64) {
	fp.mu.Lock()
	if fp.busy {
		fp.next = at
		fp.hasNext = true
		fp.mu.Unlock()
		return
	}
	fp.busy = true
	fp.mu.Unlock()

	go fp.run(at)
}

func (fp *framePreview) run(at float64) {
	for {
		gen := fp.currentGeneration()
		data, err := fp.extract(fp.ctx, at)
		if err != nil {
			log.Printf("Failed to extract preview frame at %.2fs: %v", at, err)
		} else {
			res := fyne.NewStaticResource(FrameResourceName, data)
			fyne.Do(func() {
				if fp.currentGeneration() != gen {
					return
				}
				fp.image.Resource = res
				fp.image.Refresh()
			})
		}

		fp.mu.Lock()
		if !fp.hasNext || fp.ctx.Err() != nil {
			fp.busy = false
			fp.hasNext = false
			fp.mu.Unlock()
			return
		}
		at = fp.next
		fp.hasNext = false
		fp.mu.Unlock()
	}
}

func (fp *framePreview) currentGeneration() uint64 {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.generation
}

// Invalidate drops pending requests and any frame still being extracted.
// Safe to call from any goroutine.
func (fp *framePreview) Invalidate() {
	fp.mu.Lock()
	fp.generation++
	fp.hasNext = false
	fp.mu.Unlock()
}

// Clear invalidates outstanding frames and removes the shown one
func (fp *framePreview) Clear() {
	fp.Invalidate()
	fp.clearImage()
}

func (fp *framePreview) clearImage() {
	fp.image.Resource = nil
	fp.image.Refresh()
}

// previewPlayer advances the timeline playhead through the trim window on
// a ticker, standing in for media playback.
type previewPlayer struct {
	timeline *timeline.Timeline
	interval time.Duration

	mu      sync.Mutex
	stop    chan struct{}
	onState func(playing bool)
}

func newPreviewPlayer(tl *timeline.Timeline, interval time.Duration) *previewPlayer {
	return &previewPlayer{timeline: tl, interval: interval}
}

// OnStateChange sets the callback for play/stop transitions
func (p *previewPlayer) OnStateChange(fn func(playing bool)) {
	p.mu.Lock()
	p.onState = fn
	p.mu.Unlock()
}

// Playing reports whether the ticker runs
func (p *previewPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}

// Toggle starts or stops playback
func (p *previewPlayer) Toggle() {
	if p.Playing() {
		p.Stop()
		return
	}
	p.Play()
}

// Play starts from the playhead, or from the window start when the playhead
// is outside the window
func (p *previewPlayer) Play() {
	p.mu.Lock()
	if p.stop != nil || p.timeline.Duration() <= 0 {
		p.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	p.stop = stop
	onState := p.onState
	p.mu.Unlock()

	window := p.timeline.Window()
	if pos := p.timeline.Position(); pos < window.Start || pos >= window.End {
		p.timeline.SetPosition(window.Start)
	}

	if onState != nil {
		onState(true)
	}
	go p.loop(stop)
}

// Stop halts playback; the playhead stays where it is
func (p *previewPlayer) Stop() {
	p.mu.Lock()
	stop := p.stop
	p.stop = nil
	onState := p.onState
	p.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	if onState != nil {
		onState(false)
	}
}

func (p *previewPlayer) loop(stop chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	step := p.interval.Seconds()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			window := p.timeline.Window()
			next := p.timeline.Position() + step
			if next >= window.End {
				p.timeline.SetPosition(window.End)
				p.finish(stop)
				return
			}
			p.timeline.SetPosition(next)
		}
	}
}

// finish stops playback from the loop itself, once the window end is reached
func (p *previewPlayer) finish(stop chan struct{}) {
	p.mu.Lock()
	if p.stop != stop {
		p.mu.Unlock()
		return
	}
	p.stop = nil
	onState := p.onState
	p.mu.Unlock()

	close(stop)
	if onState != nil {
		onState(false)
	}
}

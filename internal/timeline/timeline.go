package timeline

import (
	"fmt"
	"sync"

	"github.com/ytget/video-converter/internal/model"
)

// Handle identifies one of the two trim handles
type Handle int

const (
	HandleStart Handle = iota
	HandleEnd
)

// String returns the handle name
func (h Handle) String() string {
	if h == HandleEnd {
		return "end"
	}
	return "start"
}

// Timeline is the trim window over a media duration plus the playhead.
// It is safe for concurrent use.
type Timeline struct {
	mu       sync.Mutex
	duration float64
	window   model.TrimWindow
	position float64
	active   *Drag

	onSeek   func(float64)
	onChange func()
}

// New creates an empty timeline (duration zero)
func New() *Timeline {
	return &Timeline{}
}

// OnSeek sets the callback invoked when an accepted start-handle move seeks
// the preview. It receives the new start time.
func (t *Timeline) OnSeek(fn func(float64)) {
	t.mu.Lock()
	t.onSeek = fn
	t.mu.Unlock()
}

// OnChange sets the callback invoked after the window or playhead changed
func (t *Timeline) OnChange(fn func()) {
	t.mu.Lock()
	t.onChange = fn
	t.mu.Unlock()
}

// Load initializes the window to [0, duration] and the playhead to 0.
// Any drag in progress is released.
func (t *Timeline) Load(duration float64) {
	t.mu.Lock()
	if duration < 0 {
		duration = 0
	}
	t.releaseLocked()
	t.duration = duration
	t.window = model.TrimWindow{Start: 0, End: duration}
	t.position = 0
	onChange := t.onChange
	t.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

// Reset clears the timeline back to an empty duration
func (t *Timeline) Reset() {
	t.Load(0)
}

// Duration returns the media duration in seconds
func (t *Timeline) Duration() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.duration
}

// Window returns the current trim window
func (t *Timeline) Window() model.TrimWindow {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.window
}

// Position returns the playhead in seconds
func (t *Timeline) Position() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.position
}

// SetPosition moves the playhead, clamped to [0, duration]. It does not
// touch the handles.
func (t *Timeline) SetPosition(sec float64) {
	t.mu.Lock()
	t.position = clamp(sec, 0, t.duration)
	onChange := t.onChange
	t.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

// SetWindow applies an explicit window, subject to 0 <= start < end <= duration
func (t *Timeline) SetWindow(start, end float64) error {
	window := model.TrimWindow{Start: start, End: end}

	t.mu.Lock()
	if err := window.Validate(t.duration); err != nil {
		t.mu.Unlock()
		return fmt.Errorf("failed to set trim window: %w", err)
	}
	t.window = window
	t.position = start
	onChange := t.onChange
	t.mu.Unlock()

	if onChange != nil {
		onChange()
	}
	return nil
}

// BeginDrag opens a capture scope for handle. A drag already in progress is
// released first; only one scope is open at a time.
func (t *Timeline) BeginDrag(handle Handle) *Drag {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.releaseLocked()
	d := &Drag{timeline: t, handle: handle}
	t.active = d
	return d
}

// Dragging reports whether a capture scope is open
func (t *Timeline) Dragging() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active != nil
}

func (t *Timeline) releaseLocked() {
	if t.active != nil {
		t.active.released = true
		t.active = nil
	}
}

// move applies a pointer position to the dragged handle
func (t *Timeline) move(d *Drag, offsetX, trackWidth float64) bool {
	t.mu.Lock()
	if d.released || t.active != d || trackWidth <= 0 || t.duration <= 0 {
		t.mu.Unlock()
		return false
	}
	// Pointer outside the track: skip this frame
	if offsetX < 0 || offsetX > trackWidth {
		t.mu.Unlock()
		return false
	}

	proposed := offsetX / trackWidth * t.duration

	var onSeek func(float64)
	switch d.handle {
	case HandleStart:
		if proposed >= t.window.End {
			t.mu.Unlock()
			return false
		}
		t.window.Start = proposed
		t.position = proposed
		onSeek = t.onSeek
	case HandleEnd:
		if proposed <= t.window.Start {
			t.mu.Unlock()
			return false
		}
		t.window.End = proposed
	}
	onChange := t.onChange
	t.mu.Unlock()

	if onSeek != nil {
		onSeek(proposed)
	}
	if onChange != nil {
		onChange()
	}
	return true
}

// Drag is an open capture scope for one handle
type Drag struct {
	timeline *Timeline
	handle   Handle
	released bool // guarded by timeline.mu
}

// Handle returns the handle being dragged
func (d *Drag) Handle() Handle {
	return d.handle
}

// Move maps offsetX within a track of trackWidth pixels to a time and
// proposes it for the dragged handle. It returns false when the proposal was
// rejected or the drag is already released.
func (d *Drag) Move(offsetX, trackWidth float64) bool {
	return d.timeline.move(d, offsetX, trackWidth)
}

// Release closes the capture scope. It is safe to call more than once.
func (d *Drag) Release() {
	t := d.timeline
	t.mu.Lock()
	defer t.mu.Unlock()

	d.released = true
	if t.active == d {
		t.active = nil
	}
}

// Released reports whether the scope is closed
func (d *Drag) Released() bool {
	d.timeline.mu.Lock()
	defer d.timeline.mu.Unlock()
	return d.released
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

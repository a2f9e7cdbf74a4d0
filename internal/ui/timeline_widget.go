package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-converter/internal/timeline"
)

// TimelineWidget draws the trim track with two handles and a playhead.
// Dragging near a handle opens a timeline capture scope; Fyne keeps sending
// drag events to this widget until the pointer is released, even when it
// leaves the widget bounds.
type TimelineWidget struct {
	widget.BaseWidget

	timeline *timeline.Timeline
	drag     *timeline.Drag

	// OnDragEnd is called after a handle drag is released
	OnDragEnd func()
}

var (
	_ fyne.Draggable      = (*TimelineWidget)(nil)
	_ mobile.Touchable    = (*TimelineWidget)(nil)
	_ fyne.WidgetRenderer = (*timelineRenderer)(nil)
)

// NewTimelineWidget creates a widget bound to tl
func NewTimelineWidget(tl *timeline.Timeline) *TimelineWidget {
	w := &TimelineWidget{timeline: tl}
	w.ExtendBaseWidget(w)
	return w
}

// trackBounds returns the track start and width in widget coordinates
func (w *TimelineWidget) trackBounds() (x0, width float32) {
	inset := handleHitWidth() / 2
	width = w.Size().Width - 2*inset
	if width < 0 {
		width = 0
	}
	return inset, width
}

// nearestHandle picks the handle closest to x
func (w *TimelineWidget) nearestHandle(x float32) timeline.Handle {
	x0, width := w.trackBounds()
	duration := w.timeline.Duration()
	if duration <= 0 || width <= 0 {
		return timeline.HandleStart
	}

	window := w.timeline.Window()
	startX := x0 + float32(window.Start/duration)*width
	endX := x0 + float32(window.End/duration)*width

	if math.Abs(float64(x-startX)) <= math.Abs(float64(x-endX)) {
		// Both handles at the same spot: move the one that has room
		if startX == endX && x > endX {
			return timeline.HandleEnd
		}
		return timeline.HandleStart
	}
	return timeline.HandleEnd
}

// begin opens a capture scope for the handle nearest to x
func (w *TimelineWidget) begin(x float32) {
	if w.drag != nil {
		return
	}
	w.drag = w.timeline.BeginDrag(w.nearestHandle(x))
}

// move forwards a pointer position to the open scope
func (w *TimelineWidget) move(x float32) bool {
	if w.drag == nil {
		return false
	}
	x0, width := w.trackBounds()
	return w.drag.Move(float64(x-x0), float64(width))
}

// release closes the capture scope, if any
func (w *TimelineWidget) release() {
	if w.drag == nil {
		return
	}
	w.drag.Release()
	w.drag = nil
	if w.OnDragEnd != nil {
		w.OnDragEnd()
	}
}

// Dragged implements fyne.Draggable
func (w *TimelineWidget) Dragged(e *fyne.DragEvent) {
	if w.drag == nil {
		// First event of the gesture: pick the handle under the press point
		w.begin(e.Position.X - e.Dragged.DX)
	}
	if w.move(e.Position.X) {
		w.Refresh()
	}
}

// DragEnd implements fyne.Draggable
func (w *TimelineWidget) DragEnd() {
	w.release()
}

// TouchDown implements mobile.Touchable
func (w *TimelineWidget) TouchDown(e *mobile.TouchEvent) {
	w.begin(e.Position.X)
}

// TouchUp implements mobile.Touchable
func (w *TimelineWidget) TouchUp(*mobile.TouchEvent) {
	w.release()
}

// TouchCancel implements mobile.Touchable
func (w *TimelineWidget) TouchCancel(*mobile.TouchEvent) {
	w.release()
}

// CreateRenderer implements fyne.Widget
func (w *TimelineWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &timelineRenderer{
		widget:      w,
		track:       canvas.NewRectangle(color.Transparent),
		window:      canvas.NewRectangle(color.Transparent),
		startHandle: canvas.NewRectangle(color.Transparent),
		endHandle:   canvas.NewRectangle(color.Transparent),
		playhead:    canvas.NewRectangle(color.Transparent),
	}
	r.track.CornerRadius = TimelineTrackHeight / 2
	r.startHandle.CornerRadius = 2
	r.endHandle.CornerRadius = 2
	r.applyColors()
	return r
}

// handleHitWidth is the handle width, widened on touch devices
func handleHitWidth() float32 {
	if fyne.CurrentDevice().IsMobile() {
		return MinTouchTargetSize
	}
	return TimelineHandleWidth
}

type timelineRenderer struct {
	widget      *TimelineWidget
	track       *canvas.Rectangle
	window      *canvas.Rectangle
	startHandle *canvas.Rectangle
	endHandle   *canvas.Rectangle
	playhead    *canvas.Rectangle
}

func (r *timelineRenderer) Layout(size fyne.Size) {
	x0, width := r.widget.trackBounds()
	trackY := (size.Height - TimelineTrackHeight) / 2

	r.track.Move(fyne.NewPos(x0, trackY))
	r.track.Resize(fyne.NewSize(width, TimelineTrackHeight))

	duration := r.widget.timeline.Duration()
	if duration <= 0 || width <= 0 {
		r.window.Hide()
		r.startHandle.Hide()
		r.endHandle.Hide()
		r.playhead.Hide()
		return
	}

	window := r.widget.timeline.Window()
	position := r.widget.timeline.Position()
	toX := func(sec float64) float32 {
		return x0 + float32(sec/duration)*width
	}

	startX, endX := toX(window.Start), toX(window.End)
	r.window.Move(fyne.NewPos(startX, trackY))
	r.window.Resize(fyne.NewSize(endX-startX, TimelineTrackHeight))

	r.startHandle.Move(fyne.NewPos(startX-TimelineHandleWidth/2, 0))
	r.startHandle.Resize(fyne.NewSize(TimelineHandleWidth, size.Height))
	r.endHandle.Move(fyne.NewPos(endX-TimelineHandleWidth/2, 0))
	r.endHandle.Resize(fyne.NewSize(TimelineHandleWidth, size.Height))

	r.playhead.Move(fyne.NewPos(toX(position)-TimelinePlayheadW/2, 0))
	r.playhead.Resize(fyne.NewSize(TimelinePlayheadW, size.Height))

	r.window.Show()
	r.startHandle.Show()
	r.endHandle.Show()
	r.playhead.Show()
}

func (r *timelineRenderer) MinSize() fyne.Size {
	return fyne.NewSize(TimelineMinWidth, TimelineHeight)
}

func (r *timelineRenderer) Refresh() {
	r.applyColors()
	r.Layout(r.widget.Size())
	for _, o := range r.Objects() {
		o.Refresh()
	}
}

func (r *timelineRenderer) applyColors() {
	r.track.FillColor = themeColor(ColorNameTimelineTrack, theme.ColorNameInputBackground)
	r.window.FillColor = themeColor(ColorNameTimelineWindow, theme.ColorNameSelection)
	r.startHandle.FillColor = themeColor(ColorNameTimelineHandle, theme.ColorNamePrimary)
	r.endHandle.FillColor = r.startHandle.FillColor
	r.playhead.FillColor = themeColor(ColorNameTimelinePlayhead, theme.ColorNameError)
}

func (r *timelineRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.track, r.window, r.playhead, r.startHandle, r.endHandle}
}

func (r *timelineRenderer) Destroy() {}

// themeColor resolves a timeline color, falling back for themes that do not
// define it
func themeColor(name, fallback fyne.ThemeColorName) color.Color {
	c := theme.Color(name)
	if c == nil {
		return theme.Color(fallback)
	}
	if _, _, _, a := c.RGBA(); a == 0 {
		return theme.Color(fallback)
	}
	return c
}

package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidTrimWindow is returned when a window violates 0 <= start < end <= duration.
var ErrInvalidTrimWindow = errors.New("invalid trim window")

// TrimWindow is the [Start, End] range, in seconds, kept by a crop job.
type TrimWindow struct {
	Start float64
	End   float64
}

// Validate checks the window against the media duration
func (tw TrimWindow) Validate(duration float64) error {
	if duration <= 0 {
		return fmt.Errorf("%w: unknown duration", ErrInvalidTrimWindow)
	}
	if tw.Start < 0 || tw.End > duration {
		return fmt.Errorf("%w: [%s, %s] outside [0, %s]", ErrInvalidTrimWindow,
			FormatSeconds(tw.Start), FormatSeconds(tw.End), FormatSeconds(duration))
	}
	if tw.Start >= tw.End {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidTrimWindow,
			FormatSeconds(tw.Start), FormatSeconds(tw.End))
	}
	return nil
}

// Length returns End - Start
func (tw TrimWindow) Length() float64 {
	return tw.End - tw.Start
}

// TruncateEpsilon absorbs binary float error (2.3*100 = 229.999...) before
// truncating to hundredths.
const TruncateEpsilon = 1e-9

// FormatSeconds renders seconds truncated (not rounded) to two decimals.
func FormatSeconds(sec float64) string {
	if sec < 0 || math.IsNaN(sec) {
		sec = 0
	}
	truncated := math.Floor(sec*100+TruncateEpsilon) / 100
	return strconv.FormatFloat(truncated, 'f', 2, 64)
}

// FormatClock renders seconds as mm:ss.cc (or h:mm:ss.cc) for display
func FormatClock(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	centis := int64(sec*100 + 0.5)
	hours := centis / 360000
	minutes := (centis % 360000) / 6000
	seconds := (centis % 6000) / 100
	rest := centis % 100
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, rest)
	}
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, rest)
}

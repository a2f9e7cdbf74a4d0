package engine

import (
	"strconv"
	"strings"
)

// Progress keys written by "ffmpeg -progress"
const (
	ProgressTimeUsPrefix = "out_time_us="
	ProgressTimeMsPrefix = "out_time_ms=" // microseconds despite the name
	ProgressStatePrefix  = "progress="
	ProgressStateEnd     = "end"
)

// parseProgressLine returns the output time in seconds for an out_time line,
// or done=true for the final "progress=end" line.
func parseProgressLine(line string) (seconds float64, done bool, ok bool) {
	line = strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(line, ProgressStatePrefix):
		return 0, strings.TrimPrefix(line, ProgressStatePrefix) == ProgressStateEnd, false
	case strings.HasPrefix(line, ProgressTimeUsPrefix):
		line = strings.TrimPrefix(line, ProgressTimeUsPrefix)
	case strings.HasPrefix(line, ProgressTimeMsPrefix):
		line = strings.TrimPrefix(line, ProgressTimeMsPrefix)
	default:
		return 0, false, false
	}

	micros, err := strconv.ParseInt(line, 10, 64)
	if err != nil || micros < 0 {
		return 0, false, false
	}
	return float64(micros) / 1000000.0, false, true
}

// clampFraction keeps a progress fraction within [0, 1]
func clampFraction(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// inputName returns the value following "-i" in args
func inputName(args []string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "-i" {
			return args[i+1]
		}
	}
	return ""
}

// expectedDuration narrows the probed input duration by -ss/-to in args.
func expectedDuration(args []string, inputDuration float64) float64 {
	start, end := 0.0, inputDuration
	for i := 0; i < len(args)-1; i++ {
		value, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			continue
		}
		switch args[i] {
		case "-ss":
			start = value
		case "-to":
			end = value
		case "-t":
			end = start + value
		}
	}
	if end > inputDuration && inputDuration > 0 {
		end = inputDuration
	}
	if end <= start {
		return 0
	}
	return end - start
}

// tailBuffer keeps the last n lines written to it
type tailBuffer struct {
	lines []string
	max   int
}

func newTailBuffer(max int) *tailBuffer {
	return &tailBuffer{max: max}
}

func (tb *tailBuffer) add(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	tb.lines = append(tb.lines, line)
	if len(tb.lines) > tb.max {
		tb.lines = tb.lines[len(tb.lines)-tb.max:]
	}
}

func (tb *tailBuffer) String() string {
	return strings.Join(tb.lines, "\n")
}

package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// FFmpeg constants
const (
	FFmpegCommand       = "ffmpeg"
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"
	ProgressPipeTarget  = "pipe:2"
	FrameOutputTarget   = "pipe:1"
	VersionPrefix       = "ffmpeg version"
	WorkDirPattern      = "video-converter-*"
	StderrTailLines     = 20
	MaxStderrLine       = 1 << 20
	FileProtocol        = "file:"
	FilePermissions     = 0o644
)

// FFmpeg is an Engine backed by local ffmpeg/ffprobe binaries. Its
// filesystem is a private scratch directory created by Load.
type FFmpeg struct {
	ffmpegBin  string
	ffprobeBin string
	tempRoot   string

	mu          sync.Mutex
	ffmpegPath  string
	ffprobePath string
	workDir     string
	version     string
	onProgress  ProgressFunc
}

// Option configures an FFmpeg engine
type Option func(*FFmpeg)

// WithBinaries overrides the ffmpeg and ffprobe executables (names or paths).
// Empty values keep the defaults.
func WithBinaries(ffmpegBin, ffprobeBin string) Option {
	return func(f *FFmpeg) {
		if strings.TrimSpace(ffmpegBin) != "" {
			f.ffmpegBin = strings.TrimSpace(ffmpegBin)
		}
		if strings.TrimSpace(ffprobeBin) != "" {
			f.ffprobeBin = strings.TrimSpace(ffprobeBin)
		}
	}
}

// WithTempRoot sets the parent directory of the scratch directory
func WithTempRoot(dir string) Option {
	return func(f *FFmpeg) {
		f.tempRoot = dir
	}
}

// NewFFmpeg creates an unloaded engine
func NewFFmpeg(opts ...Option) *FFmpeg {
	f := &FFmpeg{
		ffmpegBin:  FFmpegCommand,
		ffprobeBin: FFprobeCommand,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Load locates and verifies the binaries and creates the scratch directory.
// Calling Load again after success is a no-op.
func (f *FFmpeg) Load(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.workDir != "" {
		return nil
	}

	ffmpegPath, err := exec.LookPath(f.ffmpegBin)
	if err != nil {
		return fmt.Errorf("ffmpeg not found: %w", err)
	}
	ffprobePath, err := exec.LookPath(f.ffprobeBin)
	if err != nil {
		return fmt.Errorf("ffprobe not found: %w", err)
	}

	output, err := exec.CommandContext(ctx, ffmpegPath, "-version").Output()
	if err != nil {
		return fmt.Errorf("failed to get ffmpeg version: %w", err)
	}
	versionLine := strings.TrimSpace(strings.SplitN(string(output), "\n", 2)[0])
	if !strings.HasPrefix(versionLine, VersionPrefix) {
		return fmt.Errorf("unable to determine ffmpeg version from %q", versionLine)
	}

	workDir, err := os.MkdirTemp(f.tempRoot, WorkDirPattern)
	if err != nil {
		return fmt.Errorf("failed to create work dir: %w", err)
	}

	f.ffmpegPath = ffmpegPath
	f.ffprobePath = ffprobePath
	f.version = versionLine
	f.workDir = workDir

	log.Printf("Engine loaded: %s (work dir %s)", versionLine, workDir)
	return nil
}

// Version returns the first line of "ffmpeg -version", empty before Load
func (f *FFmpeg) Version() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.version
}

// OnProgress sets the progress listener for subsequent Exec calls
func (f *FFmpeg) OnProgress(fn ProgressFunc) {
	f.mu.Lock()
	f.onProgress = fn
	f.mu.Unlock()
}

// WriteFile stores data in the scratch directory
func (f *FFmpeg) WriteFile(ctx context.Context, name string, data []byte) error {
	path, err := f.resolve(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// ReadFile reads a file from the scratch directory
func (f *FFmpeg) ReadFile(ctx context.Context, name string) ([]byte, error) {
	path, err := f.resolve(name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// DeleteFile removes a file from the scratch directory. Missing files are ignored.
func (f *FFmpeg) DeleteFile(ctx context.Context, name string) error {
	path, err := f.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

// Exec runs ffmpeg with args inside the scratch directory and reports
// progress to the registered listener.
func (f *FFmpeg) Exec(ctx context.Context, args []string) error {
	f.mu.Lock()
	ffmpegPath, workDir, notify := f.ffmpegPath, f.workDir, f.onProgress
	f.mu.Unlock()

	if workDir == "" {
		return ErrNotLoaded
	}
	if notify == nil {
		notify = func(float64) {}
	}

	// Expected output length for progress calculation
	var total float64
	if in := inputName(args); in != "" && validName(in) {
		duration, err := f.Duration(ctx, filepath.Join(workDir, in))
		if err != nil {
			log.Printf("Failed to probe duration of %s, progress disabled: %v", in, err)
		} else {
			total = expectedDuration(args, duration)
		}
	}

	cmd := exec.CommandContext(ctx, ffmpegPath, BuildExecArgs(fileArgs(args))...)
	cmd.Dir = workDir

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	log.Printf("Running ffmpeg %s", strings.Join(args, " "))
	if err := cmd.Start(); err != nil {
		return newExecError(FFmpegCommand, args, "", err)
	}

	// Read everything before Wait closes the pipe
	tail := newTailBuffer(StderrTailLines)
	last := -1.0
	report := func(fraction float64) {
		if fraction != last {
			last = fraction
			notify(fraction)
		}
	}
	if err := scanStderr(stderr, total, report, tail); err != nil {
		log.Printf("Stopped parsing ffmpeg output: %v", err)
	}

	if err := cmd.Wait(); err != nil {
		return newExecError(FFmpegCommand, args, tail.String(), err)
	}
	report(1)
	return nil
}

// scanStderr parses progress lines from r until EOF. Non-progress lines go
// to tail. When a line cannot be scanned the rest of r is discarded so the
// writer never blocks on a full pipe.
func scanStderr(r io.Reader, total float64, report ProgressFunc, tail *tailBuffer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxStderrLine)
	for scanner.Scan() {
		line := scanner.Text()
		seconds, done, ok := parseProgressLine(line)
		switch {
		case done:
			report(1)
		case ok:
			if total > 0 {
				report(clampFraction(seconds / total))
			}
		case !isProgressKey(line):
			tail.add(line)
		}
	}

	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}

// Duration returns the container duration of path in seconds, via ffprobe
func (f *FFmpeg) Duration(ctx context.Context, path string) (float64, error) {
	f.mu.Lock()
	ffprobePath := f.ffprobePath
	f.mu.Unlock()
	if ffprobePath == "" {
		return 0, ErrNotLoaded
	}

	args := []string{"-v", FFprobeLogLevel, "-show_entries", FFprobeShowEntries, "-of", FFprobeOutputFormat, path}
	cmd := exec.CommandContext(ctx, ffprobePath, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return 0, newExecError(FFprobeCommand, args, stderr.String(), err)
	}

	durationStr := strings.TrimSpace(string(output))
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration %q: %w", durationStr, err)
	}
	return duration, nil
}

// ExtractFrame renders the frame at offset "at" seconds of path as PNG
func (f *FFmpeg) ExtractFrame(ctx context.Context, path string, at float64) ([]byte, error) {
	f.mu.Lock()
	ffmpegPath := f.ffmpegPath
	f.mu.Unlock()
	if ffmpegPath == "" {
		return nil, ErrNotLoaded
	}

	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-ss", strconv.FormatFloat(at, 'f', 3, 64),
		"-i", path,
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		FrameOutputTarget,
	}
	cmd := exec.CommandContext(ctx, ffmpegPath, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, newExecError("extract frame", args, stderr.String(), err)
	}
	if len(output) == 0 {
		return nil, fmt.Errorf("no frame at %.3fs in %s", at, filepath.Base(path))
	}
	return output, nil
}

// Close removes the scratch directory. The engine must be loaded again
// before further use.
func (f *FFmpeg) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.workDir == "" {
		return nil
	}
	err := os.RemoveAll(f.workDir)
	f.workDir = ""
	return err
}

// BuildExecArgs prepends the global options used for every Exec call
func BuildExecArgs(args []string) []string {
	full := []string{
		"-hide_banner",       // No build banner
		"-loglevel", "error", // Keep stderr to real errors
		"-y",                            // Overwrite output file
		"-nostats",                      // No stats output
		"-progress", ProgressPipeTarget, // Progress to stderr
	}
	return append(full, args...)
}

// fileArgs marks the input and output names with the "file:" protocol when
// they contain a colon, so ffmpeg does not parse "clip:1.mp4" as a URL
func fileArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i, arg := range out {
		isInput := i > 0 && out[i-1] == "-i"
		isOutput := i == len(out)-1 && i > 0 && !strings.HasPrefix(arg, "-")
		if (isInput || isOutput) && strings.Contains(arg, ":") && validName(arg) {
			out[i] = FileProtocol + arg
		}
	}
	return out
}

// resolve maps a flat engine file name to its path in the scratch directory
func (f *FFmpeg) resolve(name string) (string, error) {
	f.mu.Lock()
	workDir := f.workDir
	f.mu.Unlock()

	if workDir == "" {
		return "", ErrNotLoaded
	}
	if !validName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(workDir, name), nil
}

// validName accepts plain file names that ffmpeg will not read as options
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.HasPrefix(name, "-") {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// isProgressKey reports whether line is a "-progress" key=value line
func isProgressKey(line string) bool {
	line = strings.TrimSpace(line)
	eq := strings.IndexByte(line, '=')
	return eq > 0 && !strings.ContainsAny(line, " \t")
}

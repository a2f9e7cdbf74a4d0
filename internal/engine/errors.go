package engine

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ExecError describes a failed ffmpeg/ffprobe invocation
type ExecError struct {
	Operation string
	Args      []string
	ExitCode  int
	Stderr    string // last lines of stderr
	Err       error
}

// Error returns a string representation of the failure
func (e *ExecError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed (exit code %d): %s", e.Operation, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s failed (exit code %d): %v", e.Operation, e.ExitCode, e.Err)
}

// Unwrap returns the underlying error
func (e *ExecError) Unwrap() error {
	return e.Err
}

// newExecError builds an ExecError, pulling the exit code out of err
func newExecError(operation string, args []string, stderr string, err error) *ExecError {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return &ExecError{
		Operation: operation,
		Args:      args,
		ExitCode:  exitCode,
		Stderr:    strings.TrimSpace(stderr),
		Err:       err,
	}
}

// IsExecError reports whether err wraps an ExecError
func IsExecError(err error) bool {
	var execErr *ExecError
	return errors.As(err, &execErr)
}

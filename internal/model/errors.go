package model

import "fmt"

// Exit status conventions for the virtenv CLI:
//
//	0 — success
//	1 — configuration error (no usable mechanism, bad usage,
//	    interpreter not found) or a subprocess that failed to start
//	n — a delegated subprocess exited with status n, mirrored
//
// Errors that should drive the process exit status implement ExitCoder;
// cli.Execute consults it when translating errors into os.Exit codes.

// ExitCoder is implemented by error types that carry a specific process
// exit status.
type ExitCoder interface {
	error

	// ExitStatus returns the OS exit code this error should produce.
	ExitStatus() int
}

// ConfigError indicates that no usable provisioning mechanism exists or
// that the request itself is unusable (e.g., the external tool is required
// but no virtualenv.py path was supplied). Always fatal, always exit 1.
type ConfigError struct {
	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ExitStatus implements ExitCoder. Configuration errors always exit 1.
func (e *ConfigError) ExitStatus() int {
	return 1
}

// NewConfigError creates a ConfigError from a format string.
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// WrapConfigError creates a ConfigError that wraps an existing error.
func WrapConfigError(err error, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...), Err: err}
}

// ProcessError indicates that a delegated subprocess (the venv builder,
// the external virtualenv tool, or the seed-package upgrade) failed.
//
// When the child ran and exited non-zero, Code carries its exit status and
// the overall operation mirrors it. When the child could not be started at
// all, Code is zero and ExitStatus falls back to 1.
type ProcessError struct {
	// Command is a human-readable rendering of the failed command line.
	Command string

	// Code is the child's exit status, or 0 if the child never started.
	Code int

	// Err is the underlying error from os/exec.
	Err error
}

// Error satisfies the error interface.
func (e *ProcessError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s failed to start: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s failed", e.Command)
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// ExitStatus implements ExitCoder. The child's exit status is mirrored;
// a child that never started maps to exit 1.
func (e *ProcessError) ExitStatus() int {
	if e.Code > 0 {
		return e.Code
	}
	return 1
}

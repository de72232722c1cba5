package cli

import (
	"errors"
	"fmt"

	"github.com/yaklabco/goicu/pkg/runner"
)

// Exit codes for goicu.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitDiagnostics indicates messages with error diagnostics, or with
	// warnings under --strict.
	ExitDiagnostics = 1

	// ExitUsage indicates invalid command-line usage.
	ExitUsage = 64

	// ExitConfig indicates configuration file errors.
	ExitConfig = 65

	// ExitError indicates an internal or I/O error.
	ExitError = 70
)

// ErrIssuesFound is returned when a run reports diagnostics that should
// fail the command.
var ErrIssuesFound = errors.New("issues found")

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: ExitUsage, err: err}
}

func usageErrorf(format string, args ...any) error {
	return usageError(fmt.Errorf(format, args...))
}

func configError(err error) error {
	return &exitError{code: ExitConfig, err: fmt.Errorf("load configuration: %w", err)}
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrIssuesFound) {
		return ExitDiagnostics
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitError
}

// ExitCodeFromResult determines the exit code of a run. Lexical and syntax
// diagnostics and per-message faults always fail; missing-other and
// strict-mode warnings fail only when strict is set.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	switch {
	case result.HasErrors():
		return ExitDiagnostics
	case strict && result.HasDiagnostics():
		return ExitDiagnostics
	default:
		return ExitSuccess
	}
}

// Package errors defines the sentinel errors shared across agetick and the
// helpers for turning an error chain into a process exit code.
package errors

import (
	"os"

	"github.com/cockroachdb/errors"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// Sentinel errors. Use errors.Is to test for them.
var (
	// ErrAborted is returned when the user cancels an interactive prompt.
	ErrAborted = errors.New("aborted by user")

	// ErrTTYRequired is returned when an interactive surface is requested
	// without a terminal attached.
	ErrTTYRequired = errors.New("interactive mode requires a terminal")

	// ErrInvalidDate is returned for a date that does not exist on the calendar.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime is returned for an out-of-range time of day.
	ErrInvalidTime = errors.New("invalid time")

	// ErrNoBirthRecord is returned when no birth record is stored and none was
	// supplied on the command line.
	ErrNoBirthRecord = errors.New("no birth record")
)

// Exit codes.
const (
	exitCodeOK      = 0
	exitCodeError   = 1
	exitCodeAborted = 130 // matches SIGINT convention
)

// Wrap annotates err with a message, preserving the chain for errors.Is.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching the type of target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetExitCode extracts the exit code for an error chain.
// Returns 0 for nil, 130 for user aborts, 1 otherwise.
func GetExitCode(err error) int {
	switch {
	case err == nil:
		return exitCodeOK
	case errors.Is(err, ErrAborted):
		return exitCodeAborted
	default:
		return exitCodeError
	}
}

// Exit terminates the process with the given code via OsExit.
func Exit(code int) {
	OsExit(code)
}

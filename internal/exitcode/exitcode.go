// Package exitcode defines the process exit codes and the error type
// that carries them to the top of the call stack.
package exitcode

import "errors"

const (
	// OK means the run completed without error.
	OK = 0
	// NoPrivileges means the invoking user is neither root nor able to
	// escalate. Also used for any otherwise-unclassified fatal error.
	NoPrivileges = 1
	// UnsupportedManager means no supported package manager was found.
	UnsupportedManager = 2
	// ListFileMissing means the package list file does not exist.
	ListFileMissing = 3
	// Aborted means the user declined the installation prompt.
	Aborted = 4
	// UnknownOption means an unrecognized command line token was seen.
	UnknownOption = 5
)

// Error wraps an error with the exit code the process should return.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// New returns an Error with the given code wrapping err.
func New(code int, err error) *Error {
	return &Error{Code: code, Err: err}
}

// FromError extracts the exit code from err. A nil err is OK; an err
// that does not carry a code maps to NoPrivileges (the generic fatal
// code).
func FromError(err error) int {
	if err == nil {
		return OK
	}
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Code
	}
	return NoPrivileges
}

package cmd

import (
	"github.com/Iron-Ham/fretsmart/internal/errors"
)

// Process exit statuses.
const (
	ExitOK    = 0
	ExitError = 1
	// ExitData reports that the data file could not satisfy the request:
	// a malformed line, an unmatched selection, an unknown root note or,
	// with strict numbers, a malformed offset or interval.
	ExitData = 2
)

// ExitCode returns the process exit status for an error returned by Execute.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsDataError(err):
		return ExitData
	default:
		return ExitError
	}
}

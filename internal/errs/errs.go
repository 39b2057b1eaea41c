// Package errs classifies workflow failures so the command layer can pick
// exit codes and decide how loudly to report them.
package errs

import "github.com/cockroachdb/errors"

// Category sentinels. Errors produced by the workflow are marked with one of
// these; callers test with errors.Is.
var (
	// ErrConfiguration covers missing or invalid configuration, reported
	// before any git mutation happens.
	ErrConfiguration = errors.New("configuration error")

	// ErrRepository covers git layer failures: not a repository, staging or
	// commit failures, no usable remote.
	ErrRepository = errors.New("repository error")

	// ErrGeneration covers completion service failures, including an empty
	// response. Never retried automatically.
	ErrGeneration = errors.New("generation error")

	// ErrAborted marks a deliberate user decline at a confirmation prompt.
	ErrAborted = errors.New("aborted by user")
)

// Configuration marks err as a configuration failure.
func Configuration(err error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(err, ErrConfiguration)
}

// Repository marks err as a git layer failure.
func Repository(err error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(err, ErrRepository)
}

// Generation marks err as a completion service failure.
func Generation(err error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(err, ErrGeneration)
}

// Aborted builds a user-decline error with the given message.
func Aborted(msg string) error {
	return errors.Mark(errors.New(msg), ErrAborted)
}

// ExitCode maps an error to the process exit code.
//
//	0  nil (success or successful no-op)
//	2  configuration errors
//	3  generation errors
//	1  everything else, including repository failures and user declines
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrConfiguration):
		return 2
	case errors.Is(err, ErrGeneration):
		return 3
	default:
		return 1
	}
}

// IsAborted reports whether err is a deliberate user decline.
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}

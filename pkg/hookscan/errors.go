package hookscan

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure scenarios the CLI distinguishes.
// Callers classify them with errors.Is().
var (
	// ErrDirectoryNotFound indicates the scan root does not exist or is not a directory.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrSnapshotUnavailable indicates no loadable snapshot exists at the requested path.
	ErrSnapshotUnavailable = errors.New("snapshot not found")

	// ErrSnapshotWriteFailed indicates the snapshot file could not be written.
	ErrSnapshotWriteFailed = errors.New("failed to write snapshot")

	// ErrSnapshotMismatch indicates the current hooks differ from the saved snapshot.
	ErrSnapshotMismatch = errors.New("hooks differ from snapshot")
)

// usageErrorPatterns are message fragments cobra and pflag produce for
// command-line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts at most",
	"accepts 1 arg",
	"required flag",
	"invalid argument",
	"flag needs an argument",
	"if any flags in the group",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, ExitUsageError for command-line
// misuse and ExitGeneralError (1) for everything else.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrDirectoryNotFound),
		errors.Is(err, ErrSnapshotUnavailable),
		errors.Is(err, ErrSnapshotWriteFailed),
		errors.Is(err, ErrSnapshotMismatch):
		return ExitGeneralError
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

package hookscan

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3: Panic
const (
	ExitSuccess      = 0 // Scan, update or check completed successfully
	ExitGeneralError = 1 // Missing directory, snapshot problems, mismatch
	ExitUsageError   = 2 // CLI usage error (invalid arguments or flags)
	ExitPanic        = 3 // Internal panic (unexpected crash)
)

const (
	// DefaultSourceDir is scanned when no directory argument is given.
	DefaultSourceDir = "src"

	// DefaultSnapshotFile is the snapshot path used by --update and --check.
	DefaultSnapshotFile = "hooks-snapshot.json"

	// DefaultExtension selects which files are scanned. The comparison is
	// exact and case-sensitive, so ".PHP" and ".phps" files are ignored.
	DefaultExtension = ".php"
)

// Package logging provides concrete implementations of the hookscan.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted diagnostics to a writer (stderr in the CLI)
//   - NullLogger: Discards all messages (useful for testing)
package logging

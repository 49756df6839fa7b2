// Package scanner discovers hook call sites in a directory tree.
//
// The scanner is responsible for:
//   - Recursively discovering files with the configured extension
//   - Running every hook pattern over each file's content
//   - Accumulating occurrences grouped by category and hook name
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and tests
// with an in-memory filesystem.
package scanner

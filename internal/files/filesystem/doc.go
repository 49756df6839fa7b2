// Package filesystem provides the filesystem abstraction the hook scanner walks.
//
// Key interfaces:
//   - FileSystemProvider: Opens directories for walking
//   - Directory: A directory tree that can be walked in lexical order
//   - File: An individual file with metadata and a content accessor
//
// Implementations:
//   - OSFileSystem: Production implementation backed by the OS filesystem
//   - MemoryFileSystem: In-memory implementation for tests
package filesystem

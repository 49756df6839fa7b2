package scanner

import (
	"fmt"
	"path/filepath"

	"github.com/vvka-141/hookscan/internal/files/filesystem"
	"github.com/vvka-141/hookscan/internal/matcher"
	"github.com/vvka-141/hookscan/internal/snapshot"
	"github.com/vvka-141/hookscan/pkg/hookscan"
)

// Scanner walks directory trees and accumulates hook occurrences.
// Repeated Scan calls append to the same results; use Reset to start over.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	extension  string
	logger     hookscan.Logger
	fsProvider filesystem.FileSystemProvider
	results    hookscan.ResultSet
}

// NewScanner creates a scanner for files with the given extension
// (for example ".php") on the OS filesystem.
// Panics if logger is nil or extension is empty.
func NewScanner(extension string, logger hookscan.Logger) *Scanner {
	return NewScannerWithFS(extension, logger, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if any argument is nil or empty.
func NewScannerWithFS(extension string, logger hookscan.Logger, fsProvider filesystem.FileSystemProvider) *Scanner {
	if extension == "" {
		panic("extension cannot be empty")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		extension:  extension,
		logger:     logger,
		fsProvider: fsProvider,
		results:    hookscan.NewResultSet(),
	}
}

// Scan recursively walks sourcePath and records every hook call site found
// in files whose extension equals the scanner's extension exactly.
// Unreadable files and directories are skipped.
//
// Returns an error wrapping hookscan.ErrDirectoryNotFound if sourcePath
// does not exist or is not a directory.
func (s *Scanner) Scan(sourcePath string) error {
	dir, err := s.fsProvider.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("%w: %s (%v)", hookscan.ErrDirectoryNotFound, sourcePath, err)
	}

	s.logger.Verbose("Scanning %s for *%s files", dir.Path(), s.extension)

	scanned := 0
	err = dir.Walk(func(file filesystem.File, walkErr error) error {
		if walkErr != nil {
			s.logger.Verbose("Skipping unreadable entry: %v", walkErr)
			return nil
		}

		if file.Info().IsDir() || filepath.Ext(file.Info().Name()) != s.extension {
			return nil
		}

		content, err := file.ReadContent()
		if err != nil {
			s.logger.Verbose("Skipping unreadable file %s: %v", file.Path(), err)
			return nil
		}

		if n := s.scanContent(file.Path(), string(content)); n > 0 {
			s.logger.Verbose("%s: %d hook call(s)", file.RelativePath(), n)
		}
		scanned++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", sourcePath, err)
	}

	s.logger.Verbose("Scanned %d file(s), %d distinct hook(s) so far", scanned, s.results.TotalCount())
	return nil
}

// scanContent runs every pattern over content in category order and
// returns the number of call sites recorded.
func (s *Scanner) scanContent(path, content string) int {
	found := 0
	for _, p := range matcher.Patterns() {
		for m := range p.Matches(content) {
			s.results.Add(p.Category, m.Name, hookscan.Occurrence{File: path, Line: m.Line})
			found++
		}
	}
	return found
}

// Results returns the accumulated results of all Scan calls.
// The returned value must be treated as read-only.
func (s *Scanner) Results() hookscan.ResultSet {
	return s.results
}

// TotalCount returns the number of distinct (category, name) pairs found.
func (s *Scanner) TotalCount() int {
	return s.results.TotalCount()
}

// Snapshot returns the normalized snapshot of the accumulated results.
func (s *Scanner) Snapshot() hookscan.Snapshot {
	return snapshot.FromResults(s.results)
}

// Reset discards all accumulated results.
func (s *Scanner) Reset() {
	s.results = hookscan.NewResultSet()
}

// Verify Scanner implements the interface at compile time
var _ hookscan.FileScanner = (*Scanner)(nil)

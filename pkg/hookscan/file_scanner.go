package hookscan

// FileScanner discovers hook call sites in a directory tree.
type FileScanner interface {
	// Scan walks sourcePath and appends every match to the accumulated results.
	// Returns an error wrapping ErrDirectoryNotFound if sourcePath is not a directory.
	Scan(sourcePath string) error

	// Results returns the accumulated results of all Scan calls.
	Results() ResultSet

	// TotalCount returns the number of distinct (category, name) pairs found.
	TotalCount() int
}

// Package files groups the file-related sub-packages of hookscan.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Recursive discovery of source files and hook call sites
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/hookscan/internal/files/scanner"
//	    "github.com/vvka-141/hookscan/internal/logging"
//	)
//
//	s := scanner.NewScanner(".php", logging.NewNullLogger())
//	if err := s.Scan("./src"); err != nil {
//	    return err
//	}
//	results := s.Results()
package files

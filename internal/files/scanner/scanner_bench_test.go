package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vvka-141/hookscan/internal/logging"
)

// BenchmarkScan benchmarks a fresh scan of a small plugin tree on the real filesystem
func BenchmarkScan(b *testing.B) {
	tempDir := b.TempDir()

	content := strings.Repeat("<?php\nadd_action('init', 'boot');\n$t = apply_filters('the_title', $t);\n", 50)
	for i := 0; i < 10; i++ {
		filename := filepath.Join(tempDir, fmt.Sprintf("file%d.php", i))
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewScanner(".php", logging.NewNullLogger())
		if err := s.Scan(tempDir); err != nil {
			b.Fatal(err)
		}
	}
}

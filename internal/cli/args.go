package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OptionalDirectory validates that at most one directory argument is provided.
// Returns a helpful error message with usage and examples if there are too many.
func OptionalDirectory(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s wp-content/plugins/acme --check`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

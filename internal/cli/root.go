package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vvka-141/hookscan/internal/logging"
	"github.com/vvka-141/hookscan/pkg/hookscan"
)

// scanFlags holds the values bound to the root command's flags.
type scanFlags struct {
	json      bool
	update    bool
	check     bool
	snapshot  string
	noColor   bool
	diff      bool
	extension string
	verbose   bool
	version   bool
}

var flags scanFlags

var rootCmd = &cobra.Command{
	Use:   "hookscan [directory]",
	Short: "Inventory WordPress-style action and filter hooks",
	Long: `hookscan walks a directory tree and lists every hook call site it finds:

  add_action     registered actions
  do_action      fired actions
  add_filter     registered filters
  apply_filters  applied filters

Only the first literal string argument of each call is recorded. The
directory defaults to "` + hookscan.DefaultSourceDir + `" (or "source" in .hookscan.yaml).

Snapshots record the hook names alone. Use --update to write one and --check
to compare the current tree against it, for example in CI.

Exit Codes:
  0  - Success (including --check with a matching snapshot)
  1  - General error (directory missing, snapshot missing or unwritable, hooks differ)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error`,
	Example: `  hookscan
  hookscan wp-content/plugins/acme --json
  hookscan --update
  hookscan --check --diff`,
	Args:          OptionalDirectory,
	RunE:          runScan,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.NewConsoleLogger(rootCmd.ErrOrStderr(), false).Error("%v", err)
	}
	return err
}

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&flags.json, "json", false, "Print the full result set as JSON")
	f.BoolVar(&flags.update, "update", false, "Write the current hook names to the snapshot file")
	f.BoolVar(&flags.check, "check", false, "Compare the current hook names against the snapshot file")
	f.StringVar(&flags.snapshot, "snapshot", hookscan.DefaultSnapshotFile, "Snapshot file path (env: HOOKSCAN_SNAPSHOT)")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable coloured output")
	f.BoolVar(&flags.diff, "diff", false, "With --check, also print a unified diff of the snapshot documents")
	f.StringVar(&flags.extension, "extension", hookscan.DefaultExtension, "File extension to scan, including the dot (env: HOOKSCAN_EXTENSION)")
	f.BoolVar(&flags.verbose, "verbose", false, "Log skipped files and scan progress to stderr")
	f.BoolVarP(&flags.version, "version", "v", false, "Print version information")
}

// resetFlags restores every flag to its default. Used by tests.
func resetFlags() {
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/hookscan/internal/files/scanner"
	"github.com/vvka-141/hookscan/internal/logging"
	"github.com/vvka-141/hookscan/internal/report"
	"github.com/vvka-141/hookscan/internal/snapshot"
	"github.com/vvka-141/hookscan/internal/ui"
	"github.com/vvka-141/hookscan/pkg/hookscan"
)

func runScan(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flags.version {
		printVersionInfo(out)
		return nil
	}

	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}
	settings, err := resolveSettings(cmd, args, projectCfg)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(cmd.ErrOrStderr(), flags.verbose)
	logger.Verbose("Source: %s", settings.source)
	logger.Verbose("Extension: %s", settings.extension)
	logger.Verbose("Snapshot: %s", settings.snapshot)
	if flags.diff && (!flags.check || flags.update || flags.json) {
		logger.Info("Note: --diff only applies to --check and is ignored")
	}

	s := scanner.NewScanner(settings.extension, logger)
	if err := s.Scan(settings.source); err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		logger.Verbose("Cannot determine working directory, paths stay absolute: %v", err)
		wd = ""
	}
	rep := report.New(out, ui.NewStyler(out, ui.ColorEnabled(settings.color, out)), wd)

	switch {
	case flags.update:
		return runUpdate(rep, s.Snapshot(), settings.snapshot)
	case flags.check:
		return runCheck(out, rep, s.Snapshot(), settings.snapshot)
	case flags.json:
		data, err := report.JSON(s.Results())
		return writeJSON(out, data, err)
	default:
		return rep.Render(s.Results())
	}
}

// runUpdate replaces the snapshot file with the current hook names.
func runUpdate(rep *report.Reporter, current hookscan.Snapshot, path string) error {
	if err := snapshot.Save(path, current); err != nil {
		return fmt.Errorf("%w: %s: %v", hookscan.ErrSnapshotWriteFailed, path, err)
	}
	return rep.RenderSaved(path, current)
}

// runCheck compares the current hook names with the snapshot file.
// A mismatch is reported and then returned as ErrSnapshotMismatch.
func runCheck(out io.Writer, rep *report.Reporter, current hookscan.Snapshot, path string) error {
	previous, ok := snapshot.Load(path)
	if !ok {
		return fmt.Errorf(`%w: %s

Tip: Create it first with:
  hookscan --update --snapshot %s`, hookscan.ErrSnapshotUnavailable, path, path)
	}

	diff := snapshot.Compare(current, previous)

	if flags.json {
		data, err := report.DiffJSON(diff)
		if err := writeJSON(out, data, err); err != nil {
			return err
		}
	} else {
		if err := rep.RenderDiff(diff); err != nil {
			return err
		}
		if flags.diff {
			if err := rep.RenderUnified(path, previous, current); err != nil {
				return err
			}
		}
	}

	if !diff.Match {
		return fmt.Errorf("%w: %s", hookscan.ErrSnapshotMismatch, path)
	}
	return nil
}

func writeJSON(out io.Writer, data []byte, err error) error {
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = out.Write(data)
	return err
}

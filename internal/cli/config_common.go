package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/hookscan/internal/config"
	"github.com/vvka-141/hookscan/pkg/hookscan"
)

// Environment variables consulted when the matching flag was not given.
const (
	envSnapshot  = "HOOKSCAN_SNAPSHOT"
	envExtension = "HOOKSCAN_EXTENSION"
)

// scanSettings is the effective configuration of one run.
type scanSettings struct {
	source    string
	snapshot  string
	extension string
	color     bool
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if .hookscan.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// resolveSettings merges flags, environment, project config and defaults.
// Priority (highest to lowest): flags > environment > .hookscan.yaml > defaults
func resolveSettings(cmd *cobra.Command, args []string, projectCfg *config.ProjectConfig) (scanSettings, error) {
	if projectCfg == nil {
		projectCfg = &config.ProjectConfig{}
	}

	s := scanSettings{
		source:    hookscan.DefaultSourceDir,
		snapshot:  pick(cmd, "snapshot", flags.snapshot, envSnapshot, projectCfg.Snapshot),
		extension: pick(cmd, "extension", flags.extension, envExtension, projectCfg.Extension),
		color:     !flags.noColor && (projectCfg.Color == nil || *projectCfg.Color),
	}

	switch {
	case len(args) > 0:
		s.source = args[0]
	case projectCfg.Source != "":
		s.source = projectCfg.Source
	}

	ext, err := normalizeExtension(s.extension)
	if err != nil {
		return scanSettings{}, err
	}
	s.extension = ext

	if s.snapshot == "" {
		return scanSettings{}, fmt.Errorf("invalid argument \"\" for --snapshot: path must not be empty")
	}
	return s, nil
}

// pick returns the first configured value for a string setting.
func pick(cmd *cobra.Command, flagName, flagValue, envName, configValue string) string {
	if cmd.Flags().Changed(flagName) {
		return flagValue
	}
	if v := os.Getenv(envName); v != "" {
		return v
	}
	if configValue != "" {
		return configValue
	}
	return flagValue
}

// normalizeExtension accepts "php" as well as ".php".
func normalizeExtension(ext string) (string, error) {
	ext = strings.TrimSpace(ext)
	if ext == "" || ext == "." {
		return "", fmt.Errorf("invalid argument %q for --extension: extension must not be empty", ext)
	}
	if strings.ContainsAny(ext, `/\`) {
		return "", fmt.Errorf("invalid argument %q for --extension: extension must not contain path separators", ext)
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext, nil
}

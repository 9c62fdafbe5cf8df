package cmd

import (
	"os"

	"github.com/mutro/termindex/internal/config"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file and applies the persistent flags.
// Command-specific flags are applied by the caller before Validate.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	cfg, err := config.Load(configPath, wd)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

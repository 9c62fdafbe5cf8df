package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mutro/termindex/internal/config"
	ierrors "github.com/mutro/termindex/internal/errors"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .termindex.yaml in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return ierrors.IOFailure("reading working directory", err)
		}

		path := filepath.Join(wd, config.FileName)
		if _, err := os.Stat(path); err == nil && !initForce {
			return ierrors.ConfigError(fmt.Sprintf("%s already exists", path), nil).
				WithSuggestion("use --force to overwrite it")
		}

		if err := config.NewConfig().WriteYAML(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}

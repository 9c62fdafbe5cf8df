package cmd

import (
	"fmt"
	"os"

	ierrors "github.com/mutro/termindex/internal/errors"
	"github.com/mutro/termindex/internal/progress"
	"github.com/mutro/termindex/internal/version"
	"github.com/spf13/cobra"
)

var configPath string
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "termindex",
	Short: "Build a back-of-book index from a PDF or Word document",
	Long: `termindex extracts index terms (single words or capitalized phrases) from each
page of a document and writes an alphabetically grouped index with page
references as Typst markup.

Supported inputs: .pdf, .docx (converted with LibreOffice), .txt (pages split on form feeds).`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("termindex %s\n", version.String()))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./.termindex.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		progress.FormatError(os.Stderr, err, ierrors.GetSuggestion(err))
		os.Exit(1)
	}
}

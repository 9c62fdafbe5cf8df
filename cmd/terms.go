package cmd

import (
	"fmt"
	"strings"

	"github.com/mutro/termindex/internal/logging"
	"github.com/mutro/termindex/internal/source"
	"github.com/mutro/termindex/internal/terms"
	"github.com/spf13/cobra"
)

var termsMode string
var termsPage int

var termsCmd = &cobra.Command{
	Use:   "terms <document>",
	Short: "Print the terms found on each page",
	Long:  `Print the sorted terms extracted from each page, one line per page. Useful for checking a mode before building an index.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("mode") {
			cfg.Mode = termsMode
		}
		mode, err := terms.ValidateMode(cfg.Mode)
		if err != nil {
			return err
		}

		logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
		ctx := cmd.Context()

		src, err := source.Open(ctx, args[0], source.Options{
			PDFBackend: cfg.Source.PDFBackend,
			Converter:  cfg.Source.Converter,
			Raw:        cfg.Source.Raw,
		})
		if err != nil {
			return err
		}
		defer src.Close()

		first, last := 1, src.NumPages()
		if termsPage != 0 {
			if termsPage < 1 || termsPage > last {
				return fmt.Errorf("page %d out of range 1..%d", termsPage, last)
			}
			first, last = termsPage, termsPage
		}

		w := cmd.OutOrStdout()
		for n := first; n <= last; n++ {
			text, err := src.PageText(ctx, n)
			if err != nil {
				logger.Warn("page extraction failed", "page", n, "error", err)
			}
			found := terms.Extract(text, mode).Sorted()
			for i, term := range found {
				found[i] = strings.ReplaceAll(term, "\n", " ")
			}
			fmt.Fprintf(w, "page %d: %s\n", n, strings.Join(found, ", "))
		}
		return nil
	},
}

func init() {
	termsCmd.Flags().StringVarP(&termsMode, "mode", "m", "words", "Extraction mode (words, phrases, words_no_filter)")
	termsCmd.Flags().IntVarP(&termsPage, "page", "p", 0, "Only print this page (1-based, 0 prints all pages)")

	rootCmd.AddCommand(termsCmd)
}

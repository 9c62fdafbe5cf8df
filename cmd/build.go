package cmd

import (
	"os"
	"os/signal"

	"github.com/mutro/termindex/internal/index"
	"github.com/mutro/termindex/internal/logging"
	"github.com/mutro/termindex/internal/progress"
	"github.com/mutro/termindex/internal/runner"
	"github.com/mutro/termindex/internal/source"
	"github.com/mutro/termindex/internal/terms"
	"github.com/spf13/cobra"
)

var buildMode string
var buildOutput string
var buildPDFBackend string
var buildConverter string
var buildRaw bool
var buildQuiet bool

var buildCmd = &cobra.Command{
	Use:   "build <document>",
	Short: "Build a Typst index for a document",
	Long: `Extract terms from every page of the document and write the index as Typst
markup. The output defaults to <document>_index.txt next to the input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// Flags override the config file
		if cmd.Flags().Changed("mode") {
			cfg.Mode = buildMode
		}
		if cmd.Flags().Changed("output") {
			cfg.Output = buildOutput
		}
		if cmd.Flags().Changed("pdf-backend") {
			cfg.Source.PDFBackend = buildPDFBackend
		}
		if cmd.Flags().Changed("converter") {
			cfg.Source.Converter = buildConverter
		}
		if cmd.Flags().Changed("raw") {
			cfg.Source.Raw = buildRaw
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		mode, err := terms.ValidateMode(cfg.Mode)
		if err != nil {
			return err
		}

		input := args[0]
		output := cfg.Output
		if output == "" {
			output = runner.DefaultOutputPath(input)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		out := cmd.OutOrStdout()
		reporter := progress.New(out, buildQuiet)

		result, err := runner.Run(ctx, runner.Config{
			Input: input,
			Mode:  mode,
			Source: source.Options{
				PDFBackend: cfg.Source.PDFBackend,
				Converter:  cfg.Source.Converter,
				Raw:        cfg.Source.Raw,
			},
			Render: index.RenderOptions{
				Title:  cfg.Document.Title,
				Author: cfg.Document.Author,
			},
			Reporter: reporter,
			Logger:   logging.New(cmd.ErrOrStderr(), cfg.LogLevel),
		})
		if err != nil {
			return err
		}

		reporter.Status("saving index")
		if err := result.Save(output); err != nil {
			return err
		}

		if !buildQuiet {
			progress.FormatSummary(out, progress.Summary{
				Input:    input,
				Mode:     string(mode),
				Pages:    result.Pages,
				Terms:    result.Terms,
				Output:   output,
				Duration: result.Duration,
			})
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildMode, "mode", "m", "words", "Extraction mode (words, phrases, words_no_filter)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output file (default: <document>_index.txt)")
	buildCmd.Flags().StringVar(&buildPDFBackend, "pdf-backend", "auto", "PDF text backend (auto, native, pdftotext)")
	buildCmd.Flags().StringVar(&buildConverter, "converter", "soffice", "Office binary used to convert .docx to PDF")
	buildCmd.Flags().BoolVar(&buildRaw, "raw", false, "Skip Unicode normalization of page text")
	buildCmd.Flags().BoolVarP(&buildQuiet, "quiet", "q", false, "Suppress progress and summary output")

	rootCmd.AddCommand(buildCmd)
}

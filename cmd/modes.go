package cmd

import (
	"fmt"

	"github.com/mutro/termindex/internal/terms"
	"github.com/spf13/cobra"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List extraction modes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, m := range terms.Modes() {
			fmt.Fprintf(w, "%-16s %s\n", m, m.Description())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch the interactive TUI",
	Long: `Launch the interactive annotator. Type a sequence, toggle proteases,
phosphorylation residues and PTMs, and the rendering updates on every edit.

Keys: tab cycles fields, space toggles a rule, h/l inspects residues,
ctrl+y copies the report, esc focuses the menu.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	interactiveCmd.Flags().StringP("file", "f", "", "open a FASTA or plain text sequence file at startup")
}

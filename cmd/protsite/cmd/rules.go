package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/f3rmion/protsite/internal/config"
	"github.com/f3rmion/protsite/internal/protein"
	"github.com/f3rmion/protsite/internal/rules"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the protease, PTM and phosphorylation rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := loadTables(loadSettings())
		if err != nil {
			return err
		}
		return printTables(cmd.OutOrStdout(), tables)
	},
}

var rulesExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the active rule tables to a YAML file",
	Long: `Write the active rule tables to a YAML file. The file can be edited and
passed back with --rules, or placed in the config directory as rules.yaml.

Without a path the tables are written to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := loadTables(loadSettings())
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return config.WriteRules(cmd.OutOrStdout(), tables)
		}
		if err := config.SaveRules(args[0], tables); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rules written to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesExportCmd)
}

var rulesHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ecdc4"))

func printTables(w io.Writer, t *rules.Tables) error {
	sections := []struct {
		title string
		rules []protein.Rule
	}{
		{"Proteases", t.Enzymes},
		{"Phosphorylation", t.Phospho},
		{"PTMs", t.PTMs},
	}

	for i, sec := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, rulesHeaderStyle.Render(fmt.Sprintf("%s (%d)", sec.title, len(sec.rules))))
		fmt.Fprintln(w, rulesTable(sec.rules))
	}
	fmt.Fprintf(w, "\nColor policy: %s\n", t.Policy)
	return nil
}

func rulesTable(rs []protein.Rule) string {
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{r.Name, r.Residues, string(r.Color), r.Symbol, r.Description})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#3d5a80"))).
		Headers("Name", "Residues", "Color", "Symbol", "Description").
		Rows(rows...).
		Render()
}

// defaultRulesPath is where init writes the editable rule tables.
func defaultRulesPath() string {
	return filepath.Join(getConfigDir(), config.RulesFile)
}

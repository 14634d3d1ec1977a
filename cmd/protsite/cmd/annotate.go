package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/f3rmion/protsite/internal/report"
	"github.com/f3rmion/protsite/internal/seqfile"
	"github.com/f3rmion/protsite/internal/tui/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText  = "text"
	formatPlain = "plain"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [sequence]",
	Short: "Annotate a sequence and print the report",
	Long: `Annotate a protein sequence with the selected rules and print the
sequence rendering, per-rule statistics and the color legend.

The sequence is taken from the argument, from --file, or from stdin when
the argument is "-". Whitespace is ignored and letters are uppercased.

Examples:
  protsite annotate MKRSTAYKAEKR -e Trypsin --phospho S
  protsite annotate -f P01308.fasta -e Trypsin -e Chymotrypsin -p "N-Glycosylation (N)"
  protsite annotate MKRSTAY --custom "1, 5" --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)

	annotateCmd.Flags().StringArrayP("enzyme", "e", nil, "protease to apply (repeatable)")
	annotateCmd.Flags().StringArrayP("ptm", "p", nil, "PTM to apply (repeatable)")
	annotateCmd.Flags().String("phospho", "", "phosphorylation residues, e.g. \"S,T,Y\"")
	annotateCmd.Flags().String("custom", "", "comma-separated 1-based positions to box")
	annotateCmd.Flags().StringP("file", "f", "", "read the sequence from a FASTA or plain text file")
	annotateCmd.Flags().String("format", formatText, "output format: text, plain, json or yaml")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	if len(args) > 0 && path != "" {
		return fmt.Errorf("give either a sequence argument or --file, not both")
	}

	var seq string
	switch {
	case path != "":
		rec, err := readSequenceFile(path)
		if err != nil {
			return err
		}
		seq = rec.Seq
	case len(args) == 1 && args[0] == "-":
		rec, err := seqfile.Read(cmd.InOrStdin())
		if err != nil {
			return err
		}
		seq = rec.Seq
	case len(args) == 1:
		seq = args[0]
	}

	enzymes, _ := cmd.Flags().GetStringArray("enzyme")
	ptms, _ := cmd.Flags().GetStringArray("ptm")
	phospho, _ := cmd.Flags().GetString("phospho")
	custom, _ := cmd.Flags().GetString("custom")
	format, _ := cmd.Flags().GetString("format")

	s := loadSettings()
	tables, err := loadTables(s)
	if err != nil {
		return err
	}

	r, err := report.Run(report.Input{
		Sequence:        seq,
		Enzymes:         enzymes,
		PTMs:            ptms,
		PhosphoResidues: phospho,
		CustomPositions: custom,
	}, tables, report.OptionsFor(tables, s.GroupSize))
	if err != nil {
		return err
	}

	logger.Debug("annotated",
		zap.Int("length", r.Stats.Length),
		zap.Bool("idle", r.Idle),
		zap.Strings("enzymes", enzymes),
		zap.Strings("ptms", ptms),
		zap.String("phospho", phospho))

	return writeReport(cmd.OutOrStdout(), r, format, s.LineWidth)
}

// writeReport prints r to w in the requested format.
func writeReport(w io.Writer, r report.Report, format string, lineWidth int) error {
	switch strings.ToLower(format) {
	case formatText:
		_, err := fmt.Fprintln(w, render.Report(r, lineWidth))
		return err
	case formatPlain:
		_, err := io.WriteString(w, report.FormatText(r, lineWidth))
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, plain, json or yaml)", format)
	}
}

// readSequenceFile reads the first record of a sequence file.
func readSequenceFile(path string) (seqfile.Record, error) {
	rec, err := seqfile.ReadFile(path)
	if err != nil {
		return seqfile.Record{}, err
	}
	logger.Debug("sequence file read",
		zap.String("path", path),
		zap.String("id", rec.ID),
		zap.Int("raw_length", len(rec.Seq)))
	if strings.TrimSpace(rec.Seq) == "" {
		fmt.Fprintf(os.Stderr, "Warning: %s contains no residues\n", path)
	}
	return rec, nil
}

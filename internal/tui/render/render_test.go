package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/protsite/internal/report"
	"github.com/f3rmion/protsite/internal/rules"
	"github.com/muesli/termenv"
)

func init() {
	// Tests compare text, not escape codes.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func run(t *testing.T, in report.Input) report.Report {
	t.Helper()
	tb := rules.Default()
	r, err := report.Run(in, tb, report.OptionsFor(tb, report.DefaultGroupSize))
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestSequenceWrapsWithRuler(t *testing.T) {
	r := run(t, report.Input{Sequence: strings.Repeat("K", 25), Enzymes: []string{"Trypsin"}})
	got := Sequence(r, 20, NoCursor)
	want := "   1 " + strings.Repeat("K", 10) + " " + strings.Repeat("K", 10) + "\n" +
		"  21 " + strings.Repeat("K", 5)
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestIdleSequence(t *testing.T) {
	r := run(t, report.Input{})
	if got := Report(r, 60); got != report.EmptyMessage {
		t.Fatalf("idle = %q", got)
	}
}

func TestStatsAndLegend(t *testing.T) {
	r := run(t, report.Input{
		Sequence:        "MKSTY",
		Enzymes:         []string{"Trypsin"},
		PhosphoResidues: "ST",
		PTMs:            []string{"Acetylation (K)"},
		CustomPositions: "5",
	})
	st := Stats(r.Stats)
	for _, want := range []string{
		"Sequence Length: 5 amino acids",
		"Protease Cleavage Sites:",
		"  Trypsin: 1 site(s)",
		"Phosphorylation Sites (S, T): 2",
		"PTM Sites:",
		"  Acetylation (K): 1 site(s)",
		"Custom Positions: 1",
	} {
		if !strings.Contains(st, want) {
			t.Errorf("stats missing %q:\n%s", want, st)
		}
	}

	lg := Legend(r.Legend)
	for _, want := range []string{"Trypsin", "Phosphorylation", "Acetylation (K)", "Custom Positions", "[]"} {
		if !strings.Contains(lg, want) {
			t.Errorf("legend missing %q:\n%s", want, lg)
		}
	}
	if Legend(nil) != "" {
		t.Error("empty legend should render nothing")
	}
}

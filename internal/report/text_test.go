package report

import (
	"strings"
	"testing"

	"github.com/f3rmion/protsite/internal/protein"
	"github.com/f3rmion/protsite/internal/rules"
)

func TestFormatText(t *testing.T) {
	r := mustRun(t, rules.Default(), Input{
		Sequence:        "MKRSTAYKAE KR",
		Enzymes:         []string{"Trypsin"},
		PhosphoResidues: "S",
		CustomPositions: "1, 12",
	})

	want := strings.Join([]string{
		"   1 MKRSTAYKAE",
		"     #^^^   ^",
		"  11 KR",
		"     ^+",
		"",
		"Sequence Length: 12 amino acids",
		"",
		"Protease Cleavage Sites:",
		"  Trypsin: 5 site(s)",
		"",
		"Phosphorylation Sites (S): 1 site(s)",
		"  Phosphorylation (S): 1 site(s)",
		"",
		"Custom Positions: 2",
		"  1, 12",
		"",
		"Color Legend:",
		"  Trypsin" + strings.Repeat(" ", 9) + "  #ff6b6b  K, R",
		"  Phosphorylation" + " " + "  #ff1744  S",
		"  Custom Positions  [boxed]  2 position(s)",
		"",
	}, "\n")

	if got := FormatText(r, 10); got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestFormatTextGroupsWithinLine(t *testing.T) {
	r := mustRun(t, rules.Default(), Input{Sequence: strings.Repeat("G", 25), Enzymes: []string{"Elastase"}})
	got := FormatText(r, DefaultLineWidth)
	first := strings.SplitN(got, "\n", 2)[0]
	want := "   1 " + strings.Repeat("G", 10) + " " + strings.Repeat("G", 10) + " " + strings.Repeat("G", 5)
	if first != want {
		t.Fatalf("first line = %q, want %q", first, want)
	}
}

func TestFormatTextIdle(t *testing.T) {
	r := mustRun(t, rules.Default(), Input{})
	if got := FormatText(r, DefaultLineWidth); got != EmptyMessage+"\n" {
		t.Fatalf("idle text = %q", got)
	}
}

func TestLines(t *testing.T) {
	units := Units(protein.Sequence("ABCDEFG"), nil, nil, 0)
	lines := Lines(units, 3)
	if len(lines) != 3 || len(lines[2]) != 1 || lines[2][0].Char != "G" {
		t.Fatalf("lines = %+v", lines)
	}
	if l := Lines(units, 0); len(l) != 1 || len(l[0]) != 7 {
		t.Fatalf("unwrapped lines = %+v", l)
	}
	if Lines(nil, 3) != nil {
		t.Fatal("no units should give no lines")
	}
}

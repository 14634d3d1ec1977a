package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultLineWidth is the number of residues per rendered line.
const DefaultLineWidth = 60

// Marker characters used by the plain-text rendering under each sequence line.
const (
	markRule   = '^'
	markCustom = '#'
	markBoth   = '+'
)

// Lines splits units into display lines of lineWidth residues. A lineWidth
// of zero or less keeps everything on one line.
func Lines(units []DisplayUnit, lineWidth int) [][]DisplayUnit {
	if len(units) == 0 {
		return nil
	}
	if lineWidth <= 0 {
		return [][]DisplayUnit{units}
	}
	var out [][]DisplayUnit
	for start := 0; start < len(units); start += lineWidth {
		end := start + lineWidth
		if end > len(units) {
			end = len(units)
		}
		out = append(out, units[start:end])
	}
	return out
}

// RulerWidth is the column width needed for the 1-based start positions.
func RulerWidth(length int) int {
	w := len(strconv.Itoa(length))
	if w < 4 {
		w = 4
	}
	return w
}

// FormatText renders a report as uncolored text. Annotated residues are
// flagged on a marker row: ^ rule match, # custom position, + both.
func FormatText(r Report, lineWidth int) string {
	var b strings.Builder

	if r.Idle {
		b.WriteString(r.Message)
		b.WriteString("\n")
		return b.String()
	}

	ruler := RulerWidth(len(r.Units))
	for _, line := range Lines(r.Units, lineWidth) {
		var seq, marks strings.Builder
		for i, u := range line {
			if u.SeparatorBefore && i > 0 {
				seq.WriteByte(' ')
				marks.WriteByte(' ')
			}
			seq.WriteString(u.Char)
			marks.WriteRune(marker(u))
		}
		b.WriteString(runewidth.FillLeft(strconv.Itoa(line[0].Position+1), ruler))
		b.WriteString(" ")
		b.WriteString(seq.String())
		b.WriteString("\n")
		if m := strings.TrimRight(marks.String(), " "); m != "" {
			b.WriteString(strings.Repeat(" ", ruler+1))
			b.WriteString(m)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(FormatStats(r.Stats))
	if len(r.Legend) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatLegend(r.Legend))
	}
	return b.String()
}

func marker(u DisplayUnit) rune {
	switch {
	case u.Color != "" && u.Boxed:
		return markBoth
	case u.Color != "":
		return markRule
	case u.Boxed:
		return markCustom
	}
	return ' '
}

// FormatStats renders the statistics summary.
func FormatStats(st Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sequence Length: %d amino acids\n", st.Length)

	if len(st.Enzymes) > 0 {
		b.WriteString("\nProtease Cleavage Sites:\n")
		for _, c := range st.Enzymes {
			fmt.Fprintf(&b, "  %s: %d site(s)\n", c.Name, c.Count)
		}
	}

	if st.Phospho != nil {
		fmt.Fprintf(&b, "\nPhosphorylation Sites (%s): %d site(s)\n", st.Phospho.Residues, st.Phospho.Count)
		for _, c := range st.Phospho.Variants {
			fmt.Fprintf(&b, "  %s: %d site(s)\n", c.Name, c.Count)
		}
	}

	if len(st.PTMs) > 0 {
		b.WriteString("\nPTM Sites:\n")
		for _, c := range st.PTMs {
			fmt.Fprintf(&b, "  %s: %d site(s)\n", c.Name, c.Count)
		}
	}

	if len(st.Custom) > 0 {
		fmt.Fprintf(&b, "\nCustom Positions: %d\n", len(st.Custom))
		parts := make([]string, len(st.Custom))
		for i, p := range st.Custom {
			parts[i] = strconv.Itoa(p)
		}
		fmt.Fprintf(&b, "  %s\n", strings.Join(parts, ", "))
	}
	return b.String()
}

// FormatLegend renders the legend as aligned columns.
func FormatLegend(entries []LegendEntry) string {
	width := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Label); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString("Color Legend:\n")
	for _, e := range entries {
		swatch := string(e.Color)
		if e.Boxed {
			swatch = "[boxed]"
		}
		line := fmt.Sprintf("  %s  %s  %s", runewidth.FillRight(e.Label, width), runewidth.FillRight(swatch, 7), e.Detail)
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
	return b.String()
}

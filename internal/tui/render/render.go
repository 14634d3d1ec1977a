// Package render draws annotation reports with lipgloss colors.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/protsite/internal/report"
	"github.com/mattn/go-runewidth"
)

var (
	rulerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	plainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	boxedStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("#ffe66d"))

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#a8dadc"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true)
)

// NoCursor disables the residue cursor in Sequence.
const NoCursor = -1

// Unit renders a single residue.
func Unit(u report.DisplayUnit) string {
	if u.Color == "" {
		if u.Boxed {
			return boxedStyle.Render(u.Char)
		}
		return plainStyle.Render(u.Char)
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(string(u.Color))).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true)
	if u.Boxed {
		style = style.Underline(true)
	}
	return style.Render(u.Char)
}

// Sequence renders the annotated sequence wrapped at lineWidth residues with a
// 1-based ruler. The residue at cursor is shown reversed.
func Sequence(r report.Report, lineWidth, cursor int) string {
	if r.Idle {
		return emptyStyle.Render(r.Message)
	}

	ruler := report.RulerWidth(len(r.Units))
	var b strings.Builder
	for n, line := range report.Lines(r.Units, lineWidth) {
		if n > 0 {
			b.WriteString("\n")
		}
		b.WriteString(rulerStyle.Render(runewidth.FillLeft(strconv.Itoa(line[0].Position+1), ruler)))
		b.WriteString(" ")
		for i, u := range line {
			if u.SeparatorBefore && i > 0 {
				b.WriteString(" ")
			}
			s := Unit(u)
			if u.Position == cursor {
				s = cursorStyle.Render(u.Char)
			}
			b.WriteString(s)
		}
	}
	return b.String()
}

// Stats renders the statistics summary.
func Stats(st report.Stats) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Sequence Length: "))
	b.WriteString(countStyle.Render(strconv.Itoa(st.Length)))
	b.WriteString(labelStyle.Render(" amino acids"))
	b.WriteString("\n")

	section := func(title string, counts []report.RuleCount) {
		if len(counts) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(title))
		b.WriteString("\n")
		for _, c := range counts {
			b.WriteString(labelStyle.Render("  " + c.Name + ": "))
			b.WriteString(countStyle.Render(strconv.Itoa(c.Count)))
			b.WriteString(labelStyle.Render(" site(s)"))
			b.WriteString("\n")
		}
	}

	section("Protease Cleavage Sites:", st.Enzymes)
	if st.Phospho != nil {
		section(fmt.Sprintf("Phosphorylation Sites (%s): %d", st.Phospho.Residues, st.Phospho.Count), st.Phospho.Variants)
	}
	section("PTM Sites:", st.PTMs)

	if len(st.Custom) > 0 {
		parts := make([]string, len(st.Custom))
		for i, p := range st.Custom {
			parts[i] = strconv.Itoa(p)
		}
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(fmt.Sprintf("Custom Positions: %d", len(st.Custom))))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  " + strings.Join(parts, ", ")))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Legend renders one swatch per legend entry.
func Legend(entries []report.LegendEntry) string {
	if len(entries) == 0 {
		return ""
	}

	width := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Label); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Color Legend:"))
	for _, e := range entries {
		b.WriteString("\n  ")
		b.WriteString(swatch(e))
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f1faee")).Render(runewidth.FillRight(e.Label, width)))
		if e.Detail != "" {
			b.WriteString(labelStyle.Render("  " + e.Detail))
		}
	}
	return b.String()
}

func swatch(e report.LegendEntry) string {
	if e.Boxed {
		return boxedStyle.Render("[]")
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(string(e.Color))).Render("  ")
}

// Report renders the full report: sequence, then stats and legend.
func Report(r report.Report, lineWidth int) string {
	if r.Idle {
		return Sequence(r, lineWidth, NoCursor)
	}
	parts := []string{Sequence(r, lineWidth, NoCursor), "", Stats(r.Stats)}
	if l := Legend(r.Legend); l != "" {
		parts = append(parts, "", l)
	}
	return strings.Join(parts, "\n")
}

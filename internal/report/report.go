// Package report turns engine results into display units, statistics and a legend.
package report

import (
	"fmt"
	"strings"

	"github.com/f3rmion/protsite/internal/engine"
	"github.com/f3rmion/protsite/internal/input"
	"github.com/f3rmion/protsite/internal/protein"
	"github.com/f3rmion/protsite/internal/rules"
)

// EmptyMessage is shown in place of the rendering when there is nothing to annotate.
const EmptyMessage = "Enter a sequence and select enzymes/PTMs to see cleavage sites"

// DefaultGroupSize is the conventional residue grouping for sequence display.
const DefaultGroupSize = 10

// DisplayUnit is one rendered residue.
type DisplayUnit struct {
	Char            string           `json:"char" yaml:"char"`
	Position        int              `json:"position" yaml:"position"` // 0-based
	SeparatorBefore bool             `json:"separator_before,omitempty" yaml:"separator_before,omitempty"`
	Color           protein.Color    `json:"color,omitempty" yaml:"color,omitempty"`
	Category        protein.Category `json:"category,omitempty" yaml:"category,omitempty"`
	Title           string           `json:"title,omitempty" yaml:"title,omitempty"`
	Boxed           bool             `json:"boxed,omitempty" yaml:"boxed,omitempty"`
}

// Annotated reports whether the unit carries rule or custom styling.
func (u DisplayUnit) Annotated() bool {
	return u.Color != "" || u.Boxed
}

// RuleCount is a per-rule statistics line.
type RuleCount struct {
	Name     string `json:"name" yaml:"name"`
	Residues string `json:"residues" yaml:"residues"`
	Count    int    `json:"count" yaml:"count"`
}

// PhosphoCount aggregates every selected phosphorylation variant.
type PhosphoCount struct {
	Residues string      `json:"residues" yaml:"residues"`
	Count    int         `json:"count" yaml:"count"`
	Variants []RuleCount `json:"variants" yaml:"variants"`
}

// Stats is the statistics summary. Sections are omitted when nothing in
// them is active.
type Stats struct {
	Length  int           `json:"length" yaml:"length"`
	Enzymes []RuleCount   `json:"enzymes,omitempty" yaml:"enzymes,omitempty"`
	Phospho *PhosphoCount `json:"phospho,omitempty" yaml:"phospho,omitempty"`
	PTMs    []RuleCount   `json:"ptms,omitempty" yaml:"ptms,omitempty"`
	Custom  []int         `json:"custom_positions,omitempty" yaml:"custom_positions,omitempty"` // 1-based, ascending
}

// LegendEntry describes one color in effect.
type LegendEntry struct {
	Label    string           `json:"label" yaml:"label"`
	Detail   string           `json:"detail,omitempty" yaml:"detail,omitempty"`
	Color    protein.Color    `json:"color,omitempty" yaml:"color,omitempty"`
	Category protein.Category `json:"category,omitempty" yaml:"category,omitempty"`
	Boxed    bool             `json:"boxed,omitempty" yaml:"boxed,omitempty"`
}

// Report is the structured output handed to a renderer.
type Report struct {
	Idle     bool          `json:"idle" yaml:"idle"`
	Message  string        `json:"message,omitempty" yaml:"message,omitempty"`
	Sequence string        `json:"sequence" yaml:"sequence"`
	Units    []DisplayUnit `json:"units" yaml:"units"`
	Stats    Stats         `json:"stats" yaml:"stats"`
	Legend   []LegendEntry `json:"legend" yaml:"legend"`
}

// Options control how a report is laid out.
type Options struct {
	// GroupSize inserts a separator before every positive multiple of
	// GroupSize (0-based). Zero disables grouping.
	GroupSize int
	Policy    rules.Policy
	Palette   rules.Palette
}

// OptionsFor returns layout options matching the tables' color policy.
func OptionsFor(t *rules.Tables, groupSize int) Options {
	return Options{GroupSize: groupSize, Policy: t.Policy, Palette: t.Palette}
}

// Input is the raw collaborator input for one run.
type Input struct {
	Sequence        string
	Enzymes         []string
	PTMs            []string
	PhosphoResidues string
	CustomPositions string
}

// Run normalizes in, annotates it and builds the report. The only error is
// a rule name missing from the tables.
func Run(in Input, t *rules.Tables, opts Options) (Report, error) {
	seq := input.NormalizeSequence(in.Sequence)
	custom := input.ParseCustomPositions(in.CustomPositions)

	sel, err := t.Select(in.Enzymes, in.PTMs, in.PhosphoResidues, custom)
	if err != nil {
		return Report{}, err
	}

	if Idle(seq, sel) {
		return idleReport(seq), nil
	}
	return Build(seq, sel, engine.Annotate(seq, sel), opts), nil
}

// Idle reports whether there is nothing to annotate: no sequence, or no
// active rule and no custom position.
func Idle(seq protein.Sequence, sel protein.Selection) bool {
	return len(seq) == 0 || sel.Empty()
}

func idleReport(seq protein.Sequence) Report {
	return Report{
		Idle:     true,
		Message:  EmptyMessage,
		Sequence: seq.String(),
	}
}

// Build assembles a report from an engine result.
func Build(seq protein.Sequence, sel protein.Selection, res engine.Result, opts Options) Report {
	if Idle(seq, sel) {
		return idleReport(seq)
	}
	return Report{
		Sequence: seq.String(),
		Units:    Units(seq, sel.Custom, res.Positions, opts.GroupSize),
		Stats:    BuildStats(seq, sel, res.Tally),
		Legend:   BuildLegend(sel, opts),
	}
}

// Units renders one display unit per residue.
func Units(seq protein.Sequence, custom protein.PositionSet, positions []protein.PositionAnnotation, groupSize int) []DisplayUnit {
	units := make([]DisplayUnit, len(seq))
	for i := 0; i < len(seq); i++ {
		u := DisplayUnit{
			Char:            string(seq[i]),
			Position:        i,
			SeparatorBefore: groupSize > 0 && i > 0 && i%groupSize == 0,
		}

		if i < len(positions) {
			if r, ok := Resolve(positions[i]); ok {
				u.Color = r.Color
				u.Category = r.Category
				u.Title = strings.Join(r.Names, ", ")
			}
		}

		if custom.Has(i) {
			u.Boxed = true
			if u.Title == "" {
				u.Title = fmt.Sprintf("Position %d", i+1)
			}
		}
		units[i] = u
	}
	return units
}

// BuildStats summarizes tallies in selection order.
func BuildStats(seq protein.Sequence, sel protein.Selection, tally protein.Tally) Stats {
	st := Stats{Length: len(seq)}

	for _, r := range sel.Enzymes {
		st.Enzymes = append(st.Enzymes, RuleCount{Name: r.Name, Residues: joinResidues(r.Residues), Count: tally.Count(r)})
	}

	if len(sel.Phospho) > 0 {
		pc := &PhosphoCount{Residues: joinResidues(phosphoResidues(sel.Phospho)), Count: tally.PhosphoTotal}
		for _, r := range sel.Phospho {
			pc.Variants = append(pc.Variants, RuleCount{Name: r.Name, Residues: joinResidues(r.Residues), Count: tally.Count(r)})
		}
		st.Phospho = pc
	}

	for _, r := range sel.PTMs {
		st.PTMs = append(st.PTMs, RuleCount{Name: r.Name, Residues: joinResidues(r.Residues), Count: tally.Count(r)})
	}

	for _, p := range sel.Custom.Sorted() {
		st.Custom = append(st.Custom, p+1)
	}
	return st
}

// BuildLegend lists the colors currently in effect. Inactive rules never appear.
func BuildLegend(sel protein.Selection, opts Options) []LegendEntry {
	var out []LegendEntry

	if len(sel.Enzymes) > 0 {
		if opts.Policy == rules.PolicyCategory {
			var residues strings.Builder
			for _, r := range sel.Enzymes {
				residues.WriteString(r.Residues)
			}
			out = append(out, LegendEntry{
				Label:    "All Proteases",
				Detail:   joinResidues(uniqueResidues(residues.String())),
				Color:    opts.Palette.Protease,
				Category: protein.CategoryEnzyme,
			})
		} else {
			for _, r := range sel.Enzymes {
				out = append(out, LegendEntry{
					Label:    r.Name,
					Detail:   joinResidues(r.Residues),
					Color:    r.Color,
					Category: protein.CategoryEnzyme,
				})
			}
		}
	}

	if len(sel.Phospho) > 0 {
		out = append(out, LegendEntry{
			Label:    "Phosphorylation",
			Detail:   joinResidues(phosphoResidues(sel.Phospho)),
			Color:    opts.Palette.Phospho,
			Category: protein.CategoryPhospho,
		})
	}

	for _, r := range sel.PTMs {
		detail := joinResidues(r.Residues)
		if r.Symbol != "" {
			detail += " (" + r.Symbol + ")"
		}
		out = append(out, LegendEntry{
			Label:    r.Name,
			Detail:   detail,
			Color:    r.Color,
			Category: protein.CategoryPTM,
		})
	}

	if len(sel.Custom) > 0 {
		out = append(out, LegendEntry{
			Label:  "Custom Positions",
			Detail: fmt.Sprintf("%d position(s)", len(sel.Custom)),
			Boxed:  true,
		})
	}
	return out
}

func phosphoResidues(rs []protein.Rule) string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteString(r.Residues)
	}
	return b.String()
}

func uniqueResidues(s string) string {
	seen := make(map[byte]bool)
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// joinResidues formats "KR" as "K, R".
func joinResidues(s string) string {
	parts := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		parts[i] = string(s[i])
	}
	return strings.Join(parts, ", ")
}

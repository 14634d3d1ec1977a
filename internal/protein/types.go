// Package protein provides the core types for residue-level sequence annotation.
package protein

import "sort"

// Category groups rules by what they mark on the sequence.
type Category string

const (
	CategoryEnzyme  Category = "enzyme"  // Protease cleavage specificity
	CategoryPTM     Category = "ptm"     // Post-translational modification
	CategoryPhospho Category = "phospho" // Phosphorylation variant keyed by residue
)

// Color is a hex color string such as "#ff6b6b".
type Color string

// Rule maps a name to the residues that trigger it.
// Rules are immutable once the tables are built.
type Rule struct {
	Name        string   `yaml:"name" json:"name"`
	Residues    string   `yaml:"residues" json:"residues"`                         // Trigger residues, one byte each (e.g. "KR")
	Color       Color    `yaml:"color" json:"color"`
	Description string   `yaml:"description" json:"description"`
	Symbol      string   `yaml:"symbol,omitempty" json:"symbol,omitempty"` // Short modification symbol (e.g. "pS")
	Category    Category `yaml:"-" json:"category"`
}

// Triggers reports whether the residue c triggers the rule.
func (r Rule) Triggers(c rune) bool {
	for i := 0; i < len(r.Residues); i++ {
		if rune(r.Residues[i]) == c {
			return true
		}
	}
	return false
}

// ResidueList returns the trigger residues as separate strings.
func (r Rule) ResidueList() []string {
	out := make([]string, 0, len(r.Residues))
	for i := 0; i < len(r.Residues); i++ {
		out = append(out, string(r.Residues[i]))
	}
	return out
}

// Sequence is a normalized residue string indexed by character, so
// characters outside the alphabet occupy exactly one position.
type Sequence []rune

func (s Sequence) String() string {
	return string(s)
}

// PositionSet is a set of 0-based sequence indices.
type PositionSet map[int]bool

// Has reports whether i is in the set.
func (s PositionSet) Has(i int) bool {
	return s[i]
}

// Sorted returns the positions in ascending order.
func (s PositionSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// Selection is the set of active rules, partitioned by category, plus the
// user-declared custom positions. Rule slices keep selection order.
type Selection struct {
	Enzymes []Rule
	Phospho []Rule
	PTMs    []Rule
	Custom  PositionSet
}

// Empty reports whether nothing is selected at all.
func (s Selection) Empty() bool {
	return len(s.Enzymes) == 0 && len(s.Phospho) == 0 && len(s.PTMs) == 0 && len(s.Custom) == 0
}

// HasRules reports whether at least one rule is active.
func (s Selection) HasRules() bool {
	return len(s.Enzymes) > 0 || len(s.Phospho) > 0 || len(s.PTMs) > 0
}

// Ordered returns the active rules in processing order:
// enzymes, then phosphorylation, then other PTMs.
func (s Selection) Ordered() []Rule {
	out := make([]Rule, 0, len(s.Enzymes)+len(s.Phospho)+len(s.PTMs))
	out = append(out, s.Enzymes...)
	out = append(out, s.Phospho...)
	out = append(out, s.PTMs...)
	return out
}

// Match records that a rule triggered at a position.
type Match struct {
	Rule     string   `json:"rule" yaml:"rule"`
	Color    Color    `json:"color" yaml:"color"`
	Category Category `json:"category" yaml:"category"`
}

// PositionAnnotation holds every match at one index, in processing order.
type PositionAnnotation []Match

// Tally counts matched positions per rule, one map per category so that a
// PTM and a phospho variant may share a name. PhosphoTotal aggregates every
// selected phosphorylation variant into one count.
type Tally struct {
	Enzymes      map[string]int `json:"enzymes" yaml:"enzymes"`
	PTMs         map[string]int `json:"ptms" yaml:"ptms"`
	Phospho      map[string]int `json:"phospho" yaml:"phospho"`
	PhosphoTotal int            `json:"phospho_total" yaml:"phospho_total"`
}

// NewTally returns a tally with empty maps.
func NewTally() Tally {
	return Tally{
		Enzymes: make(map[string]int),
		PTMs:    make(map[string]int),
		Phospho: make(map[string]int),
	}
}

// Count returns the tally for r in its own category.
func (t Tally) Count(r Rule) int {
	switch r.Category {
	case CategoryEnzyme:
		return t.Enzymes[r.Name]
	case CategoryPhospho:
		return t.Phospho[r.Name]
	default:
		return t.PTMs[r.Name]
	}
}

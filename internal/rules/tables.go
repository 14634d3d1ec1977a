// Package rules holds the enzyme, PTM and phosphorylation rule tables.
package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/protsite/internal/protein"
)

// ErrUnknownRule is returned when a selection names a rule that is not in the tables.
var ErrUnknownRule = errors.New("unknown rule")

// Policy decides how enzyme colors are assigned.
type Policy string

const (
	PolicyPerRule  Policy = "per-rule" // Every enzyme keeps its own color
	PolicyCategory Policy = "category" // All enzymes share the protease color
)

// ParsePolicy converts a config value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyPerRule:
		return PolicyPerRule, nil
	case PolicyCategory:
		return PolicyCategory, nil
	}
	return "", fmt.Errorf("invalid color policy %q (want %s or %s)", s, PolicyPerRule, PolicyCategory)
}

// Palette holds the fixed category colors.
type Palette struct {
	Protease protein.Color `yaml:"protease" json:"protease"`
	Phospho  protein.Color `yaml:"phospho" json:"phospho"`
}

// Tables are the read-only rule tables. Slices keep table order, which is
// also the order rules are listed to the user.
type Tables struct {
	Enzymes []protein.Rule `yaml:"enzymes"`
	PTMs    []protein.Rule `yaml:"ptms"`
	Phospho []protein.Rule `yaml:"phospho"`
	Palette Palette        `yaml:"palette"`
	Policy  Policy         `yaml:"-"`
}

// Default returns the built-in tables using the per-rule color policy.
func Default() *Tables {
	t := &Tables{
		Enzymes: cloneRules(defaultEnzymes),
		PTMs:    cloneRules(defaultPTMs),
		Phospho: cloneRules(defaultPhospho),
		Palette: defaultPalette,
		Policy:  PolicyPerRule,
	}
	t.Normalize()
	return t
}

// Normalize stamps categories onto every rule, uppercases the residues and
// fills missing palette colors. Loaded tables must be normalized before use.
func (t *Tables) Normalize() {
	stamp := func(rs []protein.Rule, c protein.Category) {
		for i := range rs {
			rs[i].Category = c
			rs[i].Residues = strings.ToUpper(rs[i].Residues)
		}
	}
	stamp(t.Enzymes, protein.CategoryEnzyme)
	stamp(t.PTMs, protein.CategoryPTM)
	stamp(t.Phospho, protein.CategoryPhospho)

	if t.Palette.Protease == "" {
		t.Palette.Protease = defaultPalette.Protease
	}
	if t.Palette.Phospho == "" {
		t.Palette.Phospho = defaultPalette.Phospho
	}
	if t.Policy == "" {
		t.Policy = PolicyPerRule
	}
}

// Validate checks that every rule has a name and at least one residue and
// that names are unique within a table.
func (t *Tables) Validate() error {
	check := func(kind string, rs []protein.Rule) error {
		seen := make(map[string]bool)
		for _, r := range rs {
			if r.Name == "" {
				return fmt.Errorf("%s rule with empty name", kind)
			}
			if r.Residues == "" {
				return fmt.Errorf("%s rule %q has no residues", kind, r.Name)
			}
			if seen[r.Name] {
				return fmt.Errorf("duplicate %s rule %q", kind, r.Name)
			}
			seen[r.Name] = true
		}
		return nil
	}
	if err := check("enzyme", t.Enzymes); err != nil {
		return err
	}
	if err := check("ptm", t.PTMs); err != nil {
		return err
	}
	if err := check("phospho", t.Phospho); err != nil {
		return err
	}
	for _, r := range t.Phospho {
		if len(r.Residues) != 1 {
			return fmt.Errorf("phospho rule %q must target exactly one residue", r.Name)
		}
	}
	return nil
}

// Enzyme looks up an enzyme by name. The returned rule has its color
// resolved under the table's policy.
func (t *Tables) Enzyme(name string) (protein.Rule, bool) {
	r, ok := find(t.Enzymes, name)
	if ok && t.Policy == PolicyCategory {
		r.Color = t.Palette.Protease
	}
	return r, ok
}

// PTM looks up a PTM rule by name.
func (t *Tables) PTM(name string) (protein.Rule, bool) {
	return find(t.PTMs, name)
}

// PhosphoRule looks up a phosphorylation variant by its target residue.
// Phospho rules always carry the shared phospho color.
func (t *Tables) PhosphoRule(residue byte) (protein.Rule, bool) {
	for _, r := range t.Phospho {
		if r.Residues[0] == residue {
			r.Color = t.Palette.Phospho
			return r, true
		}
	}
	return protein.Rule{}, false
}

// EnzymeNames lists enzyme names in table order.
func (t *Tables) EnzymeNames() []string { return names(t.Enzymes) }

// PTMNames lists PTM names in table order.
func (t *Tables) PTMNames() []string { return names(t.PTMs) }

// PhosphoResidues lists the phospho target residues in table order.
func (t *Tables) PhosphoResidues() string {
	var b strings.Builder
	for _, r := range t.Phospho {
		b.WriteString(r.Residues)
	}
	return b.String()
}

// Select resolves rule names into a Selection. Names keep the caller's order;
// repeated names are selected once. Phospho residues are matched case-insensitively.
func (t *Tables) Select(enzymes, ptms []string, phospho string, custom protein.PositionSet) (protein.Selection, error) {
	sel := protein.Selection{Custom: custom}
	if sel.Custom == nil {
		sel.Custom = protein.PositionSet{}
	}

	seen := make(map[string]bool)
	for _, name := range enzymes {
		if seen["e:"+name] {
			continue
		}
		seen["e:"+name] = true
		r, ok := t.Enzyme(name)
		if !ok {
			return protein.Selection{}, fmt.Errorf("%w: enzyme %q (valid: %s)", ErrUnknownRule, name, strings.Join(t.EnzymeNames(), ", "))
		}
		sel.Enzymes = append(sel.Enzymes, r)
	}

	for _, c := range []byte(strings.ToUpper(phospho)) {
		if c == ' ' || c == ',' || c == '/' {
			continue
		}
		if seen["s:"+string(c)] {
			continue
		}
		seen["s:"+string(c)] = true
		r, ok := t.PhosphoRule(c)
		if !ok {
			return protein.Selection{}, fmt.Errorf("%w: phospho residue %q (valid: %s)", ErrUnknownRule, string(c), t.PhosphoResidues())
		}
		sel.Phospho = append(sel.Phospho, r)
	}

	for _, name := range ptms {
		if seen["p:"+name] {
			continue
		}
		seen["p:"+name] = true
		r, ok := t.PTM(name)
		if !ok {
			return protein.Selection{}, fmt.Errorf("%w: PTM %q (valid: %s)", ErrUnknownRule, name, strings.Join(t.PTMNames(), ", "))
		}
		sel.PTMs = append(sel.PTMs, r)
	}

	return sel, nil
}

func find(rs []protein.Rule, name string) (protein.Rule, bool) {
	for _, r := range rs {
		if r.Name == name {
			return r, true
		}
	}
	return protein.Rule{}, false
}

func names(rs []protein.Rule) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func cloneRules(rs []protein.Rule) []protein.Rule {
	out := make([]protein.Rule, len(rs))
	copy(out, rs)
	return out
}

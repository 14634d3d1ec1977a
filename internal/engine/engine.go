// Package engine matches active rules against a sequence.
//
// The engine is a pure function of its inputs: it keeps no state between
// calls and never fails. Rules are applied in processing order (enzymes,
// then phosphorylation, then other PTMs) and every match is kept, so one
// position may carry matches from several categories.
package engine

import "github.com/f3rmion/protsite/internal/protein"

// Result is the outcome of one annotation run.
type Result struct {
	// Positions has one entry per residue; an entry is nil when nothing matched.
	Positions []protein.PositionAnnotation
	Tally     protein.Tally
}

// Annotate scans seq once per trigger residue of every active rule.
// Custom positions in sel do not produce matches; they are applied by the
// report builder.
func Annotate(seq protein.Sequence, sel protein.Selection) Result {
	res := Result{
		Positions: make([]protein.PositionAnnotation, len(seq)),
		Tally:     protein.NewTally(),
	}

	phosphoHit := make(map[int]bool)

	for _, rule := range sel.Ordered() {
		count := 0
		for _, residue := range triggers(rule) {
			for i := 0; i < len(seq); i++ {
				if seq[i] != rune(residue) {
					continue
				}
				res.Positions[i] = append(res.Positions[i], protein.Match{
					Rule:     rule.Name,
					Color:    rule.Color,
					Category: rule.Category,
				})
				count++
				if rule.Category == protein.CategoryPhospho {
					phosphoHit[i] = true
				}
			}
		}

		switch rule.Category {
		case protein.CategoryEnzyme:
			res.Tally.Enzymes[rule.Name] = count
		case protein.CategoryPhospho:
			res.Tally.Phospho[rule.Name] = count
		default:
			res.Tally.PTMs[rule.Name] = count
		}
	}

	res.Tally.PhosphoTotal = len(phosphoHit)
	return res
}

// triggers returns the distinct trigger residues of r in declaration order.
// A residue listed twice must not count a position twice.
func triggers(r protein.Rule) []byte {
	out := make([]byte, 0, len(r.Residues))
	for i := 0; i < len(r.Residues); i++ {
		c := r.Residues[i]
		dup := false
		for _, o := range out {
			if o == c {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

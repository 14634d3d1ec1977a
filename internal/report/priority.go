package report

import "github.com/f3rmion/protsite/internal/protein"

// Resolution is the display decision for one position.
type Resolution struct {
	Color    protein.Color
	Category protein.Category
	Names    []string // De-duplicated rule names of the winning rank, in processing order
}

// rank orders categories for display. Modifications outrank cleavage sites:
// once a PTM or phospho match exists, enzyme matches are hidden from the
// color and title. They are still counted in the tallies.
func rank(c protein.Category) int {
	switch c {
	case protein.CategoryPTM, protein.CategoryPhospho:
		return 1
	default:
		return 0
	}
}

// Resolve picks the display color and title names for a position. The first
// match of the highest rank supplies the color. ok is false when there are
// no matches.
func Resolve(matches protein.PositionAnnotation) (Resolution, bool) {
	if len(matches) == 0 {
		return Resolution{}, false
	}

	best := rank(matches[0].Category)
	for _, m := range matches[1:] {
		if r := rank(m.Category); r > best {
			best = r
		}
	}

	var res Resolution
	seen := make(map[string]bool)
	for _, m := range matches {
		if rank(m.Category) != best {
			continue
		}
		if res.Color == "" {
			res.Color = m.Color
			res.Category = m.Category
		}
		if !seen[m.Rule] {
			seen[m.Rule] = true
			res.Names = append(res.Names, m.Rule)
		}
	}
	return res, true
}

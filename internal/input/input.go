// Package input normalizes raw user text into sequences and custom positions.
package input

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/f3rmion/protsite/internal/protein"
)

// NormalizeSequence uppercases raw and removes every whitespace rune.
// Nothing else is checked: characters outside the amino-acid alphabet pass
// through and simply never match a rule.
func NormalizeSequence(raw string) protein.Sequence {
	seq := make(protein.Sequence, 0, len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		seq = append(seq, unicode.ToUpper(r))
	}
	return seq
}

// ParseCustomPositions parses a comma-separated list of 1-based positions
// into a set of 0-based indices. Tokens that are not integers, or are not
// positive, are dropped. There is no upper bound.
func ParseCustomPositions(raw string) protein.PositionSet {
	set := protein.PositionSet{}
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n <= 0 {
			continue
		}
		set[n-1] = true
	}
	return set
}

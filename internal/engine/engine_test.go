package engine

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/f3rmion/protsite/internal/protein"
	"github.com/f3rmion/protsite/internal/rules"
)

func mustSelect(t *testing.T, enzymes, ptms []string, phospho string) protein.Selection {
	t.Helper()
	sel, err := rules.Default().Select(enzymes, ptms, phospho, nil)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	return sel
}

func TestTrypsinKRKR(t *testing.T) {
	sel := mustSelect(t, []string{"Trypsin"}, nil, "")
	res := Annotate(protein.Sequence("KRKR"), sel)
	if len(res.Positions) != 4 {
		t.Fatalf("len positions = %d", len(res.Positions))
	}
	for i, p := range res.Positions {
		if len(p) != 1 || p[0].Rule != "Trypsin" {
			t.Fatalf("position %d: %+v", i, p)
		}
	}
	if got := res.Tally.Enzymes["Trypsin"]; got != 4 {
		t.Fatalf("Trypsin tally = %d, want 4", got)
	}
}

func TestEmptySequenceZeroTallies(t *testing.T) {
	sel := mustSelect(t, []string{"Trypsin", "Pepsin"}, []string{"Acetylation (K)"}, "S")
	res := Annotate(protein.Sequence(""), sel)
	if len(res.Positions) != 0 {
		t.Fatalf("want no positions, got %d", len(res.Positions))
	}
	for _, name := range []string{"Trypsin", "Pepsin"} {
		if n, ok := res.Tally.Enzymes[name]; !ok || n != 0 {
			t.Errorf("%s: want zero entry, got %d (present=%v)", name, n, ok)
		}
	}
	if n, ok := res.Tally.PTMs["Acetylation (K)"]; !ok || n != 0 {
		t.Errorf("acetylation: want zero entry, got %d", n)
	}
	if res.Tally.PhosphoTotal != 0 {
		t.Errorf("phospho total = %d", res.Tally.PhosphoTotal)
	}
}

func TestProcessingOrderAcrossCategories(t *testing.T) {
	// K is hit by an enzyme and a PTM; S by an enzyme, a phospho variant and a PTM.
	sel := mustSelect(t, []string{"Trypsin", "Elastase"}, []string{"Acetylation (K)", "O-Glycosylation (S/T)"}, "S")
	res := Annotate(protein.Sequence("KS"), sel)

	want := [][]protein.Category{
		{protein.CategoryEnzyme, protein.CategoryPTM},
		{protein.CategoryEnzyme, protein.CategoryPhospho, protein.CategoryPTM},
	}
	for i, cats := range want {
		var got []protein.Category
		for _, m := range res.Positions[i] {
			got = append(got, m.Category)
		}
		if !reflect.DeepEqual(got, cats) {
			t.Errorf("position %d categories = %v, want %v", i, got, cats)
		}
	}
}

func TestNonAlphabetNeverMatches(t *testing.T) {
	sel := mustSelect(t, []string{"Trypsin"}, nil, "")
	res := Annotate(protein.Sequence("k*1-X"), sel)
	for i, p := range res.Positions {
		if len(p) != 0 {
			t.Errorf("position %d should be empty, got %+v", i, p)
		}
	}
	if res.Tally.Enzymes["Trypsin"] != 0 {
		t.Errorf("tally = %d", res.Tally.Enzymes["Trypsin"])
	}
}

func TestDuplicateTriggerCountsOnce(t *testing.T) {
	sel := protein.Selection{Enzymes: []protein.Rule{
		{Name: "Double", Residues: "KK", Category: protein.CategoryEnzyme},
	}}
	res := Annotate(protein.Sequence("KAK"), sel)
	if got := res.Tally.Enzymes["Double"]; got != 2 {
		t.Fatalf("tally = %d, want 2", got)
	}
	if len(res.Positions[0]) != 1 {
		t.Fatalf("position 0 matched %d times", len(res.Positions[0]))
	}
}

func TestPhosphoTotalIsUnionOfVariants(t *testing.T) {
	sel := mustSelect(t, nil, nil, "STY")
	res := Annotate(protein.Sequence("SSTYAK"), sel)
	if res.Tally.PhosphoTotal != 4 {
		t.Fatalf("phospho total = %d, want 4", res.Tally.PhosphoTotal)
	}
	if res.Tally.Phospho["Phosphorylation (S)"] != 2 {
		t.Fatalf("pS = %d", res.Tally.Phospho["Phosphorylation (S)"])
	}
}

// Properties: one annotation per residue, tallies equal residue membership
// counts, and repeated calls agree.
func TestProperties(t *testing.T) {
	tb := rules.Default()
	sel, err := tb.Select(tb.EnzymeNames(), tb.PTMNames(), tb.PhosphoResidues(), nil)
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(7))
	const alphabet = "ACDEFGHIKLMNPQRSTVWYXB*"
	for n := 0; n < 50; n++ {
		var b strings.Builder
		size := rng.Intn(200)
		for i := 0; i < size; i++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		seq := protein.Sequence(b.String())

		res := Annotate(seq, sel)
		if len(res.Positions) != len(seq) {
			t.Fatalf("len(positions)=%d len(seq)=%d", len(res.Positions), len(seq))
		}
		for i := 0; i < len(seq); i++ {
			hit := false
			for _, r := range sel.Ordered() {
				hit = hit || r.Triggers(seq[i])
			}
			if hit != (len(res.Positions[i]) > 0) {
				t.Fatalf("position %d (%c): hit=%v matches=%v", i, seq[i], hit, res.Positions[i])
			}
		}
		for _, r := range sel.Ordered() {
			want := 0
			for i := 0; i < len(seq); i++ {
				if strings.ContainsRune(r.Residues, seq[i]) {
					want++
				}
			}
			if got := res.Tally.Count(r); got != want {
				t.Fatalf("%s on %q: tally %d, want %d", r.Name, seq, got, want)
			}
		}
		if again := Annotate(seq, sel); !reflect.DeepEqual(res, again) {
			t.Fatalf("Annotate is not idempotent for %q", seq)
		}
	}
}

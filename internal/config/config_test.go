package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/f3rmion/protsite/internal/protein"
	"github.com/f3rmion/protsite/internal/rules"
)

func TestSaveLoadRulesKeepsTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), RulesFile)
	if err := SaveRules(path, rules.Default()); err != nil {
		t.Fatal(err)
	}

	got, err := LoadRules(path)
	if err != nil {
		t.Fatal(err)
	}
	want := rules.Default()
	if len(got.Enzymes) != len(want.Enzymes) || len(got.PTMs) != len(want.PTMs) {
		t.Fatalf("sizes changed: %d/%d", len(got.Enzymes), len(got.PTMs))
	}
	tr, ok := got.Enzyme("Trypsin")
	if !ok || tr.Category != protein.CategoryEnzyme || tr.Color != "#ff6b6b" {
		t.Fatalf("Trypsin after reload: %+v", tr)
	}
	if got.Palette != want.Palette {
		t.Fatalf("palette = %+v", got.Palette)
	}
}

func TestLoadRulesCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), RulesFile)
	content := `enzymes:
  - name: Proteinase K
    residues: aflivwy
    color: "#123456"
    description: Broad specificity
ptms:
  - name: Hydroxylation (P)
    residues: P
    color: "#654321"
    description: Hydroxyproline
    symbol: hyP
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tb, err := LoadRules(path)
	if err != nil {
		t.Fatal(err)
	}
	pk, ok := tb.Enzyme("Proteinase K")
	if !ok || pk.Residues != "AFLIVWY" {
		t.Fatalf("residues not uppercased: %+v", pk)
	}
	if tb.Palette.Phospho == "" || tb.Palette.Protease == "" {
		t.Fatalf("palette defaults missing: %+v", tb.Palette)
	}
	if len(tb.Phospho) != 0 {
		t.Fatalf("phospho table should be empty, got %d", len(tb.Phospho))
	}
}

func TestLoadRulesErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadRules(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "reading rules file") {
		t.Fatalf("missing file: %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("enzymes: [: :"), 0644)
	if _, err := LoadRules(bad); err == nil || !strings.Contains(err.Error(), "parsing rules file") {
		t.Fatalf("bad yaml: %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("enzymes:\n  - name: Empty\n"), 0644)
	if _, err := LoadRules(invalid); err == nil || !strings.Contains(err.Error(), "validating") {
		t.Fatalf("invalid rules: %v", err)
	}
}

func TestResolveTables(t *testing.T) {
	s := DefaultSettings()
	s.ColorPolicy = "category"
	tb, err := ResolveTables(s)
	if err != nil {
		t.Fatal(err)
	}
	if tb.Policy != rules.PolicyCategory {
		t.Fatalf("policy = %s", tb.Policy)
	}

	s.ColorPolicy = "sparkly"
	if _, err := ResolveTables(s); err == nil {
		t.Fatal("expected invalid policy error")
	}
}

func TestSaveSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	if err := SaveSettings(path, DefaultSettings()); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	for _, key := range []string{"color_policy: per-rule", "group_size: 10", "line_width: 60"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("settings file missing %q:\n%s", key, data)
		}
	}
}

func TestWriteRules(t *testing.T) {
	var b strings.Builder
	if err := WriteRules(&b, rules.Default()); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{"enzymes:", "- name: Trypsin", "residues: KR", "palette:", "protease: '#ff6b6b'"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "category") {
		t.Error("category is derived from the table and should not be written")
	}
}

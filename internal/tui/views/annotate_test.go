package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/protsite/internal/rules"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFieldLabelsLeaveGap(t *testing.T) {
	m := NewAnnotateModel(rules.Default(), 10, 60, nil)
	m.SetSize(120, 40)
	view := m.View()
	if !strings.Contains(view, "Custom positions  e.g. 5, 12, 40") {
		t.Fatalf("custom positions label runs into its input:\n%s", view)
	}
}

func TestFailedRunClearsResult(t *testing.T) {
	tb := rules.Default()
	m := NewAnnotateModel(tb, 10, 60, nil)
	m.SetSequence("KRKR", "")
	m.setFocus(focusEnzymes)

	m, _ = m.Update(key(" "))
	if r := m.Report(); r.Idle || len(r.Units) != 4 {
		t.Fatalf("Trypsin should annotate KRKR: %+v", r)
	}

	// Trypsin disappears from the tables while still checked.
	tb.Enzymes = tb.Enzymes[1:]
	m, _ = m.Update(key("j"))
	m, _ = m.Update(key(" "))

	if r := m.Report(); !r.Idle || len(r.Units) != 0 {
		t.Fatalf("stale report kept after failure: %+v", r)
	}
	view := m.View()
	if !strings.Contains(view, "unknown rule") {
		t.Fatalf("error not shown:\n%s", view)
	}
	if strings.Contains(view, "Trypsin: 4 site(s)") {
		t.Fatal("old statistics still on screen")
	}
}

package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/protsite/internal/report"
	"github.com/f3rmion/protsite/internal/rules"
	"github.com/f3rmion/protsite/internal/seqfile"
	"github.com/f3rmion/protsite/internal/tui/glyph"
	"github.com/muesli/termenv"
	"golang.org/x/image/font/basicfont"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	m := NewApp(Options{
		Tables:    rules.Default(),
		GroupSize: report.DefaultGroupSize,
		LineWidth: report.DefaultLineWidth,
		StartDir:  t.TempDir(),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	return next.(AppModel)
}

func send(m AppModel, msgs ...tea.Msg) AppModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(AppModel)
	}
	return m
}

func runes(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTypingDoesNotTriggerShortcuts(t *testing.T) {
	m := newTestApp(t)
	m = send(m, runes("m"), runes("k"), runes("q"), runes("2"))

	if m.currentView != ViewAnnotate {
		t.Fatalf("digit switched view while typing: %v", m.currentView)
	}
	r := m.annotateView.Report()
	if r.Sequence != "MKQ2" {
		t.Fatalf("sequence = %q", r.Sequence)
	}
	if !r.Idle {
		t.Fatal("no rules selected yet, report should be idle")
	}
}

func TestToggleEnzymeRecomputes(t *testing.T) {
	m := newTestApp(t)
	m = send(m, runes("krkr"))
	// sequence -> custom -> proteases
	m = send(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})

	r := m.annotateView.Report()
	if r.Idle || len(r.Stats.Enzymes) != 1 || r.Stats.Enzymes[0].Name != "Trypsin" || r.Stats.Enzymes[0].Count != 4 {
		t.Fatalf("report after toggle: %+v", r.Stats)
	}
	if !strings.Contains(m.View(), "Trypsin: 4 site(s)") {
		t.Fatal("view does not show the Trypsin tally")
	}

	// Outside text fields, shortcuts work again.
	m = send(m, runes("2"))
	if m.currentView != ViewRules {
		t.Fatalf("view = %v, want rules", m.currentView)
	}
}

func TestSequenceLoaded(t *testing.T) {
	m := newTestApp(t)
	m.currentView = ViewFilePicker
	m = send(m, SequenceLoadedMsg{Record: seqfile.Record{ID: "p1", Seq: "MKR"}, Path: "/tmp/p1.fa"})

	if m.currentView != ViewAnnotate {
		t.Fatalf("view = %v", m.currentView)
	}
	if got := m.annotateView.Report().Sequence; got != "MKR" {
		t.Fatalf("sequence = %q", got)
	}

	m.currentView = ViewFilePicker
	m = send(m, SequenceLoadedMsg{Path: "/nope.fa", Err: errors.New("boom")})
	if m.currentView != ViewFilePicker || !strings.Contains(m.View(), "boom") {
		t.Fatal("load error should stay on the file picker and be shown")
	}
}

func TestEscFocusesSidebar(t *testing.T) {
	m := newTestApp(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.sidebarActive {
		t.Fatal("esc should focus the sidebar")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.currentView != ViewRules || m.sidebarActive {
		t.Fatalf("view=%v sidebar=%v", m.currentView, m.sidebarActive)
	}
	if !strings.Contains(m.View(), "Trypsin") {
		t.Fatal("rules view should list Trypsin")
	}
}

func TestInspectShowsResidue(t *testing.T) {
	m := NewApp(Options{
		Tables:    rules.Default(),
		GroupSize: report.DefaultGroupSize,
		LineWidth: report.DefaultLineWidth,
		StartDir:  t.TempDir(),
		Sequence:  "MKR",
		Glyphs:    glyph.New(basicfont.Face7x13, "test"),
	})
	m = send(m, tea.WindowSizeMsg{Width: 160, Height: 50})
	tab := tea.KeyMsg{Type: tea.KeyTab}
	// sequence -> custom -> proteases, toggle Trypsin, then on to inspect
	m = send(m, tab, tab, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, tab, tab, tab, runes("l"))

	view := m.View()
	if !strings.Contains(view, "Position 2: K - Trypsin") {
		t.Fatalf("inspect line missing:\n%s", view)
	}
	if !strings.ContainsAny(view, "█▀▄") {
		t.Fatal("large residue letter missing")
	}
}

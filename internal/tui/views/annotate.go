// Package views provides the individual views for the protsite TUI.
package views

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/protsite/internal/clipboard"
	"github.com/f3rmion/protsite/internal/report"
	"github.com/f3rmion/protsite/internal/rules"
	"github.com/f3rmion/protsite/internal/tui/glyph"
	"github.com/f3rmion/protsite/internal/tui/render"
	"go.uber.org/zap"
)

// fieldLabelWidth fits "> Custom positions" plus a gap before the input.
const fieldLabelWidth = 20

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(fieldLabelWidth)

	fieldLabelActiveStyle = fieldLabelStyle.
				Foreground(lipgloss.Color("#ffe66d"))

	listTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ecdc4"))

	listTitleActiveStyle = listTitleStyle.
				Foreground(lipgloss.Color("#ffe66d")).
				Underline(true)

	listItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	listCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#2d3436"))

	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1).
			MarginRight(1)

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 2)

	inspectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Italic(true)

	glyphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			MarginRight(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)
)

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

type focusArea int

const (
	focusSequence focusArea = iota
	focusCustom
	focusEnzymes
	focusPhospho
	focusPTMs
	focusInspect
	focusCount
)

// checklist is a toggleable list of rule keys.
type checklist struct {
	title   string
	keys    []string // Value passed to the selection (rule name or residue)
	labels  []string
	checked map[int]bool
	cursor  int
}

func newChecklist(title string, keys, labels []string) checklist {
	return checklist{title: title, keys: keys, labels: labels, checked: make(map[int]bool)}
}

func (c *checklist) move(delta int) {
	if len(c.keys) == 0 {
		return
	}
	c.cursor = (c.cursor + delta + len(c.keys)) % len(c.keys)
}

func (c *checklist) toggle() {
	if len(c.keys) == 0 {
		return
	}
	c.checked[c.cursor] = !c.checked[c.cursor]
}

func (c *checklist) clear() {
	c.checked = make(map[int]bool)
}

// selected returns the checked keys in table order.
func (c checklist) selected() []string {
	var out []string
	for i, k := range c.keys {
		if c.checked[i] {
			out = append(out, k)
		}
	}
	return out
}

func (c checklist) view(active bool) string {
	var b strings.Builder
	title := listTitleStyle
	if active {
		title = listTitleActiveStyle
	}
	b.WriteString(title.Render(fmt.Sprintf("%s (%d)", c.title, len(c.selected()))))
	for i, label := range c.labels {
		box := "[ ] "
		if c.checked[i] {
			box = "[x] "
		}
		style := listItemStyle
		if active && i == c.cursor {
			style = listCursorStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(box + label))
	}
	return listBoxStyle.Render(b.String())
}

// AnnotateModel is the interactive annotation view. Every edit re-runs the
// whole pipeline synchronously.
type AnnotateModel struct {
	tables    *rules.Tables
	groupSize int
	lineWidth int
	logger    *zap.Logger
	glyphs    *glyph.Renderer

	sequence textinput.Model
	custom   textinput.Model
	enzymes  checklist
	phospho  checklist
	ptms     checklist

	focus  focusArea
	cursor int // Inspected residue, 0-based

	source string // Where the sequence came from, if loaded from a file
	result report.Report
	err    error
	copied bool

	width  int
	height int
}

// NewAnnotateModel creates a new annotate view model.
func NewAnnotateModel(tables *rules.Tables, groupSize, lineWidth int, logger *zap.Logger) AnnotateModel {
	seq := textinput.New()
	seq.Placeholder = "Paste a protein sequence..."
	seq.Prompt = ""
	seq.Focus()
	seq.Width = 60
	seq.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	custom := textinput.New()
	custom.Placeholder = "e.g. 5, 12, 40"
	custom.Prompt = ""
	custom.Width = 40
	custom.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	var phosphoKeys, phosphoLabels []string
	for _, r := range tables.Phospho {
		phosphoKeys = append(phosphoKeys, r.Residues)
		phosphoLabels = append(phosphoLabels, fmt.Sprintf("%s  %s", r.Residues, r.Description))
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	m := AnnotateModel{
		tables:    tables,
		groupSize: groupSize,
		lineWidth: lineWidth,
		logger:    logger,
		sequence:  seq,
		custom:    custom,
		enzymes:   newChecklist("Proteases", tables.EnzymeNames(), tables.EnzymeNames()),
		phospho:   newChecklist("Phosphorylation", phosphoKeys, phosphoLabels),
		ptms:      newChecklist("PTMs", tables.PTMNames(), tables.PTMNames()),
	}
	m.recompute()
	return m
}

// SetSize updates the view dimensions.
func (m *AnnotateModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 30 {
		m.sequence.Width = width - 24
	}
}

// SetGlyphs enables the large residue letter in the inspect panel.
func (m *AnnotateModel) SetGlyphs(g *glyph.Renderer) {
	m.glyphs = g
}

// SetSequence replaces the sequence input, e.g. after loading a file.
func (m *AnnotateModel) SetSequence(raw, source string) {
	m.sequence.SetValue(raw)
	m.source = source
	m.cursor = 0
	m.recompute()
}

// Typing reports whether keystrokes are going into a text field.
func (m AnnotateModel) Typing() bool {
	return m.focus == focusSequence || m.focus == focusCustom
}

// Report returns the current report.
func (m AnnotateModel) Report() report.Report {
	return m.result
}

func (m *AnnotateModel) recompute() {
	in := report.Input{
		Sequence:        m.sequence.Value(),
		Enzymes:         m.enzymes.selected(),
		PTMs:            m.ptms.selected(),
		PhosphoResidues: strings.Join(m.phospho.selected(), ""),
		CustomPositions: m.custom.Value(),
	}
	r, err := report.Run(in, m.tables, report.OptionsFor(m.tables, m.groupSize))
	if err != nil {
		// Only reachable if the lists drift from the tables.
		m.logger.Error("annotation failed", zap.Error(err))
		m.err = err
		m.result = report.Report{Idle: true}
		m.cursor = 0
		return
	}
	m.err = nil
	m.result = r
	if m.cursor >= len(r.Units) {
		m.cursor = 0
	}
}

func (m *AnnotateModel) setFocus(f focusArea) {
	m.focus = (f + focusCount) % focusCount
	m.sequence.Blur()
	m.custom.Blur()
	switch m.focus {
	case focusSequence:
		m.sequence.Focus()
	case focusCustom:
		m.custom.Focus()
	}
}

func (m *AnnotateModel) activeList() *checklist {
	switch m.focus {
	case focusEnzymes:
		return &m.enzymes
	case focusPhospho:
		return &m.phospho
	case focusPTMs:
		return &m.ptms
	}
	return nil
}

// Update handles messages.
func (m AnnotateModel) Update(msg tea.Msg) (AnnotateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab":
			m.setFocus(m.focus - 1)
			return m, nil
		case "ctrl+y":
			return m, m.copyReport()
		}

		if list := m.activeList(); list != nil {
			switch msg.String() {
			case "j", "down":
				list.move(1)
			case "k", "up":
				list.move(-1)
			case " ", "enter", "x":
				list.toggle()
				m.recompute()
			case "c":
				list.clear()
				m.recompute()
			case "y":
				return m, m.copyReport()
			}
			return m, nil
		}

		if m.focus == focusInspect {
			n := len(m.result.Units)
			switch msg.String() {
			case "l", "right":
				if n > 0 {
					m.cursor = (m.cursor + 1) % n
				}
			case "h", "left":
				if n > 0 {
					m.cursor = (m.cursor - 1 + n) % n
				}
			case "L", "shift+right":
				if n > 0 {
					m.cursor = min(m.cursor+m.step(), n-1)
				}
			case "H", "shift+left":
				m.cursor = max(m.cursor-m.step(), 0)
			case "y":
				return m, m.copyReport()
			}
			return m, nil
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSequence:
		before := m.sequence.Value()
		m.sequence, cmd = m.sequence.Update(msg)
		if m.sequence.Value() != before {
			m.source = ""
			m.recompute()
		}
	case focusCustom:
		before := m.custom.Value()
		m.custom, cmd = m.custom.Update(msg)
		if m.custom.Value() != before {
			m.recompute()
		}
	}
	return m, cmd
}

func (m AnnotateModel) step() int {
	if m.groupSize > 0 {
		return m.groupSize
	}
	return 10
}

func (m *AnnotateModel) copyReport() tea.Cmd {
	text := report.FormatText(m.result, m.lineWidth)
	if err := clipboard.Write(text); err != nil {
		m.logger.Warn("clipboard copy failed", zap.Error(err))
		m.err = err
		return nil
	}
	m.copied = true
	return clearCopiedAfter(2 * time.Second)
}

// View renders the annotate view.
func (m AnnotateModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Protein Site Annotator"))
	if m.source != "" {
		b.WriteString(helpStyle.Render("  " + m.source))
	}
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("Sequence", focusSequence))
	b.WriteString(m.sequence.View())
	b.WriteString("\n")
	b.WriteString(m.fieldLabel("Custom positions", focusCustom))
	b.WriteString(m.custom.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.enzymes.view(m.focus == focusEnzymes),
		m.phospho.view(m.focus == focusPhospho),
		m.ptms.view(m.focus == focusPTMs),
	))
	b.WriteString("\n")

	cursor := render.NoCursor
	if m.focus == focusInspect {
		cursor = m.cursor
	}
	body := render.Sequence(m.result, m.lineWidth, cursor)
	if !m.result.Idle {
		side := render.Stats(m.result.Stats)
		if l := render.Legend(m.result.Legend); l != "" {
			side += "\n\n" + l
		}
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", side)
	}
	b.WriteString(resultBoxStyle.Render(body))
	b.WriteString("\n")

	if m.focus == focusInspect && m.cursor < len(m.result.Units) {
		u := m.result.Units[m.cursor]
		info := fmt.Sprintf("Position %d: %s", u.Position+1, u.Char)
		if u.Title != "" {
			info += " - " + u.Title
		}
		info = inspectStyle.Render(info)
		r, _ := utf8.DecodeRuneInString(u.Char)
		if big := m.glyphs.Render(r, 10, 5); big != "" {
			style := glyphStyle
			if u.Color != "" {
				style = style.Foreground(lipgloss.Color(string(u.Color)))
			}
			info = lipgloss.JoinHorizontal(lipgloss.Center, style.Render(big), info)
		}
		b.WriteString(info)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.copied {
		b.WriteString(copiedStyle.Render("Report copied to clipboard"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help()))
	return b.String()
}

func (m AnnotateModel) fieldLabel(label string, f focusArea) string {
	if m.focus == f {
		return fieldLabelActiveStyle.Render("> " + label)
	}
	return fieldLabelStyle.Render("  " + label)
}

func (m AnnotateModel) help() string {
	parts := []string{"tab: next field"}
	switch {
	case m.activeList() != nil:
		parts = append(parts, "j/k: move", "space: toggle", "c: clear", "y: copy report")
	case m.focus == focusInspect:
		parts = append(parts, "h/l: residue", "H/L: jump group", "y: copy report")
	default:
		parts = append(parts, "ctrl+y: copy report")
	}
	parts = append(parts, "esc: menu")
	return strings.Join(parts, " • ")
}

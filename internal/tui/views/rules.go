package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/protsite/internal/protein"
	"github.com/f3rmion/protsite/internal/rules"
	"github.com/mattn/go-runewidth"
)

// Rules view styles
var (
	rulesTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	rulesPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true).
			MarginBottom(1)

	rulesTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 2)

	rulesTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 2)

	rulesHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc"))

	rulesRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	rulesMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	rulesHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

var ruleTabs = []string{"Proteases", "PTMs", "Phosphorylation"}

// RulesModel lists the loaded rule tables.
type RulesModel struct {
	tables *rules.Tables
	source string // Rules file path, or "built-in"

	tab     int
	scrollY int

	width  int
	height int
}

// NewRulesModel creates a new rules view model.
func NewRulesModel(tables *rules.Tables, source string) RulesModel {
	if source == "" {
		source = "built-in"
	}
	return RulesModel{tables: tables, source: source}
}

// SetSize updates the view dimensions.
func (m *RulesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m RulesModel) Update(msg tea.Msg) (RulesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % len(ruleTabs)
			m.scrollY = 0
			return m, nil
		case "shift+tab", "left", "h":
			m.tab--
			if m.tab < 0 {
				m.tab = len(ruleTabs) - 1
			}
			m.scrollY = 0
			return m, nil
		case "j", "down":
			if m.scrollY < len(m.currentRules())-1 {
				m.scrollY++
			}
			return m, nil
		case "k", "up":
			if m.scrollY > 0 {
				m.scrollY--
			}
			return m, nil
		case "g":
			m.scrollY = 0
			return m, nil
		}
	}
	return m, nil
}

func (m RulesModel) currentRules() []protein.Rule {
	switch m.tab {
	case 0:
		return m.tables.Enzymes
	case 1:
		return m.tables.PTMs
	default:
		return m.tables.Phospho
	}
}

// View renders the rules view.
func (m RulesModel) View() string {
	var b strings.Builder

	b.WriteString(rulesTitleStyle.Render("Rule Tables"))
	b.WriteString("\n")
	b.WriteString(rulesPathStyle.Render(fmt.Sprintf("Rules: %s • color policy: %s", m.source, m.tables.Policy)))
	b.WriteString("\n\n")

	var tabViews []string
	for i, t := range ruleTabs {
		style := rulesTabStyle
		if i == m.tab {
			style = rulesTabActiveStyle
		}
		tabViews = append(tabViews, style.Render(t))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabViews...))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#3d5a80")).Render(strings.Repeat("─", max(min(m.width-4, 60), 10))))
	b.WriteString("\n\n")

	b.WriteString(m.renderTable(m.currentRules()))

	b.WriteString("\n")
	b.WriteString(rulesHelpStyle.Render("tab/←→: switch tables • j/k: scroll"))

	return b.String()
}

func (m RulesModel) renderTable(rs []protein.Rule) string {
	var b strings.Builder

	if len(rs) == 0 {
		b.WriteString(rulesMutedStyle.Render("No rules configured"))
		b.WriteString("\n")
		b.WriteString(rulesMutedStyle.Render("Run 'protsite init' to write an editable rules file"))
		return b.String()
	}

	b.WriteString(rulesHeaderStyle.Render(fmt.Sprintf("%s (%d rules)", ruleTabs[m.tab], len(rs))))
	b.WriteString("\n\n")

	nameWidth := 4
	for _, r := range rs {
		nameWidth = max(nameWidth, runewidth.StringWidth(r.Name))
	}

	header := "   " + runewidth.FillRight("Name", nameWidth) + "  " + runewidth.FillRight("Residues", 10) + "  " + runewidth.FillRight("Symbol", 6) + "  Description"
	b.WriteString(rulesMutedStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(rulesMutedStyle.Render(strings.Repeat("─", runewidth.StringWidth(header)+10)))
	b.WriteString("\n")

	visibleHeight := m.height - 14
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	start := m.scrollY
	if start >= len(rs) {
		start = 0
	}
	end := min(start+visibleHeight, len(rs))

	for i := start; i < end; i++ {
		r := rs[i]
		color := r.Color
		if r.Category == protein.CategoryPhospho {
			color = m.tables.Palette.Phospho
		} else if r.Category == protein.CategoryEnzyme && m.tables.Policy == rules.PolicyCategory {
			color = m.tables.Palette.Protease
		}
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(string(color))).Render("  "))
		b.WriteString(" ")
		row := runewidth.FillRight(r.Name, nameWidth) + "  " +
			runewidth.FillRight(strings.Join(r.ResidueList(), ","), 10) + "  " +
			runewidth.FillRight(r.Symbol, 6) + "  " + r.Description
		b.WriteString(rulesRowStyle.Render(row))
		b.WriteString("\n")
	}

	if len(rs) > visibleHeight {
		b.WriteString("\n")
		b.WriteString(rulesMutedStyle.Render(fmt.Sprintf("Showing %d-%d of %d", start+1, end, len(rs))))
	}

	return b.String()
}

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/protsite/internal/rules"
	"github.com/f3rmion/protsite/internal/seqfile"
	"github.com/f3rmion/protsite/internal/tui/glyph"
	"github.com/f3rmion/protsite/internal/tui/views"
	"go.uber.org/zap"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewAnnotate ViewType = iota
	ViewRules
	ViewFilePicker
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// SequenceLoadedMsg is sent when a sequence file has been read
type SequenceLoadedMsg struct {
	Record seqfile.Record
	Path   string
	Err    error
}

// Options configure a new application.
type Options struct {
	Tables      *rules.Tables
	RulesSource string // Shown in the rules view
	GroupSize   int
	LineWidth   int
	StartDir    string          // Initial file picker directory
	Sequence    string          // Optional initial sequence
	Glyphs      *glyph.Renderer // Large letter in the inspect panel; nil disables it
	Logger      *zap.Logger
}

// AppModel is the main TUI model
type AppModel struct {
	logger *zap.Logger

	width        int
	height       int
	sidebarWidth int
	ready        bool

	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	annotateView   views.AnnotateModel
	rulesView      views.RulesModel
	filePickerView views.FilePickerModel

	showHelp bool
}

// NewApp creates a new TUI application
func NewApp(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := AppModel{
		logger:       logger,
		sidebarWidth: 18,
		currentView:  ViewAnnotate,
		menuItems: []MenuItem{
			{Label: "Annotate", View: ViewAnnotate, Shortcut: "1"},
			{Label: "Rules", View: ViewRules, Shortcut: "2"},
			{Label: "Open File", View: ViewFilePicker, Shortcut: "3"},
		},

		annotateView:   views.NewAnnotateModel(opts.Tables, opts.GroupSize, opts.LineWidth, logger),
		rulesView:      views.NewRulesModel(opts.Tables, opts.RulesSource),
		filePickerView: views.NewFilePickerModel(opts.StartDir, seqfile.Extensions),
	}
	app.annotateView.SetGlyphs(opts.Glyphs)
	if opts.Sequence != "" {
		app.annotateView.SetSequence(opts.Sequence, "")
	}
	return app
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AppModel) switchTo(v ViewType) {
	m.currentView = v
	m.sidebarActive = false
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
}

// typing reports whether the active view is capturing text, in which case
// single-key shortcuts must reach the view.
func (m AppModel) typing() bool {
	return !m.sidebarActive && m.currentView == ViewAnnotate && m.annotateView.Typing()
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		}

		if !m.typing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1", "2", "3":
				m.switchTo(m.menuItems[int(msg.String()[0]-'1')].View)
				return m, nil
			}
		}

		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
			case "enter", "l", "right", "tab":
				m.switchTo(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.annotateView.SetSize(contentWidth, contentHeight)
		m.rulesView.SetSize(contentWidth, contentHeight)
		m.filePickerView.SetSize(contentWidth, contentHeight)
		return m, nil

	case views.FileSelectedMsg:
		return m, m.loadSequence(msg.Path)

	case SequenceLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("loading sequence file failed", zap.String("path", msg.Path), zap.Error(msg.Err))
			m.filePickerView.SetError(msg.Err)
			return m, nil
		}
		m.logger.Debug("sequence file loaded",
			zap.String("path", msg.Path),
			zap.String("id", msg.Record.ID),
			zap.Int("length", len(msg.Record.Seq)))
		source := msg.Path
		if msg.Record.ID != "" {
			source = msg.Record.ID + " (" + msg.Path + ")"
		}
		m.annotateView.SetSequence(msg.Record.Seq, source)
		m.switchTo(ViewAnnotate)
		return m, nil
	}

	if m.sidebarActive {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewAnnotate:
		m.annotateView, cmd = m.annotateView.Update(msg)
	case ViewRules:
		m.rulesView, cmd = m.rulesView.Update(msg)
	case ViewFilePicker:
		m.filePickerView, cmd = m.filePickerView.Update(msg)
	}
	return m, cmd
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewAnnotate:
		content = m.annotateView.View()
	case ViewRules:
		content = m.rulesView.View()
	case ViewFilePicker:
		content = m.filePickerView.View()
	}

	mainContent := ContentStyle.
		Width(m.width - m.sidebarWidth - 4).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" protsite "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		style := SidebarItemStyle
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		}
		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	items = append(items, SidebarHelpStyle.Render("? Help  q Quit"))

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

// loadSequence reads a sequence file off the update loop
func (m AppModel) loadSequence(path string) tea.Cmd {
	return func() tea.Msg {
		rec, err := seqfile.ReadFile(path)
		return SequenceLoadedMsg{Record: rec, Path: path, Err: err}
	}
}

func (m AppModel) renderHelp() string {
	helpText := HelpTitleStyle.Render("protsite - protein site annotator") + "\n\n"

	section := func(title string, keys [][2]string) {
		helpText += HelpSectionStyle.Render(title) + "\n"
		for _, k := range keys {
			helpText += HelpKeyStyle.Render(k[0]) + HelpDescStyle.Render(k[1]) + "\n"
		}
	}

	section("Global Keys", [][2]string{
		{"1-3", "Switch views"},
		{"esc", "Focus menu (again to quit)"},
		{"?", "Show this help"},
		{"q", "Quit (outside text fields)"},
	})
	section("Annotate View", [][2]string{
		{"tab", "Next field"},
		{"space", "Toggle rule"},
		{"c", "Clear current list"},
		{"h/l", "Inspect residues"},
		{"y/ctrl+y", "Copy report"},
	})
	section("Rules View", [][2]string{
		{"←/→", "Switch tables"},
		{"j/k", "Scroll"},
	})
	section("Open File", [][2]string{
		{"enter", "Open file/enter dir"},
		{"backspace", "Parent dir"},
		{"~", "Home dir"},
	})

	helpText += "\n" + HelpDismissStyle.Render("Press any key to close")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, HelpBoxStyle.Render(helpText))
}

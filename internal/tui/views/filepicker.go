package views

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FileSelectedMsg is sent when a sequence file is selected
type FileSelectedMsg struct {
	Path string
}

var (
	fpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	fpDirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true)

	fpCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#2d3436"))
)

// fileEntry is a directory or a sequence file shown in the picker.
type fileEntry struct {
	name  string
	path  string
	isDir bool
}

// FilePickerModel lists directories and sequence files under dir.
type FilePickerModel struct {
	dir        string
	extensions []string
	entries    []fileEntry
	cursor     int
	top        int // First visible entry
	err        error
	height     int
}

// NewFilePickerModel creates a file picker starting in dir that lists
// files with one of the given extensions.
func NewFilePickerModel(dir string, extensions []string) FilePickerModel {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	m := FilePickerModel{dir: dir, extensions: extensions}
	m.open(dir)
	return m
}

// SetSize updates the view dimensions.
func (m *FilePickerModel) SetSize(width, height int) {
	m.height = height
}

// SetError shows a load error for the last selected file.
func (m *FilePickerModel) SetError(err error) {
	m.err = err
}

// open lists dir: parent link first, then directories, then matching files.
func (m *FilePickerModel) open(dir string) {
	m.dir, m.entries, m.cursor, m.top, m.err = dir, nil, 0, 0, nil

	des, err := os.ReadDir(dir)
	if err != nil {
		m.err = err
		return
	}
	if parent := filepath.Dir(dir); parent != dir {
		m.entries = append(m.entries, fileEntry{name: "..", path: parent, isDir: true})
	}

	var listed []fileEntry
	for _, de := range des {
		if strings.HasPrefix(de.Name(), ".") || (!de.IsDir() && !m.accepts(de.Name())) {
			continue
		}
		listed = append(listed, fileEntry{name: de.Name(), path: filepath.Join(dir, de.Name()), isDir: de.IsDir()})
	}
	slices.SortFunc(listed, func(a, b fileEntry) int {
		if a.isDir != b.isDir {
			if a.isDir {
				return -1
			}
			return 1
		}
		return cmp.Compare(strings.ToLower(a.name), strings.ToLower(b.name))
	})
	m.entries = append(m.entries, listed...)
}

func (m FilePickerModel) accepts(name string) bool {
	return len(m.extensions) == 0 || slices.Contains(m.extensions, strings.ToLower(filepath.Ext(name)))
}

func (m FilePickerModel) rows() int {
	return max(m.height-8, 5)
}

// Update handles messages.
func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch km.String() {
	case "j", "down":
		m.cursor = min(m.cursor+1, max(len(m.entries)-1, 0))
	case "k", "up":
		m.cursor = max(m.cursor-1, 0)
	case "enter":
		if m.cursor >= len(m.entries) {
			break
		}
		e := m.entries[m.cursor]
		if e.isDir {
			m.open(e.path)
			break
		}
		return m, func() tea.Msg { return FileSelectedMsg{Path: e.path} }
	case "backspace":
		if parent := filepath.Dir(m.dir); parent != m.dir {
			m.open(parent)
		}
	case "~":
		if home, err := os.UserHomeDir(); err == nil {
			m.open(home)
		}
	}

	if m.cursor < m.top {
		m.top = m.cursor
	} else if m.cursor >= m.top+m.rows() {
		m.top = m.cursor - m.rows() + 1
	}
	return m, nil
}

// View renders the file picker.
func (m FilePickerModel) View() string {
	var b strings.Builder

	b.WriteString(fpTitleStyle.Render("Open Sequence File"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(strings.Join(m.extensions, " ")))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.dir))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}
	if len(m.entries) == 0 {
		b.WriteString(helpStyle.Render("  (no sequence files here)"))
		b.WriteString("\n")
	}

	end := min(m.top+m.rows(), len(m.entries))
	for i := m.top; i < end; i++ {
		e := m.entries[i]
		label := "  " + e.name
		if e.isDir {
			label = fpDirStyle.Render("▸ " + e.name + "/")
		}
		if i == m.cursor {
			label = fpCursorStyle.Render("> " + e.name)
		}
		b.WriteString(label)
		b.WriteString("\n")
	}
	if len(m.entries) > m.rows() {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  ↕ %d-%d of %d", m.top+1, end, len(m.entries))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k: move • enter: open • backspace: parent • ~: home • esc: menu"))
	return b.String()
}

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/devlog/internal/prefs"
)

// Layout: header, command bar and status line plus the list's border.
const (
	chromeLines = 5
	rowHeight   = 2
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m.handleHelpKey(msg)
	}
	if m.editing {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.openHelp()

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Filter):
		m.editing = true
		m.status = ""
		m.filterInput.SetValue(m.filter)
		m.filterInput.CursorEnd()
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.ClearFilter):
		m.follow = true
		m.setFilter("")

	case key.Matches(msg, m.keys.FilterByPlace):
		if r, ok := m.selectedRecord(); ok {
			m.setFilter(r.Place.SmallPrefix())
		}

	case key.Matches(msg, m.keys.Copy):
		m.copySelected()

	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Top):
		m.move(-len(m.rows))
	case key.Matches(msg, m.keys.Bottom):
		m.follow = true
		m.selectLast()
	case key.Matches(msg, m.keys.PageUp):
		m.move(-m.visibleRows())
	case key.Matches(msg, m.keys.PageDown):
		m.move(m.visibleRows())
	case key.Matches(msg, m.keys.HalfPageUp):
		m.move(-max(m.visibleRows()/2, 1))
	case key.Matches(msg, m.keys.HalfPageDown):
		m.move(max(m.visibleRows()/2, 1))
	}
	return m, nil
}

// handleFilterKey edits the filter; every keystroke re-filters the rows.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.editing = false
		m.filterInput.Blur()
		m.follow = true
		m.refreshRows()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.filterInput.Blur()
		m.follow = true
		m.setFilter("")
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if v := m.filterInput.Value(); v != m.filter {
		m.filter = v
		m.refreshRows()
	}
	return m, cmd
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.help.SetYOffset(m.help.YOffset - 1)
	case key.Matches(msg, m.keys.Down):
		m.help.SetYOffset(m.help.YOffset + 1)
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	default:
		m.showHelp = false
	}
	return m, nil
}

func (m *Model) setFilter(query string) {
	m.filter = query
	m.filterInput.SetValue(query)
	m.refreshRows()
}

// move shifts the selection by delta rows. Landing on the last row resumes
// following; anything else pauses it.
func (m *Model) move(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.selected = min(max(m.selected+delta, 0), len(m.rows)-1)
	m.follow = m.selected == len(m.rows)-1
	m.ensureVisible()
}

func (m *Model) selectLast() {
	m.selected = max(len(m.rows)-1, 0)
	m.offset = max(len(m.rows)-m.visibleRows(), 0)
}

// ensureVisible scrolls the least amount that keeps the selection on screen.
func (m *Model) ensureVisible() {
	visible := m.visibleRows()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.rows)-visible, 0))
}

func (m Model) visibleRows() int {
	return max((m.height-chromeLines)/rowHeight, 1)
}

func (m *Model) copySelected() {
	r, ok := m.selectedRecord()
	if !ok {
		return
	}
	if err := m.copyText(r.Formatted()); err != nil {
		m.status = "Copy failed: " + err.Error()
		m.log.Warn("clipboard write failed", zap.Error(err))
		return
	}
	m.status = "Copied " + truncate(r.Formatted(), 60)
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.status = "Saving theme failed: " + err.Error()
		m.log.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

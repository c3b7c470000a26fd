package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/devlog/internal/place"
)

const helpWidth = 44

// openHelp shows the help overlay in a scrollable viewport sized to the window.
func (m *Model) openHelp() {
	m.showHelp = true
	m.help = viewport.New(helpWidth, max(m.height-6, 3))
	m.help.SetContent(m.renderHelpContent())
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Render(m.help.View())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// renderHelpContent lists the key bindings by section followed by the
// component icon legend.
func (m Model) renderHelpContent() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Width(12)
	rule := styles.FaintText.Render(strings.Repeat("─", 30))

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n" + rule + "\n")

	titles := []string{"Navigation", "Filter", "General"}
	for i, group := range m.keys.FullHelp() {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render(titles[i]))
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Vocabulary"))
	b.WriteString("\n")
	for _, kw := range place.Vocabulary() {
		b.WriteString(keyStyle.Render(kw.Icon))
		b.WriteString(styles.Text.Render(kw.Word))
		b.WriteString("\n")
	}
	b.WriteString(keyStyle.Render(place.Sentinel))
	b.WriteString(styles.MutedText.Render("anything else"))
	return b.String()
}

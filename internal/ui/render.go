package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/five82/devlog/internal/record"
)

// renderMain renders header, command bar, record list and status line.
func (m Model) renderMain() string {
	return strings.Join([]string{
		m.renderHeader(),
		m.renderCommandBar(),
		m.renderList(),
		m.renderStatus(),
	}, "\n")
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	followLabel, followStyle := "paused", styles.MutedText
	if m.follow {
		followLabel, followStyle = "following", styles.Construct
	}
	parts := []string{
		bg.Render("devlog", styles.Logo),
		bg.Render(fmt.Sprintf("%d records", len(m.records)), styles.Text),
		bg.Render(fmt.Sprintf("%d shown", len(m.rows)), styles.MutedText),
		bg.Render(followLabel, followStyle),
	}
	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the short key help on the surface color.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	surface := lipgloss.Color(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	bar := m.bar
	bar.Styles.ShortKey = styles.AccentText.Background(surface)
	bar.Styles.ShortDesc = styles.MutedText.Background(surface)
	bar.Styles.ShortSeparator = styles.FaintText.Background(surface)
	bar.Styles.Ellipsis = styles.FaintText.Background(surface)
	bar.ShortSeparator = "  "
	bar.Width = max(m.width-len(m.theme.Name)-4, 0)

	content := bar.View(m.keys) + bg.Spaces(2) +
		bg.Render("T", styles.AccentText) + bg.Render(":"+m.theme.Name, styles.FaintText)
	return bg.FillLine(content, m.width)
}

// renderList renders the visible window of rows inside a rounded border.
func (m Model) renderList() string {
	width := max(m.width-2, 1)
	height := max(m.height-chromeLines, rowHeight)
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()

	lines := make([]string, 0, height)
	switch {
	case len(m.rows) == 0 && m.filter != "":
		lines = append(lines, bg.FillLine(bg.Render(" No records match "+m.filter, styles.MutedText), width))
	case len(m.rows) == 0:
		lines = append(lines, bg.FillLine(bg.Render(" No records yet", styles.MutedText), width))
	default:
		end := min(m.offset+m.visibleRows(), len(m.rows))
		for i := m.offset; i < end; i++ {
			lines = append(lines, m.renderRow(m.rows[i], i == m.selected, width)...)
		}
	}
	for len(lines) < height {
		lines = append(lines, bg.FillLine("", width))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Render(strings.Join(lines[:height], "\n"))
}

// renderRow renders a record as a title line with the timestamp on the
// right and an indented message line. Filter matches are highlighted in
// both.
func (m Model) renderRow(r record.Record, selected bool, width int) []string {
	styles := m.theme.Styles()
	bgColor := m.theme.FocusBg
	titleStyle := styles.Title
	if selected {
		bgColor = m.theme.SelectionBg
		titleStyle = titleStyle.Foreground(lipgloss.Color(m.theme.SelectionText))
	}
	bg := NewBgStyle(bgColor)

	ts := r.Timestamp
	title := truncate(r.Place.SmallPrefix(), width-runewidth.StringWidth(ts)-2)
	gap := max(width-runewidth.StringWidth(title)-runewidth.StringWidth(ts)-1, 1)
	titleLine := m.highlight(bg, title, titleStyle) + bg.Spaces(gap) + bg.Render(ts, styles.FaintText)

	const indent = 3
	message := truncate(rowMessage(r), width-indent)
	messageLine := bg.Spaces(indent) + m.highlight(bg, message, styles.MessageStyle(r))

	return []string{bg.FillLine(titleLine, width), bg.FillLine(messageLine, width)}
}

// highlight renders text in base with the first case-insensitive filter
// match in the match style.
func (m Model) highlight(bg BgStyle, text string, base lipgloss.Style) string {
	start, end, ok := indexFold(text, m.filter)
	if !ok {
		return bg.Render(text, base)
	}
	match := m.theme.Styles().Match
	return bg.Render(text[:start], base) + bg.Render(text[start:end], match) + bg.Render(text[end:], base)
}

// rowMessage is the message line of a row; lifecycle records lead with
// their event and sequence number.
func rowMessage(r record.Record) string {
	var event string
	switch r.Kind {
	case record.KindConstruct:
		event = fmt.Sprintf("INIT #%d", r.Seq)
	case record.KindDestruct:
		event = fmt.Sprintf("DEINIT #%d", r.Seq)
	default:
		return r.Message
	}
	if r.Message == "" {
		return event
	}
	return event + "  " + r.Message
}

func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var content string
	switch {
	case m.editing:
		content = m.filterInput.View()
	case m.status != "":
		content = bg.Render(m.status, styles.AccentText)
	case m.filter != "":
		content = bg.Render("filter: ", styles.FaintText) + bg.Render(m.filter, styles.AccentText) +
			bg.Render("  esc to clear", styles.FaintText)
	default:
		content = bg.Render("/ to filter, enter to copy, p to filter by place", styles.FaintText)
	}
	return bg.FillLine(content, m.width)
}

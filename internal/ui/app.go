// Package ui implements the interactive console view with Bubble Tea.
package ui

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/five82/devlog/internal/logging"
	"github.com/five82/devlog/internal/record"
	"github.com/five82/devlog/internal/state"
)

// Options configures the UI.
type Options struct {
	Store     *state.Store
	Logger    logging.Logger
	Refresh   time.Duration // throttle interval, one second when zero
	ThemeName string
	PrefsPath string             // theme changes are saved here when set
	Clipboard func(string) error // system clipboard when nil
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store       *state.Store
	feed        *feed
	unsubscribe func()
	log         logging.Logger
	refresh     time.Duration
	prefsPath   string
	copyText    func(string) error
	keys        keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	records []record.Record // everything published so far
	rows    []record.Record // records passing the filter

	// List state
	selected int
	offset   int
	follow   bool

	// Filter state
	filter      string
	filterInput textinput.Model
	editing     bool

	status   string
	bar      help.Model
	showHelp bool
	help     viewport.Model
}

// New creates the model and subscribes it to the store.
func New(opts Options) Model {
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = time.Second
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNoOpLogger()
	}
	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "Filter"
	ti.CharLimit = 200

	m := Model{
		store:       opts.Store,
		log:         log,
		refresh:     refresh,
		prefsPath:   opts.PrefsPath,
		copyText:    copyText,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		follow:      true,
		filterInput: ti,
		bar:         help.New(),
	}
	if opts.Store != nil {
		m.feed, m.unsubscribe = subscribe(opts.Store)
	} else {
		m.feed, m.unsubscribe = &feed{}, func() {}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.refresh)}
	if m.store != nil {
		cmds = append(cmds, snapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.filterInput.Width = max(m.width-4, 10)
		m.bar.Width = m.width
		if m.follow {
			m.selectLast()
		} else {
			m.ensureVisible()
		}
		return m, nil

	case tickMsg:
		if records := m.feed.take(); records != nil {
			m.setRecords(records)
		}
		return m, tickCmd(m.refresh)

	case recordsMsg:
		m.setRecords(msg)
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// setRecords replaces the published sequence. The store only grows, so a
// shorter sequence is an older one and is dropped.
func (m *Model) setRecords(records []record.Record) {
	if len(records) < len(m.records) {
		return
	}
	m.records = records
	m.refreshRows()
}

// refreshRows re-applies the filter. While following, the last row is
// selected; otherwise the selection stays on the same record when it is
// still shown.
func (m *Model) refreshRows() {
	var keep uuid.UUID
	if r, ok := m.selectedRecord(); ok {
		keep = r.ID
	}
	m.rows = filterRecords(m.records, m.filter)

	if m.follow {
		m.selectLast()
		return
	}
	if i := slices.IndexFunc(m.rows, func(r record.Record) bool { return r.ID == keep }); i >= 0 {
		m.selected = i
	} else {
		m.selected = min(m.selected, max(len(m.rows)-1, 0))
	}
	m.ensureVisible()
}

func (m Model) selectedRecord() (record.Record, bool) {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return record.Record{}, false
	}
	return m.rows[m.selected], true
}

// Messages

type tickMsg time.Time

type recordsMsg []record.Record

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func snapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return recordsMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	defer m.unsubscribe()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

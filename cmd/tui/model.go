package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Aftab073/Ai-search-tool/internal/session"
	"github.com/Aftab073/Ai-search-tool/library/search"
)

// API is the subset of the search client the TUI needs.
type API interface {
	Search(ctx context.Context, query string) ([]search.SearchResult, error)
	History(ctx context.Context) ([]search.HistoryEntry, error)
	ClearHistory(ctx context.Context) error
}

// Theme flips and reports the persisted dark mode preference.
type Theme interface {
	DarkMode() bool
	Toggle(ctx context.Context) bool
}

// focusArea is the part of the screen receiving key presses
type focusArea int

const (
	// focusInput is the query text box
	focusInput focusArea = iota
	// focusResults is the result list
	focusResults
	// focusHistory is the history panel
	focusHistory
)

const defaultRequestTimeout = 30 * time.Second

// searchDoneMsg carries the outcome of one search request
type searchDoneMsg struct {
	seq     uint64
	results []search.SearchResult
	err     error
}

// historyDoneMsg carries the outcome of a history fetch
type historyDoneMsg struct {
	entries []search.HistoryEntry
	err     error
}

// clearHistoryDoneMsg carries the outcome of a history delete
type clearHistoryDoneMsg struct {
	err error
}

// Config wires the model to its collaborators.
type Config struct {
	API   API
	Theme Theme
	// Timeout bounds every request, defaults to 30s.
	Timeout time.Duration
	// CompactWidth is the width below which short labels are used.
	CompactWidth int
}

// Model is the main TUI model following the Bubble Tea architecture
type Model struct {
	api          API
	theme        Theme
	session      *session.State
	timeout      time.Duration
	compactWidth int

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	detail  viewport.Model
	styles  Styles

	focus         focusArea
	cursor        int
	historyCursor int

	// Window dimensions
	width   int
	height  int
	compact bool

	quitting bool
}

// NewModel creates the search console model
func NewModel(cfg Config) Model {
	dark := false
	if cfg.Theme != nil {
		dark = cfg.Theme.DarkMode()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRequestTimeout
	}

	styles := NewStyles(dark)

	input := textinput.New()
	input.Placeholder = "Search AI Trends, Tech News, etc..."
	input.CharLimit = 512
	input.Width = 60
	input.Prompt = "🔍 "
	input.PromptStyle = styles.InputLabel
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Progress

	return Model{
		api:          cfg.API,
		theme:        cfg.Theme,
		session:      session.New(session.WithDarkMode(dark)),
		timeout:      cfg.Timeout,
		compactWidth: cfg.CompactWidth,
		input:        input,
		spinner:      sp,
		help:         help.New(),
		detail:       viewport.New(0, 0),
		styles:       styles,
		focus:        focusInput,
	}
}

// Session exposes the underlying state, mostly for tests
func (m Model) Session() *session.State {
	return m.session
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.compact = m.compactWidth > 0 && msg.Width < m.compactWidth
		m.input.Width = max(10, msg.Width-8)
		m.help.Width = msg.Width
		m.resizeDetail()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		if m.session.Loading || m.session.HistoryLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case searchDoneMsg:
		if m.session.ApplySearch(msg.seq, msg.results, msg.err) {
			m.cursor = 0
		}
		return m, nil

	case historyDoneMsg:
		m.session.ApplyHistory(msg.entries, msg.err)
		m.historyCursor = 0
		m.setFocus(focusHistory)
		return m, nil

	case clearHistoryDoneMsg:
		m.session.ApplyClearHistory(msg.err)
		m.historyCursor = 0
		if m.focus == focusHistory {
			m.setFocus(focusInput)
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes key events, global bindings first
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Theme):
		return m.toggleTheme()
	case key.Matches(msg, keys.Filter):
		m.session.CycleFilter()
		m.cursor = 0
		return m, nil
	case key.Matches(msg, keys.Sort):
		m.session.CycleSort()
		m.cursor = 0
		return m, nil
	case key.Matches(msg, keys.History):
		return m.toggleHistory()
	}

	if m.session.Selected != nil {
		return m.handleDetailView(msg)
	}

	switch m.focus {
	case focusResults:
		return m.handleResultsView(msg)
	case focusHistory:
		return m.handleHistoryView(msg)
	default:
		return m.handleInputView(msg)
	}
}

// handleInputView handles key events while typing a query
func (m Model) handleInputView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Enter):
		return m.submit(m.input.Value())
	case key.Matches(msg, keys.Tab):
		m.setFocus(m.nextFocus())
		return m, nil
	case key.Matches(msg, keys.Back):
		m.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResultsView handles key events in the result list
func (m Model) handleResultsView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.session.View()

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(view)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if m.cursor < len(view) && m.session.Select(view[m.cursor]) {
			m.resizeDetail()
			m.detail.SetContent(m.renderDetailBody())
			m.detail.GotoTop()
		}
	case key.Matches(msg, keys.Tab):
		m.setFocus(m.nextFocus())
	case key.Matches(msg, keys.Back):
		m.setFocus(focusInput)
	}

	return m, nil
}

// handleHistoryView handles key events in the history panel
func (m Model) handleHistoryView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.session.History

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.historyCursor > 0 {
			m.historyCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.historyCursor < len(entries)-1 {
			m.historyCursor++
		}
	case key.Matches(msg, keys.Enter):
		if m.historyCursor < len(entries) {
			return m.replay(entries[m.historyCursor])
		}
	case key.Matches(msg, keys.ClearHistory):
		return m, m.clearHistoryCmd()
	case key.Matches(msg, keys.Tab):
		m.setFocus(m.nextFocus())
	case key.Matches(msg, keys.Back):
		m.session.HistoryVisible = false
		m.setFocus(focusInput)
	}

	return m, nil
}

// handleDetailView handles key events while a result is open
func (m Model) handleDetailView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Enter):
		m.session.ClearSelection()
		return m, nil
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// handleMouse scrolls the open result or moves the list cursor with the wheel
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.session.Selected != nil {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	var step int
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		step = -1
	case tea.MouseButtonWheelDown:
		step = 1
	default:
		return m, nil
	}

	if m.focus == focusHistory {
		m.historyCursor = clampIndex(m.historyCursor+step, len(m.session.History))
		return m, nil
	}

	n := len(m.session.View())
	if n == 0 {
		return m, nil
	}
	if m.focus != focusResults {
		m.setFocus(focusResults)
	}
	m.cursor = clampIndex(m.cursor+step, n)
	return m, nil
}

// submit starts a search for query
func (m Model) submit(query string) (tea.Model, tea.Cmd) {
	req, ok := m.session.SubmitSearch(query)
	if !ok {
		return m, nil
	}

	return m, tea.Batch(m.spinner.Tick, m.searchCmd(req))
}

// replay re-runs a history entry
func (m Model) replay(entry search.HistoryEntry) (tea.Model, tea.Cmd) {
	m.input.SetValue(entry.Query)
	m.setFocus(focusInput)

	req, ok := m.session.ReplayEntry(entry)
	if !ok {
		return m, nil
	}

	return m, tea.Batch(m.spinner.Tick, m.searchCmd(req))
}

// toggleHistory opens the panel (fetching it first) or closes it
func (m Model) toggleHistory() (tea.Model, tea.Cmd) {
	if !m.session.ToggleHistory() {
		if m.focus == focusHistory && !m.session.HistoryVisible {
			m.setFocus(focusInput)
		}
		return m, nil
	}

	return m, tea.Batch(m.spinner.Tick, m.historyCmd())
}

// toggleTheme flips and persists the palette
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	dark := !m.session.DarkMode
	if m.theme != nil {
		dark = m.theme.Toggle(context.Background())
	}

	m.session.DarkMode = dark
	m.styles = NewStyles(dark)
	m.input.PromptStyle = m.styles.InputLabel
	m.spinner.Style = m.styles.Progress
	if m.session.Selected != nil {
		m.detail.SetContent(m.renderDetailBody())
	}
	return m, nil
}

// searchCmd sends one search request
func (m Model) searchCmd(req session.SearchRequest) tea.Cmd {
	api, timeout := m.api, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		results, err := api.Search(ctx, req.Query)
		return searchDoneMsg{seq: req.Seq, results: results, err: err}
	}
}

// historyCmd fetches the history list
func (m Model) historyCmd() tea.Cmd {
	api, timeout := m.api, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		entries, err := api.History(ctx)
		return historyDoneMsg{entries: entries, err: err}
	}
}

// clearHistoryCmd deletes the history list
func (m Model) clearHistoryCmd() tea.Cmd {
	api, timeout := m.api, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return clearHistoryDoneMsg{err: api.ClearHistory(ctx)}
	}
}

// nextFocus cycles input -> results -> history (when visible)
func (m Model) nextFocus() focusArea {
	switch m.focus {
	case focusInput:
		return focusResults
	case focusResults:
		if m.session.HistoryVisible {
			return focusHistory
		}
		return focusInput
	default:
		return focusInput
	}
}

// setFocus moves key input to area
func (m *Model) setFocus(area focusArea) {
	m.focus = area
	if area == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// resizeDetail fits the detail viewport into the window
func (m *Model) resizeDetail() {
	w, h := m.width-6, m.height-8
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.detail.Width = w
	m.detail.Height = h
}

// clampIndex keeps i within [0, n)
func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

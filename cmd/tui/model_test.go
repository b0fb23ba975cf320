package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/Laisky/errors/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Aftab073/Ai-search-tool/library/search"
	"github.com/Aftab073/Ai-search-tool/library/search/client"
)

type fakeAPI struct {
	mu         sync.Mutex
	queries    []string
	results    []search.SearchResult
	searchErr  error
	history    []search.HistoryEntry
	historyErr error
	clearErr   error
	clears     int
}

func (f *fakeAPI) Search(_ context.Context, query string) ([]search.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.results, nil
}

func (f *fakeAPI) History(context.Context) ([]search.HistoryEntry, error) {
	return f.history, f.historyErr
}

func (f *fakeAPI) ClearHistory(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	return f.clearErr
}

type fakeTheme struct {
	dark    bool
	toggles int
}

func (f *fakeTheme) DarkMode() bool { return f.dark }

func (f *fakeTheme) Toggle(context.Context) bool {
	f.toggles++
	f.dark = !f.dark
	return f.dark
}

// runCmd executes cmd and every command it batches, returning the produced messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// press sends a key and feeds the produced non-tick messages back into the model.
func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()

	next, cmd := m.Update(k)
	model := next.(Model)
	for _, msg := range runCmd(cmd) {
		switch msg.(type) {
		case searchDoneMsg, historyDoneMsg, clearHistoryDoneMsg:
			next, _ = model.Update(msg)
			model = next.(Model)
		}
	}
	return model
}

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func ctrl(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func newTestModel(api *fakeAPI, theme *fakeTheme) Model {
	m := NewModel(Config{API: api, Theme: theme, CompactWidth: 80})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func TestSearchScenarioAITrends(t *testing.T) {
	api := &fakeAPI{results: []search.SearchResult{
		{Title: "AI trends explained", Link: "https://youtube.com/watch?v=ai", Source: search.SourceYouTube},
		{Title: "AI trends 2025", Link: "https://news.example/ai", Source: search.SourceGoogle},
	}}
	m := newTestModel(api, &fakeTheme{})

	m.input.SetValue("ai trends")
	m = press(t, m, enter())

	require.Equal(t, []string{"ai trends"}, api.queries)
	require.False(t, m.Session().Loading)

	view := m.Session().View()
	require.Equal(t, "https://news.example/ai", view[0].Link)
	require.Equal(t, "https://youtube.com/watch?v=ai", view[1].Link)
	require.Contains(t, m.View(), "AI trends 2025")
}

func TestEmptyQueryIsNotSent(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api, &fakeTheme{})

	m = press(t, m, enter())
	require.Empty(t, api.queries)
	require.Equal(t, "Please enter a search query.", m.Session().Error)
	require.Contains(t, m.View(), "Please enter a search query.")
}

func TestServerReportedErrorIsShown(t *testing.T) {
	api := &fakeAPI{searchErr: &client.APIError{Kind: client.KindServerReported, Message: "quota exceeded"}}
	m := newTestModel(api, &fakeTheme{})
	m.Session().Results = []search.SearchResult{{Title: "old", Link: "https://old.example"}}

	m.input.SetValue("q")
	m = press(t, m, enter())

	require.Equal(t, "quota exceeded", m.Session().Error)
	require.Empty(t, m.Session().Results)
	require.Contains(t, m.View(), "quota exceeded")
}

func TestStaleSearchIsDropped(t *testing.T) {
	m := newTestModel(&fakeAPI{}, &fakeTheme{})

	first, _ := m.Session().SubmitSearch("slow")
	second, _ := m.Session().SubmitSearch("fast")

	next, _ := m.Update(searchDoneMsg{seq: second.Seq, results: []search.SearchResult{{Title: "fast", Link: "f"}}})
	m = next.(Model)
	next, _ = m.Update(searchDoneMsg{seq: first.Seq, results: []search.SearchResult{{Title: "slow", Link: "s"}}})
	m = next.(Model)

	require.Equal(t, "f", m.Session().Results[0].Link)
}

func TestSelectResultOpensDetail(t *testing.T) {
	api := &fakeAPI{results: []search.SearchResult{
		{Title: "Go", Description: "The Go programming language", Link: "https://go.dev", Source: search.SourceGoogle, Thumbnail: "https://go.dev/logo.png"},
	}}
	m := newTestModel(api, &fakeTheme{})
	m.input.SetValue("golang")
	m = press(t, m, enter())

	m = press(t, m, ctrl(tea.KeyTab))
	require.Equal(t, focusResults, m.focus)

	m = press(t, m, enter())
	require.NotNil(t, m.Session().Selected)
	require.Contains(t, m.View(), "https://go.dev/logo.png")

	m = press(t, m, ctrl(tea.KeyEsc))
	require.Nil(t, m.Session().Selected)
}

func TestFilterAndSortKeys(t *testing.T) {
	m := newTestModel(&fakeAPI{}, &fakeTheme{})

	m = press(t, m, ctrl(tea.KeyCtrlF))
	require.Equal(t, search.FilterGoogle, m.Session().Filter)

	m = press(t, m, ctrl(tea.KeyCtrlO))
	require.Equal(t, search.SortDate, m.Session().Sort)
}

func TestHistoryPanelLifecycle(t *testing.T) {
	api := &fakeAPI{
		history: []search.HistoryEntry{{Query: "golang generics", Timestamp: "2025-01-02T03:04:05Z"}},
		results: []search.SearchResult{{Title: "Generics", Link: "https://go.dev/doc/tutorial/generics", Source: search.SourceGoogle}},
	}
	m := newTestModel(api, &fakeTheme{})

	m = press(t, m, ctrl(tea.KeyCtrlY))
	require.True(t, m.Session().HistoryVisible)
	require.Equal(t, focusHistory, m.focus)
	require.Contains(t, m.View(), "golang generics")

	m = press(t, m, enter())
	require.False(t, m.Session().HistoryVisible)
	require.Equal(t, []string{"golang generics"}, api.queries)
	require.Equal(t, "golang generics", m.input.Value())
	require.Len(t, m.Session().Results, 1)
}

func TestHistoryFailureNotInErrorBanner(t *testing.T) {
	api := &fakeAPI{historyErr: errors.New("history unavailable")}
	m := newTestModel(api, &fakeTheme{})

	m = press(t, m, ctrl(tea.KeyCtrlY))
	require.True(t, m.Session().HistoryVisible)
	require.Empty(t, m.Session().Error)
	require.Contains(t, m.View(), "No search history yet")
}

func TestClearHistoryHidesPanel(t *testing.T) {
	api := &fakeAPI{
		history:  []search.HistoryEntry{{Query: "a", Timestamp: "2025-01-01T00:00:00Z"}},
		clearErr: errors.New("network down"),
	}
	m := newTestModel(api, &fakeTheme{})
	m = press(t, m, ctrl(tea.KeyCtrlY))

	m = press(t, m, ctrl(tea.KeyCtrlX))
	require.Equal(t, 1, api.clears)
	require.False(t, m.Session().HistoryVisible)
	require.Empty(t, m.Session().Error)
	require.Equal(t, focusInput, m.focus)
}

func TestThemeToggle(t *testing.T) {
	theme := &fakeTheme{}
	m := newTestModel(&fakeAPI{}, theme)
	require.False(t, m.styles.Dark)
	require.Contains(t, m.View(), "Dark Mode")

	m = press(t, m, ctrl(tea.KeyCtrlT))
	require.Equal(t, 1, theme.toggles)
	require.True(t, m.Session().DarkMode)
	require.True(t, m.styles.Dark)
	require.Contains(t, m.View(), "Light Mode")
}

func TestCompactLayout(t *testing.T) {
	m := newTestModel(&fakeAPI{}, &fakeTheme{dark: true})
	require.True(t, m.Session().DarkMode)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	m = next.(Model)
	require.True(t, m.compact)
	require.NotContains(t, m.View(), "View History")
}

func TestVisibleWindow(t *testing.T) {
	start, end := visibleWindow(3, 0, 10)
	require.Equal(t, 0, start)
	require.Equal(t, 3, end)

	start, end = visibleWindow(20, 19, 5)
	require.Equal(t, 15, start)
	require.Equal(t, 20, end)

	start, end = visibleWindow(20, 10, 5)
	require.Equal(t, 8, start)
	require.Equal(t, 13, end)
}

func TestBlankSubmitWhileLoadingShowsMessage(t *testing.T) {
	m := newTestModel(&fakeAPI{}, &fakeTheme{})

	m.input.SetValue("golang")
	next, cmd := m.Update(enter())
	m = next.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.Session().Loading)

	m.input.SetValue("")
	m = press(t, m, enter())
	require.Contains(t, m.View(), "Searching...")
	require.Contains(t, m.View(), "Please enter a search query.")

	next, _ = m.Update(searchDoneMsg{seq: 1, results: []search.SearchResult{{Title: "Go", Link: "https://go.dev"}}})
	m = next.(Model)
	require.False(t, m.Session().Loading)
	require.Contains(t, m.View(), "Please enter a search query.")
}

func wheel(b tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{Button: b, Action: tea.MouseActionPress}
}

func TestMouseWheelMovesCursors(t *testing.T) {
	api := &fakeAPI{
		results: []search.SearchResult{
			{Title: "one", Link: "https://a.example", Source: search.SourceGoogle},
			{Title: "two", Link: "https://b.example", Source: search.SourceGoogle},
		},
		history: []search.HistoryEntry{
			{Query: "a", Timestamp: "2025-01-01T00:00:00Z"},
			{Query: "b", Timestamp: "2025-01-02T00:00:00Z"},
		},
	}
	m := newTestModel(api, &fakeTheme{})

	// nothing to scroll yet
	next, _ := m.Update(wheel(tea.MouseButtonWheelDown))
	m = next.(Model)
	require.Equal(t, focusInput, m.focus)

	m.input.SetValue("q")
	m = press(t, m, enter())

	next, _ = m.Update(wheel(tea.MouseButtonWheelDown))
	m = next.(Model)
	require.Equal(t, focusResults, m.focus)
	require.Equal(t, 1, m.cursor)

	next, _ = m.Update(wheel(tea.MouseButtonWheelDown))
	m = next.(Model)
	require.Equal(t, 1, m.cursor)

	next, _ = m.Update(wheel(tea.MouseButtonWheelUp))
	m = next.(Model)
	require.Equal(t, 0, m.cursor)

	m = press(t, m, ctrl(tea.KeyCtrlY))
	require.Equal(t, focusHistory, m.focus)
	next, _ = m.Update(wheel(tea.MouseButtonWheelDown))
	m = next.(Model)
	require.Equal(t, 1, m.historyCursor)
	require.Equal(t, 0, m.cursor)
}

func TestClampIndex(t *testing.T) {
	require.Equal(t, 0, clampIndex(-1, 3))
	require.Equal(t, 2, clampIndex(5, 3))
	require.Equal(t, 0, clampIndex(0, 0))
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/Aftab073/Ai-search-tool/library/search"
)

const (
	appTitle       = "AI Search Tool"
	emptyResults   = "No results found. Try a different search query."
	emptyHistory   = "No search history yet"
	resultHeight   = 4
	reservedHeight = 14
)

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return m.styles.Subtitle.Render("Goodbye! 👋\n")
	}

	if m.session.Selected != nil {
		return m.renderDetail()
	}

	sections := []string{m.renderHeader()}
	if m.session.HistoryVisible {
		sections = append(sections, m.renderHistory())
	}
	sections = append(sections,
		m.renderSearchBox(),
		m.renderOptions(),
	)
	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections,
		m.renderResults(),
		m.help.View(keys),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title bar with the history and theme buttons
func (m Model) renderHeader() string {
	historyLabel, themeLabel := "📖 View History", "🌙 Dark Mode"
	if m.session.HistoryVisible {
		historyLabel = "📚 Hide History"
	}
	if m.session.DarkMode {
		themeLabel = "☀ Light Mode"
	}
	if m.compact {
		historyLabel, themeLabel = "History", "🌙"
		if m.session.HistoryVisible {
			historyLabel = "Hide"
		}
		if m.session.DarkMode {
			themeLabel = "☀"
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Header.Render(appTitle),
		m.styles.Button.Render(historyLabel),
		m.styles.Button.Render(themeLabel),
	) + "\n"
}

// renderHistory renders the recent searches panel
func (m Model) renderHistory() string {
	var sb strings.Builder
	sb.WriteString(m.styles.InputLabel.Render("Recent Searches"))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Danger.Render("Clear All (ctrl+x)"))
	sb.WriteString("\n\n")

	if len(m.session.History) == 0 {
		sb.WriteString(m.styles.Subtitle.Render(emptyHistory))
		return m.styles.Box.Render(sb.String())
	}

	for i, entry := range m.session.History {
		line := entry.Query + "  " + m.styles.Meta.Render(formatTimestamp(entry))
		if m.focus == focusHistory && i == m.historyCursor {
			sb.WriteString(m.styles.Cursor.Render("▸") + m.styles.SelectedItem.Render(line))
		} else {
			sb.WriteString(m.styles.Item.Render(line))
		}
		sb.WriteString("\n")
	}

	return m.styles.Box.Render(strings.TrimRight(sb.String(), "\n"))
}

// renderSearchBox renders the query input
func (m Model) renderSearchBox() string {
	box := m.styles.Box
	if m.focus == focusInput {
		box = box.BorderForeground(m.styles.InputLabel.GetForeground())
	}
	return box.Render(m.input.View())
}

// renderOptions renders the source filter and sort selectors
func (m Model) renderOptions() string {
	filters := make([]string, 0, len(search.Filters))
	for _, f := range search.Filters {
		label := string(f)
		if f == search.FilterAll {
			label = "All Sources"
		}
		filters = append(filters, m.option(label, f == m.session.Filter))
	}

	orders := make([]string, 0, len(search.SortOrders))
	for _, o := range search.SortOrders {
		label := "Relevance"
		if o == search.SortDate {
			label = "Date (Newest First)"
		}
		orders = append(orders, m.option(label, o == m.session.Sort))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Meta.Render("Source "),
		strings.Join(filters, ""),
		m.styles.Meta.Render("   Sort "),
		strings.Join(orders, ""),
	)
}

func (m Model) option(label string, active bool) string {
	if active {
		return m.styles.ActiveOption.Render(label)
	}
	return m.styles.Option.Render(label)
}

// renderStatus renders the loading marker or the error banner
func (m Model) renderStatus() string {
	var lines []string
	switch {
	case m.session.Loading:
		lines = append(lines, m.spinner.View()+" Searching...")
	case m.session.HistoryLoading:
		lines = append(lines, m.spinner.View()+" Loading history...")
	}
	if m.session.Error != "" {
		lines = append(lines, m.styles.Error.Render("❌ "+m.session.Error))
	}

	return strings.Join(lines, "\n")
}

// renderResults renders the visible window of the derived view
func (m Model) renderResults() string {
	view := m.session.View()
	if len(view) == 0 {
		return "\n" + m.styles.Subtitle.Render(emptyResults)
	}

	start, end := visibleWindow(len(view), m.cursor, m.maxVisibleResults())

	var sb strings.Builder
	sb.WriteString(m.styles.StatusBar.Render(fmt.Sprintf("%d result(s)", len(view))))
	sb.WriteString("\n")
	for i := start; i < end; i++ {
		sb.WriteString(m.renderResult(view[i], m.focus == focusResults && i == m.cursor))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderResult renders one result card
func (m Model) renderResult(item search.SearchResult, selected bool) string {
	width := m.width - 6
	if width < 20 {
		width = 60
	}

	title := item.Title
	if title == "" {
		title = item.Link
	}
	lines := []string{
		truncate(title, width),
		m.styles.Meta.Render(truncate(strings.ReplaceAll(item.Description, "\n", " "), width)),
		m.styles.Meta.Render(fmt.Sprintf("%s | %s", item.Source, item.Date)),
	}

	if selected {
		return m.styles.Cursor.Render("▸") + m.styles.SelectedItem.Render(strings.Join(lines, "\n"))
	}
	return m.styles.Item.Render(strings.Join(lines, "\n"))
}

// renderDetail renders the open result
func (m Model) renderDetail() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.styles.Box.Render(m.detail.View()),
		m.styles.Help.Render("esc/enter: close • ↑/↓ scroll • ctrl+t theme"),
	)
}

// renderDetailBody renders the scrollable content of the open result
func (m Model) renderDetailBody() string {
	item := m.session.Selected
	if item == nil {
		return ""
	}

	width := m.detail.Width
	if width <= 0 {
		width = 60
	}

	parts := []string{
		m.styles.InputLabel.Render(item.Title),
		m.styles.Meta.Render(fmt.Sprintf("%s | %s", item.Source, item.Date)),
		m.styles.Link.Render(item.Link),
	}
	if item.Thumbnail != "" {
		parts = append(parts, m.styles.Meta.Render("thumbnail: "+item.Thumbnail))
	}
	parts = append(parts, "", lipgloss.NewStyle().Width(width).Render(item.Description))

	return strings.Join(parts, "\n")
}

// maxVisibleResults is how many result cards fit the window
func (m Model) maxVisibleResults() int {
	if m.height <= 0 {
		return 10
	}

	avail := m.height - reservedHeight
	if m.session.HistoryVisible {
		avail -= len(m.session.History) + 4
	}
	if avail < resultHeight {
		return 1
	}
	return avail / resultHeight
}

// visibleWindow returns the [start, end) range of n items that keeps cursor in view
func visibleWindow(n, cursor, size int) (int, int) {
	if size <= 0 || n <= size {
		return 0, n
	}

	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > n {
		start = n - size
	}
	return start, start + size
}

// formatTimestamp renders a history timestamp as local time plus a relative hint
func formatTimestamp(entry search.HistoryEntry) string {
	t, ok := entry.Time()
	if !ok {
		return entry.Timestamp
	}
	return t.Local().Format(time.DateTime) + " (" + humanize.Time(t) + ")"
}

// truncate shortens s to width runes
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

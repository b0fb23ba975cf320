package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/Aftab073/Ai-search-tool/library/search"
)

// styles for the non-interactive commands
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	itemStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// printResults writes the derived view as numbered blocks
func printResults(w io.Writer, query string, results []search.SearchResult) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%q: %d result(s)", query, len(results))))
	if len(results) == 0 {
		fmt.Fprintln(w, noDataStyle.Render("No results found. Try a different search query."))
		return
	}

	for i, r := range results {
		fmt.Fprintf(w, "%d. %s\n", i+1, itemStyle.Render(r.Title))
		if desc := strings.TrimSpace(r.Description); desc != "" {
			fmt.Fprintf(w, "   %s\n", strings.ReplaceAll(desc, "\n", " "))
		}
		fmt.Fprintf(w, "   %s\n", metaStyle.Render(fmt.Sprintf("%s | %s", r.Source, r.Date)))
		fmt.Fprintf(w, "   %s\n", urlStyle.Render(r.Link))
		if r.Thumbnail != "" {
			fmt.Fprintf(w, "   %s\n", metaStyle.Render("thumbnail: "+r.Thumbnail))
		}
		if i < len(results)-1 {
			fmt.Fprintln(w)
		}
	}
}

// printHistory writes history entries newest first as the server returned them
func printHistory(w io.Writer, entries []search.HistoryEntry) {
	fmt.Fprintln(w, titleStyle.Render("Recent Searches"))
	if len(entries) == 0 {
		fmt.Fprintln(w, noDataStyle.Render("No search history yet"))
		return
	}

	for _, e := range entries {
		when := e.Timestamp
		if t, ok := e.Time(); ok {
			when = humanize.Time(t)
		}
		fmt.Fprintf(w, "  %s  %s\n", itemStyle.Render(e.Query), metaStyle.Render(when))
	}
}

// printHealth writes the backend health document
func printHealth(w io.Writer, baseURL string, h *search.HealthStatus) {
	fmt.Fprintln(w, titleStyle.Render(baseURL))
	fmt.Fprintf(w, "status:  %s\n", itemStyle.Render(h.Status))
	if h.Service != "" {
		fmt.Fprintf(w, "service: %s\n", h.Service)
	}
	if h.Version != "" {
		fmt.Fprintf(w, "version: %s\n", h.Version)
	}
	if len(h.Endpoints) == 0 {
		return
	}

	names := make([]string, 0, len(h.Endpoints))
	for name := range h.Endpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "endpoints:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %s\n", name, metaStyle.Render(h.Endpoints[name]))
	}
}

// themeName names the palette for dark
func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

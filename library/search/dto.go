// Package search defines the records returned by the AI Search API and
// the pure projection used to display them.
package search

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Source identifies where a result came from.
type Source string

const (
	SourceGoogle  Source = "Google"
	SourceYouTube Source = "YouTube"
)

// SearchResult is a single record returned by POST /api/search/.
//
// Link is the identity of a result. Date and Thumbnail are optional,
// the backend sends "Unknown" or an empty string when it has neither.
type SearchResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Source      Source `json:"source"`
	Date        string `json:"date,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// epoch is the date assumed for results without a parsable date.
var epoch = time.Unix(0, 0).UTC()

// ParsedDate returns the result date, or the unix epoch when the date is
// missing or cannot be parsed.
func (r SearchResult) ParsedDate() time.Time {
	raw := strings.TrimSpace(r.Date)
	if raw == "" {
		return epoch
	}

	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return epoch
	}

	return t
}

// HistoryEntry is a server recorded past query returned by GET /api/history/.
type HistoryEntry struct {
	Query     string `json:"query"`
	Timestamp string `json:"timestamp"`
}

// Time parses the entry timestamp.
func (e HistoryEntry) Time() (time.Time, bool) {
	t, err := dateparse.ParseAny(strings.TrimSpace(e.Timestamp))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// HealthStatus is the document served by the backend root path.
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

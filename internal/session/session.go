// Package session is the search session state machine.
//
// State is mutated only by its methods, each one a reducer step driven by
// a user action or a finished network call. Network calls themselves are
// issued by the caller with the SearchRequest a step hands back.
package session

import (
	"strings"

	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"

	"github.com/Aftab073/Ai-search-tool/library/log"
	"github.com/Aftab073/Ai-search-tool/library/search"
)

// SearchRequest describes a search the caller must send.
type SearchRequest struct {
	// Seq orders requests, only the response of the latest one is applied.
	Seq   uint64
	Query string
}

// Option customises a State.
type Option func(*State)

// WithLogger overrides the session logger.
func WithLogger(logger logSDK.Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDarkMode seeds the theme flag, usually from theme.Controller.
func WithDarkMode(dark bool) Option {
	return func(s *State) {
		s.DarkMode = dark
	}
}

// State is everything the UI currently shows.
type State struct {
	Query    string
	Results  []search.SearchResult
	Loading  bool
	Error    string
	Filter   search.Filter
	Sort     search.SortOrder
	Selected *search.SearchResult

	History        []search.HistoryEntry
	HistoryVisible bool
	// HistoryLoading is set while the history panel waits for its first fetch.
	HistoryLoading bool

	DarkMode bool

	seq    uint64
	logger logSDK.Logger
}

// New returns an idle session with every filter off.
func New(opts ...Option) *State {
	s := &State{
		Filter: search.FilterAll,
		Sort:   search.SortRelevance,
		logger: log.Logger.Named("session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitSearch validates query and starts a search.
// It returns false when the query is blank, in which case Error is set
// and nothing must be sent.
func (s *State) SubmitSearch(query string) (SearchRequest, bool) {
	s.Query = query
	if strings.TrimSpace(query) == "" {
		s.Error = MsgEmptyQuery
		return SearchRequest{}, false
	}

	s.seq++
	s.Loading = true
	s.Error = ""

	s.logger.Debug("submit search", zap.String("query", query), zap.Uint64("seq", s.seq))
	return SearchRequest{Seq: s.seq, Query: query}, true
}

// ApplySearch stores the outcome of the request numbered seq.
// Outcomes of superseded requests are dropped and false is returned.
func (s *State) ApplySearch(seq uint64, results []search.SearchResult, err error) bool {
	if seq != s.seq {
		s.logger.Debug("drop stale search response",
			zap.Uint64("seq", seq),
			zap.Uint64("latest", s.seq))
		return false
	}

	s.Loading = false
	if err != nil {
		s.logger.Warn("search failed", zap.Error(err), zap.String("query", s.Query))
		s.Error = SearchErrorMessage(err)
		s.Results = nil
		return true
	}

	// Error was reset by SubmitSearch, anything set since then is newer
	s.Results = results
	return true
}

// View returns the filtered and sorted results.
func (s *State) View() []search.SearchResult {
	return search.DeriveView(s.Results, s.Filter, s.Sort)
}

// Select opens the detail view for item.
// Items that are not part of the current results are refused.
func (s *State) Select(item search.SearchResult) bool {
	for i := range s.Results {
		if s.Results[i].Link == item.Link {
			selected := s.Results[i]
			s.Selected = &selected
			return true
		}
	}
	return false
}

// ClearSelection closes the detail view.
func (s *State) ClearSelection() {
	s.Selected = nil
}

// SetFilter changes the source filter.
func (s *State) SetFilter(f search.Filter) {
	s.Filter = f
}

// SetSort changes the sort order.
func (s *State) SetSort(o search.SortOrder) {
	s.Sort = o
}

// CycleFilter moves to the next filter.
func (s *State) CycleFilter() search.Filter {
	s.Filter = s.Filter.Next()
	return s.Filter
}

// CycleSort moves to the next sort order.
func (s *State) CycleSort() search.SortOrder {
	s.Sort = s.Sort.Next()
	return s.Sort
}

package session

import (
	"github.com/Laisky/zap"

	"github.com/Aftab073/Ai-search-tool/library/search"
)

// ToggleHistory opens or closes the history panel.
// It returns true when the caller must fetch the history, the panel then
// opens in ApplyHistory. Closing never needs a request.
func (s *State) ToggleHistory() bool {
	if s.HistoryVisible {
		s.HistoryVisible = false
		return false
	}
	if s.HistoryLoading {
		return false
	}

	s.HistoryLoading = true
	return true
}

// ApplyHistory stores a history fetch outcome and shows the panel.
// Failures empty the list and are only logged.
func (s *State) ApplyHistory(entries []search.HistoryEntry, err error) {
	s.HistoryLoading = false
	s.HistoryVisible = true

	if err != nil {
		s.logger.Warn("fetch history", zap.Error(err))
		s.History = nil
		return
	}

	s.History = entries
}

// ApplyClearHistory stores a clear outcome and hides the panel.
// On failure the list is kept and the error is only logged.
func (s *State) ApplyClearHistory(err error) {
	s.HistoryVisible = false

	if err != nil {
		s.logger.Warn("clear history", zap.Error(err))
		return
	}

	s.History = nil
}

// ReplayEntry searches again for a past query.
func (s *State) ReplayEntry(entry search.HistoryEntry) (SearchRequest, bool) {
	s.HistoryVisible = false
	return s.SubmitSearch(entry.Query)
}

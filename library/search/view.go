package search

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Laisky/errors/v2"
)

// Filter restricts the derived view to one source.
type Filter string

const (
	FilterAll     Filter = "All"
	FilterGoogle  Filter = "Google"
	FilterYouTube Filter = "YouTube"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterGoogle, FilterYouTube}

// SortOrder decides how the derived view is ordered.
type SortOrder string

const (
	SortRelevance SortOrder = "Relevance"
	SortDate      SortOrder = "Date"
)

// SortOrders lists every sort order in display order.
var SortOrders = []SortOrder{SortRelevance, SortDate}

// ParseFilter accepts a filter name, case insensitive.
func ParseFilter(name string) (Filter, error) {
	for _, f := range Filters {
		if strings.EqualFold(string(f), strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown filter %q", name)
}

// ParseSortOrder accepts a sort order name, case insensitive.
func ParseSortOrder(name string) (SortOrder, error) {
	for _, s := range SortOrders {
		if strings.EqualFold(string(s), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return "", errors.Errorf("unknown sort order %q", name)
}

// Next returns the filter following f, wrapping around.
func (f Filter) Next() Filter {
	return next(Filters, f)
}

// Next returns the sort order following s, wrapping around.
func (s SortOrder) Next() SortOrder {
	return next(SortOrders, s)
}

func next[T comparable](all []T, cur T) T {
	idx := slices.Index(all, cur)
	return all[(idx+1)%len(all)]
}

// DeriveView filters and sorts results without touching the input slice.
//
// Filtering keeps items whose Source equals filter exactly, or everything
// for FilterAll. SortDate orders by parsed date, newest first, with
// undated items treated as the unix epoch. SortRelevance puts Google items
// before all others and orders each group by ascending title length.
// Both sorts are stable.
func DeriveView(results []SearchResult, filter Filter, order SortOrder) []SearchResult {
	view := make([]SearchResult, 0, len(results))
	for _, r := range results {
		if filter == FilterAll || filter == "" || string(r.Source) == string(filter) {
			view = append(view, r)
		}
	}

	switch order {
	case SortDate:
		dated := make([]datedResult, len(view))
		for i, r := range view {
			dated[i] = datedResult{result: r, at: r.ParsedDate()}
		}
		slices.SortStableFunc(dated, func(a, b datedResult) int {
			return b.at.Compare(a.at)
		})
		for i := range dated {
			view[i] = dated[i].result
		}
	case SortRelevance:
		slices.SortStableFunc(view, func(a, b SearchResult) int {
			ga, gb := a.Source == SourceGoogle, b.Source == SourceGoogle
			if ga != gb {
				if ga {
					return -1
				}
				return 1
			}
			return utf8.RuneCountInString(a.Title) - utf8.RuneCountInString(b.Title)
		})
	}

	return view
}

type datedResult struct {
	result SearchResult
	at     time.Time
}

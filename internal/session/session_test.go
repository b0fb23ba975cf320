package session

import (
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/Aftab073/Ai-search-tool/library/search"
	"github.com/Aftab073/Ai-search-tool/library/search/client"
)

func TestSubmitSearchRejectsBlankQuery(t *testing.T) {
	for _, q := range []string{"", " ", "\t\n  "} {
		s := New()
		s.Results = []search.SearchResult{{Title: "kept", Link: "https://kept.example"}}

		req, ok := s.SubmitSearch(q)
		require.False(t, ok)
		require.Zero(t, req)
		require.Equal(t, MsgEmptyQuery, s.Error)
		require.False(t, s.Loading)
		require.Len(t, s.Results, 1)
	}
}

func TestSubmitSearchKeepsExactQuery(t *testing.T) {
	s := New()
	s.Error = "old"

	req, ok := s.SubmitSearch("  ai trends ")
	require.True(t, ok)
	require.Equal(t, "  ai trends ", req.Query)
	require.Equal(t, uint64(1), req.Seq)
	require.True(t, s.Loading)
	require.Empty(t, s.Error)
}

func TestApplySearchSuccessScenario(t *testing.T) {
	s := New()
	req, ok := s.SubmitSearch("ai trends")
	require.True(t, ok)

	applied := s.ApplySearch(req.Seq, []search.SearchResult{
		{Title: "Trends video", Link: "https://youtube.com/watch?v=1", Source: search.SourceYouTube},
		{Title: "AI trends article", Link: "https://g.example", Source: search.SourceGoogle},
	}, nil)
	require.True(t, applied)
	require.False(t, s.Loading)
	require.Empty(t, s.Error)

	view := s.View()
	require.Len(t, view, 2)
	require.Equal(t, search.SourceGoogle, view[0].Source)
	require.Equal(t, search.SourceYouTube, view[1].Source)
}

func TestApplySearchServerReportedError(t *testing.T) {
	s := New()
	s.Results = []search.SearchResult{{Title: "old", Link: "https://old.example"}}
	req, _ := s.SubmitSearch("q")

	s.ApplySearch(req.Seq, nil, &client.APIError{Kind: client.KindServerReported, Message: "quota exceeded"})
	require.Equal(t, "quota exceeded", s.Error)
	require.Empty(t, s.Results)
	require.False(t, s.Loading)
}

func TestApplySearchDropsStaleResponses(t *testing.T) {
	s := New()
	first, _ := s.SubmitSearch("slow")
	second, _ := s.SubmitSearch("fast")

	require.True(t, s.ApplySearch(second.Seq, []search.SearchResult{{Title: "fast", Link: "https://fast.example"}}, nil))
	require.False(t, s.ApplySearch(first.Seq, []search.SearchResult{{Title: "slow", Link: "https://slow.example"}}, nil))

	require.Equal(t, "https://fast.example", s.Results[0].Link)
	require.False(t, s.Loading)
}

func TestLoadingStaysUntilLatestCompletes(t *testing.T) {
	s := New()
	first, _ := s.SubmitSearch("a")
	second, _ := s.SubmitSearch("b")

	s.ApplySearch(first.Seq, nil, nil)
	require.True(t, s.Loading)

	s.ApplySearch(second.Seq, nil, nil)
	require.False(t, s.Loading)
}

func TestSearchErrorMessage(t *testing.T) {
	require.Empty(t, SearchErrorMessage(nil))
	require.Equal(t, MsgGenericFailed, SearchErrorMessage(errors.New("boom")))

	cases := []struct {
		err  *client.APIError
		want string
	}{
		{&client.APIError{Kind: client.KindServerReported, Message: "quota exceeded"}, "quota exceeded"},
		{&client.APIError{Kind: client.KindResponse, StatusCode: 400, Message: "Query parameter is required"}, "Query parameter is required"},
		{&client.APIError{Kind: client.KindResponse, StatusCode: 502}, MsgFetchFailed},
		{&client.APIError{Kind: client.KindNoResponse, Err: errors.New("refused")}, MsgNoResponse},
		{&client.APIError{Kind: client.KindRequest, Err: errors.New("bad url")}, MsgGenericFailed},
	}
	for _, c := range cases {
		require.Equal(t, c.want, SearchErrorMessage(errors.Wrap(c.err, "search")))
	}
}

func TestSelectAndClear(t *testing.T) {
	s := New()
	s.Results = []search.SearchResult{{Title: "a", Link: "https://a.example"}}

	require.False(t, s.Select(search.SearchResult{Link: "https://missing.example"}))
	require.Nil(t, s.Selected)

	require.True(t, s.Select(search.SearchResult{Link: "https://a.example"}))
	require.Equal(t, "a", s.Selected.Title)

	s.ClearSelection()
	require.Nil(t, s.Selected)
}

func TestFilterAndSortDoNotMutateResults(t *testing.T) {
	s := New()
	s.Results = []search.SearchResult{
		{Title: "yt", Link: "1", Source: search.SourceYouTube, Date: "2024-01-01"},
		{Title: "g", Link: "2", Source: search.SourceGoogle},
	}

	require.Equal(t, search.FilterGoogle, s.CycleFilter())
	require.Len(t, s.View(), 1)
	require.Equal(t, search.SortDate, s.CycleSort())
	s.SetFilter(search.FilterAll)
	require.Equal(t, "1", s.View()[0].Link)
	require.Equal(t, "1", s.Results[0].Link)
	require.Equal(t, "2", s.Results[1].Link)
}

func TestBlankSubmitWhileLoadingKeepsMessage(t *testing.T) {
	s := New()
	req, ok := s.SubmitSearch("golang")
	require.True(t, ok)

	_, ok = s.SubmitSearch("  ")
	require.False(t, ok)
	require.True(t, s.Loading)
	require.Equal(t, MsgEmptyQuery, s.Error)

	require.True(t, s.ApplySearch(req.Seq, []search.SearchResult{{Title: "Go", Link: "https://go.dev"}}, nil))
	require.False(t, s.Loading)
	require.Len(t, s.Results, 1)
	require.Equal(t, MsgEmptyQuery, s.Error)
}

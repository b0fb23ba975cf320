package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/spf13/cobra"

	"github.com/Aftab073/Ai-search-tool/internal/session"
	"github.com/Aftab073/Ai-search-tool/library/search"
)

// searcher runs one query against the backend
type searcher interface {
	Search(ctx context.Context, query string) ([]search.SearchResult, error)
}

var searchCMD = &cobra.Command{
	Use:   "search QUERY...",
	Short: "Run one search and print the results",
	Example: `  aisearch search ai trends
  aisearch search --filter YouTube --sort date golang generics
  aisearch search --json kubernetes`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := search.ParseFilter(gconfig.Shared.GetString("filter"))
		if err != nil {
			return errors.WithStack(err)
		}
		order, err := search.ParseSortOrder(gconfig.Shared.GetString("sort"))
		if err != nil {
			return errors.WithStack(err)
		}

		api, err := newAPIClient()
		if err != nil {
			return errors.WithStack(err)
		}

		return runSearch(cmd.Context(), api, cmd.OutOrStdout(), searchOptions{
			query:  strings.Join(args, " "),
			filter: filter,
			order:  order,
			asJSON: gconfig.Shared.GetBool("json"),
		})
	},
}

type searchOptions struct {
	query  string
	filter search.Filter
	order  search.SortOrder
	asJSON bool
}

// runSearch drives a session through one submission and prints its derived view.
// Failures come back as the message the console would show.
func runSearch(ctx context.Context, api searcher, w io.Writer, opt searchOptions) error {
	s := session.New()
	s.SetFilter(opt.filter)
	s.SetSort(opt.order)

	req, ok := s.SubmitSearch(opt.query)
	if !ok {
		return errors.New(s.Error)
	}

	results, err := api.Search(ctx, req.Query)
	s.ApplySearch(req.Seq, results, err)
	if s.Error != "" {
		return errors.New(s.Error)
	}

	view := s.View()
	if opt.asJSON {
		if view == nil {
			view = []search.SearchResult{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			return errors.Wrap(err, "encode results")
		}
		return nil
	}

	printResults(w, req.Query, view)
	return nil
}

func init() {
	rootCMD.AddCommand(searchCMD)
	searchCMD.Flags().String("filter", string(search.FilterAll),
		fmt.Sprintf("source filter, one of %v", search.Filters))
	searchCMD.Flags().String("sort", string(search.SortRelevance),
		fmt.Sprintf("sort order, one of %v", search.SortOrders))
	searchCMD.Flags().Bool("json", false, "print results as JSON")
}

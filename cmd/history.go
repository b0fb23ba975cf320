package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/Laisky/errors/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/spf13/cobra"

	"github.com/Aftab073/Ai-search-tool/library/search"
)

// historyAPI reads and wipes the server side history
type historyAPI interface {
	History(ctx context.Context) ([]search.HistoryEntry, error)
	ClearHistory(ctx context.Context) error
}

var historyCMD = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the server side search history",
	Args:  gcmd.NoExtraArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return historyListCMD.RunE(cmd, args)
	},
}

var historyListCMD = &cobra.Command{
	Use:   "list",
	Short: "List recent searches",
	Args:  gcmd.NoExtraArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return errors.WithStack(err)
		}
		return listHistory(cmd.Context(), api, cmd.OutOrStdout())
	},
}

var historyClearCMD = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded search",
	Args:  gcmd.NoExtraArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return errors.WithStack(err)
		}
		return clearHistory(cmd.Context(), api, cmd.OutOrStdout())
	},
}

func listHistory(ctx context.Context, api historyAPI, w io.Writer) error {
	entries, err := api.History(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch history")
	}

	printHistory(w, entries)
	return nil
}

func clearHistory(ctx context.Context, api historyAPI, w io.Writer) error {
	if err := api.ClearHistory(ctx); err != nil {
		return errors.Wrap(err, "clear history")
	}

	fmt.Fprintln(w, "history cleared")
	return nil
}

func init() {
	rootCMD.AddCommand(historyCMD)
	historyCMD.AddCommand(historyListCMD, historyClearCMD)
}

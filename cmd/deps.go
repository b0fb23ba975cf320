package cmd

import (
	"context"
	"database/sql"

	"github.com/Laisky/errors/v2"

	"github.com/Aftab073/Ai-search-tool/internal/theme"
	"github.com/Aftab073/Ai-search-tool/library/config"
	"github.com/Aftab073/Ai-search-tool/library/db/sql/kv"
	"github.com/Aftab073/Ai-search-tool/library/search/client"
)

// newAPIClient builds the backend client from the shared settings.
func newAPIClient() (*client.Client, error) {
	cli, err := client.New(config.APIBaseURL(), client.WithTimeout(config.Timeout()))
	if err != nil {
		return nil, errors.Wrap(err, "new api client")
	}
	return cli, nil
}

// openThemeController opens the preference database and rehydrates the theme.
// The returned db must be closed by the caller.
func openThemeController(ctx context.Context) (*theme.Controller, *sql.DB, error) {
	path, err := config.StateDBPath()
	if err != nil {
		return nil, nil, errors.Wrap(err, "resolve state db path")
	}

	db, err := kv.OpenSQLite(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open state db")
	}

	table, err := kv.NewKv(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, errors.Wrap(err, "new kv")
	}

	store, err := theme.NewKVStore(table)
	if err != nil {
		_ = db.Close()
		return nil, nil, errors.Wrap(err, "new theme store")
	}

	return theme.NewController(ctx, store), db, nil
}

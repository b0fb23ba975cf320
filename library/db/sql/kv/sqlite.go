package kv

import (
	"database/sql"
	"os"
	"path/filepath"

	errors "github.com/Laisky/errors/v2"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

// OpenSQLite opens the sqlite file at path, creating its parent directory.
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrapf(err, "create dir for %q", path)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %q", path)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "ping sqlite %q", path)
	}

	return db, nil
}

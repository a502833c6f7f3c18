package shared

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// NewDatabase opens the SQLite file backing the listing cache, creating it
// on first use. Pass ":memory:" for a cache that lives only as long as the
// process, which is what the tests do.
//
// The cache holds disposable state. Deleting the file costs one refetch
// per category and nothing else.
func NewDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open listing cache: %w", err)
	}

	// sql.Open is lazy. Force the first connection now so a bad path
	// surfaces here rather than inside a repository read.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach listing cache: %w", err)
	}

	// A CLI invocation and a page session can overlap on the same file.
	// With a busy timeout the later writer waits instead of erroring.
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure listing cache: %w", err)
	}

	return db, nil
}

// ConfigureDatabase applies the pool limits from the [database] section of
// the config. SQLite allows a single writer, so max_open_conns stays small.
func ConfigureDatabase(db *sql.DB, maxOpenConns, maxIdleConns int) {
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
}

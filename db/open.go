// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"ballotbox/cliparse"
)

// Supported database dialects.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

func init() {
	// modernc's driver name is not known to sqlx's bind table.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open connects to the configured database. The caller owns the returned
// handle and should Ping it before use.
func Open(cfg cliparse.Config) (*sqlx.DB, error) {
	switch cfg.DatabaseType {
	case DialectSQLite:
		return sqlx.Open("sqlite", SQLiteDSN(cfg.DatabaseURL))
	case DialectPostgres:
		return sqlx.Open("postgres", cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

// SQLiteDSN normalizes a sqlite path into a DSN with the pragmas the
// engine depends on: enforced foreign keys (cascade deletes), a busy
// timeout so concurrent writers queue instead of failing, WAL journaling,
// and immediate transactions so write transactions never deadlock on a
// shared-to-exclusive lock upgrade.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		// Caller supplied their own options; leave them alone.
		return path
	}
	if !strings.HasPrefix(path, "file:") && path != ":memory:" {
		path = "file:" + path
	}
	return path + "?_txlock=immediate" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=journal_mode(WAL)"
}

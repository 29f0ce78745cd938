// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg)

sqlite (modernc.org/sqlite, pure Go) is the default and needs no server;
postgres (lib/pq) is available for shared deployments. SQLite connections
get foreign-key enforcement, a busy timeout, WAL journaling, and immediate
write transactions via DSN pragmas.

# Schema

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - poll: title, active/closed status, creation time
  - poll_option: option text plus the cached votes_count counter
  - vote_record: one row per (poll, voter), pointing at the current choice

# Relationships

	poll 1──* poll_option
	poll 1──* vote_record
	poll_option 1──* vote_record

All foreign keys use ON DELETE CASCADE. vote_record carries the
UNIQUE (poll_id, voter_id) constraint the vote engine's branch logic
relies on under concurrency.
*/
package db

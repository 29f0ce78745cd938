// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballotbox API server.

Ballotbox is a poll/voting ledger: one vote per (poll, voter) pair,
re-votable, with per-option tallies that always match the underlying
vote records.

# Starting the Server

The server runs on sqlite out of the box:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Optional settings (env or flags, see package cliparse):

  - PORT (-p): server port (default 8000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string or sqlite file path
  - ADMIN_IDS (-admins): voter IDs allowed to manage polls

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: the vote-recording and tally engine (the core)
  - handlers: HTTP request handlers (polls, voting, results)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, admin gate, JSON helpers
  - models: request/response and domain types
  - auth: the injected admin predicate
  - db: connection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main

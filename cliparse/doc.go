// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

CLI flags take precedence over environment variables.

# Settings

  - PORT (-p): server port (default 8000)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DATABASE_URL (-d): connection string; for sqlite a file path,
    defaults to "ballotbox.db"
  - ADMIN_IDS (-admins): comma-separated voter IDs allowed to manage polls

ADMIN_IDS may be empty, in which case no caller passes the admin check.
*/
package cliparse

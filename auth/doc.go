// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin authorization predicate.

Authorization is external policy: the store performs none, and the HTTP
layer consults an injected Checker before mutating operations.

	check := auth.AllowIDs(cfg.AdminIDs)
	mux.HandleFunc("POST /polls", middleware.RequireAdmin(check, handler))
*/
package auth

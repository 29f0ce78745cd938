// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ballotbox API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, isAdmin)

# Endpoints

Health:

	GET /health

Poll management (admin, requires X-Voter-ID of a configured admin):

	POST   /polls             - Create poll with its options
	PUT    /polls/{id}/status - Toggle active/closed
	DELETE /polls/{id}        - Delete poll (cascades)

Voting (public):

	POST /polls/{id}/votes - Record or change a vote

Read projections:

	GET /polls                    - Poll list (?active=true filters)
	GET /polls/{id}               - Poll with options
	GET /polls/{id}/tally         - Per-option counts and percentages
	GET /polls/{id}/participants  - Voter audit list (admin)

# Handler Initialization

The router creates handler instances with dependency injection:

	pollHandler := handlers.NewPollHandler(st)
	votingHandler := handlers.NewVotingHandler(st)
	resultsHandler := handlers.NewResultsHandler(st)

All handlers receive the store; the admin predicate is applied as
middleware on mutating routes.
*/
package router

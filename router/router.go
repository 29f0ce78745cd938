// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"ballotbox/auth"
	"ballotbox/handlers"
	"ballotbox/middleware"
	"ballotbox/store"
)

func NewRouter(st *store.Store, isAdmin auth.Checker) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(st)
	votingHandler := handlers.NewVotingHandler(st)
	resultsHandler := handlers.NewResultsHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll management (admin operations)
	mux.HandleFunc("POST /polls", middleware.WithLogging(middleware.RequireAdmin(isAdmin, pollHandler.CreatePoll)))
	mux.HandleFunc("PUT /polls/{id}/status", middleware.WithLogging(middleware.RequireAdmin(isAdmin, pollHandler.SetStatus)))
	mux.HandleFunc("DELETE /polls/{id}", middleware.WithLogging(middleware.RequireAdmin(isAdmin, pollHandler.DeletePoll)))

	// Voting (public)
	mux.HandleFunc("POST /polls/{id}/votes", middleware.WithLogging(votingHandler.RecordVote))

	// Read projections (public, except the participant audit list)
	mux.HandleFunc("GET /polls", middleware.WithLogging(resultsHandler.ListPolls))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(resultsHandler.GetPoll))
	mux.HandleFunc("GET /polls/{id}/tally", middleware.WithLogging(resultsHandler.Tally))
	mux.HandleFunc("GET /polls/{id}/participants", middleware.WithLogging(middleware.RequireAdmin(isAdmin, resultsHandler.ListParticipants)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballotbox API v1"))
	})

	return mux
}

// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/dustin/go-humanize"

	"ballotbox/middleware"
	"ballotbox/models"
	"ballotbox/store"
)

type ResultsHandler struct {
	store *store.Store
}

func NewResultsHandler(st *store.Store) *ResultsHandler {
	return &ResultsHandler{store: st}
}

// ListPolls handles GET /polls
// ?active=true restricts the list to polls still open for voting.
func (h *ResultsHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	polls, err := h.store.ListPolls(r.Context(), activeOnly)
	if err != nil {
		storeError(w, err, "list polls")
		return
	}

	summaries := make([]models.PollSummary, 0, len(polls))
	for _, p := range polls {
		summaries = append(summaries, models.PollSummary{
			Poll:    p,
			Created: humanize.Time(p.CreatedAt),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// GetPoll handles GET /polls/:id
// Returns the poll and its options in creation order.
func (h *ResultsHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r)
	if !ok {
		return
	}

	poll, err := h.store.GetPoll(r.Context(), pollID)
	if err != nil {
		storeError(w, err, "get poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// ListParticipants handles GET /polls/:id/participants
func (h *ResultsHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r)
	if !ok {
		return
	}

	participants, err := h.store.ListParticipants(r.Context(), pollID)
	if err != nil {
		storeError(w, err, "list participants")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, participants)
}

// Tally handles GET /polls/:id/tally
func (h *ResultsHandler) Tally(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r)
	if !ok {
		return
	}

	tally, err := h.store.Tally(r.Context(), pollID)
	if err != nil {
		storeError(w, err, "tally poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tally)
}

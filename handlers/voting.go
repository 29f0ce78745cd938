// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ballotbox/middleware"
	"ballotbox/models"
	"ballotbox/store"
)

// voteRetries is how many times a conflicted RecordVote call is retried
// whole before giving up with 409.
const voteRetries = 3

type VotingHandler struct {
	store *store.Store
}

func NewVotingHandler(st *store.Store) *VotingHandler {
	return &VotingHandler{store: st}
}

// RecordVote handles POST /polls/:id/votes
func (h *VotingHandler) RecordVote(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.OptionID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id is required")
		return
	}
	if req.VoterID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_id is required")
		return
	}

	// A conflicted transaction left no partial state, so the whole call
	// is simply retried.
	var outcome models.VoteOutcome
	var err error
	for attempt := 0; attempt < voteRetries; attempt++ {
		outcome, err = h.store.RecordVote(r.Context(), pollID, req.OptionID, req.VoterID, req.VoterName)
		if !errors.Is(err, store.ErrTxConflict) {
			break
		}
		time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
	}
	if err != nil {
		storeError(w, err, "record vote")
		return
	}

	slog.Info("vote recorded",
		"poll_id", pollID,
		"option_id", req.OptionID,
		"voter_id", req.VoterID,
		"outcome", outcome,
	)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		PollID:   pollID,
		OptionID: req.OptionID,
		Outcome:  outcome,
	})
}

// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"ballotbox/middleware"
	"ballotbox/models"
	"ballotbox/store"
)

type PollHandler struct {
	store *store.Store
}

func NewPollHandler(st *store.Store) *PollHandler {
	return &PollHandler{store: st}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	pollID, err := h.store.CreatePoll(r.Context(), req.Title, req.Options)
	if err != nil {
		storeError(w, err, "create poll")
		return
	}

	slog.Info("poll created", "poll_id", pollID, "title", req.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID: pollID,
	})
}

// SetStatus handles PUT /polls/:id/status
func (h *PollHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.SetStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Active == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "active is required")
		return
	}

	if err := h.store.SetStatus(r.Context(), pollID, *req.Active); err != nil {
		storeError(w, err, "set poll status")
		return
	}

	slog.Info("poll status updated", "poll_id", pollID, "active", *req.Active)

	middleware.JSONResponse(w, http.StatusOK, models.SetStatusResponse{
		PollID: pollID,
		Active: *req.Active,
	})
}

// DeletePoll handles DELETE /polls/:id
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeletePoll(r.Context(), pollID); err != nil {
		storeError(w, err, "delete poll")
		return
	}

	slog.Info("poll deleted", "poll_id", pollID)

	middleware.JSONResponse(w, http.StatusOK, models.DeletePollResponse{
		PollID:  pollID,
		Deleted: true,
	})
}

// pathID parses the {id} path segment, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid poll id")
		return 0, false
	}
	return id, true
}

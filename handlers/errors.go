package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"ballotbox/middleware"
	"ballotbox/store"
)

// storeError translates engine errors into HTTP responses. Anything not
// in the taxonomy is a storage failure: logged and reported as 500.
func storeError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, store.ErrInvalidPoll):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrPollNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case errors.Is(err, store.ErrOptionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Option not found")
	case errors.Is(err, store.ErrTxConflict):
		middleware.ErrorResponse(w, http.StatusConflict, "Concurrent update conflict, retry")
	default:
		slog.Error(op+" failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
	}
}

// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrInvalidPoll is returned when a poll fails validation before any
	// write: empty title, or fewer than two distinct non-empty options.
	ErrInvalidPoll = errors.New("invalid poll")

	// ErrPollNotFound is returned when the referenced poll does not exist.
	ErrPollNotFound = errors.New("poll not found")

	// ErrOptionNotFound is returned when the referenced option does not
	// exist or does not belong to the given poll.
	ErrOptionNotFound = errors.New("option not found")

	// ErrTxConflict is returned when a transaction lost a race with a
	// concurrent one touching the same voter or counters. The whole call
	// can be retried.
	ErrTxConflict = errors.New("transaction conflict, retry")
)

// Store is the vote-recording and tally engine. Every public operation is
// a bounded, self-contained transaction against the injected handle; no
// locks are held across calls.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for collaborators that only read.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// retryMarkers are driver-specific signatures of transient contention:
// sqlite busy/locked states and postgres serialization or deadlock aborts.
var retryMarkers = []string{
	"SQLITE_BUSY",
	"database is locked",
	"database table is locked",
	"could not serialize access",
	"deadlock detected",
}

// voterConflictMarkers identify a violated (poll_id, voter_id) uniqueness
// constraint - two first-votes for the same voter racing. The loser's
// retry lands on the update path.
var voterConflictMarkers = []string{
	"UNIQUE constraint failed: vote_record.poll_id, vote_record.voter_id",
	"duplicate key value violates unique constraint \"vote_record_poll_id_voter_id_key\"",
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range retryMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func isVoterConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range voterConflictMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ballotbox/models"
)

// RecordVote records or changes the vote of (pollID, voterID) for the
// given option and refreshes the voter's display name. The whole
// sequence runs in a single transaction: the vote row and the affected
// option counters always move together.
//
// Outcomes:
//   - OutcomeCreated: first vote by this voter, new option incremented
//   - OutcomeUnchanged: same option as before, only the name refreshed
//   - OutcomeSwitched: previous option decremented, new one incremented
//
// Counters are adjusted with relative UPDATEs so concurrent voters on the
// same option serialize on the row instead of overwriting each other.
// Races on the same voter row surface as ErrTxConflict; callers retry the
// whole call.
func (s *Store) RecordVote(ctx context.Context, pollID, optionID, voterID int64, voterName string) (models.VoteOutcome, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		if isRetryable(err) {
			return "", ErrTxConflict
		}
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The option must exist and belong to the poll.
	var optionPollID int64
	err = tx.GetContext(ctx, &optionPollID, tx.Rebind(`
		SELECT poll_id FROM poll_option WHERE id = ?
	`), optionID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrOptionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up option: %w", err)
	}
	if optionPollID != pollID {
		return "", ErrOptionNotFound
	}

	var prev struct {
		ID       int64 `db:"id"`
		OptionID int64 `db:"option_id"`
	}
	err = tx.GetContext(ctx, &prev, tx.Rebind(`
		SELECT id, option_id FROM vote_record
		WHERE poll_id = ? AND voter_id = ?
	`), pollID, voterID)

	var outcome models.VoteOutcome
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// First vote by this voter.
		_, err = tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO vote_record (poll_id, voter_id, option_id, voter_name)
			VALUES (?, ?, ?, ?)
		`), pollID, voterID, optionID, voterName)
		if err != nil {
			if isVoterConflict(err) || isRetryable(err) {
				return "", ErrTxConflict
			}
			return "", fmt.Errorf("failed to insert vote record: %w", err)
		}

		_, err = tx.ExecContext(ctx, tx.Rebind(`
			UPDATE poll_option SET votes_count = votes_count + 1 WHERE id = ?
		`), optionID)
		if err != nil {
			return "", fmt.Errorf("failed to increment counter: %w", err)
		}
		outcome = models.OutcomeCreated

	case err != nil:
		return "", fmt.Errorf("failed to look up vote record: %w", err)

	case prev.OptionID == optionID:
		// Idempotent re-vote: refresh the name, leave counters alone.
		_, err = tx.ExecContext(ctx, tx.Rebind(`
			UPDATE vote_record SET voter_name = ? WHERE id = ?
		`), voterName, prev.ID)
		if err != nil {
			return "", fmt.Errorf("failed to update vote record: %w", err)
		}
		outcome = models.OutcomeUnchanged

	default:
		// Switch: move the vote row first, guarded against a concurrent
		// change of the same row, then adjust both counters.
		res, err := tx.ExecContext(ctx, tx.Rebind(`
			UPDATE vote_record
			SET option_id = ?, voter_name = ?
			WHERE id = ? AND option_id = ?
		`), optionID, voterName, prev.ID, prev.OptionID)
		if err != nil {
			if isRetryable(err) {
				return "", ErrTxConflict
			}
			return "", fmt.Errorf("failed to update vote record: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return "", fmt.Errorf("failed to read rows affected: %w", err)
		}
		if n == 0 {
			// Someone moved this voter's record since we read it.
			return "", ErrTxConflict
		}

		// Floor the decrement at zero: a negative counter would mean a
		// prior desync, not a fault of this request.
		_, err = tx.ExecContext(ctx, tx.Rebind(`
			UPDATE poll_option
			SET votes_count = CASE WHEN votes_count > 0 THEN votes_count - 1 ELSE 0 END
			WHERE id = ?
		`), prev.OptionID)
		if err != nil {
			return "", fmt.Errorf("failed to decrement counter: %w", err)
		}

		_, err = tx.ExecContext(ctx, tx.Rebind(`
			UPDATE poll_option SET votes_count = votes_count + 1 WHERE id = ?
		`), optionID)
		if err != nil {
			return "", fmt.Errorf("failed to increment counter: %w", err)
		}
		outcome = models.OutcomeSwitched
	}

	if err := tx.Commit(); err != nil {
		if isRetryable(err) {
			return "", ErrTxConflict
		}
		return "", fmt.Errorf("failed to commit vote: %w", err)
	}

	return outcome, nil
}

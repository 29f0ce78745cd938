// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// CreatePoll creates a poll together with its full option set in one
// transaction and returns the new poll's ID. Option texts are trimmed,
// empties dropped and exact duplicates collapsed; at least two distinct
// options must remain or the call fails with ErrInvalidPoll before any
// write. All options start at zero votes.
func (s *Store) CreatePoll(ctx context.Context, title string, options []string) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, fmt.Errorf("%w: title must not be empty", ErrInvalidPoll)
	}

	opts := normalizeOptions(options)
	if len(opts) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 distinct non-empty options, got %d", ErrInvalidPoll, len(opts))
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var pollID int64
	err = tx.QueryRowxContext(ctx, tx.Rebind(`
		INSERT INTO poll (title, status, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`), title, true, time.Now()).Scan(&pollID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert poll: %w", err)
	}

	for _, text := range opts {
		_, err = tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO poll_option (poll_id, option_text, votes_count)
			VALUES (?, ?, 0)
		`), pollID, text)
		if err != nil {
			return 0, fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit poll: %w", err)
	}

	return pollID, nil
}

// SetStatus toggles a poll between active and closed.
func (s *Store) SetStatus(ctx context.Context, pollID int64, active bool) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE poll SET status = ? WHERE id = ?
	`), active, pollID)
	if err != nil {
		return fmt.Errorf("failed to update poll status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrPollNotFound
	}
	return nil
}

// DeletePoll removes a poll with all its options and vote records.
// Deleting an already-deleted poll reports ErrPollNotFound so callers can
// tell "deleted now" from "already gone".
func (s *Store) DeletePoll(ctx context.Context, pollID int64) error {
	// Child rows go with the poll via ON DELETE CASCADE.
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		DELETE FROM poll WHERE id = ?
	`), pollID)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrPollNotFound
	}
	return nil
}

// normalizeOptions trims texts, drops empties and collapses exact
// duplicates, preserving first-occurrence order.
func normalizeOptions(options []string) []string {
	seen := make(map[string]struct{}, len(options))
	out := make([]string, 0, len(options))
	for _, text := range options {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		out = append(out, text)
	}
	return out
}

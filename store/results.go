// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ballotbox/models"
)

// ListPolls returns polls newest first (creation time, id as tiebreak).
func (s *Store) ListPolls(ctx context.Context, activeOnly bool) ([]models.Poll, error) {
	query := `
		SELECT id, title, status, created_at
		FROM poll
		ORDER BY created_at DESC, id DESC
	`
	args := []interface{}{}
	if activeOnly {
		query = `
			SELECT id, title, status, created_at
			FROM poll
			WHERE status = ?
			ORDER BY created_at DESC, id DESC
		`
		args = append(args, true)
	}

	polls := []models.Poll{}
	if err := s.db.SelectContext(ctx, &polls, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	return polls, nil
}

// GetPoll returns a poll with its options in creation order.
func (s *Store) GetPoll(ctx context.Context, pollID int64) (models.PollWithOptions, error) {
	var out models.PollWithOptions

	err := s.db.GetContext(ctx, &out.Poll, s.db.Rebind(`
		SELECT id, title, status, created_at FROM poll WHERE id = ?
	`), pollID)
	if errors.Is(err, sql.ErrNoRows) {
		return out, ErrPollNotFound
	}
	if err != nil {
		return out, fmt.Errorf("failed to query poll: %w", err)
	}

	out.Options = []models.Option{}
	err = s.db.SelectContext(ctx, &out.Options, s.db.Rebind(`
		SELECT id, poll_id, option_text, votes_count
		FROM poll_option
		WHERE poll_id = ?
		ORDER BY id
	`), pollID)
	if err != nil {
		return out, fmt.Errorf("failed to query options: %w", err)
	}

	return out, nil
}

// ListParticipants returns the poll's vote records with each voter's
// chosen option resolved, for audit and report display.
func (s *Store) ListParticipants(ctx context.Context, pollID int64) ([]models.Participant, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, s.db.Rebind(`
		SELECT EXISTS(SELECT 1 FROM poll WHERE id = ?)
	`), pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}
	if !exists {
		return nil, ErrPollNotFound
	}

	participants := []models.Participant{}
	err = s.db.SelectContext(ctx, &participants, s.db.Rebind(`
		SELECT v.id, v.poll_id, v.voter_id, v.voter_name, v.option_id, o.option_text
		FROM vote_record v
		JOIN poll_option o ON o.id = v.option_id
		WHERE v.poll_id = ?
		ORDER BY v.id
	`), pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	return participants, nil
}

// Tally builds the per-option counts and percentages for a poll plus a
// rendered summary text. The total is counted from the vote records, the
// authoritative set, so the reported total stays right even if a cached
// counter drifted.
func (s *Store) Tally(ctx context.Context, pollID int64) (models.TallySummary, error) {
	var out models.TallySummary

	var poll models.Poll
	err := s.db.GetContext(ctx, &poll, s.db.Rebind(`
		SELECT id, title, status, created_at FROM poll WHERE id = ?
	`), pollID)
	if errors.Is(err, sql.ErrNoRows) {
		return out, ErrPollNotFound
	}
	if err != nil {
		return out, fmt.Errorf("failed to query poll: %w", err)
	}

	var total int
	err = s.db.GetContext(ctx, &total, s.db.Rebind(`
		SELECT COUNT(*) FROM vote_record WHERE poll_id = ?
	`), pollID)
	if err != nil {
		return out, fmt.Errorf("failed to count votes: %w", err)
	}

	options := []models.Option{}
	err = s.db.SelectContext(ctx, &options, s.db.Rebind(`
		SELECT id, poll_id, option_text, votes_count
		FROM poll_option
		WHERE poll_id = ?
		ORDER BY id
	`), pollID)
	if err != nil {
		return out, fmt.Errorf("failed to query options: %w", err)
	}

	out.PollID = poll.ID
	out.Title = poll.Title
	out.Active = poll.Active
	out.TotalVotes = total
	out.Options = make([]models.TallyOption, 0, len(options))

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", poll.Title)
	fmt.Fprintf(&b, "Total votes: %d\n", total)

	for _, opt := range options {
		percent := 0.0
		if total > 0 {
			percent = float64(opt.VotesCount) / float64(total) * 100
		}
		out.Options = append(out.Options, models.TallyOption{
			OptionID: opt.ID,
			Text:     opt.Text,
			Votes:    opt.VotesCount,
			Percent:  percent,
		})
		fmt.Fprintf(&b, "%s: %d (%.1f%%)\n", opt.Text, opt.VotesCount, percent)
	}

	out.Summary = b.String()
	return out, nil
}

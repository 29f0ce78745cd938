package models

import "time"

// Vote outcome classifications for a recorded vote.
const (
	OutcomeCreated   VoteOutcome = "created"
	OutcomeUnchanged VoteOutcome = "unchanged"
	OutcomeSwitched  VoteOutcome = "switched"
)

// VoteOutcome classifies what a RecordVote call did: created a new vote
// record, left an identical one unchanged, or switched it to another option.
type VoteOutcome string

// Request types

type CreatePollRequest struct {
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

type SetStatusRequest struct {
	Active *bool `json:"active"`
}

type VoteRequest struct {
	OptionID  int64  `json:"option_id"`
	VoterID   int64  `json:"voter_id"`
	VoterName string `json:"voter_name"`
}

// Response types

type CreatePollResponse struct {
	PollID int64 `json:"poll_id"`
}

type SetStatusResponse struct {
	PollID int64 `json:"poll_id"`
	Active bool  `json:"active"`
}

type DeletePollResponse struct {
	PollID  int64 `json:"poll_id"`
	Deleted bool  `json:"deleted"`
}

type VoteResponse struct {
	PollID   int64       `json:"poll_id"`
	OptionID int64       `json:"option_id"`
	Outcome  VoteOutcome `json:"outcome"`
}

// Domain types

type Poll struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Active    bool      `json:"active" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PollSummary is the list projection of a poll; Created is a humanized
// relative time for display ("3 days ago").
type PollSummary struct {
	Poll
	Created string `json:"created"`
}

type Option struct {
	ID         int64  `json:"id" db:"id"`
	PollID     int64  `json:"poll_id" db:"poll_id"`
	Text       string `json:"text" db:"option_text"`
	VotesCount int    `json:"votes_count" db:"votes_count"`
}

type PollWithOptions struct {
	Poll    Poll     `json:"poll"`
	Options []Option `json:"options"`
}

// Participant is a vote record with its chosen option resolved, for
// audit and report display.
type Participant struct {
	ID         int64  `json:"id" db:"id"`
	PollID     int64  `json:"poll_id" db:"poll_id"`
	VoterID    int64  `json:"voter_id" db:"voter_id"`
	VoterName  string `json:"voter_name" db:"voter_name"`
	OptionID   int64  `json:"option_id" db:"option_id"`
	OptionText string `json:"option_text" db:"option_text"`
}

// Tally types

type TallyOption struct {
	OptionID int64   `json:"option_id"`
	Text     string  `json:"text"`
	Votes    int     `json:"votes"`
	Percent  float64 `json:"percent"`
}

// TallySummary carries the per-option counts for a poll plus a rendered
// plain-text summary. TotalVotes is counted from the vote records
// themselves, not from the cached option counters.
type TallySummary struct {
	PollID     int64         `json:"poll_id"`
	Title      string        `json:"title"`
	Active     bool          `json:"active"`
	TotalVotes int           `json:"total_votes"`
	Summary    string        `json:"summary"`
	Options    []TallyOption `json:"options"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the vote-recording and tally engine.

Every poll option carries a cached votes_count that must always equal the
number of vote records pointing at it. The package protects that
invariant by doing every counter adjustment in the same transaction as
the vote-row write, using relative UPDATEs (votes_count = votes_count + 1)
that serialize at the storage layer.

# Operations

Lifecycle:

	pollID, err := st.CreatePoll(ctx, "Lunch?", []string{"Pizza", "Sushi"})
	err = st.SetStatus(ctx, pollID, false)
	err = st.DeletePoll(ctx, pollID) // cascades to options and votes

Voting:

	outcome, err := st.RecordVote(ctx, pollID, optionID, voterID, "Alice")

RecordVote is idempotent for repeated identical calls and safe under
concurrent voters: first-vote races on one voter resolve through the
UNIQUE (poll_id, voter_id) constraint, vote switches through a guarded
update of the vote row. Both surface as ErrTxConflict, which means the
whole call can simply be retried.

Read projections (committed state only):

	st.ListPolls(ctx, activeOnly)
	st.GetPoll(ctx, pollID)
	st.ListParticipants(ctx, pollID)
	st.Tally(ctx, pollID)

# Errors

Operations return sentinel errors callers can errors.Is against:
ErrInvalidPoll, ErrPollNotFound, ErrOptionNotFound, ErrTxConflict.
Anything else wraps the underlying storage failure; in every case the
transaction has been rolled back and no partial state is visible.
*/
package store

// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ballotbox/store"
	"ballotbox/testutil"
)

// voteWithRetry mirrors what callers do with ErrTxConflict: back off
// briefly and resubmit.
func voteWithRetry(t *testing.T, st *store.Store, pollID, optionID, voterID int64, name string) {
	t.Helper()

	var err error
	for attempt := 0; attempt < 10; attempt++ {
		_, err = st.RecordVote(context.Background(), pollID, optionID, voterID, name)
		if err == nil || !errors.Is(err, store.ErrTxConflict) {
			break
		}
		time.Sleep(time.Duration(attempt+1) * 5 * time.Millisecond)
	}
	if err != nil {
		t.Errorf("Voter %d failed after retries: %v", voterID, err)
	}
}

func TestConcurrentVoters(t *testing.T) {
	st, conn := testutil.NewTestStore(t)
	defer conn.Close()

	pollID, optionIDs := testutil.CreateTestPoll(t, st, "Busy?", "A", "B", "C")

	const voters = 20
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(voterID int64) {
			defer wg.Done()
			voteWithRetry(t, st, pollID, optionIDs[voterID%3], voterID, "voter")
		}(int64(i + 1))
	}
	wg.Wait()

	tally, err := st.Tally(context.Background(), pollID)
	if err != nil {
		t.Fatalf("Tally failed: %v", err)
	}
	if tally.TotalVotes != voters {
		t.Errorf("Expected %d total votes, got %d", voters, tally.TotalVotes)
	}
	testutil.AssertCountersConsistent(t, conn, pollID)
}

func TestConcurrentRevotes(t *testing.T) {
	st, conn := testutil.NewTestStore(t)
	defer conn.Close()

	pollID, optionIDs := testutil.CreateTestPoll(t, st, "Flaky?", "A", "B")

	// One voter hammering both options from many goroutines must end
	// with exactly one record and counters matching it.
	const attempts = 16
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			voteWithRetry(t, st, pollID, optionIDs[n%2], 1, "Alice")
		}(i)
	}
	wg.Wait()

	var records int
	if err := conn.Get(&records, conn.Rebind("SELECT COUNT(*) FROM vote_record WHERE poll_id = ?"), pollID); err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	if records != 1 {
		t.Errorf("Expected exactly 1 record, got %d", records)
	}

	tally, err := st.Tally(context.Background(), pollID)
	if err != nil {
		t.Fatalf("Tally failed: %v", err)
	}
	if tally.TotalVotes != 1 {
		t.Errorf("Expected 1 total vote, got %d", tally.TotalVotes)
	}
	testutil.AssertCountersConsistent(t, conn, pollID)
}

// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"ballotbox/cliparse"
	"ballotbox/db"
	"ballotbox/store"
)

// TestAdminID is the voter ID configured as admin in test setups.
const TestAdminID int64 = 42

// SetupTestDB creates a fresh sqlite database in a per-test temp dir
// with the full schema. Callers own the handle and should defer Close.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	cfg := cliparse.Config{
		DatabaseType: db.DialectSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "ballotbox_test.db"),
	}

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewTestStore returns a store over a fresh test database along with the
// raw handle for direct state inspection.
func NewTestStore(t *testing.T) (*store.Store, *sqlx.DB) {
	t.Helper()
	conn := SetupTestDB(t)
	return store.New(conn), conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseType: db.DialectSQLite,
		DatabaseURL:  ":memory:",
		AdminIDs:     []int64{TestAdminID},
	}
}

// CreateTestPoll creates a poll through the engine and returns its ID
// together with the option IDs in creation order.
func CreateTestPoll(t *testing.T, st *store.Store, title string, options ...string) (pollID int64, optionIDs []int64) {
	t.Helper()

	pollID, err := st.CreatePoll(context.Background(), title, options)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	poll, err := st.GetPoll(context.Background(), pollID)
	if err != nil {
		t.Fatalf("Failed to read back test poll: %v", err)
	}
	for _, opt := range poll.Options {
		optionIDs = append(optionIDs, opt.ID)
	}

	return pollID, optionIDs
}

// RecordTestVote records a vote and fails the test on any error.
func RecordTestVote(t *testing.T, st *store.Store, pollID, optionID, voterID int64, voterName string) {
	t.Helper()

	if _, err := st.RecordVote(context.Background(), pollID, optionID, voterID, voterName); err != nil {
		t.Fatalf("Failed to record test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertCountersConsistent recounts every option's vote records and
// compares against the cached counter.
func AssertCountersConsistent(t *testing.T, conn *sqlx.DB, pollID int64) {
	t.Helper()

	type optionRow struct {
		ID         int64 `db:"id"`
		VotesCount int   `db:"votes_count"`
	}
	var options []optionRow
	err := conn.Select(&options, conn.Rebind(`
		SELECT id, votes_count FROM poll_option WHERE poll_id = ?
	`), pollID)
	if err != nil {
		t.Fatalf("Failed to query options: %v", err)
	}

	for _, opt := range options {
		var actual int
		err := conn.Get(&actual, conn.Rebind(`
			SELECT COUNT(*) FROM vote_record WHERE option_id = ?
		`), opt.ID)
		if err != nil {
			t.Fatalf("Failed to count vote records: %v", err)
		}
		if actual != opt.VotesCount {
			t.Errorf("Option %d: cached counter %d, actual records %d", opt.ID, opt.VotesCount, actual)
		}
	}
}

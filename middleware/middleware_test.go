// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ballotbox/auth"
	"ballotbox/models"
)

func TestRequireAdmin(t *testing.T) {
	check := auth.AllowIDs([]int64{42})
	var called bool
	handler := RequireAdmin(check, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectCalled   bool
	}{
		{"missing header", "", http.StatusUnauthorized, false},
		{"malformed header", "not-a-number", http.StatusUnauthorized, false},
		{"non-admin", "7", http.StatusForbidden, false},
		{"admin", "42", http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			req := httptest.NewRequest("POST", "/polls", nil)
			if tt.header != "" {
				req.Header.Set(VoterIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			handler(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if called != tt.expectCalled {
				t.Errorf("Expected called=%v, got %v", tt.expectCalled, called)
			}
		})
	}
}

func TestRequireAdminEmptyAllowList(t *testing.T) {
	handler := RequireAdmin(auth.AllowIDs(nil), func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run with an empty allow list")
	})

	req := httptest.NewRequest("POST", "/polls", nil)
	req.Header.Set(VoterIDHeader, "42")
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}
}

func TestWithLoggingSetsRequestID(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/polls", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Header().Get("X-Request-Id") == "" {
		t.Error("Expected X-Request-Id header to be set")
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]int{"poll_id": 3})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), `"poll_id":3`) {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusNotFound, "Poll not found")

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse error body: %v", err)
	}
	if resp.Error != "Not Found" || resp.Message != "Poll not found" {
		t.Errorf("Unexpected error response: %+v", resp)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/polls", bytes.NewBufferString(`{"title":"Q","options":["A","B"]}`))
	var body models.CreatePollRequest
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}
	if body.Title != "Q" || len(body.Options) != 2 {
		t.Errorf("Unexpected parse result: %+v", body)
	}

	req = httptest.NewRequest("POST", "/polls", bytes.NewBufferString(`{broken`))
	if err := ParseJSONBody(req, &body); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

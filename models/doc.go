// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, options
  - SetStatusRequest: active
  - VoteRequest: option_id, voter_id, voter_name

# Response Types

Types for JSON responses:

  - CreatePollResponse: poll_id
  - SetStatusResponse: poll_id, active
  - DeletePollResponse: poll_id, deleted
  - VoteResponse: poll_id, option_id, outcome
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: poll metadata and active/closed status
  - Option: voting option with its cached vote counter
  - Participant: one voter's record with the chosen option resolved
  - TallyOption, TallySummary: per-option counts and percentages

# Constants

Vote outcomes:

	OutcomeCreated   = "created"
	OutcomeUnchanged = "unchanged"
	OutcomeSwitched  = "switched"
*/
package models

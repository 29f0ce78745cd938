// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

Handlers are thin glue over the store engine: parse and validate the
request, call one store operation, translate its error into a status
code. They hold no state beyond the injected store.

  - PollHandler: create poll, set status, delete poll (admin-gated by the
    router)
  - VotingHandler: record or change a vote; conflicted transactions are
    retried whole before reporting 409
  - ResultsHandler: poll list, poll with options, participants, tally

Error translation lives in storeError: ErrInvalidPoll 400,
ErrPollNotFound/ErrOptionNotFound 404, ErrTxConflict 409, anything
else 500.
*/
package handlers

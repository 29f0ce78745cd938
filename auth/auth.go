// Copyright (c) 2026 Ballotbox Contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

// Checker reports whether a voter identity may perform admin operations.
// The poll engine itself never consults it; presentation layers gate
// mutating routes with it before calling in.
type Checker func(voterID int64) bool

// AllowIDs builds a Checker from a fixed set of admin voter IDs.
// An empty set denies everyone.
func AllowIDs(ids []int64) Checker {
	allowed := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}
	return func(voterID int64) bool {
		_, ok := allowed[voterID]
		return ok
	}
}

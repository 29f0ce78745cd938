package auth

import "testing"

func TestAllowIDs(t *testing.T) {
	check := AllowIDs([]int64{42, 99})

	if !check(42) {
		t.Error("expected 42 to be allowed")
	}
	if !check(99) {
		t.Error("expected 99 to be allowed")
	}
	if check(7) {
		t.Error("expected 7 to be denied")
	}
}

func TestAllowIDs_EmptyDeniesEveryone(t *testing.T) {
	check := AllowIDs(nil)

	if check(0) || check(1) || check(-5) {
		t.Error("empty admin set should deny everyone")
	}
}

package auth

import (
	"testing"
	"time"
)

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleJobGiver, RoleHustler, RoleAdmin} {
		if !r.Valid() {
			t.Fatalf("expected %q to be valid", r)
		}
	}
	if Role("guest").Valid() {
		t.Fatalf("did not expect guest to be valid")
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := Session{UserID: "u", Role: RoleHustler, ExpiresAt: now}
	if !s.Expired(now) {
		t.Fatalf("session expiring now should be expired")
	}
	if s.Expired(now.Add(-time.Second)) {
		t.Fatalf("session should still be valid a second earlier")
	}
	if got := s.Actor(); got.ID != "u" || got.Role != RoleHustler {
		t.Fatalf("unexpected actor: %+v", got)
	}
}

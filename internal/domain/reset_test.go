package domain

import "testing"

func TestResetStateTransitions(t *testing.T) {
	s := NoCodePending()
	if s.Pending() {
		t.Fatalf("fresh state should have no code pending")
	}
	if _, ok := s.Code(); ok {
		t.Fatalf("no code should be readable when nothing is pending")
	}
	if s.Matches("1234") {
		t.Fatalf("nothing pending must never match")
	}

	s = CodePending(1234)
	if !s.Pending() {
		t.Fatalf("expected a pending code")
	}
	if code, ok := s.Code(); !ok || code != 1234 {
		t.Fatalf("expected code 1234, got %d (ok=%v)", code, ok)
	}
}

func TestResetStateMatchesNormalizes(t *testing.T) {
	s := CodePending(1234)

	if !s.Matches("1234") {
		t.Fatalf("exact string form should match")
	}
	if s.Matches("01234") {
		t.Fatalf("leading zeros change the value; must not match")
	}
	if s.Matches("4321") {
		t.Fatalf("wrong code must not match")
	}
	if s.Matches("") {
		t.Fatalf("empty submission must not match")
	}
}

func TestUserResetStateProjection(t *testing.T) {
	u := &User{}
	if u.ResetState().Pending() {
		t.Fatalf("nil column should project to NoCodePending")
	}

	code := 4321
	u.VerificationCode = &code
	state := u.ResetState()
	if got, ok := state.Code(); !ok || got != 4321 {
		t.Fatalf("expected pending 4321, got %d (ok=%v)", got, ok)
	}
}

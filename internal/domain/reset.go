package domain

import "strconv"

// Reset codes are four decimal digits, inclusive on both ends.
const (
	ResetCodeMin = 1000
	ResetCodeMax = 9999
)

// ResetState is the tagged per-user state of the reset protocol: either no
// code is pending, or exactly one code is. Modeling it explicitly makes the
// "verify with nothing pending" case a real branch instead of a comparison
// against an absent value.
type ResetState struct {
	pending bool
	code    int
}

func NoCodePending() ResetState { return ResetState{} }

func CodePending(code int) ResetState { return ResetState{pending: true, code: code} }

func (s ResetState) Pending() bool { return s.pending }

// Code returns the pending code; the second value is false in NoCodePending.
func (s ResetState) Code() (int, bool) { return s.code, s.pending }

// Matches compares a submitted value against the pending code using
// string-normalized equality, so a client sending the code as a JSON number
// or as a string gets the same answer. Always false when nothing is pending.
func (s ResetState) Matches(submitted string) bool {
	if !s.pending {
		return false
	}
	return strconv.Itoa(s.code) == submitted
}

package service

import (
	"context"

	"passwordreset/internal/domain"
)

// ResetService is the verification-code protocol: issue a code, verify a
// submission against it.
type ResetService interface {
	// IssueCode generates a fresh code for the user, persists it (overwriting
	// any pending one), and dispatches it by mail. A dispatch failure after
	// the code is persisted surfaces as domain.ErrCodeUndelivered; the code
	// stays valid.
	IssueCode(ctx context.Context, email string) error

	// VerifyCode compares the submission against the pending code. On match
	// the code is cleared and the full user record is returned as stored.
	VerifyCode(ctx context.Context, email, submitted string) (*domain.User, error)
}

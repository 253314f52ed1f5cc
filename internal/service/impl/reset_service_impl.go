package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"passwordreset/internal/domain"
	"passwordreset/internal/observability/metrics"
	"passwordreset/internal/observability/middleware"
	"passwordreset/internal/service"
	"passwordreset/internal/store"
)

// ResetServiceImpl runs the verification-code protocol over the single
// per-user state field: NoCodePending -> CodePending on issue, back to
// NoCodePending on the first successful verification. Failed guesses do not
// transition; reissuing overwrites the pending code silently (last writer
// wins, also under concurrent issues).
type ResetServiceImpl struct {
	Users  userStore
	Mailer service.MailService
}

func NewResetServiceImpl(st *store.Store, mailer service.MailService) *ResetServiceImpl {
	return &ResetServiceImpl{Users: st.Users(), Mailer: mailer}
}

func (s *ResetServiceImpl) IssueCode(ctx context.Context, email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	result := "success"
	defer func() {
		metrics.ResetCodesIssuedTotal.WithLabelValues(result).Inc()
	}()

	if _, err := s.Users.GetByEmail(ctx, email); err != nil {
		result = "failure"
		if err == store.ErrRecordNotFound {
			return domain.ErrUserNotFound
		}
		return err
	}

	code, err := generateCode()
	if err != nil {
		result = "failure"
		return err
	}

	if err := s.Users.SetVerificationCode(ctx, email, code); err != nil {
		result = "failure"
		return err
	}

	// Past this point the code is persisted. A mail failure is reported
	// distinctly so the caller knows a valid-but-undelivered code exists,
	// instead of rolling it back or pretending nothing was issued.
	if err := s.Mailer.SendVerificationCode(ctx, email, code); err != nil {
		result = "undelivered"
		return fmt.Errorf("%w: %v", domain.ErrCodeUndelivered, err)
	}

	slog.Info("verification code issued",
		"email", email,
		"request_id", middleware.RequestIDFromContext(ctx),
		"trace_id", middleware.TraceIDFromContext(ctx),
	)
	return nil
}

func (s *ResetServiceImpl) VerifyCode(ctx context.Context, email, submitted string) (*domain.User, error) {
	if email == "" || submitted == "" {
		return nil, ErrEmptyFields
	}

	result := "success"
	defer func() {
		metrics.ResetVerificationsTotal.WithLabelValues(result).Inc()
	}()

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		result = "failure"
		if err == store.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	state := user.ResetState()
	if !state.Pending() {
		// Nothing was ever issued (or it was already consumed); a distinct
		// branch rather than a comparison against an absent value.
		result = "no_code_pending"
		return nil, domain.ErrNoCodePending
	}
	if !state.Matches(submitted) {
		// The pending code stays untouched and usable for a retry.
		result = "mismatch"
		return nil, domain.ErrCodeMismatch
	}

	// Cleared exactly once, on the first successful comparison.
	if err := s.Users.ClearVerificationCode(ctx, email); err != nil {
		result = "failure"
		return nil, err
	}

	slog.Info("verification code consumed",
		"email", email,
		"request_id", middleware.RequestIDFromContext(ctx),
		"trace_id", middleware.TraceIDFromContext(ctx),
	)
	return user, nil
}

// generateCode draws a uniform integer in [ResetCodeMin, ResetCodeMax].
func generateCode() (int, error) {
	span := big.NewInt(int64(domain.ResetCodeMax - domain.ResetCodeMin + 1))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, err
	}
	return domain.ResetCodeMin + int(n.Int64()), nil
}

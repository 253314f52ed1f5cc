package impl

import (
	"context"
	"time"

	"passwordreset/internal/domain"
	"passwordreset/internal/dto"
	"passwordreset/internal/service"
	"passwordreset/internal/store"

	"github.com/google/uuid"
)

// userStore is the slice of the store the services need; the gorm-backed
// *store.UserStore satisfies it, tests substitute an in-memory one.
type userStore interface {
	Create(ctx context.Context, usr *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetVerificationCode(ctx context.Context, email string, code int) error
	ClearVerificationCode(ctx context.Context, email string) error
	SetPasswordHash(ctx context.Context, email string, hash string) error
}

type AuthServiceImpl struct {
	Users           userStore
	PasswordService service.PasswordService
	TService        service.TokenService
}

func NewAuthServiceImpl(st *store.Store, passwordService service.PasswordService, tokenService service.TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{
		Users:           st.Users(),
		PasswordService: passwordService,
		TService:        tokenService,
	}
}

// Register creates the record with the hash set and no code pending. There is
// deliberately no duplicate-email check; the observed design accepts that gap.
func (a *AuthServiceImpl) Register(ctx context.Context, r dto.RegisterRequest) error {
	if r.Username == "" || r.Email == "" || r.Password1 == "" || r.Password2 == "" {
		return ErrEmptyFields
	}
	if r.Password1 != r.Password2 {
		return domain.ErrPasswordMismatch
	}

	hash, err := a.PasswordService.Hash(r.Password1)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return a.Users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        r.Email,
		Username:     r.Username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Login distinguishes unknown email from bad password on purpose; the
// transport keeps the observed behavior of answering both with 200 bodies.
func (a *AuthServiceImpl) Login(ctx context.Context, r dto.LoginRequest) (*dto.LoginResponse, error) {
	if r.Email == "" || r.Password == "" {
		return nil, ErrEmptyFields
	}

	user, err := a.Users.GetByEmail(ctx, r.Email)
	if err != nil {
		if err == store.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if !a.PasswordService.Verify(r.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidPassword
	}

	token, err := a.TService.Issue(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Successfully Logged in",
		Token:   token,
		Name:    user.Username,
	}, nil
}

// ChangePassword rehashes and replaces the stored credential, independent of
// any pending verification code. An unknown email updates nothing and still
// succeeds, as the original did.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, email string, r dto.ChangePasswordRequest) error {
	if email == "" || r.Password1 == "" || r.Password2 == "" {
		return ErrEmptyFields
	}
	if r.Password1 != r.Password2 {
		return domain.ErrPasswordMismatch
	}

	hash, err := a.PasswordService.Hash(r.Password1)
	if err != nil {
		return err
	}
	return a.Users.SetPasswordHash(ctx, email, hash)
}

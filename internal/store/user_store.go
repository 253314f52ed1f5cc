package store

import (
	"context"

	"passwordreset/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserStore struct{ db *gorm.DB }

func (s *Store) Users() *UserStore { return &UserStore{db: s.DB} }

func (u *UserStore) Create(ctx context.Context, usr *domain.User) error {
	if usr.ID == uuid.Nil {
		usr.ID = uuid.New()
	}
	return u.db.WithContext(ctx).Create(usr).Error
}

// GetByEmail returns the first record for the email. Duplicate accounts are
// possible (no uniqueness constraint, accepted gap); insertion order decides
// which one answers, matching the original store's findOne.
func (u *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := u.db.WithContext(ctx).Order("created_at").First(&user, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SetVerificationCode overwrites any pending code; reissuing silently
// invalidates the previous one.
func (u *UserStore) SetVerificationCode(ctx context.Context, email string, code int) error {
	return u.db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ?", email).
		Update("verification_code", code).Error
}

func (u *UserStore) ClearVerificationCode(ctx context.Context, email string) error {
	return u.db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ?", email).
		Update("verification_code", nil).Error
}

// SetPasswordHash replaces the stored hash. An unknown email updates zero
// rows and is not an error, mirroring the original's updateOne.
func (u *UserStore) SetPasswordHash(ctx context.Context, email string, hash string) error {
	return u.db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ?", email).
		Update("password_hash", hash).Error
}

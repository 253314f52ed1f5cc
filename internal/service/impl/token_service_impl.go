package impl

import (
	"errors"
	"time"

	"passwordreset/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

type TokenConfig struct {
	Issuer     string
	SigningKey []byte // HS256 secret
}

// SessionClaims carries the identity asserted on login: subject is the user
// id, plus display name and email.
type SessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type TokenServiceImpl struct {
	cfg TokenConfig
}

func NewTokenServiceHS256(cfg TokenConfig) *TokenServiceImpl {
	return &TokenServiceImpl{cfg: cfg}
}

// Issue signs an HS256 token for the user. No exp claim is set: tokens never
// expire, a known gap of the observed design.
func (t *TokenServiceImpl) Issue(user *domain.User) (string, error) {
	if len(t.cfg.SigningKey) == 0 {
		return "", errors.New("signing key not configured")
	}
	claims := SessionClaims{
		Name:  user.Username,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   t.cfg.Issuer,
			Subject:  user.ID.String(),
			IssuedAt: jwt.NewNumericDate(time.Now().UTC()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.cfg.SigningKey)
}

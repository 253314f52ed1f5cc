package impl

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordServiceBcrypt hashes credentials with bcrypt. The salt is generated
// per call and embedded in the output, so two hashes of the same plaintext
// differ while both verify.
type PasswordServiceBcrypt struct {
	cost int
}

func NewPasswordServiceBcrypt(cost int) *PasswordServiceBcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordServiceBcrypt{cost: cost}
}

func (p *PasswordServiceBcrypt) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	out, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (p *PasswordServiceBcrypt) Verify(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

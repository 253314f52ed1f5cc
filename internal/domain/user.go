package domain

import "time"

// User is the single persisted record: credentials plus the in-flight
// password-reset code. Email carries no uniqueness constraint on purpose;
// duplicate registrations are an accepted gap of the observed design.
//
// The password hash and the pending code are part of the JSON shape because
// the verify endpoint returns the full record as stored.
type User struct {
	ID               UserID    `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	Email            string    `gorm:"type:text;not null;index:ix_users_email" db:"email" json:"email"`
	Username         string    `gorm:"type:text;not null" db:"username" json:"username"`
	PasswordHash     string    `gorm:"type:text;not null" db:"password_hash" json:"passwordHash"`
	VerificationCode *int      `gorm:"type:integer" db:"verification_code" json:"verificationCode,omitempty"`
	CreatedAt        time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"not null" db:"updated_at" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// ResetState projects the nullable column into the explicit two-state
// representation the reset protocol operates on.
func (u *User) ResetState() ResetState {
	if u.VerificationCode == nil {
		return NoCodePending()
	}
	return CodePending(*u.VerificationCode)
}

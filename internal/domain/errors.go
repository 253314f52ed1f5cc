package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPassword  = errors.New("password incorrect")
	ErrNoCodePending    = errors.New("no verification code pending")
	ErrCodeMismatch     = errors.New("verification code mismatch")
	ErrCodeUndelivered  = errors.New("verification code issued but not delivered")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

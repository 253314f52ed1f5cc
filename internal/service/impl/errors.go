package impl

import "errors"

var (
	ErrEmptyPassword = errors.New("empty password")
	ErrEmptyEmail    = errors.New("empty email")
	ErrEmptyFields   = errors.New("empty required field(s)")
)

package service

import (
	"context"

	"passwordreset/internal/dto"
)

type AuthService interface {
	Register(ctx context.Context, r dto.RegisterRequest) error
	Login(ctx context.Context, r dto.LoginRequest) (*dto.LoginResponse, error)
	ChangePassword(ctx context.Context, email string, r dto.ChangePasswordRequest) error
}

package service

import "context"

type MailService interface {
	SendVerificationCode(ctx context.Context, to string, code int) error
}

package service

import "passwordreset/internal/domain"

type TokenService interface {
	// Issue signs a stateless identity assertion for the user. There is no
	// verify or revoke counterpart in this service.
	Issue(user *domain.User) (string, error)
}

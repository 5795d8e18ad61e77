package usecase

import (
	"errors"

	authdomain "stayhub-backend/internal/auth/domain"
	authdto "stayhub-backend/internal/auth/dto"
)

var (
	// ErrEmailTaken maps to 409 Conflict at the delivery layer.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials deliberately covers both unknown email and
	// wrong password so login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)
	// Login returns the authenticated user together with a freshly
	// issued session token.
	Login(req *authdto.LoginRequest) (*authdomain.User, string, error)
	Profile(userID string) (*authdomain.User, error)
}

package repository

import (
	authdomain "stayhub-backend/internal/auth/domain"
)

type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
}

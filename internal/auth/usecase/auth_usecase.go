package usecase

import (
	authdomain "stayhub-backend/internal/auth/domain"
	authdto "stayhub-backend/internal/auth/dto"
	"stayhub-backend/internal/auth/repository"
	"stayhub-backend/pkg/token"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	codec    *token.Codec
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, codec *token.Codec) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		codec:    codec,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdomain.User, string, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, "", err
	}

	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	sessionToken, err := u.codec.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, sessionToken, nil
}

func (u *authUsecase) Profile(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

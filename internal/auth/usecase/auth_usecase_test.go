package usecase

import (
	"testing"
	"time"

	authdomain "stayhub-backend/internal/auth/domain"
	authdto "stayhub-backend/internal/auth/dto"
	"stayhub-backend/internal/auth/repository"
	"stayhub-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserRepository struct {
	createFn      func(user *authdomain.User) error
	findByEmailFn func(email string) (*authdomain.User, error)
	findByIDFn    func(id string) (*authdomain.User, error)

	created []*authdomain.User
}

func (m *mockUserRepository) Create(user *authdomain.User) error {
	m.created = append(m.created, user)
	if m.createFn != nil {
		return m.createFn(user)
	}
	user.ID = "generated-id"
	return nil
}

func (m *mockUserRepository) FindByEmail(email string) (*authdomain.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByID(id string) (*authdomain.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, nil
}

func newTestCodec() *token.Codec {
	return token.NewCodec("test-secret", time.Hour)
}

func TestRegister_NewUser(t *testing.T) {
	repo := &mockUserRepository{}
	uc := NewAuthUsecase(repo, newTestCodec())

	user, err := uc.Register(&authdto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	// stored value is a hash, not the plaintext
	assert.NotEqual(t, "hunter22", user.Password)
	assert.True(t, repository.CheckPasswordHash("hunter22", user.Password))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(email string) (*authdomain.User, error) {
			return &authdomain.User{ID: "existing", Email: email}, nil
		},
	}
	uc := NewAuthUsecase(repo, newTestCodec())

	user, err := uc.Register(&authdto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrEmailTaken)
	// no record is created on a rejected registration
	assert.Empty(t, repo.created)
}

func TestLogin_Success(t *testing.T) {
	hash, err := repository.HashPassword("hunter22")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(email string) (*authdomain.User, error) {
			return &authdomain.User{ID: "user-1", Email: email, Password: hash}, nil
		},
	}
	codec := newTestCodec()
	uc := NewAuthUsecase(repo, codec)

	user, sessionToken, err := uc.Login(&authdto.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	claims, err := codec.Verify(sessionToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{}
	uc := NewAuthUsecase(repo, newTestCodec())

	user, sessionToken, err := uc.Login(&authdto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})

	assert.Nil(t, user)
	assert.Empty(t, sessionToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := repository.HashPassword("hunter22")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(email string) (*authdomain.User, error) {
			return &authdomain.User{ID: "user-1", Email: email, Password: hash}, nil
		},
	}
	uc := NewAuthUsecase(repo, newTestCodec())

	_, _, errWrongPassword := uc.Login(&authdto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	_, _, errUnknownEmail := NewAuthUsecase(&mockUserRepository{}, newTestCodec()).
		Login(&authdto.LoginRequest{Email: "nobody@example.com", Password: "x"})

	// the two failure modes are indistinguishable
	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.Equal(t, errUnknownEmail, errWrongPassword)
}

func TestProfile(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(id string) (*authdomain.User, error) {
			if id == "user-1" {
				return &authdomain.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}, nil
			}
			return nil, nil
		},
	}
	uc := NewAuthUsecase(repo, newTestCodec())

	user, err := uc.Profile("user-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	missing, err := uc.Profile("other")
	assert.Nil(t, missing)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

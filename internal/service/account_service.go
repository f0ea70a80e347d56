package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/service/password"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) (int, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AccountService handles registration and login.
type AccountService struct {
	users  UserRepository
	hasher PasswordHasher
}

func NewAccountService(users UserRepository, hasher PasswordHasher) *AccountService {
	return &AccountService{users: users, hasher: hasher}
}

// Register creates a user and returns the new id. Email uniqueness is left to
// the storage constraint so concurrent registrations cannot both succeed.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (int, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return 0, fmt.Errorf("%w: username, email and password are required", ErrInvalidInput)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return 0, err
	}

	id, err := s.users.CreateUser(ctx, model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

// Login returns the user identified by email and password. Unknown email and
// wrong password both yield ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, plain string) (model.User, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.hasher.Verify("", plain)
			return model.User{}, ErrInvalidCredentials
		}
		return model.User{}, err
	}

	if !s.hasher.Verify(user.PasswordHash, plain) {
		return model.User{}, ErrInvalidCredentials
	}

	user.PasswordHash = ""
	return user, nil
}

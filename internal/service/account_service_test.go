package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/service/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	users := &mockUserRepo{}
	svc := NewAccountService(users, &stubHasher{})

	users.On("CreateUser", mock.Anything, model.User{
		Username:     "jane",
		Email:        "jane@example.com",
		PasswordHash: "hashed:pw",
	}).Return(7, nil)

	id, err := svc.Register(context.Background(), RegisterInput{Username: " jane ", Email: "jane@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, 7, id)
	users.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := &mockUserRepo{}
	svc := NewAccountService(users, &stubHasher{})

	users.On("CreateUser", mock.Anything, mock.Anything).Return(1, nil).Once()
	users.On("CreateUser", mock.Anything, mock.Anything).
		Return(0, fmt.Errorf("failed to create user: %w", repository.ErrDuplicate)).Once()

	in := RegisterInput{Username: "jane", Email: "jane@example.com", Password: "pw"}
	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_MissingFields(t *testing.T) {
	tests := []RegisterInput{
		{Email: "a@b.c", Password: "pw"},
		{Username: "a", Password: "pw"},
		{Username: "a", Email: "a@b.c"},
		{Username: "   ", Email: "a@b.c", Password: "pw"},
	}

	for _, in := range tests {
		users := &mockUserRepo{}
		svc := NewAccountService(users, &stubHasher{})

		_, err := svc.Register(context.Background(), in)

		assert.ErrorIs(t, err, ErrInvalidInput)
		users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	}
}

func TestRegister_PasswordTooLong(t *testing.T) {
	users := &mockUserRepo{}
	svc := NewAccountService(users, &stubHasher{hashErr: password.ErrTooLong})

	_, err := svc.Register(context.Background(), RegisterInput{Username: "a", Email: "a@b.c", Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_StorageError(t *testing.T) {
	users := &mockUserRepo{}
	svc := NewAccountService(users, &stubHasher{})
	users.On("CreateUser", mock.Anything, mock.Anything).Return(0, repository.ErrUnavailable)

	_, err := svc.Register(context.Background(), RegisterInput{Username: "a", Email: "a@b.c", Password: "x"})

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	users := &mockUserRepo{}
	svc := NewAccountService(users, &stubHasher{})
	users.On("GetUserByEmail", mock.Anything, "jane@example.com").
		Return(model.User{ID: 3, Username: "jane", Email: "jane@example.com", PasswordHash: "hashed:pw"}, nil)

	user, err := svc.Login(context.Background(), "jane@example.com", "pw")

	require.NoError(t, err)
	assert.Equal(t, 3, user.ID)
	assert.Equal(t, "jane", user.Username)
	assert.Empty(t, user.PasswordHash)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	users := &mockUserRepo{}
	hasher := &stubHasher{}
	svc := NewAccountService(users, hasher)

	users.On("GetUserByEmail", mock.Anything, "jane@example.com").
		Return(model.User{ID: 3, Username: "jane", PasswordHash: "hashed:pw"}, nil)
	users.On("GetUserByEmail", mock.Anything, "nobody@example.com").
		Return(model.User{}, fmt.Errorf("failed to get user: %w", repository.ErrNotFound))

	_, wrongPassword := svc.Login(context.Background(), "jane@example.com", "nope")
	_, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "pw")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword, unknownEmail)
	assert.True(t, errors.Is(unknownEmail, ErrInvalidCredentials))
	// Both paths ran a hash comparison.
	assert.Len(t, hasher.verified, 2)
}

func TestLogin_StorageError(t *testing.T) {
	users := &mockUserRepo{}
	svc := NewAccountService(users, &stubHasher{})
	users.On("GetUserByEmail", mock.Anything, mock.Anything).Return(model.User{}, repository.ErrUnavailable)

	_, err := svc.Login(context.Background(), "jane@example.com", "pw")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

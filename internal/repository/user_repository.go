package repository

import (
	"context"

	"storefront/internal/model"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts the user and returns its id. A second user with the same
// email, compared case-insensitively, fails with ErrDuplicate.
func (r *UserRepository) CreateUser(ctx context.Context, user model.User) (int, error) {
	var id int
	err := r.db.executor(ctx).QueryRow(ctx,
		"INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id",
		user.Username, user.Email, user.PasswordHash,
	).Scan(&id)
	if err != nil {
		return 0, classify("failed to create user", err)
	}
	return id, nil
}

// GetUserByEmail matches email case-insensitively and returns ErrNotFound
// when no user has it.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.db.executor(ctx).QueryRow(ctx,
		"SELECT id, username, email, password_hash FROM users WHERE lower(email) = lower($1)", email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if err != nil {
		return model.User{}, classify("failed to get user", err)
	}
	return u, nil
}

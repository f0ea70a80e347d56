package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    error
		notWant []error
	}{
		{
			name: "no rows",
			err:  pgx.ErrNoRows,
			want: ErrNotFound,
		},
		{
			name:    "unique violation",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: "users_email_lower_key"},
			want:    ErrDuplicate,
			notWant: []error{ErrUnavailable, ErrNotFound},
		},
		{
			name: "connection exception class",
			err:  &pgconn.PgError{Code: "08006"},
			want: ErrUnavailable,
		},
		{
			name: "admin shutdown",
			err:  fmt.Errorf("query: %w", &pgconn.PgError{Code: "57P01"}),
			want: ErrUnavailable,
		},
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			want: ErrUnavailable,
		},
		{
			name:    "foreign key violation",
			err:     &pgconn.PgError{Code: "23503"},
			notWant: []error{ErrUnavailable, ErrDuplicate, ErrNotFound},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("op", tt.err)

			assert.ErrorContains(t, got, "op")
			if tt.want != nil {
				assert.ErrorIs(t, got, tt.want)
			}
			for _, e := range tt.notWant {
				assert.NotErrorIs(t, got, e)
			}
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, classify("op", nil))
}

func TestClassify_KeepsCause(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	got := classify("failed to create user", pgErr)

	var target *pgconn.PgError
	assert.True(t, errors.As(got, &target))
	assert.Equal(t, "23505", target.Code)
}

func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `50\% off`, likeEscaper.Replace("50% off"))
	assert.Equal(t, `snake\_case`, likeEscaper.Replace("snake_case"))
	assert.Equal(t, `back\\slash`, likeEscaper.Replace(`back\slash`))
	assert.Equal(t, "shoes", likeEscaper.Replace("shoes"))
}

package service

import (
	"errors"

	"storefront/internal/repository"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrOrderFailed        = errors.New("order placement failed")

	// ErrUnavailable means the database could not be reached.
	ErrUnavailable = repository.ErrUnavailable
)

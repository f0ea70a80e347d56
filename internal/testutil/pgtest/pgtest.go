//go:build integration

// Package pgtest starts a throwaway Postgres for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type Instance struct {
	DB        *repository.DB
	container *postgres.PostgresContainer
}

// Start runs a Postgres container and applies the storefront schema.
func Start(ctx context.Context) (*Instance, error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("storefront"),
		postgres.WithUsername("storefront"),
		postgres.WithPassword("storefront"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	db, err := repository.Open(ctx, connStr, nil)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Instance{DB: db, container: container}, nil
}

func (i *Instance) Close(ctx context.Context) error {
	i.DB.Close()
	return i.container.Terminate(ctx)
}

// Reset empties every table so each test starts from a clean state.
func (i *Instance) Reset(t testing.TB) {
	t.Helper()
	_, err := i.DB.Pool().Exec(context.Background(),
		"TRUNCATE TABLE order_details, orders, sales, users, products, categories RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func (i *Instance) SeedCategory(t testing.TB, name string) int {
	t.Helper()
	var id int
	err := i.DB.Pool().QueryRow(context.Background(),
		"INSERT INTO categories (name) VALUES ($1) RETURNING id", name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}
	return id
}

func (i *Instance) SeedProduct(t testing.TB, p model.Product) int {
	t.Helper()
	var id int
	err := i.DB.Pool().QueryRow(context.Background(), `
		INSERT INTO products (name, description, price, image_path, stock, category_id, is_today_deal)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		p.Name, p.Description, p.Price, p.ImagePath, p.Stock, p.CategoryID, p.IsTodayDeal,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return id
}

func (i *Instance) SeedUser(t testing.TB, username, email string) int {
	t.Helper()
	var id int
	err := i.DB.Pool().QueryRow(context.Background(),
		"INSERT INTO users (username, email, password_hash) VALUES ($1, $2, 'x') RETURNING id",
		username, email).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return id
}

// Count returns the number of rows in table.
func (i *Instance) Count(t testing.TB, table string) int {
	t.Helper()
	var n int
	if err := i.DB.Pool().QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/model"
	"storefront/internal/repository"
)

type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListTodayDeals(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int) (model.Product, error)
	GetCategoryByName(ctx context.Context, name string) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListProductsByCategory(ctx context.Context, categoryID int) ([]model.Product, error)
	SearchProducts(ctx context.Context, term string) ([]model.Product, error)
}

// CatalogService serves read-only product and category queries.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *CatalogService) TodayDeals(ctx context.Context) ([]model.Product, error) {
	return s.repo.ListTodayDeals(ctx)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id int) (model.Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	return p, err
}

func (s *CatalogService) ProductsByCategory(ctx context.Context, name string) ([]model.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}

	category, err := s.repo.GetCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
		}
		return nil, err
	}

	return s.repo.ListProductsByCategory(ctx, category.ID)
}

// Search returns products whose name or description contains query. No match
// is an empty slice, not an error.
func (s *CatalogService) Search(ctx context.Context, query string) ([]model.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	return s.repo.SearchProducts(ctx, query)
}

package service

import (
	"context"

	"storefront/internal/model"

	"github.com/stretchr/testify/mock"
)

// txRecorder runs atomic blocks inline and records whether they committed.
type txRecorder struct {
	begun      int
	committed  int
	rolledBack int
}

func (t *txRecorder) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	t.begun++
	if err := fn(ctx); err != nil {
		t.rolledBack++
		return err
	}
	t.committed++
	return nil
}

type mockOrderRepo struct {
	mock.Mock
	txRecorder
}

func (m *mockOrderRepo) CreateOrder(ctx context.Context, order model.Order) (int, error) {
	args := m.Called(ctx, order)
	return args.Int(0), args.Error(1)
}

func (m *mockOrderRepo) CreateOrderLine(ctx context.Context, line model.OrderLine) error {
	return m.Called(ctx, line).Error(0)
}

type mockSaleRepo struct {
	mock.Mock
	txRecorder
}

func (m *mockSaleRepo) CreateSale(ctx context.Context, sale model.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user model.User) (int, error) {
	args := m.Called(ctx, user)
	return args.Int(0), args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return products(args.Get(0)), args.Error(1)
}

func (m *mockCatalogRepo) ListTodayDeals(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return products(args.Get(0)), args.Error(1)
}

func (m *mockCatalogRepo) GetProduct(ctx context.Context, id int) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockCatalogRepo) GetCategoryByName(ctx context.Context, name string) (model.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *mockCatalogRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]model.Category)
	return c, args.Error(1)
}

func (m *mockCatalogRepo) ListProductsByCategory(ctx context.Context, categoryID int) ([]model.Product, error) {
	args := m.Called(ctx, categoryID)
	return products(args.Get(0)), args.Error(1)
}

func (m *mockCatalogRepo) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	args := m.Called(ctx, term)
	return products(args.Get(0)), args.Error(1)
}

func products(v any) []model.Product {
	p, _ := v.([]model.Product)
	return p
}

// stubHasher prefixes passwords instead of hashing them.
type stubHasher struct {
	verified []string
	hashErr  error
}

func (h *stubHasher) Hash(plain string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + plain, nil
}

func (h *stubHasher) Verify(hash, plain string) bool {
	h.verified = append(h.verified, hash)
	return hash != "" && hash == "hashed:"+plain
}

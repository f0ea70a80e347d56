package handler_test

import (
	"context"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/stretchr/testify/mock"
)

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]model.Product)
	return p, args.Error(1)
}

func (m *mockCatalog) TodayDeals(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]model.Product)
	return p, args.Error(1)
}

func (m *mockCatalog) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]model.Category)
	return c, args.Error(1)
}

func (m *mockCatalog) GetProduct(ctx context.Context, id int) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockCatalog) ProductsByCategory(ctx context.Context, name string) ([]model.Product, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).([]model.Product)
	return p, args.Error(1)
}

func (m *mockCatalog) Search(ctx context.Context, query string) ([]model.Product, error) {
	args := m.Called(ctx, query)
	p, _ := args.Get(0).([]model.Product)
	return p, args.Error(1)
}

type mockAccounts struct{ mock.Mock }

func (m *mockAccounts) Register(ctx context.Context, in service.RegisterInput) (int, error) {
	args := m.Called(ctx, in)
	return args.Int(0), args.Error(1)
}

func (m *mockAccounts) Login(ctx context.Context, email, password string) (model.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.User), args.Error(1)
}

type mockOrders struct{ mock.Mock }

func (m *mockOrders) PlaceOrder(ctx context.Context, in service.PlaceOrderInput) (int, error) {
	args := m.Called(ctx, in)
	return args.Int(0), args.Error(1)
}

type mockSales struct{ mock.Mock }

func (m *mockSales) RecordSingle(ctx context.Context, item service.BasicItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockSales) RecordBasic(ctx context.Context, items []service.BasicItem) error {
	return m.Called(ctx, items).Error(0)
}

func (m *mockSales) RecordCart(ctx context.Context, userID int, lines []service.CartLine) error {
	return m.Called(ctx, userID, lines).Error(0)
}

type mockHealth struct{ mock.Mock }

func (m *mockHealth) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

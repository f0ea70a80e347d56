package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/model"

	"github.com/shopspring/decimal"
)

type SaleRepository interface {
	Transactor
	CreateSale(ctx context.Context, sale model.Sale) error
}

// BasicItem is an item of the name/price purchase endpoints.
type BasicItem struct {
	Name  string
	Price decimal.Decimal
}

// SaleService records purchases into the flat sales table used by the older
// checkout pages. Multi-item requests are written atomically.
type SaleService struct {
	repo SaleRepository
	now  func() time.Time
}

func NewSaleService(repo SaleRepository) *SaleService {
	return &SaleService{repo: repo, now: time.Now}
}

func (s *SaleService) RecordSingle(ctx context.Context, item BasicItem) error {
	sale, err := s.basicSale(item, s.now().UTC())
	if err != nil {
		return err
	}
	return s.repo.CreateSale(ctx, sale)
}

func (s *SaleService) RecordBasic(ctx context.Context, items []BasicItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}

	now := s.now().UTC()
	sales := make([]model.Sale, 0, len(items))
	for _, item := range items {
		sale, err := s.basicSale(item, now)
		if err != nil {
			return err
		}
		sales = append(sales, sale)
	}

	return s.recordAll(ctx, sales)
}

// RecordCart records one sale per cart line for userID. A missing quantity
// counts as one.
func (s *SaleService) RecordCart(ctx context.Context, userID int, lines []CartLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}

	now := s.now().UTC()
	sales := make([]model.Sale, 0, len(lines))
	for i, l := range lines {
		if l.Price.IsNegative() {
			return fmt.Errorf("%w: line %d: price must not be negative", ErrInvalidInput, i)
		}
		quantity := l.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		sales = append(sales, model.Sale{
			UserID:       &userID,
			ProductID:    &l.ProductID,
			Quantity:     quantity,
			Price:        l.Price.Round(2),
			PurchaseDate: now,
		})
	}

	return s.recordAll(ctx, sales)
}

func (s *SaleService) recordAll(ctx context.Context, sales []model.Sale) error {
	return s.repo.RunAtomic(ctx, func(ctx context.Context) error {
		for _, sale := range sales {
			if err := s.repo.CreateSale(ctx, sale); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SaleService) basicSale(item BasicItem, at time.Time) (model.Sale, error) {
	name := strings.TrimSpace(item.Name)
	if name == "" {
		return model.Sale{}, fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	if item.Price.IsNegative() {
		return model.Sale{}, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return model.Sale{
		ProductName:  &name,
		Quantity:     1,
		Price:        item.Price.Round(2),
		PurchaseDate: at,
	}, nil
}

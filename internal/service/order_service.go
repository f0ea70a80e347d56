package service

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/model"

	"github.com/shopspring/decimal"
)

type Transactor interface {
	RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error
}

type OrderRepository interface {
	Transactor
	CreateOrder(ctx context.Context, order model.Order) (int, error)
	CreateOrderLine(ctx context.Context, line model.OrderLine) error
}

// CartLine is one entry of a submitted cart.
type CartLine struct {
	ProductID int
	Price     decimal.Decimal
	Quantity  int
}

type PlaceOrderInput struct {
	UserID        int
	Name          string
	Address       string
	PaymentMethod string
	Lines         []CartLine
}

// OrderService persists an order header together with its lines.
type OrderService struct {
	repo    OrderRepository
	timeout time.Duration
	now     func() time.Time
}

const defaultOrderTimeout = 10 * time.Second

func NewOrderService(repo OrderRepository, timeout time.Duration) *OrderService {
	if timeout <= 0 {
		timeout = defaultOrderTimeout
	}
	return &OrderService{repo: repo, timeout: timeout, now: time.Now}
}

// PlaceOrder stores the order and all its lines in one transaction and
// returns the order id. On any storage failure nothing is persisted and the
// returned error wraps ErrOrderFailed.
//
// TODO: re-read product prices and decrement stock inside the transaction
// instead of trusting the submitted cart.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (int, error) {
	lines, err := normalizeLines(in.Lines)
	if err != nil {
		return 0, err
	}

	order := model.Order{
		UserID:        in.UserID,
		OrderDate:     s.now().UTC(),
		Amount:        orderTotal(lines),
		Status:        model.OrderStatusPending,
		Name:          in.Name,
		Address:       in.Address,
		PaymentMethod: in.PaymentMethod,
	}

	// A client disconnect must not abort the transaction halfway; the timeout
	// bounds it instead.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	var orderID int
	err = s.repo.RunAtomic(ctx, func(ctx context.Context) error {
		id, err := s.repo.CreateOrder(ctx, order)
		if err != nil {
			return err
		}

		for _, line := range lines {
			line.OrderID = id
			if err := s.repo.CreateOrderLine(ctx, line); err != nil {
				return err
			}
		}

		orderID = id
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOrderFailed, err)
	}

	return orderID, nil
}

// normalizeLines validates the cart and rounds prices to cents, the precision
// they are stored with, so the order amount equals the sum of stored lines.
func normalizeLines(in []CartLine) ([]model.OrderLine, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}

	lines := make([]model.OrderLine, 0, len(in))
	for i, l := range in {
		if l.ProductID <= 0 {
			return nil, fmt.Errorf("%w: line %d: invalid product id %d", ErrInvalidInput, i, l.ProductID)
		}
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: line %d: quantity must be greater than 0", ErrInvalidInput, i)
		}
		if l.Price.IsNegative() {
			return nil, fmt.Errorf("%w: line %d: price must not be negative", ErrInvalidInput, i)
		}
		lines = append(lines, model.OrderLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.Price.Round(2),
		})
	}
	return lines, nil
}

func orderTotal(lines []model.OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return total
}

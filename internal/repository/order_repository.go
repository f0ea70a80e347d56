package repository

import (
	"context"

	"storefront/internal/model"
)

type OrderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.RunAtomic(ctx, fn)
}

// CreateOrder inserts the order header and returns the generated id.
func (r *OrderRepository) CreateOrder(ctx context.Context, order model.Order) (int, error) {
	var id int
	err := r.db.executor(ctx).QueryRow(ctx, `
		INSERT INTO orders (user_id, order_date, amount, status, name, address, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		order.UserID, order.OrderDate, order.Amount, order.Status, order.Name, order.Address, order.PaymentMethod,
	).Scan(&id)
	if err != nil {
		return 0, classify("failed to create order", err)
	}
	return id, nil
}

// CreateOrderLine inserts one line of an order.
func (r *OrderRepository) CreateOrderLine(ctx context.Context, line model.OrderLine) error {
	_, err := r.db.executor(ctx).Exec(ctx,
		"INSERT INTO order_details (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4)",
		line.OrderID, line.ProductID, line.Quantity, line.Price,
	)
	if err != nil {
		return classify("failed to create order line", err)
	}
	return nil
}

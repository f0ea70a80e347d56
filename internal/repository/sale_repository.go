package repository

import (
	"context"

	"storefront/internal/model"
)

type SaleRepository struct {
	db *DB
}

func NewSaleRepository(db *DB) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.RunAtomic(ctx, fn)
}

func (r *SaleRepository) CreateSale(ctx context.Context, sale model.Sale) error {
	_, err := r.db.executor(ctx).Exec(ctx, `
		INSERT INTO sales (user_id, product_id, product_name, quantity, price, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		sale.UserID, sale.ProductID, sale.ProductName, sale.Quantity, sale.Price, sale.PurchaseDate,
	)
	if err != nil {
		return classify("failed to record sale", err)
	}
	return nil
}

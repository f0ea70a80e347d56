package repository

import (
	"context"
	"strings"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
)

const productColumns = "id, name, description, price, image_path, stock, category_id, is_today_deal"

type CatalogRepository struct {
	db *DB
}

func NewCatalogRepository(db *DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	return r.queryProducts(ctx, "failed to list products",
		"SELECT "+productColumns+" FROM products ORDER BY id")
}

func (r *CatalogRepository) ListTodayDeals(ctx context.Context) ([]model.Product, error) {
	return r.queryProducts(ctx, "failed to list today's deals",
		"SELECT "+productColumns+" FROM products WHERE is_today_deal ORDER BY id")
}

// GetProduct returns ErrNotFound when no product has the given id.
func (r *CatalogRepository) GetProduct(ctx context.Context, id int) (model.Product, error) {
	rows, err := r.db.executor(ctx).Query(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	if err != nil {
		return model.Product{}, classify("failed to get product", err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[model.Product])
	if err != nil {
		return model.Product{}, classify("failed to get product", err)
	}
	return p, nil
}

// GetCategoryByName matches name case-insensitively and returns ErrNotFound
// when the category does not exist.
func (r *CatalogRepository) GetCategoryByName(ctx context.Context, name string) (model.Category, error) {
	var c model.Category
	err := r.db.executor(ctx).QueryRow(ctx, "SELECT id, name FROM categories WHERE lower(name) = lower($1)", name).Scan(&c.ID, &c.Name)
	if err != nil {
		return model.Category{}, classify("failed to get category", err)
	}
	return c, nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.executor(ctx).Query(ctx, "SELECT id, name FROM categories ORDER BY name")
	if err != nil {
		return nil, classify("failed to list categories", err)
	}
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Category])
	if err != nil {
		return nil, classify("failed to list categories", err)
	}
	return categories, nil
}

func (r *CatalogRepository) ListProductsByCategory(ctx context.Context, categoryID int) ([]model.Product, error) {
	return r.queryProducts(ctx, "failed to list products by category",
		"SELECT "+productColumns+" FROM products WHERE category_id = $1 ORDER BY id", categoryID)
}

// SearchProducts matches term case-insensitively anywhere in the name or
// description. LIKE wildcards in term are matched literally.
func (r *CatalogRepository) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	return r.queryProducts(ctx, "failed to search products",
		"SELECT "+productColumns+" FROM products WHERE name ILIKE $1 OR description ILIKE $1 ORDER BY id", pattern)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *CatalogRepository) queryProducts(ctx context.Context, msg, sql string, args ...any) ([]model.Product, error) {
	rows, err := r.db.executor(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, classify(msg, err)
	}
	products, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Product])
	if err != nil {
		return nil, classify(msg, err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

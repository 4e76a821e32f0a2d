package product

import (
	"catalog/domain"
	"context"
)

// Repository returns domain.ErrNotFound for missing rows and
// domain.ErrConflict when a write hits the unique product name index.
type Repository interface {
	GetCategoryByID(ctx context.Context, id int64) (domain.Category, error)
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	GetProducts(ctx context.Context) ([]domain.ProductListItem, error)
	CountProducts(ctx context.Context) (int, error)
	GetProductByID(ctx context.Context, id int64) (domain.Product, error)
	GetProductDetailByID(ctx context.Context, id int64) (domain.ProductDetail, error)
	GetProductDetailByName(ctx context.Context, name string) (domain.ProductDetail, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, id int64) (domain.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	CountProductsByCategory(ctx context.Context, categoryID int64) (int, error)
}

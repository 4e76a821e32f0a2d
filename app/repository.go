package app

import (
	"catalog/app/category"
	"catalog/app/product"
	"context"
)

// Repository is the process-wide data-access layer shared by every handler.
type Repository interface {
	category.Repository
	product.Repository
	Ping(ctx context.Context) error
	Close() error
}

package category

import (
	"catalog/domain"
	"context"
)

// Repository returns domain.ErrNotFound for missing rows and
// domain.ErrConflict when a write hits the unique name index.
type Repository interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (domain.Category, error)
	GetCategoryByName(ctx context.Context, name string) (domain.Category, error)
	CreateCategory(ctx context.Context, name string) (domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

package postgres

import (
	"catalog/domain"
	"context"
)

func (r *PgRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, 0)
	query := `SELECT * FROM categories ORDER BY id`

	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, mapError(err)
	}

	return categories, nil
}

func (r *PgRepository) GetCategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	var c domain.Category
	query := `SELECT * FROM categories WHERE id = $1`

	err := r.db.GetContext(ctx, &c, query, id)
	return c, mapError(err)
}

func (r *PgRepository) GetCategoryByName(ctx context.Context, name string) (domain.Category, error) {
	var c domain.Category
	query := `SELECT * FROM categories WHERE name = $1`

	err := r.db.GetContext(ctx, &c, query, name)
	return c, mapError(err)
}

func (r *PgRepository) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	var c domain.Category
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING *`

	err := r.db.GetContext(ctx, &c, query, name)
	return c, mapError(err)
}

func (r *PgRepository) UpdateCategory(ctx context.Context, id int64, name string) (domain.Category, error) {
	var c domain.Category
	query := `UPDATE categories SET name = $2, updated_at = now() WHERE id = $1 RETURNING *`

	err := r.db.GetContext(ctx, &c, query, id, name)
	return c, mapError(err)
}

// DeleteCategory cascades to the category's products through the foreign key.
func (r *PgRepository) DeleteCategory(ctx context.Context, id int64) error {
	query := `DELETE FROM categories WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapError(err)
	}

	return requireAffected(res)
}

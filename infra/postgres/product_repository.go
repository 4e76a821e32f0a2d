package postgres

import (
	"catalog/domain"
	"context"
)

const productDetailQuery = `
	SELECT p.*, c.name AS "category.name"
	FROM products p
	JOIN categories c ON c.id = p.category_id`

func (r *PgRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	var p domain.Product
	query := `
		INSERT INTO products (
			name, description, price, currency,
			quantity, available, category_id
		) VALUES (
			:name, :description, :price, :currency,
			:quantity, :available, :category_id
		) RETURNING *`

	rows, err := r.db.NamedQueryContext(ctx, query, product)
	if err != nil {
		return p, mapError(err)
	}
	defer rows.Close()

	if rows.Next() {
		err = rows.StructScan(&p)
	}
	if err == nil {
		err = rows.Err()
	}
	return p, mapError(err)
}

func (r *PgRepository) GetProducts(ctx context.Context) ([]domain.ProductListItem, error) {
	products := make([]domain.ProductListItem, 0)
	query := `
		SELECT
			p.id, p.name, p.description, p.price, p.currency,
			p.quantity, p.available, p.created_at, p.updated_at,
			c.id AS "category.id", c.name AS "category.name"
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC, p.id DESC`

	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, mapError(err)
	}

	return products, nil
}

func (r *PgRepository) CountProducts(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM products`

	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, mapError(err)
	}

	return count, nil
}

func (r *PgRepository) GetProductByID(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	query := `SELECT * FROM products WHERE id = $1`

	err := r.db.GetContext(ctx, &p, query, id)
	return p, mapError(err)
}

func (r *PgRepository) GetProductDetailByID(ctx context.Context, id int64) (domain.ProductDetail, error) {
	var p domain.ProductDetail
	query := productDetailQuery + ` WHERE p.id = $1`

	err := r.db.GetContext(ctx, &p, query, id)
	return p, mapError(err)
}

func (r *PgRepository) GetProductDetailByName(ctx context.Context, name string) (domain.ProductDetail, error) {
	var p domain.ProductDetail
	query := productDetailQuery + ` WHERE p.name = $1`

	err := r.db.GetContext(ctx, &p, query, name)
	return p, mapError(err)
}

// UpdateProduct writes every column of product; callers merge a patch into
// the stored row first.
func (r *PgRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
        UPDATE products SET
            name = :name,
            description = :description,
            price = :price,
            currency = :currency,
            quantity = :quantity,
            available = :available,
            category_id = :category_id,
            updated_at = now()
        WHERE id = :id
    `

	res, err := r.db.NamedExecContext(ctx, query, product)
	if err != nil {
		return mapError(err)
	}

	return requireAffected(res)
}

func (r *PgRepository) DeleteProduct(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	query := `DELETE FROM products WHERE id = $1 RETURNING *`

	err := r.db.GetContext(ctx, &p, query, id)
	return p, mapError(err)
}

func (r *PgRepository) GetProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	query := `SELECT * FROM products WHERE category_id = $1 ORDER BY name ASC`

	if err := r.db.SelectContext(ctx, &products, query, categoryID); err != nil {
		return nil, mapError(err)
	}

	return products, nil
}

func (r *PgRepository) CountProductsByCategory(ctx context.Context, categoryID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM products WHERE category_id = $1`

	if err := r.db.GetContext(ctx, &count, query, categoryID); err != nil {
		return 0, mapError(err)
	}

	return count, nil
}

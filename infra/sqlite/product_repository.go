package sqlite

import (
	"catalog/domain"
	"context"
	"time"

	"gorm.io/gorm/clause"
)

func (r *Repository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	rec := newProductRecord(product)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&rec).Error; err != nil {
		return domain.Product{}, mapError(err)
	}
	return rec.toDomain(), nil
}

func (r *Repository) GetProducts(ctx context.Context) ([]domain.ProductListItem, error) {
	var records []productRecord
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, mapError(err)
	}

	products := make([]domain.ProductListItem, 0, len(records))
	for _, rec := range records {
		products = append(products, rec.toListItem())
	}
	return products, nil
}

func (r *Repository) CountProducts(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&productRecord{}).Count(&count).Error; err != nil {
		return 0, mapError(err)
	}
	return int(count), nil
}

func (r *Repository) GetProductByID(ctx context.Context, id int64) (domain.Product, error) {
	var rec productRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return domain.Product{}, mapError(err)
	}
	return rec.toDomain(), nil
}

func (r *Repository) GetProductDetailByID(ctx context.Context, id int64) (domain.ProductDetail, error) {
	var rec productRecord
	if err := r.db.WithContext(ctx).Preload("Category").First(&rec, id).Error; err != nil {
		return domain.ProductDetail{}, mapError(err)
	}
	return rec.toDetail(), nil
}

func (r *Repository) GetProductDetailByName(ctx context.Context, name string) (domain.ProductDetail, error) {
	var rec productRecord
	if err := r.db.WithContext(ctx).Preload("Category").Where("name = ?", name).First(&rec).Error; err != nil {
		return domain.ProductDetail{}, mapError(err)
	}
	return rec.toDetail(), nil
}

// UpdateProduct writes every mutable column, zero values included.
func (r *Repository) UpdateProduct(ctx context.Context, product domain.Product) error {
	res := r.db.WithContext(ctx).
		Model(&productRecord{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"currency":    product.Currency,
			"quantity":    product.Quantity,
			"available":   product.Available,
			"category_id": product.CategoryID,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id int64) (domain.Product, error) {
	db := r.db.WithContext(ctx)

	var rec productRecord
	if err := db.First(&rec, id).Error; err != nil {
		return domain.Product{}, mapError(err)
	}

	res := db.Delete(&productRecord{}, id)
	if res.Error != nil {
		return domain.Product{}, mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.Product{}, domain.ErrNotFound
	}
	return rec.toDomain(), nil
}

func (r *Repository) GetProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	var records []productRecord
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&records).Error
	if err != nil {
		return nil, mapError(err)
	}

	products := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, rec.toDomain())
	}
	return products, nil
}

func (r *Repository) CountProductsByCategory(ctx context.Context, categoryID int64) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&productRecord{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, mapError(err)
	}
	return int(count), nil
}

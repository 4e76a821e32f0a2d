package sqlite

import (
	"catalog/domain"
	"context"
)

func (r *Repository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, mapError(err)
	}

	categories := make([]domain.Category, 0, len(records))
	for _, rec := range records {
		categories = append(categories, rec.toDomain())
	}
	return categories, nil
}

func (r *Repository) GetCategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	var rec categoryRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return domain.Category{}, mapError(err)
	}
	return rec.toDomain(), nil
}

func (r *Repository) GetCategoryByName(ctx context.Context, name string) (domain.Category, error) {
	var rec categoryRecord
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&rec).Error; err != nil {
		return domain.Category{}, mapError(err)
	}
	return rec.toDomain(), nil
}

func (r *Repository) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	rec := categoryRecord{Name: name}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Category{}, mapError(err)
	}
	return rec.toDomain(), nil
}

func (r *Repository) UpdateCategory(ctx context.Context, id int64, name string) (domain.Category, error) {
	db := r.db.WithContext(ctx)

	var rec categoryRecord
	if err := db.First(&rec, id).Error; err != nil {
		return domain.Category{}, mapError(err)
	}

	rec.Name = name
	if err := db.Save(&rec).Error; err != nil {
		return domain.Category{}, mapError(err)
	}
	return rec.toDomain(), nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&categoryRecord{}, id)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

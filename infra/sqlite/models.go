package sqlite

import (
	"catalog/domain"
	"time"

	"github.com/shopspring/decimal"
)

type categoryRecord struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (categoryRecord) TableName() string {
	return "categories"
}

func (c categoryRecord) toDomain() domain.Category {
	return domain.Category{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// No gorm column defaults: gorm skips zero values for defaulted columns,
// which would store available=false as true.
type productRecord struct {
	ID          int64           `gorm:"primaryKey"`
	Name        string          `gorm:"not null;uniqueIndex"`
	Description *string
	Price       decimal.Decimal `gorm:"type:text;not null"`
	Currency    string          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	Available   bool            `gorm:"not null"`
	CategoryID  int64           `gorm:"not null;index"`
	Category    categoryRecord  `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
}

func (productRecord) TableName() string {
	return "products"
}

func newProductRecord(p domain.Product) productRecord {
	return productRecord{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Quantity:    p.Quantity,
		Available:   p.Available,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p productRecord) toDomain() domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Quantity:    p.Quantity,
		Available:   p.Available,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p productRecord) toListItem() domain.ProductListItem {
	return domain.ProductListItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Quantity:    p.Quantity,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Category:    domain.CategoryRef{ID: p.Category.ID, Name: p.Category.Name},
	}
}

func (p productRecord) toDetail() domain.ProductDetail {
	return domain.ProductDetail{
		Product:  p.toDomain(),
		Category: domain.CategoryName{Name: p.Category.Name},
	}
}

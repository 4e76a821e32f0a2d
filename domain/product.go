package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency  = "USD"
	DefaultQuantity  = 0
	DefaultAvailable = true
)

type Product struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description *string         `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Currency    string          `db:"currency" json:"currency"`
	Quantity    int             `db:"quantity" json:"quantity"`
	Available   bool            `db:"available" json:"available"`
	CategoryID  int64           `db:"category_id" json:"categoryId"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}

// ProductListItem is a product joined with its category. The foreign key
// itself is not part of the listing.
type ProductListItem struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description *string         `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Currency    string          `db:"currency" json:"currency"`
	Quantity    int             `db:"quantity" json:"quantity"`
	Available   bool            `db:"available" json:"available"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
	Category    CategoryRef     `db:"category" json:"category"`
}

// ProductDetail is a product together with the name of its category.
type ProductDetail struct {
	Product
	Category CategoryName `db:"category" json:"category"`
}

package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const ServiceName = "catalog"

// Exchanges
const (
	CategoryExchange = "catalog.category"
	ProductExchange  = "catalog.product"
)

// Event names
const (
	CategoryCreatedEvent = "category.created"
	CategoryUpdatedEvent = "category.updated"
	CategoryDeletedEvent = "category.deleted"
	ProductCreatedEvent  = "product.created"
	ProductUpdatedEvent  = "product.updated"
	ProductDeletedEvent  = "product.deleted"
)

// Event versions
const (
	EventVersionV1 = "v1"
)

type CategoryPayload struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryDeletedPayload struct {
	ID        int64     `json:"id"`
	DeletedAt time.Time `json:"deletedAt"`
}

// ProductPayload is shared by product.created and product.updated.
type ProductPayload struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Quantity    int             `json:"quantity"`
	Available   bool            `json:"available"`
	CategoryID  int64           `json:"categoryId"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ProductDeletedPayload struct {
	ID         int64     `json:"id"`
	CategoryID int64     `json:"categoryId"`
	DeletedAt  time.Time `json:"deletedAt"`
}

package product

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"catalog/pkg/numeric"
	"catalog/pkg/validation"
	"context"
	"errors"
	"net/http"
)

type CreateProductHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewCreateProductHandler(repository Repository, eventPublisher events.Publisher) *CreateProductHandler {
	return &CreateProductHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

// Field order is validation order.
type CreateProductRequest struct {
	Name        string         `json:"name" validate:"required"`
	Price       numeric.Number `json:"price" validate:"required,numeric,nonzero_decimal"`
	CategoryID  numeric.Number `json:"categoryId" validate:"required,number"`
	Description *string        `json:"description"`
	Currency    string         `json:"currency"`
	Quantity    numeric.Number `json:"quantity" validate:"omitempty,number"`
	Available   *bool          `json:"available"`
}

type CreateProductResponse struct {
	Message string         `json:"message"`
	Product domain.Product `json:"product"`
}

func (CreateProductResponse) StatusCode() int {
	return http.StatusCreated
}

var createProductMessages = validation.Messages{
	"Name.required":         "Product name is required",
	"Price.required":        "Product price is required",
	"Price.numeric":         "Product price must be a number",
	"Price.nonzero_decimal": "Product price is required",
	"CategoryID.required":   "Category ID is required",
	"CategoryID.number":     "Category ID must be a number",
	"Quantity.number":       "Product quantity must be a whole number",
}

func (h CreateProductHandler) Handle(ctx context.Context, req *CreateProductRequest) (*CreateProductResponse, error) {
	if err := validation.Struct(req, "product.create", createProductMessages); err != nil {
		return nil, err
	}

	price, err := req.Price.Decimal()
	if err != nil {
		return nil, httperror.BadRequest("product.create.validation_failed", "Product price must be a number", err.Error())
	}

	categoryID, err := req.CategoryID.Int64()
	if err != nil {
		return nil, httperror.BadRequest("product.create.validation_failed", "Category ID must be a number", err.Error())
	}

	if err := resolveCategory(ctx, h.repository, categoryID, "product.create"); err != nil {
		return nil, err
	}

	product := domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Currency:    domain.DefaultCurrency,
		Quantity:    domain.DefaultQuantity,
		Available:   domain.DefaultAvailable,
		CategoryID:  categoryID,
	}
	if req.Currency != "" {
		product.Currency = req.Currency
	}
	if req.Quantity != "" {
		quantity, err := req.Quantity.Int()
		if err != nil {
			return nil, httperror.BadRequest("product.create.validation_failed", "Product quantity must be a whole number", err.Error())
		}
		product.Quantity = quantity
	}
	if req.Available != nil {
		product.Available = *req.Available
	}

	created, err := h.repository.CreateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, errProductExists("product.create.exists")
		}
		return nil, httperror.InternalServerError("product.create.create_failed", "Internal server error", err)
	}

	events.Emit(ctx, h.eventPublisher, events.ProductExchange, events.ProductCreatedEvent, productPayload(created))

	return &CreateProductResponse{
		Message: "Product created successfully",
		Product: created,
	}, nil
}

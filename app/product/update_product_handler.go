package product

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"catalog/pkg/numeric"
	"catalog/pkg/optional"
	"context"
	"errors"
)

type UpdateProductHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewUpdateProductHandler(repository Repository, eventPublisher events.Publisher) *UpdateProductHandler {
	return &UpdateProductHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

// UpdateProductRequest is a patch: fields missing from the body are left
// untouched. Only description may be cleared with an explicit null.
type UpdateProductRequest struct {
	ProductID   string                         `params:"id"`
	Name        optional.Value[string]         `json:"name"`
	Description optional.Value[string]         `json:"description"`
	Price       optional.Value[numeric.Number] `json:"price"`
	Currency    optional.Value[string]         `json:"currency"`
	Quantity    optional.Value[numeric.Number] `json:"quantity"`
	Available   optional.Value[bool]           `json:"available"`
	CategoryID  optional.Value[numeric.Number] `json:"categoryId"`
}

type UpdateProductResponse struct {
	Message string               `json:"message"`
	Product domain.ProductDetail `json:"product"`
}

func (h UpdateProductHandler) Handle(ctx context.Context, req *UpdateProductRequest) (*UpdateProductResponse, error) {
	id, ok := parseID(req.ProductID)
	if !ok {
		return nil, errInvalidProductID("product.update.invalid_id")
	}

	product, err := h.repository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errProductNotFound("product.update.not_found")
		}
		return nil, httperror.InternalServerError("product.update.failed", "Internal server error", err)
	}

	if err := applyPatch(&product, req); err != nil {
		return nil, err
	}

	if req.CategoryID.Set {
		if err := resolveCategory(ctx, h.repository, product.CategoryID, "product.update"); err != nil {
			return nil, err
		}
	}

	if err := h.repository.UpdateProduct(ctx, product); err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			return nil, errProductExists("product.update.exists")
		case errors.Is(err, domain.ErrNotFound):
			return nil, errProductNotFound("product.update.not_found")
		}
		return nil, httperror.InternalServerError("product.update.update_failed", "Internal server error", err)
	}

	updated, err := h.repository.GetProductDetailByID(ctx, id)
	if err != nil {
		return nil, httperror.InternalServerError("product.update.reload_failed", "Internal server error", err)
	}

	events.Emit(ctx, h.eventPublisher, events.ProductExchange, events.ProductUpdatedEvent, productPayload(updated.Product))

	return &UpdateProductResponse{
		Message: "Product updated successfully",
		Product: updated,
	}, nil
}

func applyPatch(product *domain.Product, req *UpdateProductRequest) error {
	invalid := func(message string) error {
		return httperror.BadRequest("product.update.validation_failed", message, nil)
	}

	if req.Name.Set {
		if !req.Name.Present() || req.Name.V == "" {
			return invalid("Product name cannot be empty")
		}
		product.Name = req.Name.V
	}

	if req.Description.Set {
		if req.Description.Null {
			product.Description = nil
		} else {
			description := req.Description.V
			product.Description = &description
		}
	}

	if req.Price.Set {
		if !req.Price.Present() {
			return invalid("Product price must be a number")
		}
		price, err := req.Price.V.Decimal()
		if err != nil {
			return invalid("Product price must be a number")
		}
		product.Price = price
	}

	if req.Currency.Set {
		if !req.Currency.Present() || req.Currency.V == "" {
			return invalid("Product currency cannot be empty")
		}
		product.Currency = req.Currency.V
	}

	if req.Quantity.Set {
		if !req.Quantity.Present() {
			return invalid("Product quantity must be a whole number")
		}
		quantity, err := req.Quantity.V.Int()
		if err != nil || quantity < 0 {
			return invalid("Product quantity must be a whole number")
		}
		product.Quantity = quantity
	}

	if req.Available.Set {
		if !req.Available.Present() {
			return invalid("Product availability must be a boolean")
		}
		product.Available = req.Available.V
	}

	if req.CategoryID.Set {
		if !req.CategoryID.Present() {
			return invalid("Category ID must be a number")
		}
		categoryID, err := req.CategoryID.V.Int64()
		if err != nil {
			return invalid("Category ID must be a number")
		}
		product.CategoryID = categoryID
	}

	return nil
}

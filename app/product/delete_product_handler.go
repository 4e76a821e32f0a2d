package product

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"context"
	"errors"
	"time"
)

type DeleteProductHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewDeleteProductHandler(repository Repository, eventPublisher events.Publisher) *DeleteProductHandler {
	return &DeleteProductHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type DeleteProductRequest struct {
	ProductID string `params:"id"`
}

type DeleteProductResponse struct {
	Message string         `json:"message"`
	Product domain.Product `json:"product"`
}

func (h DeleteProductHandler) Handle(ctx context.Context, req *DeleteProductRequest) (*DeleteProductResponse, error) {
	id, ok := parseID(req.ProductID)
	if !ok {
		return nil, errInvalidProductID("product.destroy.invalid_id")
	}

	if _, err := h.repository.GetProductByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errProductNotFound("product.destroy.not_found")
		}
		return nil, httperror.InternalServerError("product.destroy.lookup_failed", "Internal server error", err)
	}

	deleted, err := h.repository.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errProductNotFound("product.destroy.not_found")
		}
		return nil, httperror.InternalServerError("product.destroy.failed", "Internal server error", err)
	}

	events.Emit(ctx, h.eventPublisher, events.ProductExchange, events.ProductDeletedEvent, events.ProductDeletedPayload{
		ID:         deleted.ID,
		CategoryID: deleted.CategoryID,
		DeletedAt:  time.Now().UTC(),
	})

	return &DeleteProductResponse{
		Message: "Product deleted successfully",
		Product: deleted,
	}, nil
}

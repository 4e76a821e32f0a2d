package category

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"context"
	"errors"
	"net/http"
	"time"
)

type DeleteCategoryHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewDeleteCategoryHandler(repository Repository, eventPublisher events.Publisher) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type DeleteCategoryRequest struct {
	CategoryID string `params:"id"`
}

type DeleteCategoryResponse struct{}

func (DeleteCategoryResponse) StatusCode() int {
	return http.StatusNoContent
}

// Handle does not check for products in the category; the store's foreign
// key policy decides what happens to them.
func (h DeleteCategoryHandler) Handle(ctx context.Context, req *DeleteCategoryRequest) (*DeleteCategoryResponse, error) {
	id, ok := parseID(req.CategoryID)
	if !ok {
		return nil, errCategoryNotFound("category.destroy.not_found")
	}

	if _, err := h.repository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errCategoryNotFound("category.destroy.not_found")
		}
		return nil, httperror.InternalServerError("category.destroy.lookup_failed", "Internal server error", err)
	}

	if err := h.repository.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errCategoryNotFound("category.destroy.not_found")
		}
		return nil, httperror.InternalServerError("category.destroy.failed", "Internal server error", err)
	}

	events.Emit(ctx, h.eventPublisher, events.CategoryExchange, events.CategoryDeletedEvent, events.CategoryDeletedPayload{
		ID:        id,
		DeletedAt: time.Now().UTC(),
	})

	return &DeleteCategoryResponse{}, nil
}

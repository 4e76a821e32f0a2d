package category

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"context"
	"errors"
)

type UpdateCategoryHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewUpdateCategoryHandler(repository Repository, eventPublisher events.Publisher) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type UpdateCategoryRequest struct {
	CategoryID string `params:"id"`
	Name       string `json:"name"`
}

type UpdateCategoryResponse struct {
	domain.Category
}

// Handle resolves the category before looking at the body, so an unknown id
// is a 404 even when the name is missing.
func (h UpdateCategoryHandler) Handle(ctx context.Context, req *UpdateCategoryRequest) (*UpdateCategoryResponse, error) {
	id, ok := parseID(req.CategoryID)
	if !ok {
		return nil, errCategoryNotFound("category.update.not_found")
	}

	if _, err := h.repository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errCategoryNotFound("category.update.not_found")
		}
		return nil, httperror.InternalServerError("category.update.lookup_failed", "Internal server error", err)
	}

	if req.Name == "" {
		return nil, httperror.BadRequest("category.update.validation_failed", "Category name is required to update", nil)
	}

	category, err := h.repository.UpdateCategory(ctx, id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			return nil, errCategoryExists("category.update.exists")
		case errors.Is(err, domain.ErrNotFound):
			return nil, errCategoryNotFound("category.update.not_found")
		}
		return nil, httperror.InternalServerError("category.update.update_failed", "Internal server error", err)
	}

	events.Emit(ctx, h.eventPublisher, events.CategoryExchange, events.CategoryUpdatedEvent, categoryPayload(category))

	return &UpdateCategoryResponse{
		Category: category,
	}, nil
}

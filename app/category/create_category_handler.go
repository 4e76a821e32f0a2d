package category

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"catalog/pkg/validation"
	"context"
	"errors"
	"net/http"
)

type CreateCategoryHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewCreateCategoryHandler(repository Repository, eventPublisher events.Publisher) *CreateCategoryHandler {
	return &CreateCategoryHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateCategoryResponse renders as the bare category object.
type CreateCategoryResponse struct {
	domain.Category
}

func (CreateCategoryResponse) StatusCode() int {
	return http.StatusCreated
}

var createCategoryMessages = validation.Messages{
	"Name.required": "Category name is required",
}

func (h CreateCategoryHandler) Handle(ctx context.Context, req *CreateCategoryRequest) (*CreateCategoryResponse, error) {
	if err := validation.Struct(req, "category.create", createCategoryMessages); err != nil {
		return nil, err
	}

	_, err := h.repository.GetCategoryByName(ctx, req.Name)
	if err == nil {
		return nil, errCategoryExists("category.create.exists")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, httperror.InternalServerError("category.create.lookup_failed", "Internal server error", err)
	}

	category, err := h.repository.CreateCategory(ctx, req.Name)
	if err != nil {
		// Lost the race against a concurrent create with the same name.
		if errors.Is(err, domain.ErrConflict) {
			return nil, errCategoryExists("category.create.exists")
		}
		return nil, httperror.InternalServerError("category.create.create_failed", "Internal server error", err)
	}

	events.Emit(ctx, h.eventPublisher, events.CategoryExchange, events.CategoryCreatedEvent, categoryPayload(category))

	return &CreateCategoryResponse{
		Category: category,
	}, nil
}

package category

import (
	"catalog/domain"
	"catalog/pkg/httperror"
	"context"
)

type GetCategoriesHandler struct {
	repository Repository
}

func NewGetCategoriesHandler(repository Repository) *GetCategoriesHandler {
	return &GetCategoriesHandler{
		repository: repository,
	}
}

type GetCategoriesRequest struct{}

type GetCategoriesResponse []domain.Category

// Handle reports an empty table as 404 rather than an empty list.
func (h GetCategoriesHandler) Handle(ctx context.Context, _ *GetCategoriesRequest) (*GetCategoriesResponse, error) {
	categories, err := h.repository.GetCategories(ctx)
	if err != nil {
		return nil, httperror.InternalServerError("category.index.failed", "Internal server error", err)
	}

	if len(categories) == 0 {
		return nil, httperror.NotFound("category.index.empty", "No categories found", nil)
	}

	res := GetCategoriesResponse(categories)
	return &res, nil
}

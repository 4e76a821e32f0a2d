package product

import (
	"catalog/domain"
	"catalog/pkg/httperror"
	"context"
	"errors"
	"net/http"
)

type GetProductsByCategoryHandler struct {
	repository Repository
}

func NewGetProductsByCategoryHandler(repository Repository) *GetProductsByCategoryHandler {
	return &GetProductsByCategoryHandler{
		repository: repository,
	}
}

type GetProductsByCategoryRequest struct {
	CategoryID string `params:"categoryId"`
}

// GetProductsByCategoryResponse for an existing but empty category carries
// only the message and is served as 404.
type GetProductsByCategoryResponse struct {
	Message  string           `json:"message"`
	Count    int              `json:"count,omitempty"`
	Products []domain.Product `json:"products,omitempty"`
}

func (r GetProductsByCategoryResponse) StatusCode() int {
	if len(r.Products) == 0 {
		return http.StatusNotFound
	}
	return http.StatusOK
}

func (h GetProductsByCategoryHandler) Handle(ctx context.Context, req *GetProductsByCategoryRequest) (*GetProductsByCategoryResponse, error) {
	categoryID, ok := parseID(req.CategoryID)
	if !ok {
		return nil, httperror.BadRequest("product.by_category.invalid_id", "Valid category ID is required", nil)
	}

	if _, err := h.repository.GetCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperror.NotFound("product.by_category.category_not_found", "Category not found", nil)
		}
		return nil, httperror.InternalServerError("product.by_category.category_lookup_failed", "Internal server error", err)
	}

	products, err := h.repository.GetProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, httperror.InternalServerError("product.by_category.failed", "Internal server error", err)
	}

	if len(products) == 0 {
		return &GetProductsByCategoryResponse{
			Message: "No products found in this category",
		}, nil
	}

	count, err := h.repository.CountProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, httperror.InternalServerError("product.by_category.count_failed", "Internal server error", err)
	}

	return &GetProductsByCategoryResponse{
		Message:  "Products fetched successfully",
		Count:    count,
		Products: products,
	}, nil
}

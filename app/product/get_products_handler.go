package product

import (
	"catalog/domain"
	"catalog/pkg/httperror"
	"context"
)

type GetProductsHandler struct {
	repository Repository
}

func NewGetProductsHandler(repository Repository) *GetProductsHandler {
	return &GetProductsHandler{
		repository: repository,
	}
}

type GetProductsRequest struct{}

type GetProductsResponse struct {
	Message  string                   `json:"message"`
	Count    int                      `json:"count"`
	Products []domain.ProductListItem `json:"products"`
}

// Handle lists every product, newest first, with its category summary.
func (h GetProductsHandler) Handle(ctx context.Context, _ *GetProductsRequest) (*GetProductsResponse, error) {
	products, err := h.repository.GetProducts(ctx)
	if err != nil {
		return nil, httperror.InternalServerError("product.index.failed", "Internal server error", err)
	}

	count, err := h.repository.CountProducts(ctx)
	if err != nil {
		return nil, httperror.InternalServerError("product.count_products.failed", "Internal server error", err)
	}

	if products == nil {
		products = []domain.ProductListItem{}
	}

	return &GetProductsResponse{
		Message:  "Products fetched successfully",
		Count:    count,
		Products: products,
	}, nil
}

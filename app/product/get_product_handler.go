package product

import (
	"catalog/domain"
	"catalog/pkg/httperror"
	"context"
	"errors"
)

type GetProductHandler struct {
	repository Repository
}

func NewGetProductHandler(repository Repository) *GetProductHandler {
	return &GetProductHandler{
		repository: repository,
	}
}

type GetProductRequest struct {
	ID   string `query:"id"`
	Name string `query:"name"`
}

type GetProductResponse struct {
	Message string               `json:"message"`
	Product domain.ProductDetail `json:"product"`
}

// Handle looks a product up by id, or by name when no id is given. Name
// lookups rely on product names being unique.
func (h GetProductHandler) Handle(ctx context.Context, req *GetProductRequest) (*GetProductResponse, error) {
	var (
		product domain.ProductDetail
		err     error
	)

	switch {
	case req.ID != "":
		id, ok := parseID(req.ID)
		if !ok {
			return nil, errInvalidProductID("product.show.invalid_id")
		}
		product, err = h.repository.GetProductDetailByID(ctx, id)
	case req.Name != "":
		product, err = h.repository.GetProductDetailByName(ctx, req.Name)
	default:
		return nil, httperror.BadRequest("product.show.validation_failed", "Product ID or name is required", nil)
	}

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errProductNotFound("product.show.not_found")
		}
		return nil, httperror.InternalServerError("product.show.failed", "Internal server error", err)
	}

	return &GetProductResponse{
		Message: "Product fetched successfully",
		Product: product,
	}, nil
}

package product

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"context"
	"errors"
	"strconv"
)

func errInvalidProductID(code string) error {
	return httperror.BadRequest(code, "Valid product ID is required", nil)
}

func errProductNotFound(code string) error {
	return httperror.NotFound(code, "Product not found", nil)
}

func errProductExists(code string) error {
	return httperror.BadRequest(code, "Product already exists", nil)
}

func errCategoryMissing(code string) error {
	return httperror.BadRequest(code, "Category does not exist", nil)
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// resolveCategory enforces that a product only ever points at an existing
// category at the time of the write.
func resolveCategory(ctx context.Context, repository Repository, id int64, code string) error {
	if _, err := repository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errCategoryMissing(code + ".category_missing")
		}
		return httperror.InternalServerError(code+".category_lookup_failed", "Internal server error", err)
	}
	return nil
}

func productPayload(p domain.Product) events.ProductPayload {
	return events.ProductPayload{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Quantity:    p.Quantity,
		Available:   p.Available,
		CategoryID:  p.CategoryID,
		UpdatedAt:   p.UpdatedAt,
	}
}

package category

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"strconv"
)

func errCategoryExists(code string) error {
	return httperror.BadRequest(code, "Category already exists", nil)
}

func errCategoryNotFound(code string) error {
	return httperror.NotFound(code, "Category not found", nil)
}

// parseID accepts positive integers only; anything else cannot name a row.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func categoryPayload(c domain.Category) events.CategoryPayload {
	return events.CategoryPayload{
		ID:        c.ID,
		Name:      c.Name,
		UpdatedAt: c.UpdatedAt,
	}
}

package category_test

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"catalog/app/category"
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	mu         sync.Mutex
	nextID     int64
	categories map[int64]domain.Category

	// raceOnCreate makes CreateCategory behave as if a concurrent request
	// inserted the same name between the lookup and the insert.
	raceOnCreate bool
	failWith     error
}

func newFakeRepository(names ...string) *fakeRepository {
	r := &fakeRepository{categories: map[int64]domain.Category{}}
	for _, name := range names {
		_, _ = r.CreateCategory(context.Background(), name)
	}
	return r
}

func (r *fakeRepository) GetCategories(context.Context) ([]domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepository) GetCategoryByID(_ context.Context, id int64) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return domain.Category{}, r.failWith
	}
	c, ok := r.categories[id]
	if !ok {
		return domain.Category{}, domain.ErrNotFound
	}
	return c, nil
}

func (r *fakeRepository) GetCategoryByName(_ context.Context, name string) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return domain.Category{}, r.failWith
	}
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return domain.Category{}, domain.ErrNotFound
}

func (r *fakeRepository) CreateCategory(_ context.Context, name string) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.raceOnCreate {
		return domain.Category{}, domain.ErrConflict
	}
	for _, c := range r.categories {
		if c.Name == name {
			return domain.Category{}, domain.ErrConflict
		}
	}
	r.nextID++
	now := time.Now().UTC()
	c := domain.Category{ID: r.nextID, Name: name, CreatedAt: now, UpdatedAt: now}
	r.categories[c.ID] = c
	return c, nil
}

func (r *fakeRepository) UpdateCategory(_ context.Context, id int64, name string) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return domain.Category{}, domain.ErrNotFound
	}
	for _, other := range r.categories {
		if other.Name == name && other.ID != id {
			return domain.Category{}, domain.ErrConflict
		}
	}
	c.Name = name
	c.UpdatedAt = time.Now().UTC()
	r.categories[id] = c
	return c, nil
}

func (r *fakeRepository) DeleteCategory(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

type recordingPublisher struct {
	published []string
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, event *events.Event, _ events.Headers) error {
	p.published = append(p.published, event.Event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func requireHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var httpErr *httperror.Error
	require.True(t, errors.As(err, &httpErr), "expected *httperror.Error, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
}

func TestCreateCategory(t *testing.T) {
	repo := newFakeRepository()
	publisher := &recordingPublisher{}
	h := category.NewCreateCategoryHandler(repo, publisher)

	res, err := h.Handle(context.Background(), &category.CreateCategoryRequest{Name: "Books"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, "Books", res.Name)
	assert.Equal(t, http.StatusCreated, res.StatusCode())
	assert.Equal(t, []string{events.CategoryCreatedEvent}, publisher.published)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	h := category.NewCreateCategoryHandler(newFakeRepository(), nil)

	_, err := h.Handle(context.Background(), &category.CreateCategoryRequest{})
	requireHTTPError(t, err, http.StatusBadRequest, "Category name is required")
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	repo := newFakeRepository("Books")
	h := category.NewCreateCategoryHandler(repo, nil)

	_, err := h.Handle(context.Background(), &category.CreateCategoryRequest{Name: "Books"})
	requireHTTPError(t, err, http.StatusBadRequest, "Category already exists")

	categories, _ := repo.GetCategories(context.Background())
	assert.Len(t, categories, 1)
}

func TestCreateCategoryLosesRace(t *testing.T) {
	repo := newFakeRepository()
	repo.raceOnCreate = true
	h := category.NewCreateCategoryHandler(repo, nil)

	_, err := h.Handle(context.Background(), &category.CreateCategoryRequest{Name: "Books"})
	requireHTTPError(t, err, http.StatusBadRequest, "Category already exists")
}

func TestCreateCategoryStoreFailure(t *testing.T) {
	repo := newFakeRepository()
	repo.failWith = errors.New("connection refused")
	h := category.NewCreateCategoryHandler(repo, nil)

	_, err := h.Handle(context.Background(), &category.CreateCategoryRequest{Name: "Books"})
	requireHTTPError(t, err, http.StatusInternalServerError, "Internal server error")
}

func TestGetCategories(t *testing.T) {
	h := category.NewGetCategoriesHandler(newFakeRepository("Books", "Games"))

	res, err := h.Handle(context.Background(), &category.GetCategoriesRequest{})
	require.NoError(t, err)
	require.Len(t, *res, 2)
	assert.Equal(t, "Books", (*res)[0].Name)
	assert.Equal(t, "Games", (*res)[1].Name)
}

func TestGetCategoriesEmptyIsNotFound(t *testing.T) {
	h := category.NewGetCategoriesHandler(newFakeRepository())

	_, err := h.Handle(context.Background(), &category.GetCategoriesRequest{})
	requireHTTPError(t, err, http.StatusNotFound, "No categories found")
}

func TestUpdateCategory(t *testing.T) {
	repo := newFakeRepository("Books")
	publisher := &recordingPublisher{}
	h := category.NewUpdateCategoryHandler(repo, publisher)

	res, err := h.Handle(context.Background(), &category.UpdateCategoryRequest{CategoryID: "1", Name: "Novels"})
	require.NoError(t, err)
	assert.Equal(t, "Novels", res.Name)
	assert.Equal(t, []string{events.CategoryUpdatedEvent}, publisher.published)
}

func TestUpdateCategoryErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     category.UpdateCategoryRequest
		status  int
		message string
	}{
		{"unknown id", category.UpdateCategoryRequest{CategoryID: "99", Name: "X"}, http.StatusNotFound, "Category not found"},
		{"non numeric id", category.UpdateCategoryRequest{CategoryID: "abc", Name: "X"}, http.StatusNotFound, "Category not found"},
		{"unknown id wins over missing name", category.UpdateCategoryRequest{CategoryID: "99"}, http.StatusNotFound, "Category not found"},
		{"missing name", category.UpdateCategoryRequest{CategoryID: "1"}, http.StatusBadRequest, "Category name is required to update"},
		{"name taken", category.UpdateCategoryRequest{CategoryID: "1", Name: "Games"}, http.StatusBadRequest, "Category already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := category.NewUpdateCategoryHandler(newFakeRepository("Books", "Games"), nil)
			_, err := h.Handle(context.Background(), &tt.req)
			requireHTTPError(t, err, tt.status, tt.message)
		})
	}
}

func TestDeleteCategory(t *testing.T) {
	repo := newFakeRepository("Books")
	publisher := &recordingPublisher{}
	h := category.NewDeleteCategoryHandler(repo, publisher)

	res, err := h.Handle(context.Background(), &category.DeleteCategoryRequest{CategoryID: "1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, res.StatusCode())
	assert.Equal(t, []string{events.CategoryDeletedEvent}, publisher.published)

	_, err = repo.GetCategoryByID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	for _, id := range []string{"1", "0", "-4", "abc"} {
		t.Run(id, func(t *testing.T) {
			h := category.NewDeleteCategoryHandler(newFakeRepository(), nil)
			_, err := h.Handle(context.Background(), &category.DeleteCategoryRequest{CategoryID: id})
			requireHTTPError(t, err, http.StatusNotFound, "Category not found")
		})
	}
}

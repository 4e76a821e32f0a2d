package product_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"catalog/domain"
	"catalog/pkg/events"
)

type fakeRepository struct {
	mu         sync.Mutex
	clock      time.Time
	nextID     int64
	categories map[int64]domain.Category
	products   map[int64]domain.Product

	failWith error
}

func newFakeRepository(categoryNames ...string) *fakeRepository {
	r := &fakeRepository{
		clock:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		categories: map[int64]domain.Category{},
		products:   map[int64]domain.Product{},
	}
	for i, name := range categoryNames {
		id := int64(i + 1)
		r.categories[id] = domain.Category{ID: id, Name: name}
	}
	return r
}

func (r *fakeRepository) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
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

func (r *fakeRepository) CreateProduct(_ context.Context, p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return domain.Product{}, r.failWith
	}
	for _, existing := range r.products {
		if existing.Name == p.Name {
			return domain.Product{}, domain.ErrConflict
		}
	}
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = r.tick()
	p.UpdatedAt = p.CreatedAt
	r.products[p.ID] = p
	return p, nil
}

func (r *fakeRepository) GetProducts(context.Context) ([]domain.ProductListItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]domain.ProductListItem, 0, len(r.products))
	for _, p := range r.products {
		c := r.categories[p.CategoryID]
		out = append(out, domain.ProductListItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Currency:    p.Currency,
			Quantity:    p.Quantity,
			Available:   p.Available,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
			Category:    domain.CategoryRef{ID: c.ID, Name: c.Name},
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeRepository) CountProducts(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.products), nil
}

func (r *fakeRepository) GetProductByID(_ context.Context, id int64) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return domain.Product{}, r.failWith
	}
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func (r *fakeRepository) detail(p domain.Product) domain.ProductDetail {
	return domain.ProductDetail{
		Product:  p,
		Category: domain.CategoryName{Name: r.categories[p.CategoryID].Name},
	}
}

func (r *fakeRepository) GetProductDetailByID(_ context.Context, id int64) (domain.ProductDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ProductDetail{}, domain.ErrNotFound
	}
	return r.detail(p), nil
}

func (r *fakeRepository) GetProductDetailByName(_ context.Context, name string) (domain.ProductDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Name == name {
			return r.detail(p), nil
		}
	}
	return domain.ProductDetail{}, domain.ErrNotFound
}

func (r *fakeRepository) UpdateProduct(_ context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.products {
		if existing.Name == p.Name && existing.ID != p.ID {
			return domain.ErrConflict
		}
	}
	p.UpdatedAt = r.tick()
	r.products[p.ID] = p
	return nil
}

func (r *fakeRepository) DeleteProduct(_ context.Context, id int64) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	delete(r.products, id)
	return p, nil
}

func (r *fakeRepository) GetProductsByCategory(_ context.Context, categoryID int64) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Product
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepository) CountProductsByCategory(ctx context.Context, categoryID int64) (int, error) {
	products, err := r.GetProductsByCategory(ctx, categoryID)
	return len(products), err
}

type recordingPublisher struct {
	published []string
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, event *events.Event, _ events.Headers) error {
	p.published = append(p.published, event.Event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

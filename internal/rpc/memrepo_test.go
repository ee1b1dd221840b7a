package rpc

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/stocklane/product-service/internal/platform/apperr"
	"github.com/stocklane/product-service/internal/repos"
	"github.com/stocklane/product-service/internal/types"
)

// memRepo is an insertion-ordered in-memory ProductRepo. Insertion order is
// its store-native order, so list and search results are deterministic.
type memRepo struct {
	items     []*types.Product
	createErr error
}

var _ repos.ProductRepo = (*memRepo)(nil)

func newMemRepo(seed ...*types.Product) *memRepo {
	r := &memRepo{}
	for _, p := range seed {
		cp := *p
		r.items = append(r.items, &cp)
	}
	return r
}

func (r *memRepo) GetByID(_ context.Context, id string) (*types.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperr.NotFound(id)
}

func (r *memRepo) Create(_ context.Context, p *types.Product) (*types.Product, error) {
	if r.createErr != nil {
		return nil, apperr.Internal(r.createErr)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	cp := *p
	r.items = append(r.items, &cp)
	return p, nil
}

func (r *memRepo) Save(_ context.Context, p *types.Product) (*types.Product, error) {
	for i, existing := range r.items {
		if existing.ID == p.ID {
			cp := *p
			r.items[i] = &cp
			return p, nil
		}
	}
	return nil, apperr.Internal(errors.New("save of unknown id " + p.ID))
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound(id)
}

func (r *memRepo) ListAll(_ context.Context) ([]*types.Product, error) {
	return r.filter(func(*types.Product) bool { return true }), nil
}

func (r *memRepo) ListByCategory(_ context.Context, category string) ([]*types.Product, error) {
	return r.filter(func(p *types.Product) bool { return p.Category == category }), nil
}

func (r *memRepo) ListActive(_ context.Context) ([]*types.Product, error) {
	return r.filter(func(p *types.Product) bool { return p.Active }), nil
}

func (r *memRepo) ListActiveByCategory(_ context.Context, category string) ([]*types.Product, error) {
	return r.filter(func(p *types.Product) bool { return p.Active && p.Category == category }), nil
}

func (r *memRepo) SearchByName(_ context.Context, name string) ([]*types.Product, error) {
	return r.filter(matchName(name)), nil
}

func (r *memRepo) SearchByNameMaxPrice(_ context.Context, name string, maxPrice float64) ([]*types.Product, error) {
	match := matchName(name)
	return r.filter(func(p *types.Product) bool { return match(p) && p.Price <= maxPrice }), nil
}

func (r *memRepo) SearchByNameMinQuantity(_ context.Context, name string, minQuantity int32) ([]*types.Product, error) {
	match := matchName(name)
	return r.filter(func(p *types.Product) bool { return match(p) && p.Quantity >= minQuantity }), nil
}

func (r *memRepo) filter(keep func(*types.Product) bool) []*types.Product {
	var out []*types.Product
	for _, p := range r.items {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}

func matchName(name string) func(*types.Product) bool {
	needle := strings.ToLower(name)
	return func(p *types.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	}
}

package services

import (
	"context"
	"time"

	"github.com/stocklane/product-service/internal/platform/logger"
	"github.com/stocklane/product-service/internal/repos"
	"github.com/stocklane/product-service/internal/types"
)

// ProductPatch carries the mutable fields of an update request. Empty
// strings, a non-positive price and a negative quantity are unset sentinels
// and leave the stored value alone; Active has no sentinel and always
// replaces the stored flag.
type ProductPatch struct {
	Name        string
	Description string
	Price       float64
	Quantity    int32
	Category    string
	Active      bool
}

type ProductService struct {
	repo repos.ProductRepo
	log  *logger.Logger
}

func NewProductService(repo repos.ProductRepo, baseLog *logger.Logger) *ProductService {
	return &ProductService{repo: repo, log: baseLog.With("service", "ProductService")}
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (*types.Product, error) {
	s.log.Debug("fetching product", "id", id)
	return s.repo.GetByID(ctx, id)
}

// CreateProduct persists a new record, stamping both timestamps with the
// same instant. The store assigns the id.
func (s *ProductService) CreateProduct(ctx context.Context, p *types.Product) (*types.Product, error) {
	s.log.Debug("creating product", "name", p.Name)
	now := time.Now().UnixMilli()
	if p.CreatedAt == 0 {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return s.repo.Create(ctx, p)
}

// UpdateProduct is fetch-then-merge-then-persist. Sentinel fields in the
// patch preserve the stored value; see ProductPatch.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*types.Product, error) {
	s.log.Debug("updating product", "id", id)
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != "" {
		p.Name = patch.Name
	}
	if patch.Description != "" {
		p.Description = patch.Description
	}
	if patch.Price > 0 {
		p.Price = patch.Price
	}
	if patch.Quantity >= 0 {
		p.Quantity = patch.Quantity
	}
	if patch.Category != "" {
		p.Category = patch.Category
	}
	p.Active = patch.Active
	p.UpdatedAt = time.Now().UnixMilli()

	return s.repo.Save(ctx, p)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	s.log.Debug("deleting product", "id", id)
	return s.repo.Delete(ctx, id)
}

// AdjustQuantity applies a signed inventory delta and stamps a new
// updated-timestamp. The read-modify-write is not transactional across
// calls; two concurrent deltas on the same id can lose one update.
func (s *ProductService) AdjustQuantity(ctx context.Context, p *types.Product, newQuantity int32) (*types.Product, error) {
	p.Quantity = newQuantity
	p.UpdatedAt = time.Now().UnixMilli()
	return s.repo.Save(ctx, p)
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]*types.Product, error) {
	return s.repo.ListAll(ctx)
}

func (s *ProductService) GetActiveProducts(ctx context.Context) ([]*types.Product, error) {
	return s.repo.ListActive(ctx)
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, category string) ([]*types.Product, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *ProductService) GetActiveProductsByCategory(ctx context.Context, category string) ([]*types.Product, error) {
	return s.repo.ListActiveByCategory(ctx, category)
}

// SearchProducts matches name as a case-insensitive substring and narrows by
// the optional bounds. When both bounds are set the price bound runs in the
// store and the quantity bound is applied to the result.
func (s *ProductService) SearchProducts(ctx context.Context, name string, maxPrice float64, minQuantity int32) ([]*types.Product, error) {
	s.log.Debug("searching products", "name", name, "maxPrice", maxPrice, "minQuantity", minQuantity)

	switch {
	case maxPrice > 0 && minQuantity > 0:
		byPrice, err := s.repo.SearchByNameMaxPrice(ctx, name, maxPrice)
		if err != nil {
			return nil, err
		}
		matched := make([]*types.Product, 0, len(byPrice))
		for _, p := range byPrice {
			if p.Quantity >= minQuantity {
				matched = append(matched, p)
			}
		}
		return matched, nil
	case maxPrice > 0:
		return s.repo.SearchByNameMaxPrice(ctx, name, maxPrice)
	case minQuantity > 0:
		return s.repo.SearchByNameMinQuantity(ctx, name, minQuantity)
	default:
		return s.repo.SearchByName(ctx, name)
	}
}

package repos

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stocklane/product-service/internal/platform/apperr"
	"github.com/stocklane/product-service/internal/platform/logger"
	"github.com/stocklane/product-service/internal/types"
)

// ProductRepo is the store primitive set consumed by the business layer.
// All list and search operations return rows in creation order, which is the
// store-native order for this repo.
type ProductRepo interface {
	GetByID(ctx context.Context, id string) (*types.Product, error)
	Create(ctx context.Context, p *types.Product) (*types.Product, error)
	Save(ctx context.Context, p *types.Product) (*types.Product, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*types.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*types.Product, error)
	ListActive(ctx context.Context) ([]*types.Product, error)
	ListActiveByCategory(ctx context.Context, category string) ([]*types.Product, error)
	SearchByName(ctx context.Context, name string) ([]*types.Product, error)
	SearchByNameMaxPrice(ctx context.Context, name string, maxPrice float64) ([]*types.Product, error)
	SearchByNameMinQuantity(ctx context.Context, name string, minQuantity int32) ([]*types.Product, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func (pr *productRepo) GetByID(ctx context.Context, id string) (*types.Product, error) {
	var p types.Product
	err := pr.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(id)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &p, nil
}

// Create assigns the record its identity. Concurrent Save calls on the same
// id are last-writer-wins; there is no version column yet, which is the
// upgrade path if conditional writes are ever needed.
func (pr *productRepo) Create(ctx context.Context, p *types.Product) (*types.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := pr.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	pr.log.Debug("product created", "id", p.ID, "name", p.Name)
	return p, nil
}

func (pr *productRepo) Save(ctx context.Context, p *types.Product) (*types.Product, error) {
	if err := pr.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (pr *productRepo) Delete(ctx context.Context, id string) error {
	res := pr.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Product{})
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(id)
	}
	pr.log.Debug("product deleted", "id", id)
	return nil
}

func (pr *productRepo) ListAll(ctx context.Context) ([]*types.Product, error) {
	return pr.list(ctx, pr.db.WithContext(ctx))
}

func (pr *productRepo) ListByCategory(ctx context.Context, category string) ([]*types.Product, error) {
	return pr.list(ctx, pr.db.WithContext(ctx).Where("category = ?", category))
}

func (pr *productRepo) ListActive(ctx context.Context) ([]*types.Product, error) {
	return pr.list(ctx, pr.db.WithContext(ctx).Where("active = ?", true))
}

func (pr *productRepo) ListActiveByCategory(ctx context.Context, category string) ([]*types.Product, error) {
	return pr.list(ctx, pr.db.WithContext(ctx).
		Where("active = ?", true).
		Where("category = ?", category))
}

func (pr *productRepo) SearchByName(ctx context.Context, name string) ([]*types.Product, error) {
	return pr.list(ctx, pr.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", substringPattern(name)))
}

func (pr *productRepo) SearchByNameMaxPrice(ctx context.Context, name string, maxPrice float64) ([]*types.Product, error) {
	return pr.list(ctx, pr.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", substringPattern(name)).
		Where("price <= ?", maxPrice))
}

func (pr *productRepo) SearchByNameMinQuantity(ctx context.Context, name string, minQuantity int32) ([]*types.Product, error) {
	return pr.list(ctx, pr.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", substringPattern(name)).
		Where("quantity >= ?", minQuantity))
}

func (pr *productRepo) list(ctx context.Context, q *gorm.DB) ([]*types.Product, error) {
	var results []*types.Product
	if err := q.Order("created_at ASC").Find(&results).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return results, nil
}

func substringPattern(name string) string {
	return "%" + strings.ToLower(name) + "%"
}

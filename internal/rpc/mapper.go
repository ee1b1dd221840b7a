package rpc

import (
	"github.com/stocklane/product-service/api/productv1"
	"github.com/stocklane/product-service/internal/services"
	"github.com/stocklane/product-service/internal/types"
)

func toWire(p *types.Product) *productv1.Product {
	if p == nil {
		return nil
	}
	return &productv1.Product{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// New products start active.
func entityFromCreate(req *productv1.CreateProductRequest) *types.Product {
	return &types.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Active:      true,
	}
}

func patchFromUpdate(req *productv1.UpdateProductRequest) services.ProductPatch {
	return services.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Active:      req.Active,
	}
}

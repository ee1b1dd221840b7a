// Package rpc implements product.v1.ProductService: the unary handlers, the
// two server-stream producers, the client-stream aggregators and the
// bidirectional multiplexers, all over the business layer.
package rpc

import (
	"context"

	"github.com/stocklane/product-service/api/productv1"
	"github.com/stocklane/product-service/internal/platform/apperr"
	"github.com/stocklane/product-service/internal/platform/logger"
	"github.com/stocklane/product-service/internal/services"
	"github.com/stocklane/product-service/internal/types"
)

type ProductServer struct {
	products *services.ProductService
	log      *logger.Logger
}

var _ productv1.ProductServiceServer = (*ProductServer)(nil)

func NewProductServer(products *services.ProductService, baseLog *logger.Logger) *ProductServer {
	return &ProductServer{
		products: products,
		log:      baseLog.With("rpc", "ProductService"),
	}
}

func (s *ProductServer) GetProduct(ctx context.Context, req *productv1.GetProductRequest) (*productv1.Product, error) {
	s.log.Info("GetProduct called", "id", req.Id)
	if err := validateID(req.Id); err != nil {
		return nil, apperr.ToStatus(err)
	}
	p, err := s.products.GetProductByID(ctx, req.Id)
	if err != nil {
		s.log.Warn("GetProduct failed", "id", req.Id, "error", err)
		return nil, apperr.ToStatus(err)
	}
	return toWire(p), nil
}

func (s *ProductServer) CreateProduct(ctx context.Context, req *productv1.CreateProductRequest) (*productv1.Product, error) {
	s.log.Info("CreateProduct called", "name", req.Name)
	if err := validateNewProduct(req); err != nil {
		return nil, apperr.ToStatus(err)
	}
	created, err := s.products.CreateProduct(ctx, entityFromCreate(req))
	if err != nil {
		s.log.Error("CreateProduct failed", "name", req.Name, "error", err)
		return nil, apperr.ToStatus(err)
	}
	s.log.Info("CreateProduct completed", "id", created.ID)
	return toWire(created), nil
}

func (s *ProductServer) UpdateProduct(ctx context.Context, req *productv1.UpdateProductRequest) (*productv1.Product, error) {
	s.log.Info("UpdateProduct called", "id", req.Id)
	if err := validateID(req.Id); err != nil {
		return nil, apperr.ToStatus(err)
	}
	updated, err := s.products.UpdateProduct(ctx, req.Id, patchFromUpdate(req))
	if err != nil {
		s.log.Warn("UpdateProduct failed", "id", req.Id, "error", err)
		return nil, apperr.ToStatus(err)
	}
	return toWire(updated), nil
}

func (s *ProductServer) DeleteProduct(ctx context.Context, req *productv1.DeleteProductRequest) (*productv1.DeleteProductResponse, error) {
	s.log.Info("DeleteProduct called", "id", req.Id)
	if err := validateID(req.Id); err != nil {
		return nil, apperr.ToStatus(err)
	}
	if err := s.products.DeleteProduct(ctx, req.Id); err != nil {
		s.log.Warn("DeleteProduct failed", "id", req.Id, "error", err)
		return nil, apperr.ToStatus(err)
	}
	return &productv1.DeleteProductResponse{
		Success: true,
		Message: "Product deleted successfully",
	}, nil
}

// ListProducts selects by the filter combination, truncates to page_size when
// positive and emits one response per surviving record in store order. Zero
// matches completes the stream without error.
func (s *ProductServer) ListProducts(req *productv1.ListProductsRequest, stream productv1.ProductService_ListProductsServer) error {
	ctx := stream.Context()
	s.log.Info("ListProducts called",
		"category", req.Category, "activeOnly", req.ActiveOnly, "pageSize", req.PageSize)

	var (
		products []*types.Product
		err      error
	)
	switch {
	case req.Category != "" && req.ActiveOnly:
		products, err = s.products.GetActiveProductsByCategory(ctx, req.Category)
	case req.Category != "":
		products, err = s.products.GetProductsByCategory(ctx, req.Category)
	case req.ActiveOnly:
		products, err = s.products.GetActiveProducts(ctx)
	default:
		products, err = s.products.GetAllProducts(ctx)
	}
	if err != nil {
		s.log.Error("ListProducts failed", "error", err)
		return apperr.ToStatus(err)
	}

	if req.PageSize > 0 && int(req.PageSize) < len(products) {
		products = products[:req.PageSize]
	}

	for _, p := range products {
		if err := stream.Send(toWire(p)); err != nil {
			return err
		}
	}
	s.log.Info("ListProducts completed", "streamed", len(products))
	return nil
}

func (s *ProductServer) SearchProducts(req *productv1.SearchProductsRequest, stream productv1.ProductService_SearchProductsServer) error {
	ctx := stream.Context()
	s.log.Info("SearchProducts called",
		"name", req.Name, "maxPrice", req.MaxPrice, "minQuantity", req.MinQuantity)

	if err := validateSearchQuery(req.Name); err != nil {
		return apperr.ToStatus(err)
	}

	results, err := s.products.SearchProducts(ctx, req.Name, req.MaxPrice, req.MinQuantity)
	if err != nil {
		s.log.Error("SearchProducts failed", "error", err)
		return apperr.ToStatus(err)
	}

	for _, p := range results {
		if err := stream.Send(toWire(p)); err != nil {
			return err
		}
	}
	s.log.Info("SearchProducts completed", "streamed", len(results))
	return nil
}

package rpc

import (
	"github.com/stocklane/product-service/api/productv1"
	"github.com/stocklane/product-service/internal/platform/apperr"
)

// The validation gate: pure precondition checks on scalar request fields,
// run before any store access. Each failure names the offending field.

func validateID(id string) *apperr.Error {
	if id == "" {
		return apperr.Validation("id", "Product ID cannot be empty")
	}
	return nil
}

func validateNewProduct(req *productv1.CreateProductRequest) *apperr.Error {
	if req.Name == "" {
		return apperr.Validation("name", "Product name cannot be empty")
	}
	if req.Price <= 0 {
		return apperr.Validation("price", "Product price must be greater than 0")
	}
	if req.Quantity < 0 {
		return apperr.Validation("quantity", "Product quantity cannot be negative")
	}
	return nil
}

func validateSearchQuery(name string) *apperr.Error {
	if name == "" {
		return apperr.Validation("name", "Search name cannot be empty")
	}
	return nil
}

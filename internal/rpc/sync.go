package rpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stocklane/product-service/api/productv1"
)

// Bidirectional multiplexers. Each inbound message is dispatched and answered
// before the next one is read, so outbound order always matches inbound
// order. Application failures become success=false responses; only a
// transport error on Recv terminates the call.

// ProductUpdates dispatches on the message's action variant and echoes its
// correlation key on the paired response. An empty correlation key gets a
// success=false response under a placeholder id synthesized from the 1-based
// message number.
func (s *ProductServer) ProductUpdates(stream productv1.ProductService_ProductUpdatesServer) error {
	ctx := stream.Context()
	var count int

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			s.log.Info("ProductUpdates stream completed", "processed", count)
			return nil
		}
		if err != nil {
			s.log.Error("ProductUpdates stream error", "error", err)
			return status.Errorf(codes.Internal, "error in bidirectional stream: %v", err)
		}

		count++
		s.log.Info("ProductUpdates received request", "n", count, "requestId", req.RequestId)

		if err := stream.Send(s.handleProductUpdate(ctx, count, req)); err != nil {
			return err
		}
	}
}

func (s *ProductServer) handleProductUpdate(ctx context.Context, n int, req *productv1.ProductUpdateRequest) *productv1.ProductUpdateResponse {
	if req.RequestId == "" {
		return &productv1.ProductUpdateResponse{
			RequestId:       fmt.Sprintf("unknown-%d", n),
			Success:         false,
			Message:         "Request ID cannot be empty",
			ServerTimestamp: time.Now().UnixMilli(),
		}
	}

	switch a := req.Action.(type) {
	case *productv1.CreateAction:
		return s.applyCreateAction(ctx, req.RequestId, a.Create)
	case *productv1.UpdateAction:
		return s.applyUpdateAction(ctx, req.RequestId, a.Update)
	case *productv1.DeleteAction:
		return s.applyDeleteAction(ctx, req.RequestId, a.Delete)
	case *productv1.GetAction:
		return s.applyGetAction(ctx, req.RequestId, a.Get)
	default:
		return updateFailure(req.RequestId, "No valid action specified (create, update, delete, or get)")
	}
}

func (s *ProductServer) applyCreateAction(ctx context.Context, requestID string, req *productv1.CreateProductRequest) *productv1.ProductUpdateResponse {
	if verr := validateNewProduct(req); verr != nil {
		return updateFailure(requestID, verr.Message)
	}
	created, err := s.products.CreateProduct(ctx, entityFromCreate(req))
	if err != nil {
		return updateFailure(requestID, "Error creating product: "+err.Error())
	}
	return updateSuccess(requestID, "Product created successfully", toWire(created))
}

func (s *ProductServer) applyUpdateAction(ctx context.Context, requestID string, req *productv1.UpdateProductRequest) *productv1.ProductUpdateResponse {
	if verr := validateID(req.Id); verr != nil {
		return updateFailure(requestID, verr.Message)
	}
	updated, err := s.products.UpdateProduct(ctx, req.Id, patchFromUpdate(req))
	if err != nil {
		return updateFailure(requestID, "Error updating product: "+err.Error())
	}
	return updateSuccess(requestID, "Product updated successfully", toWire(updated))
}

func (s *ProductServer) applyDeleteAction(ctx context.Context, requestID string, req *productv1.DeleteProductRequest) *productv1.ProductUpdateResponse {
	if verr := validateID(req.Id); verr != nil {
		return updateFailure(requestID, verr.Message)
	}
	if err := s.products.DeleteProduct(ctx, req.Id); err != nil {
		return updateFailure(requestID, "Error deleting product: "+err.Error())
	}
	return updateSuccess(requestID, "Product deleted successfully", nil)
}

func (s *ProductServer) applyGetAction(ctx context.Context, requestID string, req *productv1.GetProductRequest) *productv1.ProductUpdateResponse {
	if verr := validateID(req.Id); verr != nil {
		return updateFailure(requestID, verr.Message)
	}
	p, err := s.products.GetProductByID(ctx, req.Id)
	if err != nil {
		return updateFailure(requestID, "Error retrieving product: "+err.Error())
	}
	return updateSuccess(requestID, "Product retrieved successfully", toWire(p))
}

func updateSuccess(requestID, msg string, p *productv1.Product) *productv1.ProductUpdateResponse {
	return &productv1.ProductUpdateResponse{
		RequestId:       requestID,
		Success:         true,
		Message:         msg,
		Product:         p,
		ServerTimestamp: time.Now().UnixMilli(),
	}
}

func updateFailure(requestID, msg string) *productv1.ProductUpdateResponse {
	return &productv1.ProductUpdateResponse{
		RequestId:       requestID,
		Success:         false,
		Message:         msg,
		ServerTimestamp: time.Now().UnixMilli(),
	}
}

// InventorySync applies signed quantity deltas one message at a time. A
// delta that would take the quantity negative is rejected without mutation.
func (s *ProductServer) InventorySync(stream productv1.ProductService_InventorySyncServer) error {
	ctx := stream.Context()
	var count int

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			s.log.Info("InventorySync stream completed", "processed", count)
			return nil
		}
		if err != nil {
			s.log.Error("InventorySync stream error", "error", err)
			return status.Errorf(codes.Internal, "error in bidirectional stream: %v", err)
		}

		count++
		s.log.Info("InventorySync received request",
			"n", count, "productId", req.ProductId, "change", req.QuantityChange)

		if err := stream.Send(s.handleInventorySync(ctx, count, req)); err != nil {
			return err
		}
	}
}

func (s *ProductServer) handleInventorySync(ctx context.Context, n int, req *productv1.InventorySyncRequest) *productv1.InventorySyncResponse {
	now := time.Now().UnixMilli()

	if req.ProductId == "" {
		return &productv1.InventorySyncResponse{
			ProductId:       fmt.Sprintf("unknown-%d", n),
			Success:         false,
			Message:         "Product ID cannot be empty",
			ServerTimestamp: now,
		}
	}

	p, err := s.products.GetProductByID(ctx, req.ProductId)
	if err != nil {
		s.log.Warn("InventorySync product not resolved", "id", req.ProductId)
		return &productv1.InventorySyncResponse{
			ProductId:       req.ProductId,
			Success:         false,
			Message:         "Product not found: " + err.Error(),
			ServerTimestamp: now,
		}
	}

	previous := p.Quantity
	newQuantity := previous + req.QuantityChange

	if newQuantity < 0 {
		return &productv1.InventorySyncResponse{
			ProductId:        req.ProductId,
			PreviousQuantity: previous,
			NewQuantity:      previous,
			Success:          false,
			Message: fmt.Sprintf(
				"Quantity change would result in negative inventory. Current: %d, Change: %d",
				previous, req.QuantityChange),
			ServerTimestamp: now,
		}
	}

	if _, err := s.products.AdjustQuantity(ctx, p, newQuantity); err != nil {
		return &productv1.InventorySyncResponse{
			ProductId:       req.ProductId,
			Success:         false,
			Message:         "Error updating inventory: " + err.Error(),
			ServerTimestamp: now,
		}
	}

	s.log.Debug("InventorySync applied",
		"id", req.ProductId, "previous", previous, "new", newQuantity, "reason", req.Reason)

	return &productv1.InventorySyncResponse{
		ProductId:        req.ProductId,
		PreviousQuantity: previous,
		NewQuantity:      newQuantity,
		Success:          true,
		Message:          "Inventory updated successfully. Reason: " + req.Reason,
		ServerTimestamp:  time.Now().UnixMilli(),
	}
}

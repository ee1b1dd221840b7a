package rpc

import (
	"errors"
	"fmt"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stocklane/product-service/api/productv1"
	"github.com/stocklane/product-service/internal/types"
)

// Client-stream aggregators. Each call owns one state struct on the handler
// frame; inbound messages mutate it in arrival order and exactly one summary
// goes out on half-close. A transport error on Recv aborts the call as
// Internal and the summary is never sent.

type bulkCreateState struct {
	received      int32
	createdIds    []string
	errorMessages []string
}

// BulkCreateProducts consumes a stream of create requests. A message that
// fails validation or store-create is recorded as an indexed error string
// and never aborts the call.
func (s *ProductServer) BulkCreateProducts(stream productv1.ProductService_BulkCreateProductsServer) error {
	ctx := stream.Context()
	state := bulkCreateState{}

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.log.Error("BulkCreateProducts stream error", "error", err)
			return status.Errorf(codes.Internal, "error in client stream: %v", err)
		}

		state.received++
		s.log.Debug("BulkCreateProducts received request",
			"n", state.received, "name", req.Name)

		if verr := validateNewProduct(req); verr != nil {
			state.errorMessages = append(state.errorMessages,
				fmt.Sprintf("Request #%d: %s", state.received, verr.Message))
			continue
		}

		created, err := s.products.CreateProduct(ctx, entityFromCreate(req))
		if err != nil {
			state.errorMessages = append(state.errorMessages,
				fmt.Sprintf("Request #%d: %s", state.received, err.Error()))
			continue
		}
		state.createdIds = append(state.createdIds, created.ID)
	}

	s.log.Info("BulkCreateProducts stream completed",
		"received", state.received,
		"created", len(state.createdIds),
		"failed", len(state.errorMessages))

	return stream.SendAndClose(&productv1.BulkCreateResponse{
		TotalReceived: state.received,
		TotalCreated:  int32(len(state.createdIds)),
		TotalFailed:   int32(len(state.errorMessages)),
		CreatedIds:    state.createdIds,
		ErrorMessages: state.errorMessages,
	})
}

// CalculateTotalValue consumes a stream of product ids and sums price ×
// quantity over the ones that resolve. Empty ids and unresolved ids are
// skipped silently; this aggregator reports nothing per message.
func (s *ProductServer) CalculateTotalValue(stream productv1.ProductService_CalculateTotalValueServer) error {
	ctx := stream.Context()
	var (
		requested int32
		found     []*types.Product
	)

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.log.Error("CalculateTotalValue stream error", "error", err)
			return status.Errorf(codes.Internal, "error in client stream: %v", err)
		}

		requested++
		if req.Id == "" {
			s.log.Warn("CalculateTotalValue request has empty product ID", "n", requested)
			continue
		}

		p, err := s.products.GetProductByID(ctx, req.Id)
		if err != nil {
			s.log.Warn("CalculateTotalValue product not resolved", "id", req.Id)
			continue
		}
		found = append(found, p)
	}

	var total float64
	for _, p := range found {
		total += p.Value()
	}
	var average float64
	if len(found) > 0 {
		average = total / float64(len(found))
	}

	s.log.Info("CalculateTotalValue stream completed",
		"requested", requested, "found", len(found), "total", total, "average", average)

	return stream.SendAndClose(&productv1.TotalValueResponse{
		ProductCount: int32(len(found)),
		TotalValue:   total,
		AveragePrice: average,
	})
}

package rpc

import (
	"context"
	"io"
	"testing"

	"google.golang.org/grpc/metadata"

	"github.com/stocklane/product-service/api/productv1"
	"github.com/stocklane/product-service/internal/platform/logger"
	"github.com/stocklane/product-service/internal/services"
	"github.com/stocklane/product-service/internal/types"
)

func newTestServer(repo *memRepo) *ProductServer {
	log := logger.NewNop()
	return NewProductServer(services.NewProductService(repo, log), log)
}

func seedProduct(id, name string, price float64, quantity int32, category string, active bool) *types.Product {
	return &types.Product{
		ID:          id,
		Name:        name,
		Description: name + " description",
		Price:       price,
		Quantity:    quantity,
		Category:    category,
		Active:      active,
		CreatedAt:   1000,
		UpdatedAt:   1000,
	}
}

// fakeServerStream satisfies grpc.ServerStream for the typed fakes below.
type fakeServerStream struct {
	ctx context.Context
}

func (f *fakeServerStream) SetHeader(metadata.MD) error  { return nil }
func (f *fakeServerStream) SendHeader(metadata.MD) error { return nil }
func (f *fakeServerStream) SetTrailer(metadata.MD)       {}
func (f *fakeServerStream) Context() context.Context {
	if f.ctx != nil {
		return f.ctx
	}
	return context.Background()
}
func (f *fakeServerStream) SendMsg(any) error { return io.ErrClosedPipe }
func (f *fakeServerStream) RecvMsg(any) error { return io.ErrClosedPipe }

type fakeListStream struct {
	fakeServerStream
	sent []*productv1.Product
}

func (f *fakeListStream) Send(m *productv1.Product) error {
	f.sent = append(f.sent, m)
	return nil
}

type fakeBulkCreateStream struct {
	fakeServerStream
	reqs    []*productv1.CreateProductRequest
	recvErr error
	idx     int
	summary *productv1.BulkCreateResponse
}

func (f *fakeBulkCreateStream) Recv() (*productv1.CreateProductRequest, error) {
	if f.idx < len(f.reqs) {
		req := f.reqs[f.idx]
		f.idx++
		return req, nil
	}
	if f.recvErr != nil {
		return nil, f.recvErr
	}
	return nil, io.EOF
}

func (f *fakeBulkCreateStream) SendAndClose(m *productv1.BulkCreateResponse) error {
	f.summary = m
	return nil
}

type fakeTotalValueStream struct {
	fakeServerStream
	reqs    []*productv1.ProductIdRequest
	recvErr error
	idx     int
	summary *productv1.TotalValueResponse
}

func (f *fakeTotalValueStream) Recv() (*productv1.ProductIdRequest, error) {
	if f.idx < len(f.reqs) {
		req := f.reqs[f.idx]
		f.idx++
		return req, nil
	}
	if f.recvErr != nil {
		return nil, f.recvErr
	}
	return nil, io.EOF
}

func (f *fakeTotalValueStream) SendAndClose(m *productv1.TotalValueResponse) error {
	f.summary = m
	return nil
}

type fakeProductUpdatesStream struct {
	fakeServerStream
	reqs    []*productv1.ProductUpdateRequest
	recvErr error
	idx     int
	sent    []*productv1.ProductUpdateResponse
}

func (f *fakeProductUpdatesStream) Recv() (*productv1.ProductUpdateRequest, error) {
	if f.idx < len(f.reqs) {
		req := f.reqs[f.idx]
		f.idx++
		return req, nil
	}
	if f.recvErr != nil {
		return nil, f.recvErr
	}
	return nil, io.EOF
}

func (f *fakeProductUpdatesStream) Send(m *productv1.ProductUpdateResponse) error {
	f.sent = append(f.sent, m)
	return nil
}

type fakeInventorySyncStream struct {
	fakeServerStream
	reqs    []*productv1.InventorySyncRequest
	recvErr error
	idx     int
	sent    []*productv1.InventorySyncResponse
}

func (f *fakeInventorySyncStream) Recv() (*productv1.InventorySyncRequest, error) {
	if f.idx < len(f.reqs) {
		req := f.reqs[f.idx]
		f.idx++
		return req, nil
	}
	if f.recvErr != nil {
		return nil, f.recvErr
	}
	return nil, io.EOF
}

func (f *fakeInventorySyncStream) Send(m *productv1.InventorySyncResponse) error {
	f.sent = append(f.sent, m)
	return nil
}

func mustQuantity(t *testing.T, repo *memRepo, id string, want int32) {
	t.Helper()
	p, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID(%q): %v", id, err)
	}
	if p.Quantity != want {
		t.Fatalf("quantity for %q = %d, want %d", id, p.Quantity, want)
	}
}

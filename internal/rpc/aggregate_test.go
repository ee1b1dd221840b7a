package rpc

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stocklane/product-service/api/productv1"
)

func TestBulkCreateProducts(t *testing.T) {
	repo := newMemRepo()
	srv := newTestServer(repo)
	stream := &fakeBulkCreateStream{
		reqs: []*productv1.CreateProductRequest{
			{Name: "Widget", Price: 10, Quantity: 2, Category: "Tools"},
			{Name: "", Price: 10, Quantity: 2}, // invalid: no name
			{Name: "Gadget", Price: 0},        // invalid: price
			{Name: "Doohickey", Price: 3.5, Quantity: 0, Category: "Tools"},
		},
	}

	if err := srv.BulkCreateProducts(stream); err != nil {
		t.Fatalf("BulkCreateProducts: %v", err)
	}
	sum := stream.summary
	if sum == nil {
		t.Fatal("no summary emitted")
	}
	if sum.TotalReceived != 4 {
		t.Fatalf("TotalReceived = %d, want 4", sum.TotalReceived)
	}
	if sum.TotalCreated != 2 || sum.TotalFailed != 2 {
		t.Fatalf("created/failed = %d/%d, want 2/2", sum.TotalCreated, sum.TotalFailed)
	}
	if sum.TotalCreated+sum.TotalFailed != sum.TotalReceived {
		t.Fatalf("counter algebra violated: %+v", sum)
	}
	if len(sum.CreatedIds) != 2 {
		t.Fatalf("CreatedIds = %v, want 2 entries", sum.CreatedIds)
	}
	if len(repo.items) != 2 {
		t.Fatalf("persisted %d records, want 2", len(repo.items))
	}
	if !strings.HasPrefix(sum.ErrorMessages[0], "Request #2:") {
		t.Fatalf("first error not indexed by arrival position: %q", sum.ErrorMessages[0])
	}
	if !strings.HasPrefix(sum.ErrorMessages[1], "Request #3:") {
		t.Fatalf("second error not indexed by arrival position: %q", sum.ErrorMessages[1])
	}
}

func TestBulkCreateProductsStoreFailure(t *testing.T) {
	repo := newMemRepo()
	repo.createErr = errors.New("store offline")
	srv := newTestServer(repo)
	stream := &fakeBulkCreateStream{
		reqs: []*productv1.CreateProductRequest{
			{Name: "Widget", Price: 10, Quantity: 2},
		},
	}

	if err := srv.BulkCreateProducts(stream); err != nil {
		t.Fatalf("store failure must not abort the call: %v", err)
	}
	sum := stream.summary
	if sum.TotalReceived != 1 || sum.TotalCreated != 0 || sum.TotalFailed != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if !strings.HasPrefix(sum.ErrorMessages[0], "Request #1:") {
		t.Fatalf("store failure not indexed: %q", sum.ErrorMessages[0])
	}
}

func TestBulkCreateProductsTransportError(t *testing.T) {
	srv := newTestServer(newMemRepo())
	stream := &fakeBulkCreateStream{
		reqs: []*productv1.CreateProductRequest{
			{Name: "Widget", Price: 10, Quantity: 2},
		},
		recvErr: errors.New("connection reset"),
	}

	err := srv.BulkCreateProducts(stream)
	if status.Code(err) != codes.Internal {
		t.Fatalf("code = %v, want Internal", status.Code(err))
	}
	if stream.summary != nil {
		t.Fatal("summary emitted after transport error")
	}
}

func TestCalculateTotalValue(t *testing.T) {
	repo := newMemRepo(
		seedProduct("a", "Alpha", 100, 2, "X", true),
		seedProduct("b", "Beta", 50, 3, "X", true),
	)
	srv := newTestServer(repo)

	t.Run("all_found", func(t *testing.T) {
		stream := &fakeTotalValueStream{
			reqs: []*productv1.ProductIdRequest{{Id: "a"}, {Id: "b"}},
		}
		if err := srv.CalculateTotalValue(stream); err != nil {
			t.Fatalf("CalculateTotalValue: %v", err)
		}
		sum := stream.summary
		if sum.ProductCount != 2 || sum.TotalValue != 350 || sum.AveragePrice != 175 {
			t.Fatalf("summary = %+v, want count=2 total=350 average=175", sum)
		}
	})

	t.Run("missing_id_skipped_silently", func(t *testing.T) {
		stream := &fakeTotalValueStream{
			reqs: []*productv1.ProductIdRequest{{Id: "a"}, {Id: "nope"}},
		}
		if err := srv.CalculateTotalValue(stream); err != nil {
			t.Fatalf("CalculateTotalValue: %v", err)
		}
		sum := stream.summary
		if sum.ProductCount != 1 || sum.TotalValue != 200 || sum.AveragePrice != 200 {
			t.Fatalf("summary = %+v, want count=1 total=200 average=200", sum)
		}
	})

	t.Run("empty_id_skipped_silently", func(t *testing.T) {
		stream := &fakeTotalValueStream{
			reqs: []*productv1.ProductIdRequest{{Id: ""}, {Id: "b"}},
		}
		if err := srv.CalculateTotalValue(stream); err != nil {
			t.Fatalf("CalculateTotalValue: %v", err)
		}
		sum := stream.summary
		if sum.ProductCount != 1 || sum.TotalValue != 150 {
			t.Fatalf("summary = %+v, want count=1 total=150", sum)
		}
	})

	t.Run("empty_stream", func(t *testing.T) {
		stream := &fakeTotalValueStream{}
		if err := srv.CalculateTotalValue(stream); err != nil {
			t.Fatalf("CalculateTotalValue: %v", err)
		}
		sum := stream.summary
		if sum.ProductCount != 0 || sum.TotalValue != 0 || sum.AveragePrice != 0 {
			t.Fatalf("summary = %+v, want zeroes", sum)
		}
	})
}

func TestCalculateTotalValueTransportError(t *testing.T) {
	srv := newTestServer(newMemRepo())
	stream := &fakeTotalValueStream{recvErr: errors.New("connection reset")}

	err := srv.CalculateTotalValue(stream)
	if status.Code(err) != codes.Internal {
		t.Fatalf("code = %v, want Internal", status.Code(err))
	}
	if stream.summary != nil {
		t.Fatal("summary emitted after transport error")
	}
}

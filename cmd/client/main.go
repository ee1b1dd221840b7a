// Demo client for the two client-streaming RPCs: bulk-creates a few products
// and then totals their inventory value over the returned ids.
//
// Usage: start the server (cmd/server), then:
//
//	go run ./cmd/client -addr localhost:9090
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/stocklane/product-service/api/productv1"
)

func main() {
	addr := flag.String("addr", "localhost:9090", "server address")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Printf("dial %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	client := productv1.NewProductServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ids, err := bulkCreate(ctx, client)
	if err != nil {
		fmt.Printf("bulk create: %v\n", err)
		os.Exit(1)
	}
	if err := totalValue(ctx, client, ids); err != nil {
		fmt.Printf("total value: %v\n", err)
		os.Exit(1)
	}
}

func bulkCreate(ctx context.Context, client productv1.ProductServiceClient) ([]string, error) {
	stream, err := client.BulkCreateProducts(ctx)
	if err != nil {
		return nil, err
	}

	batch := []*productv1.CreateProductRequest{
		{Name: "MacBook Pro 14\"", Description: "Apple laptop M3 Max", Price: 1999.99, Quantity: 3, Category: "Electronics"},
		{Name: "iPhone 15 Pro", Description: "Latest Apple phone", Price: 999.0, Quantity: 10, Category: "Electronics"},
		{Name: "", Description: "Invalid, no name", Price: 5, Quantity: 1, Category: "Misc"},
	}
	for _, req := range batch {
		if err := stream.Send(req); err != nil {
			return nil, err
		}
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		return nil, err
	}
	fmt.Printf("bulk create: received=%d created=%d failed=%d\n",
		resp.TotalReceived, resp.TotalCreated, resp.TotalFailed)
	for _, msg := range resp.ErrorMessages {
		fmt.Printf("  error: %s\n", msg)
	}
	return resp.CreatedIds, nil
}

func totalValue(ctx context.Context, client productv1.ProductServiceClient, ids []string) error {
	stream, err := client.CalculateTotalValue(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := stream.Send(&productv1.ProductIdRequest{Id: id}); err != nil {
			return err
		}
	}
	resp, err := stream.CloseAndRecv()
	if err != nil {
		return err
	}
	fmt.Printf("total value: count=%d total=%.2f average=%.2f\n",
		resp.ProductCount, resp.TotalValue, resp.AveragePrice)
	return nil
}

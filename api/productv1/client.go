package productv1

import (
	"context"

	"google.golang.org/grpc"
)

// ProductServiceClient is the client-side contract. All calls select the
// package codec, so a plain grpc.Dial connection works unmodified.
type ProductServiceClient interface {
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*Product, error)
	CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*Product, error)
	UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*Product, error)
	DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*DeleteProductResponse, error)
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (ProductService_ListProductsClient, error)
	SearchProducts(ctx context.Context, in *SearchProductsRequest, opts ...grpc.CallOption) (ProductService_SearchProductsClient, error)
	BulkCreateProducts(ctx context.Context, opts ...grpc.CallOption) (ProductService_BulkCreateProductsClient, error)
	CalculateTotalValue(ctx context.Context, opts ...grpc.CallOption) (ProductService_CalculateTotalValueClient, error)
	ProductUpdates(ctx context.Context, opts ...grpc.CallOption) (ProductService_ProductUpdatesClient, error)
	InventorySync(ctx context.Context, opts ...grpc.CallOption) (ProductService_InventorySyncClient, error)
}

type productServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProductServiceClient(cc grpc.ClientConnInterface) ProductServiceClient {
	return &productServiceClient{cc: cc}
}

func callOpts(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *productServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*Product, error) {
	out := new(Product)
	if err := c.cc.Invoke(ctx, ProductService_GetProduct_FullMethodName, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*Product, error) {
	out := new(Product)
	if err := c.cc.Invoke(ctx, ProductService_CreateProduct_FullMethodName, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productServiceClient) UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*Product, error) {
	out := new(Product)
	if err := c.cc.Invoke(ctx, ProductService_UpdateProduct_FullMethodName, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productServiceClient) DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*DeleteProductResponse, error) {
	out := new(DeleteProductResponse)
	if err := c.cc.Invoke(ctx, ProductService_DeleteProduct_FullMethodName, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

type ProductService_ListProductsClient interface {
	Recv() (*Product, error)
	grpc.ClientStream
}

type productServiceListProductsClient struct {
	grpc.ClientStream
}

func (x *productServiceListProductsClient) Recv() (*Product, error) {
	m := new(Product)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *productServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (ProductService_ListProductsClient, error) {
	stream, err := c.cc.NewStream(ctx, &ProductService_ServiceDesc.Streams[0], ProductService_ListProducts_FullMethodName, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	x := &productServiceListProductsClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type ProductService_SearchProductsClient interface {
	Recv() (*Product, error)
	grpc.ClientStream
}

type productServiceSearchProductsClient struct {
	grpc.ClientStream
}

func (x *productServiceSearchProductsClient) Recv() (*Product, error) {
	m := new(Product)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *productServiceClient) SearchProducts(ctx context.Context, in *SearchProductsRequest, opts ...grpc.CallOption) (ProductService_SearchProductsClient, error) {
	stream, err := c.cc.NewStream(ctx, &ProductService_ServiceDesc.Streams[1], ProductService_SearchProducts_FullMethodName, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	x := &productServiceSearchProductsClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type ProductService_BulkCreateProductsClient interface {
	Send(*CreateProductRequest) error
	CloseAndRecv() (*BulkCreateResponse, error)
	grpc.ClientStream
}

type productServiceBulkCreateProductsClient struct {
	grpc.ClientStream
}

func (x *productServiceBulkCreateProductsClient) Send(m *CreateProductRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *productServiceBulkCreateProductsClient) CloseAndRecv() (*BulkCreateResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(BulkCreateResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *productServiceClient) BulkCreateProducts(ctx context.Context, opts ...grpc.CallOption) (ProductService_BulkCreateProductsClient, error) {
	stream, err := c.cc.NewStream(ctx, &ProductService_ServiceDesc.Streams[2], ProductService_BulkCreateProducts_FullMethodName, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return &productServiceBulkCreateProductsClient{ClientStream: stream}, nil
}

type ProductService_CalculateTotalValueClient interface {
	Send(*ProductIdRequest) error
	CloseAndRecv() (*TotalValueResponse, error)
	grpc.ClientStream
}

type productServiceCalculateTotalValueClient struct {
	grpc.ClientStream
}

func (x *productServiceCalculateTotalValueClient) Send(m *ProductIdRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *productServiceCalculateTotalValueClient) CloseAndRecv() (*TotalValueResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(TotalValueResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *productServiceClient) CalculateTotalValue(ctx context.Context, opts ...grpc.CallOption) (ProductService_CalculateTotalValueClient, error) {
	stream, err := c.cc.NewStream(ctx, &ProductService_ServiceDesc.Streams[3], ProductService_CalculateTotalValue_FullMethodName, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return &productServiceCalculateTotalValueClient{ClientStream: stream}, nil
}

type ProductService_ProductUpdatesClient interface {
	Send(*ProductUpdateRequest) error
	Recv() (*ProductUpdateResponse, error)
	grpc.ClientStream
}

type productServiceProductUpdatesClient struct {
	grpc.ClientStream
}

func (x *productServiceProductUpdatesClient) Send(m *ProductUpdateRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *productServiceProductUpdatesClient) Recv() (*ProductUpdateResponse, error) {
	m := new(ProductUpdateResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *productServiceClient) ProductUpdates(ctx context.Context, opts ...grpc.CallOption) (ProductService_ProductUpdatesClient, error) {
	stream, err := c.cc.NewStream(ctx, &ProductService_ServiceDesc.Streams[4], ProductService_ProductUpdates_FullMethodName, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return &productServiceProductUpdatesClient{ClientStream: stream}, nil
}

type ProductService_InventorySyncClient interface {
	Send(*InventorySyncRequest) error
	Recv() (*InventorySyncResponse, error)
	grpc.ClientStream
}

type productServiceInventorySyncClient struct {
	grpc.ClientStream
}

func (x *productServiceInventorySyncClient) Send(m *InventorySyncRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *productServiceInventorySyncClient) Recv() (*InventorySyncResponse, error) {
	m := new(InventorySyncResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *productServiceClient) InventorySync(ctx context.Context, opts ...grpc.CallOption) (ProductService_InventorySyncClient, error) {
	stream, err := c.cc.NewStream(ctx, &ProductService_ServiceDesc.Streams[5], ProductService_InventorySync_FullMethodName, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return &productServiceInventorySyncClient{ClientStream: stream}, nil
}

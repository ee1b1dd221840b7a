package productv1

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "product.v1.ProductService"

const (
	ProductService_GetProduct_FullMethodName          = "/product.v1.ProductService/GetProduct"
	ProductService_CreateProduct_FullMethodName       = "/product.v1.ProductService/CreateProduct"
	ProductService_UpdateProduct_FullMethodName       = "/product.v1.ProductService/UpdateProduct"
	ProductService_DeleteProduct_FullMethodName       = "/product.v1.ProductService/DeleteProduct"
	ProductService_ListProducts_FullMethodName        = "/product.v1.ProductService/ListProducts"
	ProductService_SearchProducts_FullMethodName      = "/product.v1.ProductService/SearchProducts"
	ProductService_BulkCreateProducts_FullMethodName  = "/product.v1.ProductService/BulkCreateProducts"
	ProductService_CalculateTotalValue_FullMethodName = "/product.v1.ProductService/CalculateTotalValue"
	ProductService_ProductUpdates_FullMethodName      = "/product.v1.ProductService/ProductUpdates"
	ProductService_InventorySync_FullMethodName       = "/product.v1.ProductService/InventorySync"
)

// ProductServiceServer is the server-side contract for
// product.v1.ProductService across the four call patterns.
type ProductServiceServer interface {
	GetProduct(context.Context, *GetProductRequest) (*Product, error)
	CreateProduct(context.Context, *CreateProductRequest) (*Product, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*Product, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*DeleteProductResponse, error)
	ListProducts(*ListProductsRequest, ProductService_ListProductsServer) error
	SearchProducts(*SearchProductsRequest, ProductService_SearchProductsServer) error
	BulkCreateProducts(ProductService_BulkCreateProductsServer) error
	CalculateTotalValue(ProductService_CalculateTotalValueServer) error
	ProductUpdates(ProductService_ProductUpdatesServer) error
	InventorySync(ProductService_InventorySyncServer) error
}

type ProductService_ListProductsServer interface {
	Send(*Product) error
	grpc.ServerStream
}

type ProductService_SearchProductsServer interface {
	Send(*Product) error
	grpc.ServerStream
}

type ProductService_BulkCreateProductsServer interface {
	SendAndClose(*BulkCreateResponse) error
	Recv() (*CreateProductRequest, error)
	grpc.ServerStream
}

type ProductService_CalculateTotalValueServer interface {
	SendAndClose(*TotalValueResponse) error
	Recv() (*ProductIdRequest, error)
	grpc.ServerStream
}

type ProductService_ProductUpdatesServer interface {
	Send(*ProductUpdateResponse) error
	Recv() (*ProductUpdateRequest, error)
	grpc.ServerStream
}

type ProductService_InventorySyncServer interface {
	Send(*InventorySyncResponse) error
	Recv() (*InventorySyncRequest, error)
	grpc.ServerStream
}

type productServiceListProductsServer struct {
	grpc.ServerStream
}

func (x *productServiceListProductsServer) Send(m *Product) error {
	return x.ServerStream.SendMsg(m)
}

type productServiceSearchProductsServer struct {
	grpc.ServerStream
}

func (x *productServiceSearchProductsServer) Send(m *Product) error {
	return x.ServerStream.SendMsg(m)
}

type productServiceBulkCreateProductsServer struct {
	grpc.ServerStream
}

func (x *productServiceBulkCreateProductsServer) SendAndClose(m *BulkCreateResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *productServiceBulkCreateProductsServer) Recv() (*CreateProductRequest, error) {
	m := new(CreateProductRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type productServiceCalculateTotalValueServer struct {
	grpc.ServerStream
}

func (x *productServiceCalculateTotalValueServer) SendAndClose(m *TotalValueResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *productServiceCalculateTotalValueServer) Recv() (*ProductIdRequest, error) {
	m := new(ProductIdRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type productServiceProductUpdatesServer struct {
	grpc.ServerStream
}

func (x *productServiceProductUpdatesServer) Send(m *ProductUpdateResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *productServiceProductUpdatesServer) Recv() (*ProductUpdateRequest, error) {
	m := new(ProductUpdateRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type productServiceInventorySyncServer struct {
	grpc.ServerStream
}

func (x *productServiceInventorySyncServer) Send(m *InventorySyncResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *productServiceInventorySyncServer) Recv() (*InventorySyncRequest, error) {
	m := new(InventorySyncRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _ProductService_GetProduct_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetProductRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductServiceServer).GetProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductService_GetProduct_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProductServiceServer).GetProduct(ctx, req.(*GetProductRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProductService_CreateProduct_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateProductRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductServiceServer).CreateProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductService_CreateProduct_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProductServiceServer).CreateProduct(ctx, req.(*CreateProductRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProductService_UpdateProduct_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateProductRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductServiceServer).UpdateProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductService_UpdateProduct_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProductServiceServer).UpdateProduct(ctx, req.(*UpdateProductRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProductService_DeleteProduct_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteProductRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductServiceServer).DeleteProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductService_DeleteProduct_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProductServiceServer).DeleteProduct(ctx, req.(*DeleteProductRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProductService_ListProducts_Handler(srv any, stream grpc.ServerStream) error {
	m := new(ListProductsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ProductServiceServer).ListProducts(m, &productServiceListProductsServer{ServerStream: stream})
}

func _ProductService_SearchProducts_Handler(srv any, stream grpc.ServerStream) error {
	m := new(SearchProductsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ProductServiceServer).SearchProducts(m, &productServiceSearchProductsServer{ServerStream: stream})
}

func _ProductService_BulkCreateProducts_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ProductServiceServer).BulkCreateProducts(&productServiceBulkCreateProductsServer{ServerStream: stream})
}

func _ProductService_CalculateTotalValue_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ProductServiceServer).CalculateTotalValue(&productServiceCalculateTotalValueServer{ServerStream: stream})
}

func _ProductService_ProductUpdates_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ProductServiceServer).ProductUpdates(&productServiceProductUpdatesServer{ServerStream: stream})
}

func _ProductService_InventorySync_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ProductServiceServer).InventorySync(&productServiceInventorySyncServer{ServerStream: stream})
}

// ProductService_ServiceDesc wires the handlers above into grpc. Stream
// indices are referenced by the client stubs.
var ProductService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetProduct", Handler: _ProductService_GetProduct_Handler},
		{MethodName: "CreateProduct", Handler: _ProductService_CreateProduct_Handler},
		{MethodName: "UpdateProduct", Handler: _ProductService_UpdateProduct_Handler},
		{MethodName: "DeleteProduct", Handler: _ProductService_DeleteProduct_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "ListProducts", Handler: _ProductService_ListProducts_Handler, ServerStreams: true},
		{StreamName: "SearchProducts", Handler: _ProductService_SearchProducts_Handler, ServerStreams: true},
		{StreamName: "BulkCreateProducts", Handler: _ProductService_BulkCreateProducts_Handler, ClientStreams: true},
		{StreamName: "CalculateTotalValue", Handler: _ProductService_CalculateTotalValue_Handler, ClientStreams: true},
		{StreamName: "ProductUpdates", Handler: _ProductService_ProductUpdates_Handler, ServerStreams: true, ClientStreams: true},
		{StreamName: "InventorySync", Handler: _ProductService_InventorySync_Handler, ServerStreams: true, ClientStreams: true},
	},
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ProductService_ServiceDesc, srv)
}

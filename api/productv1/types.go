// Package productv1 defines the wire surface of product.v1.ProductService:
// the message types, the service descriptor, and typed client/server stream
// wrappers. Messages are plain structs carried by the package's JSON codec
// with snake_case field names on the wire.
package productv1

// Product is the canonical response shape for a stored product record.
// Timestamps are unix milliseconds.
type Product struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int32   `json:"quantity"`
	Category    string  `json:"category"`
	Active      bool    `json:"active"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

type GetProductRequest struct {
	Id string `json:"id"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int32   `json:"quantity"`
	Category    string  `json:"category"`
}

// UpdateProductRequest is a merge-patch: empty strings, a non-positive price
// and a negative quantity mean "leave unchanged". Active has no unset
// sentinel and always replaces the stored value.
type UpdateProductRequest struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int32   `json:"quantity"`
	Category    string  `json:"category"`
	Active      bool    `json:"active"`
}

type DeleteProductRequest struct {
	Id string `json:"id"`
}

type DeleteProductResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ListProductsRequest struct {
	Category   string `json:"category"`
	ActiveOnly bool   `json:"active_only"`
	PageSize   int32  `json:"page_size"`
}

type SearchProductsRequest struct {
	Name        string  `json:"name"`
	MaxPrice    float64 `json:"max_price"`
	MinQuantity int32   `json:"min_quantity"`
}

type BulkCreateResponse struct {
	TotalReceived int32    `json:"total_received"`
	TotalCreated  int32    `json:"total_created"`
	TotalFailed   int32    `json:"total_failed"`
	CreatedIds    []string `json:"created_ids"`
	ErrorMessages []string `json:"error_messages"`
}

type ProductIdRequest struct {
	Id string `json:"id"`
}

type TotalValueResponse struct {
	ProductCount int32   `json:"product_count"`
	TotalValue   float64 `json:"total_value"`
	AveragePrice float64 `json:"average_price"`
}

type ProductUpdateResponse struct {
	RequestId       string   `json:"request_id"`
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	Product         *Product `json:"product,omitempty"`
	ServerTimestamp int64    `json:"server_timestamp"`
}

// InventorySyncRequest adjusts a product's quantity by a signed delta.
// ClientTimestamp is advisory only and never used for ordering.
type InventorySyncRequest struct {
	ProductId       string `json:"product_id"`
	QuantityChange  int32  `json:"quantity_change"`
	Reason          string `json:"reason"`
	ClientTimestamp int64  `json:"client_timestamp"`
}

type InventorySyncResponse struct {
	ProductId        string `json:"product_id"`
	PreviousQuantity int32  `json:"previous_quantity"`
	NewQuantity      int32  `json:"new_quantity"`
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	ServerTimestamp  int64  `json:"server_timestamp"`
}

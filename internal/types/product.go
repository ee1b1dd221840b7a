package types

// Product is the persisted record managed by the service. The id is assigned
// by the store on creation and never changes. CreatedAt/UpdatedAt are unix
// milliseconds, stamped by the business layer rather than the database.
type Product struct {
	ID          string  `gorm:"primaryKey;column:id" json:"id"`
	Name        string  `gorm:"not null;column:name;index" json:"name"`
	Description string  `gorm:"column:description" json:"description"`
	Price       float64 `gorm:"not null;column:price" json:"price"`
	Quantity    int32   `gorm:"not null;column:quantity" json:"quantity"`
	Category    string  `gorm:"column:category;index" json:"category"`
	Active      bool    `gorm:"column:active;index" json:"active"`
	CreatedAt   int64   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   int64   `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// Value is the inventory worth of this product.
func (p *Product) Value() float64 {
	return p.Price * float64(p.Quantity)
}

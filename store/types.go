package store

import (
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Address is a postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Person is a customer of the store.
type Person struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Email        string    `json:"email"`
	Address      Address   `json:"address"`
	Previous     *Address  `json:"previous,omitempty"`
	Tags         []string  `json:"tags"`
	Born         time.Time `json:"born"`
	PasswordHash string    `json:"-" synth:"-"` // never generated
}

// Category nests through Parent; the root category has none.
type Category struct {
	Name   string    `json:"name"`
	Parent *Category `json:"parent,omitempty"`
}

// Product is a sellable item.
// Price is a fixed-point amount with two fractional digits.
type Product struct {
	ID        uuid.UUID     `json:"id"`
	SKU       string        `json:"sku"`
	Name      string        `json:"name"`
	Price     apd.Decimal   `json:"price"`
	Inventory uint16        `json:"inventory"`
	Status    ProductStatus `json:"status"`
	Category  *Category     `json:"category,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// Order is a purchase made by a customer.
type Order struct {
	ID         uuid.UUID     `json:"id"`
	Customer   Person        `json:"customer"`
	Status     OrderStatus   `json:"status"`
	Items      []OrderItem   `json:"items"`
	OrderedAt  time.Time     `json:"ordered_at"`
	Processing time.Duration `json:"processing"`
}

// OrderItem snapshots the product and its price at purchase time.
type OrderItem struct {
	Product   Product     `json:"product"`
	Quantity  uint8       `json:"quantity"`
	UnitPrice apd.Decimal `json:"unit_price"`
}

// ProductStatus is a custom type for type-safe status handling.
type ProductStatus string

const (
	ProductDraft    ProductStatus = "DRAFT"
	ProductListed   ProductStatus = "LISTED"
	ProductArchived ProductStatus = "ARCHIVED"
)

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses lists every valid order status.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusPaid, StatusShipped, StatusCancelled}
}

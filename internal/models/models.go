package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	SellerName  string          `json:"seller_name"`
}

type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

type Order struct {
	ID                 uint64          `json:"id"`
	CustomerID         uint64          `json:"customer_id"`
	CustomerName       string          `json:"customer_name"`
	Status             string          `json:"status"`
	DeliveryFee        decimal.Decimal `json:"delivery_fee"`
	PaymentMethod      string          `json:"payment_method,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	DeliveryAddress    Address         `json:"delivery_address"`
	Items              []OrderItem     `json:"items,omitempty"`
}

type OrderItem struct {
	OrderID      uint64          `json:"order_id"`
	ProductID    uint64          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Observations string          `json:"observations,omitempty"`
}

// Subtotal is quantity times the unit price snapshotted when the item
// was added, not the product's current price.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order statuses are persisted as-is; the storage layer enforces no
// transition rules.
const (
	OrderStatusWaiting       = "WAITING"
	OrderStatusInPreparation = "IN_PREPARATION"
	OrderStatusOnTheWay      = "ON_THE_WAY"
	OrderStatusDelivered     = "DELIVERED"
	OrderStatusCancelled     = "CANCELLED"
)

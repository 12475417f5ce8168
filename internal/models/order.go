package models

import (
	"strconv"
	"time"
)

// Delivery status values an order can be in.
const (
	DeliveryPending   = "pending"
	DeliveryShipped   = "shipped"
	DeliveryDelivered = "delivered"
	DeliveryCancelled = "cancelled"
)

// Payment status values.
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// ValidDeliveryStatus reports whether s is one of the known delivery states.
func ValidDeliveryStatus(s string) bool {
	switch s {
	case DeliveryPending, DeliveryShipped, DeliveryDelivered, DeliveryCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is one of the known payment states.
func ValidPaymentStatus(s string) bool {
	return s == PaymentUnpaid || s == PaymentPaid
}

// OrderUser is the customer sub-record embedded in an order.
type OrderUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Delivery holds the shipping details of an order.
type Delivery struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
}

// Payment holds the payment sub-record of an order.
type Payment struct {
	ID     *string `json:"id"`
	Method string  `json:"method"`
	Status string  `json:"status"` // unpaid or paid
}

// CartItem is a single line of an order.
type CartItem struct {
	ID       int     `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price,omitempty"` // unit price snapshot at order time
	IsPaid   bool    `json:"is_paid,omitempty"`
}

// Order is the canonical order shape. The server computes TotalPrice; the
// client trusts it and never re-derives it from the cart lines.
type Order struct {
	ID             int        `json:"id"`
	User           OrderUser  `json:"user"`
	Delivery       Delivery   `json:"delivery"`
	Payment        Payment    `json:"payment"`
	DeliveryStatus string     `json:"delivery_status"`
	TotalPrice     string     `json:"totalPrice"`
	Carts          []CartItem `json:"carts"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// EntityID returns the order identifier as a string.
func (o Order) EntityID() string { return strconv.Itoa(o.ID) }

// TotalPriceValue parses the server-supplied total. Returns 0 for a total
// that does not parse as a number.
func (o Order) TotalPriceValue() float64 {
	v, err := strconv.ParseFloat(o.TotalPrice, 64)
	if err != nil {
		return 0
	}
	return v
}

// OrderStatusUpdate is the partial PATCH body for an order. Nil fields are
// omitted so the server leaves the corresponding sub-record untouched.
type OrderStatusUpdate struct {
	PaymentStatus  *string `json:"payment_status,omitempty"`
	DeliveryStatus *string `json:"delivery_status,omitempty"`
}

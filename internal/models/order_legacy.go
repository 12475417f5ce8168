package models

import (
	"strconv"
	"strings"
	"time"
)

// LegacyOrder is the older order wire shape (string id, flat delivery and
// payment strings, a "products" line array). It still appears in archived
// exports and in the embedded demo dataset. New code must convert it at the
// boundary with AdaptLegacyOrder instead of modeling the fields as optional
// on Order.
type LegacyOrder struct {
	ID       string `json:"id"`
	User     OrderUser
	Products []LegacyOrderLine `json:"products"`
	Delivery string            `json:"delivery"`
	Payment  string            `json:"payment"`
	Total    float64           `json:"totalPrice"`
	Created  time.Time         `json:"created_at"`
	Updated  time.Time         `json:"updated_at"`
}

// LegacyOrderLine is a line item of a legacy order.
type LegacyOrderLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// AdaptLegacyOrder normalizes a legacy order into the canonical shape.
// Legacy ids look like "ORD-001"; the numeric suffix becomes the canonical
// id. The flat payment string becomes the payment method with an unpaid
// status, and the flat delivery string is kept as the delivery name.
func AdaptLegacyOrder(l LegacyOrder) Order {
	carts := make([]CartItem, 0, len(l.Products))
	for i, p := range l.Products {
		carts = append(carts, CartItem{
			ID:       i + 1,
			Product:  Product{ID: p.ID, Name: p.Name, Cost: p.Price},
			Quantity: p.Quantity,
			Price:    p.Price,
		})
	}
	return Order{
		ID:             legacyOrderID(l.ID),
		User:           l.User,
		Delivery:       Delivery{Name: l.Delivery},
		Payment:        Payment{Method: l.Payment, Status: PaymentUnpaid},
		DeliveryStatus: DeliveryPending,
		TotalPrice:     strconv.FormatFloat(l.Total, 'f', 2, 64),
		Carts:          carts,
		CreatedAt:      l.Created,
		UpdatedAt:      l.Updated,
	}
}

func legacyOrderID(id string) int {
	if i := strings.LastIndexByte(id, '-'); i >= 0 {
		id = id[i+1:]
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0
	}
	return n
}

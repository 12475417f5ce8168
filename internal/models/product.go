package models

import "time"

// Product represents a product in the store catalog.
type Product struct {
	ID           string     `json:"id"`
	Name         string     `json:"name" validate:"required"`
	Description  string     `json:"description,omitempty"`
	Cost         float64    `json:"cost" validate:"gt=0"`
	Quantity     int        `json:"quantity" validate:"gte=0"`
	QuantitySale int        `json:"quantity_sale,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	Categories   []Category `json:"categories,omitempty"`
	Tags         []Tag      `json:"tags,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// EntityID returns the product identifier.
func (p Product) EntityID() string { return p.ID }

package models

import "time"

// Category groups products, e.g. "Espresso Machines".
type Category struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityID returns the category identifier.
func (c Category) EntityID() string { return c.ID }

// Tag is a free-form product label, e.g. "Best Seller".
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityID returns the tag identifier.
func (t Tag) EntityID() string { return t.ID }

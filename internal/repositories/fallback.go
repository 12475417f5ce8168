package repositories

import (
	"time"

	"kopiadmin/internal/models"
)

// Embedded fallback datasets. They keep the dashboard populated for
// demonstration when the backend is unreachable; only list reads ever serve
// them, mutations never do.

func fallbackTime(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// FallbackProducts is the demo product collection served when the live
// product list cannot be fetched.
func FallbackProducts() []models.Product {
	return []models.Product{
		{
			ID:          "aaaaaaaa-1111-2222-3333-aaaaaaaaaaaa",
			Name:        "Pro Espresso Machine",
			Description: "High-quality espresso machine with stainless steel boiler.",
			Cost:        499.99,
			Quantity:    10,
			ImageURL:    "https://images.kopiadmin.dev/demo/espresso-machine.jpg",
			CreatedAt:   fallbackTime("2025-04-26T09:00:00Z"),
			UpdatedAt:   fallbackTime("2025-04-26T09:00:00Z"),
		},
		{
			ID:          "bbbbbbbb-1111-2222-3333-bbbbbbbbbbbb",
			Name:        "Arabica Coffee Beans",
			Description: "Premium coffee beans",
			Cost:        15.99,
			Quantity:    5,
			ImageURL:    "https://images.kopiadmin.dev/demo/arabica-beans.jpg",
			CreatedAt:   fallbackTime("2023-01-15T00:00:00Z"),
			UpdatedAt:   fallbackTime("2023-04-10T00:00:00Z"),
		},
	}
}

// FallbackCategories is the demo category collection.
func FallbackCategories() []models.Category {
	return []models.Category{
		{
			ID:        "11111111-1111-1111-1111-111111111111",
			Title:     "Espresso Machines",
			CreatedAt: fallbackTime("2025-04-26T10:00:00Z"),
			UpdatedAt: fallbackTime("2025-04-26T10:00:00Z"),
		},
		{
			ID:        "22222222-2222-2222-2222-222222222222",
			Title:     "Coffee Grinders",
			CreatedAt: fallbackTime("2025-04-26T10:00:00Z"),
			UpdatedAt: fallbackTime("2025-04-26T10:00:00Z"),
		},
	}
}

// FallbackTags is the demo tag collection.
func FallbackTags() []models.Tag {
	return []models.Tag{
		{
			ID:        "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
			Name:      "New Arrival",
			CreatedAt: fallbackTime("2025-04-26T10:00:00Z"),
			UpdatedAt: fallbackTime("2025-04-26T10:00:00Z"),
		},
		{
			ID:        "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb",
			Name:      "Best Seller",
			CreatedAt: fallbackTime("2025-04-26T10:00:00Z"),
			UpdatedAt: fallbackTime("2025-04-26T10:00:00Z"),
		},
	}
}

// DemoOrders is a small order set used by the dashboard summary when the
// live orders cannot be fetched. The records are archived in the legacy
// shape and normalized through the adapter, never served raw.
func DemoOrders() []models.Order {
	legacy := []models.LegacyOrder{
		{
			ID:   "ORD-001",
			User: models.OrderUser{ID: "USER-001", Email: "john@example.com"},
			Products: []models.LegacyOrderLine{
				{ID: "ITEM-001", Name: "Espresso", Quantity: 2, Price: 3.50},
				{ID: "ITEM-002", Name: "Croissant", Quantity: 1, Price: 2.75},
			},
			Delivery: "Standard",
			Payment:  "Credit Card",
			Total:    10.73,
			Created:  fallbackTime("2023-04-15T10:30:00Z"),
			Updated:  fallbackTime("2023-04-15T10:30:00Z"),
		},
		{
			ID:   "ORD-002",
			User: models.OrderUser{ID: "USER-002", Email: "jane@example.com"},
			Products: []models.LegacyOrderLine{
				{ID: "ITEM-003", Name: "Latte", Quantity: 1, Price: 4.50},
				{ID: "ITEM-004", Name: "Blueberry Muffin", Quantity: 2, Price: 3.25},
			},
			Delivery: "Express",
			Payment:  "PayPal",
			Total:    12.10,
			Created:  fallbackTime("2023-04-14T14:45:00Z"),
			Updated:  fallbackTime("2023-04-14T14:45:00Z"),
		},
	}

	orders := make([]models.Order, 0, len(legacy))
	for _, l := range legacy {
		orders = append(orders, models.AdaptLegacyOrder(l))
	}
	return orders
}

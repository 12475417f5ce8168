package pages

import (
	"strconv"

	"kopiadmin/internal/models"
	"kopiadmin/internal/repositories"
)

// OrderFilters are the client-side filters of the orders table. Zero values
// mean "all".
type OrderFilters struct {
	Search         string
	PaymentStatus  string
	DeliveryStatus string
}

// OrdersPage is the view-model controller of the orders table. Orders are
// created by the storefront; the dashboard only inspects them and updates
// their status.
type OrdersPage struct {
	*Controller[models.Order]
	repo repositories.OrderRepository

	stale bool
}

// NewOrdersPage creates the page in the Idle state.
func NewOrdersPage(repo repositories.OrderRepository) *OrdersPage {
	return &OrdersPage{
		Controller: NewController[models.Order](repo.GetAll),
		repo:       repo,
	}
}

// Filtered derives the view matching the search query (over order id,
// customer name and email) and the categorical status filters.
func (p *OrdersPage) Filtered(f OrderFilters) []models.Order {
	return p.Filter(func(o models.Order) bool {
		if f.Search != "" &&
			!containsFold(strconv.Itoa(o.ID), f.Search) &&
			!containsFold(o.User.Username, f.Search) &&
			!containsFold(o.User.Email, f.Search) {
			return false
		}
		if f.PaymentStatus != "" && o.Payment.Status != f.PaymentStatus {
			return false
		}
		if f.DeliveryStatus != "" && o.DeliveryStatus != f.DeliveryStatus {
			return false
		}
		return true
	})
}

// SetStatus patches the payment and/or delivery status of an order. On
// success the held entry is replaced by the server's version; on failure the
// collection is unchanged.
func (p *OrdersPage) SetStatus(id int, update models.OrderStatusUpdate) error {
	updated, err := p.repo.UpdateStatus(id, update)
	if err != nil {
		return err
	}
	p.Replace(*updated)
	return nil
}

// MarkStale flags the held collection as outdated, e.g. after an order event
// arrives from the broker. The page decides when to reload.
func (p *OrdersPage) MarkStale() { p.stale = true }

// Stale reports whether the collection was flagged as outdated.
func (p *OrdersPage) Stale() bool { return p.stale }

// Reload refreshes the collection and clears the stale flag.
func (p *OrdersPage) Reload() error {
	p.stale = false
	return p.Controller.Reload()
}

package repositories

import "kopiadmin/internal/models"

// OrderRepository defines the interface for order data access. Orders are
// created by the storefront, not the dashboard, so there is no Create here;
// the dashboard only lists orders and updates their status.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id int) (*models.Order, error)
	UpdateStatus(id int, update models.OrderStatusUpdate) (*models.Order, error)
}

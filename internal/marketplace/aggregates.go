package marketplace

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
)

// SellerStats are the dashboard counters for one seller. Recomputed from
// scratch on every read; nothing here is indexed or cached, which is fine at
// in-memory scale but must not be assumed by future scaling work.
type SellerStats struct {
	ActiveListings     int             `json:"active_listings"`
	NewEnquiries       int             `json:"new_enquiries"`
	DirectContactLeads int             `json:"direct_contact_leads"`
	Revenue            decimal.Decimal `json:"revenue"`
}

// AdminStats summarize the whole marketplace for the admin dashboard.
type AdminStats struct {
	TotalSellers   int             `json:"total_sellers"`
	PendingSellers int             `json:"pending_sellers"`
	TotalListings  int             `json:"total_listings"`
	TotalOrders    int             `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}

// StatsForSeller recomputes the seller's dashboard counters.
func (e *Engine) StatsForSeller(sellerID uuid.UUID) (*SellerStats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sellers[sellerID]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "seller not found")
	}

	stats := SellerStats{Revenue: decimal.Zero}
	for _, product := range e.products {
		if product.SellerID == sellerID && product.Status == enums.ProductStatusActive {
			stats.ActiveListings++
		}
	}
	for _, enquiry := range e.enquiries {
		if enquiry.SellerID != sellerID {
			continue
		}
		if enquiry.Status == enums.EnquiryStatusNew {
			stats.NewEnquiries++
		}
		if enquiry.Channel == enums.EnquiryChannelDirectContact {
			stats.DirectContactLeads++
		}
	}
	for _, order := range e.orders {
		for _, line := range order.LineItems {
			if line.SellerID == sellerID {
				stats.Revenue = stats.Revenue.Add(line.Subtotal)
			}
		}
	}
	return &stats, nil
}

// StatsForAdmin recomputes the marketplace-wide counters.
func (e *Engine) StatsForAdmin() *AdminStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats := AdminStats{
		TotalSellers:  len(e.sellers),
		TotalListings: len(e.products),
		TotalOrders:   len(e.orders),
		TotalRevenue:  decimal.Zero,
	}
	for _, seller := range e.sellers {
		if seller.Status == enums.SellerStatusPendingApproval {
			stats.PendingSellers++
		}
	}
	for _, order := range e.orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(order.Total)
	}
	return &stats
}

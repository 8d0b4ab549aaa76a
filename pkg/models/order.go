package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	"github.com/angelmondragon/partdepot-backend/pkg/types"
)

// Order is a checkout result. Line items snapshot product name, unit price,
// and quantity at time of purchase, so later product edits never rewrite
// order history. Immutable after creation.
type Order struct {
	ID              uuid.UUID          `json:"id"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   string             `json:"customer_email,omitempty"`
	DeliveryMode    enums.DeliveryMode `json:"delivery_mode"`
	DeliveryAddress *types.Address     `json:"delivery_address,omitempty"`
	LineItems       []OrderLineItem    `json:"line_items"`
	Total           decimal.Decimal    `json:"total"`
	Status          enums.OrderStatus  `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
}

// OrderLineItem is one purchased line, captured at purchase time.
type OrderLineItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	SellerID  uuid.UUID       `json:"seller_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

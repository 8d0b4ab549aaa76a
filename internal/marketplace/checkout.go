package marketplace

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
	"github.com/angelmondragon/partdepot-backend/pkg/models"
	"github.com/angelmondragon/partdepot-backend/pkg/types"
)

// CheckoutInput captures the customer details collected at checkout.
type CheckoutInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryMode    enums.DeliveryMode
	DeliveryAddress *types.Address
}

// Checkout converts a cart into an order. Each line snapshots the product's
// name and unit price at call time, so later edits never rewrite the order.
// Quantity decrements floor at zero and flip the listing to out_of_stock when
// the floor is hit. Every line is validated before any quantity is touched:
// the mutation applies to all lines or to none. This is the only operation
// that mutates Product.Quantity.
func (e *Engine) Checkout(cart []models.CartEntry, input CheckoutInput) (*models.Order, error) {
	if len(cart) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart contains no items")
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	if !input.DeliveryMode.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid delivery mode")
	}
	if input.DeliveryMode == enums.DeliveryModeDelivery {
		if input.DeliveryAddress == nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery address is required")
		}
		if err := input.DeliveryAddress.Validate(); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery address")
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Validation pass: nothing mutates until every line is known good.
	resolved := make([]*models.Product, len(cart))
	for i, entry := range cart {
		if entry.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "line quantity must be at least 1")
		}
		product, ok := e.products[entry.ProductID]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]string{"product_id": entry.ProductID.String()})
		}
		resolved[i] = product
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:            uuid.New(),
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		CustomerEmail: strings.TrimSpace(input.CustomerEmail),
		DeliveryMode:  input.DeliveryMode,
		LineItems:     make([]models.OrderLineItem, 0, len(cart)),
		Total:         decimal.Zero,
		Status:        enums.OrderStatusPaid,
		CreatedAt:     now,
	}
	if input.DeliveryAddress != nil {
		address := *input.DeliveryAddress
		order.DeliveryAddress = &address
	}

	for i, entry := range cart {
		product := resolved[i]
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		order.LineItems = append(order.LineItems, models.OrderLineItem{
			ProductID: product.ID,
			SellerID:  product.SellerID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  entry.Quantity,
			Subtotal:  subtotal,
		})
		order.Total = order.Total.Add(subtotal)

		product.Quantity -= entry.Quantity
		if product.Quantity <= 0 {
			product.Quantity = 0
			product.Status = enums.ProductStatusOutOfStock
		}
		product.UpdatedAt = now
	}

	e.orders = append(e.orders, order)

	out := order
	out.LineItems = append([]models.OrderLineItem(nil), order.LineItems...)
	return &out, nil
}

// ListOrders returns every order, oldest first.
func (e *Engine) ListOrders() []models.Order {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Order, len(e.orders))
	for i, order := range e.orders {
		out[i] = order
		out[i].LineItems = append([]models.OrderLineItem(nil), order.LineItems...)
	}
	return out
}

package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/partdepot-backend/api/responses"
	"github.com/angelmondragon/partdepot-backend/api/validators"
	cartsvc "github.com/angelmondragon/partdepot-backend/internal/cart"
	"github.com/angelmondragon/partdepot-backend/internal/marketplace"
	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
	"github.com/angelmondragon/partdepot-backend/pkg/logger"
	"github.com/angelmondragon/partdepot-backend/pkg/types"
)

type checkoutRequest struct {
	CustomerName    string         `json:"customer_name" validate:"required"`
	CustomerPhone   string         `json:"customer_phone" validate:"required"`
	CustomerEmail   string         `json:"customer_email,omitempty" validate:"omitempty,email"`
	DeliveryMode    string         `json:"delivery_mode" validate:"required"`
	DeliveryAddress *types.Address `json:"delivery_address,omitempty"`
}

// Checkout converts the session cart into an order. The cart is cleared only
// when the engine accepts every line.
func Checkout(engine *marketplace.Engine, carts cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(cartTokenHeader))
		if token == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		mode, err := enums.ParseDeliveryMode(strings.TrimSpace(payload.DeliveryMode))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery mode"))
			return
		}

		order, err := engine.Checkout(carts.Get(token), marketplace.CheckoutInput{
			CustomerName:    payload.CustomerName,
			CustomerPhone:   payload.CustomerPhone,
			CustomerEmail:   payload.CustomerEmail,
			DeliveryMode:    mode,
			DeliveryAddress: payload.DeliveryAddress,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		carts.Clear(token)

		ctx := logg.WithField(r.Context(), "order_id", order.ID.String())
		logg.Info(ctx, "checkout.completed")
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// AdminListOrders lists every recorded order.
func AdminListOrders(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, engine.ListOrders())
	}
}

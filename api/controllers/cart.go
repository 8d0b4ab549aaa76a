package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/angelmondragon/partdepot-backend/api/responses"
	"github.com/angelmondragon/partdepot-backend/api/validators"
	cartsvc "github.com/angelmondragon/partdepot-backend/internal/cart"
	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
	"github.com/angelmondragon/partdepot-backend/pkg/logger"
)

// cartTokenHeader carries the opaque session cart token. A missing token on
// an add starts a new cart; the token is echoed back on every response.
const cartTokenHeader = "X-Cart-Token"

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// AddCartItem puts a product into the session cart.
func AddCartItem(carts cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		token, entries, err := carts.Add(r.Header.Get(cartTokenHeader), productID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set(cartTokenHeader, token)
		responses.WriteSuccess(w, map[string]any{"token": token, "items": entries})
	}
}

type setCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// SetCartItem overwrites one line's quantity. Zero removes the line.
func SetCartItem(carts cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(cartTokenHeader))
		if token == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required"))
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload setCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entries, err := carts.SetQuantity(token, productID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set(cartTokenHeader, token)
		responses.WriteSuccess(w, map[string]any{"token": token, "items": entries})
	}
}

// GetCart returns the session cart's current entries.
func GetCart(carts cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(cartTokenHeader))
		if token == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required"))
			return
		}

		w.Header().Set(cartTokenHeader, token)
		responses.WriteSuccess(w, map[string]any{"token": token, "items": carts.Get(token)})
	}
}

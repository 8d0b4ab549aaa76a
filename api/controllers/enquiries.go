package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/angelmondragon/partdepot-backend/api/responses"
	"github.com/angelmondragon/partdepot-backend/api/validators"
	"github.com/angelmondragon/partdepot-backend/internal/marketplace"
	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
	"github.com/angelmondragon/partdepot-backend/pkg/logger"
)

type createEnquiryRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	BuyerName  string `json:"buyer_name" validate:"required"`
	BuyerPhone string `json:"buyer_phone" validate:"required"`
	BuyerEmail string `json:"buyer_email,omitempty" validate:"omitempty,email"`
	Message    string `json:"message,omitempty"`
	Channel    string `json:"channel" validate:"required"`
}

// CreateEnquiry records buyer interest in a listing and returns the short
// reference the buyer can quote.
func CreateEnquiry(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createEnquiryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		channel, err := enums.ParseEnquiryChannel(strings.TrimSpace(payload.Channel))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid channel"))
			return
		}

		reference, err := engine.RecordEnquiry(marketplace.EnquiryDraft{
			ProductID:  productID,
			BuyerName:  payload.BuyerName,
			BuyerPhone: payload.BuyerPhone,
			BuyerEmail: payload.BuyerEmail,
			Message:    payload.Message,
			Channel:    channel,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithProductID(r.Context(), productID.String())
		logg.Info(ctx, "enquiry.recorded")
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"reference": reference})
	}
}

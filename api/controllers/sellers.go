package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/angelmondragon/partdepot-backend/api/responses"
	"github.com/angelmondragon/partdepot-backend/api/validators"
	"github.com/angelmondragon/partdepot-backend/internal/marketplace"
	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
	"github.com/angelmondragon/partdepot-backend/pkg/logger"
	"github.com/angelmondragon/partdepot-backend/pkg/types"
)

type registerSellerRequest struct {
	BusinessName  string        `json:"business_name" validate:"required"`
	ContactPerson string        `json:"contact_person" validate:"required"`
	Phone         string        `json:"phone" validate:"required"`
	Email         string        `json:"email,omitempty" validate:"omitempty,email"`
	Address       types.Address `json:"address"`
	LogoURL       *string       `json:"logo_url,omitempty"`
}

func (r registerSellerRequest) toDraft() marketplace.SellerDraft {
	return marketplace.SellerDraft{
		BusinessName:  r.BusinessName,
		ContactPerson: r.ContactPerson,
		Phone:         r.Phone,
		Email:         r.Email,
		Address:       r.Address,
		LogoURL:       r.LogoURL,
	}
}

// RegisterSeller creates a seller account pending admin approval.
func RegisterSeller(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload registerSellerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		seller, err := engine.RegisterSeller(payload.toDraft())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithSellerID(r.Context(), seller.UserID.String())
		logg.Info(ctx, "seller.registered")
		responses.WriteSuccessStatus(w, http.StatusCreated, seller)
	}
}

// GetSeller returns one seller profile.
func GetSeller(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, err := sellerIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		seller, err := engine.GetSeller(sellerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, seller)
	}
}

// SellerDashboard returns the seller's derived counters.
func SellerDashboard(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, err := sellerIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		stats, err := engine.StatsForSeller(sellerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}

// SellerEnquiries lists the enquiries recorded against the seller's listings.
func SellerEnquiries(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, err := sellerIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		enquiries, err := engine.ListSellerEnquiries(sellerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, enquiries)
	}
}

// AdminListSellers lists all sellers, pending approvals first.
func AdminListSellers(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, engine.ListSellers())
	}
}

type setSellerStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminSetSellerStatus moves a seller through the moderation lifecycle.
func AdminSetSellerStatus(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, err := sellerIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload setSellerStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseSellerStatus(strings.TrimSpace(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid seller status"))
			return
		}

		if err := engine.SetSellerStatus(sellerID, status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithSellerID(r.Context(), sellerID.String())
		logg.Info(ctx, "seller.status_changed")

		seller, err := engine.GetSeller(sellerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, seller)
	}
}

func sellerIDParam(r *http.Request) (uuid.UUID, error) {
	sellerID, err := uuid.Parse(chi.URLParam(r, "sellerId"))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid seller id")
	}
	return sellerID, nil
}

package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/partdepot-backend/api/responses"
	"github.com/angelmondragon/partdepot-backend/api/validators"
	"github.com/angelmondragon/partdepot-backend/internal/marketplace"
	"github.com/angelmondragon/partdepot-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/partdepot-backend/pkg/errors"
	"github.com/angelmondragon/partdepot-backend/pkg/logger"
	"github.com/angelmondragon/partdepot-backend/pkg/models"
)

type vehicleDetailsRequest struct {
	Mileage      int    `json:"mileage" validate:"min=0"`
	Transmission string `json:"transmission" validate:"required"`
	VIN          string `json:"vin,omitempty" validate:"omitempty,len=17"`
}

func (v vehicleDetailsRequest) toDetails() (*models.VehicleDetails, error) {
	transmission, err := enums.ParseTransmission(strings.TrimSpace(v.Transmission))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transmission")
	}
	return &models.VehicleDetails{
		Mileage:      v.Mileage,
		Transmission: transmission,
		VIN:          strings.ToUpper(strings.TrimSpace(v.VIN)),
	}, nil
}

type createProductRequest struct {
	SKU         string                 `json:"sku,omitempty"`
	Name        string                 `json:"name" validate:"required"`
	Description string                 `json:"description,omitempty"`
	Category    string                 `json:"category" validate:"required"`
	Make        string                 `json:"make,omitempty"`
	Model       string                 `json:"model,omitempty"`
	YearStart   int                    `json:"year_start,omitempty" validate:"omitempty,min=1900"`
	YearEnd     int                    `json:"year_end,omitempty" validate:"omitempty,min=1900"`
	Condition   string                 `json:"condition" validate:"required"`
	Price       string                 `json:"price" validate:"required"`
	Quantity    int                    `json:"quantity" validate:"min=0"`
	ImageRefs   []string               `json:"image_refs" validate:"required,min=1,dive,required"`
	IsVehicle   bool                   `json:"is_vehicle,omitempty"`
	Vehicle     *vehicleDetailsRequest `json:"vehicle,omitempty"`
}

func (r createProductRequest) toDraft() (marketplace.ProductDraft, error) {
	category, err := enums.ParseProductCategory(strings.TrimSpace(r.Category))
	if err != nil {
		return marketplace.ProductDraft{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	condition, err := enums.ParseProductCondition(strings.TrimSpace(r.Condition))
	if err != nil {
		return marketplace.ProductDraft{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid condition")
	}
	price, err := decimal.NewFromString(strings.TrimSpace(r.Price))
	if err != nil {
		return marketplace.ProductDraft{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price")
	}

	draft := marketplace.ProductDraft{
		SKU:         strings.TrimSpace(r.SKU),
		Name:        r.Name,
		Description: r.Description,
		Category:    category,
		Make:        strings.TrimSpace(r.Make),
		Model:       strings.TrimSpace(r.Model),
		YearStart:   r.YearStart,
		YearEnd:     r.YearEnd,
		Condition:   condition,
		Price:       price,
		Quantity:    r.Quantity,
		ImageRefs:   r.ImageRefs,
		IsVehicle:   r.IsVehicle,
	}
	if r.Vehicle != nil {
		details, err := r.Vehicle.toDetails()
		if err != nil {
			return marketplace.ProductDraft{}, err
		}
		draft.Vehicle = details
	}
	return draft, nil
}

// SellerCreateProduct publishes a new listing under the seller's inventory.
func SellerCreateProduct(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, err := sellerIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		draft, err := payload.toDraft()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := engine.CreateProduct(sellerID, draft)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithProductID(r.Context(), product.ID.String())
		logg.Info(ctx, "product.created")
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// SellerListProducts lists the seller's own inventory, visible or not.
func SellerListProducts(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, err := sellerIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := engine.ListSellerProducts(sellerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

type updateProductRequest struct {
	SKU         *string                `json:"sku,omitempty"`
	Name        *string                `json:"name,omitempty"`
	Description *string                `json:"description,omitempty"`
	Category    *string                `json:"category,omitempty"`
	Make        *string                `json:"make,omitempty"`
	Model       *string                `json:"model,omitempty"`
	YearStart   *int                   `json:"year_start,omitempty" validate:"omitempty,min=1900"`
	YearEnd     *int                   `json:"year_end,omitempty" validate:"omitempty,min=1900"`
	Condition   *string                `json:"condition,omitempty"`
	Price       *string                `json:"price,omitempty"`
	Quantity    *int                   `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Status      *string                `json:"status,omitempty"`
	ImageRefs   *[]string              `json:"image_refs,omitempty" validate:"omitempty,min=1,dive,required"`
	Vehicle     *vehicleDetailsRequest `json:"vehicle,omitempty"`
}

func (r updateProductRequest) toPatch() (marketplace.ProductPatch, error) {
	patch := marketplace.ProductPatch{
		SKU:         r.SKU,
		Name:        r.Name,
		Description: r.Description,
		Make:        r.Make,
		Model:       r.Model,
		YearStart:   r.YearStart,
		YearEnd:     r.YearEnd,
		Quantity:    r.Quantity,
		ImageRefs:   r.ImageRefs,
	}

	if r.Category != nil {
		category, err := enums.ParseProductCategory(strings.TrimSpace(*r.Category))
		if err != nil {
			return marketplace.ProductPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		patch.Category = &category
	}
	if r.Condition != nil {
		condition, err := enums.ParseProductCondition(strings.TrimSpace(*r.Condition))
		if err != nil {
			return marketplace.ProductPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid condition")
		}
		patch.Condition = &condition
	}
	if r.Price != nil {
		price, err := decimal.NewFromString(strings.TrimSpace(*r.Price))
		if err != nil {
			return marketplace.ProductPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price")
		}
		patch.Price = &price
	}
	if r.Status != nil {
		status, err := enums.ParseProductStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return marketplace.ProductPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		patch.Status = &status
	}
	if r.Vehicle != nil {
		details, err := r.Vehicle.toDetails()
		if err != nil {
			return marketplace.ProductPatch{}, err
		}
		patch.Vehicle = details
	}
	return patch, nil
}

// SellerUpdateProduct applies a partial update to a listing.
func SellerUpdateProduct(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patch, err := payload.toPatch()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := engine.UpdateProduct(productID, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// SellerDeleteProduct removes a listing outright.
func SellerDeleteProduct(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := engine.DeleteProduct(productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithProductID(r.Context(), productID.String())
		logg.Info(ctx, "product.deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}

func productIDParam(r *http.Request) (uuid.UUID, error) {
	productID, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}
	return productID, nil
}

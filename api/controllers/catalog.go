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
	"github.com/angelmondragon/partdepot-backend/pkg/pagination"
)

// BrowseCatalog lists publicly visible listings. Filters arrive as query
// parameters and combine conjunctively.
func BrowseCatalog(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := marketplace.CatalogFilter{
			Query: strings.TrimSpace(r.URL.Query().Get("q")),
			Make:  strings.TrimSpace(r.URL.Query().Get("make")),
			Model: strings.TrimSpace(r.URL.Query().Get("model")),
		}

		year, err := validators.ParseOptionalQueryInt(r, "year")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.Year = year

		if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
			category, err := enums.ParseProductCategory(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
				return
			}
			filter.Category = &category
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		listings := engine.ListCatalog(filter)
		page := pagination.Page(listings, pagination.Params{Limit: limit, Offset: offset})

		responses.WriteSuccess(w, map[string]any{
			"listings": page,
			"total":    len(listings),
		})
	}
}

// GetListing returns one publicly visible listing by id.
func GetListing(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		listing, err := engine.GetListing(productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, listing)
	}
}

// ListMakeModels returns the distinct models observed among visible listings
// for one make, for the browse UI's dependent dropdown.
func ListMakeModels(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		makeName := strings.TrimSpace(chi.URLParam(r, "make"))
		if makeName == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "make is required"))
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"make":   makeName,
			"models": engine.ModelsForMake(makeName),
		})
	}
}

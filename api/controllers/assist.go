package controllers

import (
	"net/http"

	"github.com/angelmondragon/partdepot-backend/api/responses"
	"github.com/angelmondragon/partdepot-backend/api/validators"
	assistsvc "github.com/angelmondragon/partdepot-backend/internal/assist"
	"github.com/angelmondragon/partdepot-backend/pkg/logger"
)

type decodeVINRequest struct {
	VIN string `json:"vin" validate:"required,len=17"`
}

// AssistDecodeVIN resolves a VIN into listing prefill values.
func AssistDecodeVIN(svc assistsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload decodeVINRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		hints, err := svc.VehicleFromVIN(r.Context(), payload.VIN)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, hints)
	}
}

type identifyPartRequest struct {
	ImageRef string `json:"image_ref" validate:"required"`
}

// AssistIdentifyPart infers listing prefill values from a part photo.
func AssistIdentifyPart(svc assistsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload identifyPartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		hints, err := svc.PartFromImage(r.Context(), payload.ImageRef)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, hints)
	}
}

type draftArticleRequest struct {
	Keyword string `json:"keyword" validate:"required"`
}

// AssistDraftArticle generates a blog draft for admin review. Nothing is
// published until the admin posts the reviewed draft.
func AssistDraftArticle(svc assistsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload draftArticleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		draft, err := svc.DraftArticle(r.Context(), payload.Keyword)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, draft)
	}
}

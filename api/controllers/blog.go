package controllers

import (
	"net/http"

	"github.com/angelmondragon/partdepot-backend/api/responses"
	"github.com/angelmondragon/partdepot-backend/api/validators"
	"github.com/angelmondragon/partdepot-backend/internal/marketplace"
	"github.com/angelmondragon/partdepot-backend/pkg/logger"
)

// ListBlogPosts returns all published posts, oldest first.
func ListBlogPosts(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, engine.ListBlogPosts())
	}
}

type createBlogPostRequest struct {
	Title    string   `json:"title" validate:"required"`
	Slug     string   `json:"slug,omitempty"`
	Content  string   `json:"content" validate:"required"`
	Keywords []string `json:"keywords,omitempty"`
}

// AdminCreateBlogPost publishes a post, typically one drafted by the assist
// service and reviewed by an admin.
func AdminCreateBlogPost(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createBlogPostRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		post, err := engine.AddBlogPost(marketplace.BlogPostDraft{
			Title:    payload.Title,
			Slug:     payload.Slug,
			Content:  payload.Content,
			Keywords: payload.Keywords,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, post)
	}
}

package controllers

import (
	"net/http"

	"github.com/angelmondragon/partdepot-backend/api/responses"
	"github.com/angelmondragon/partdepot-backend/internal/marketplace"
	"github.com/angelmondragon/partdepot-backend/pkg/logger"
)

// AdminDashboard returns the marketplace-wide counters.
func AdminDashboard(engine *marketplace.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, engine.StatsForAdmin())
	}
}

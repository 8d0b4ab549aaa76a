package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/partdepot-backend/api/controllers"
	"github.com/angelmondragon/partdepot-backend/api/middleware"
	assistsvc "github.com/angelmondragon/partdepot-backend/internal/assist"
	cartsvc "github.com/angelmondragon/partdepot-backend/internal/cart"
	"github.com/angelmondragon/partdepot-backend/internal/marketplace"
	"github.com/angelmondragon/partdepot-backend/pkg/config"
	"github.com/angelmondragon/partdepot-backend/pkg/logger"
)

// NewRouter assembles the HTTP surface. Admin routes carry no auth; the
// deployment runs behind a trusted reverse proxy during the pilot.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	engine *marketplace.Engine,
	carts cartsvc.Service,
	assistService assistsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.BrowseCatalog(engine, logg))
			r.Get("/{productId}", controllers.GetListing(engine, logg))
			r.Get("/makes/{make}/models", controllers.ListMakeModels(engine, logg))
		})

		r.Post("/enquiries", controllers.CreateEnquiry(engine, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(carts, logg))
			r.Post("/items", controllers.AddCartItem(carts, logg))
			r.Put("/items/{productId}", controllers.SetCartItem(carts, logg))
		})
		r.Post("/checkout", controllers.Checkout(engine, carts, logg))

		r.Route("/sellers", func(r chi.Router) {
			r.Post("/", controllers.RegisterSeller(engine, logg))
			r.Route("/{sellerId}", func(r chi.Router) {
				r.Get("/", controllers.GetSeller(engine, logg))
				r.Get("/dashboard", controllers.SellerDashboard(engine, logg))
				r.Get("/enquiries", controllers.SellerEnquiries(engine, logg))
				r.Get("/products", controllers.SellerListProducts(engine, logg))
				r.Post("/products", controllers.SellerCreateProduct(engine, logg))
			})
		})
		r.Route("/products/{productId}", func(r chi.Router) {
			r.Patch("/", controllers.SellerUpdateProduct(engine, logg))
			r.Delete("/", controllers.SellerDeleteProduct(engine, logg))
		})

		r.Route("/assist", func(r chi.Router) {
			r.Post("/vin", controllers.AssistDecodeVIN(assistService, logg))
			r.Post("/part", controllers.AssistIdentifyPart(assistService, logg))
			r.Post("/article", controllers.AssistDraftArticle(assistService, logg))
		})

		r.Get("/blog", controllers.ListBlogPosts(engine, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Get("/ping", controllers.AdminPing())
		r.Get("/sellers", controllers.AdminListSellers(engine, logg))
		r.Patch("/sellers/{sellerId}/status", controllers.AdminSetSellerStatus(engine, logg))
		r.Get("/orders", controllers.AdminListOrders(engine, logg))
		r.Get("/dashboard", controllers.AdminDashboard(engine, logg))
		r.Post("/blog", controllers.AdminCreateBlogPost(engine, logg))
	})

	return r
}

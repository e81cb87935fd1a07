package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inventory-api/internal/config"
	"inventory-api/internal/handler"
	"inventory-api/internal/middleware"
)

type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	ProductType *handler.ProductTypeHandler
	Product     *handler.ProductHandler
	Storage     *handler.StorageHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, handlers Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/storage/*", handlers.Storage.Serve)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Post("/auth/register", handlers.Auth.Register)
		api.Post("/auth/login", handlers.Auth.Login)
		api.With(authMiddleware.RequireAuth).Delete("/auth/logout", handlers.Auth.Logout)

		api.With(authMiddleware.RequireAuth).Get("/user/me", handlers.User.Me)

		api.Route("/product-types", func(types chi.Router) {
			types.Use(authMiddleware.RequireAuth)
			types.Post("/", handlers.ProductType.Create)
			types.Get("/", handlers.ProductType.List)
			types.Put("/{id}", handlers.ProductType.Update)
			types.Delete("/{id}", handlers.ProductType.Delete)
		})

		api.Route("/products", func(products chi.Router) {
			products.Use(authMiddleware.RequireAuth)
			products.Post("/", handlers.Product.Create)
			products.Get("/", handlers.Product.List)
			products.Put("/{id}", handlers.Product.Update)
			products.Delete("/{id}", handlers.Product.Delete)
		})
	})

	return r
}

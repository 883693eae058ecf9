package router

import (
	"net/http"

	"scent-shop/internal/handler"
	"scent-shop/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Dependencies carries everything the router mounts.
type Dependencies struct {
	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	AuthHandler     *handler.AuthHandler
	HealthHandler   *handler.HealthHandler

	// Verifier guards catalog writes when RequireToken is set.
	Verifier     middleware.TokenVerifier
	RequireToken bool

	Logger zerolog.Logger
}

// New creates a new HTTP router with all routes and middleware configured.
func New(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Order: RealIP -> RequestID -> StripSlashes -> Recovery -> Logging -> CORS
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.StripSlashes)
	r.Use(middleware.Recovery(dep.Logger))
	r.Use(middleware.Logging(dep.Logger))
	r.Use(middleware.CORS)

	guard := func(next http.Handler) http.Handler { return next }
	if dep.RequireToken && dep.Verifier != nil {
		guard = middleware.VerifyToken(dep.Verifier, dep.Logger)
	}

	r.Get("/health", dep.HealthHandler.Check)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", dep.ProductHandler.List)
		r.Get("/{id}", dep.ProductHandler.GetByID)
		r.With(guard).Post("/", dep.ProductHandler.Create)
		r.With(guard).Put("/{id}", dep.ProductHandler.Update)
		r.With(guard).Delete("/{id}", dep.ProductHandler.Delete)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", dep.CategoryHandler.List)
		r.Get("/{id}", dep.CategoryHandler.GetByID)
		r.With(guard).Post("/", dep.CategoryHandler.Create)
		r.With(guard).Put("/{id}", dep.CategoryHandler.Update)
		r.With(guard).Delete("/{id}", dep.CategoryHandler.Delete)
	})

	r.Post("/register", dep.AuthHandler.Register)
	r.Post("/login", dep.AuthHandler.Login)

	return r
}

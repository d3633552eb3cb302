package handler

import (
	"net/http"

	"github.com/freightdesk/freightdesk-go/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// NewRouter builds the explicit route table. The credential endpoints sit
// behind a per-IP rate limiter; everything under the protected group runs
// the auth gate before its handler.
func NewRouter(auth *AuthHandler, companies *CompanyHandler, packages *PackageHandler, users *UserHandler, jwtSecret string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)

	// The original router matched verb and path as a unit, so a known path
	// with the wrong verb reports the same way as an unknown path.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})

	r.Get("/api/health", auth.HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/auth/register", auth.HandleRegister)
		r.Post("/api/auth/login", auth.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))

		r.Get("/api/companies", companies.HandleIndex)
		r.Get("/api/companies/{id}", companies.HandleShow)

		r.Get("/api/packages", packages.HandleIndex)
		r.Post("/api/packages", packages.HandleStore)
		r.Get("/api/packages/{id}", packages.HandleShow)
		r.Put("/api/packages/{id}", packages.HandleUpdate)
		r.Delete("/api/packages/{id}", packages.HandleDestroy)

		r.Get("/api/users", users.HandleIndex)
		r.Post("/api/users", users.HandleStore)
		r.Get("/api/users/{id}", users.HandleShow)
		r.Delete("/api/users/{id}", users.HandleDestroy)
	})

	return r
}

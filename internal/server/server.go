// internal/server/server.go
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"biblioteca/internal/catalog"
	"biblioteca/internal/circulation"
	"biblioteca/internal/membership"
)

// New builds the HTTP router over the three services.
func New(cat catalog.Service, mem membership.Service, circ circulation.Service) http.Handler {
	catalogHandler := catalog.NewHandler(cat)
	membershipHandler := membership.NewHandler(mem)
	circulationHandler := circulation.NewHandler(circ, cat, mem)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/books", func(r chi.Router) {
		r.Post("/", catalogHandler.HandleRegister)
		r.Get("/", catalogHandler.HandleList)
		r.Get("/{isbn}", catalogHandler.HandleGet)
	})

	r.Route("/members", func(r chi.Router) {
		r.Post("/", membershipHandler.HandleRegister)
		r.Get("/", membershipHandler.HandleList)
		r.Get("/{id}", membershipHandler.HandleGet)
		r.Post("/login", membershipHandler.HandleLogin)
	})

	r.Route("/loans", func(r chi.Router) {
		r.Post("/checkout", circulationHandler.HandleCheckout)
		r.Post("/return", circulationHandler.HandleReturn)
		r.With(RequireStaff(mem)).Get("/", circulationHandler.HandleList)
	})

	return r
}

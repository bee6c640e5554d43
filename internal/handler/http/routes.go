package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/clients", h.listClients)
		r.Get("/api/client/{id}", h.getClient)
		r.Put("/api/client/{id}", h.putClient)
		r.Delete("/api/client/{id}", h.deleteClient)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errRouteNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

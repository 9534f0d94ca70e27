package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires all API routes. Trailing slashes are part of the contract:
// clients address a single resource as /users/{userID}/ and collections
// as /users/.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/users/", h.createUser)
	router.Get("/users/{userID}/", h.getUser)
	router.Patch("/users/{userID}/", h.updateUser)
	router.Delete("/users/{userID}/", h.deleteUser)

	router.Post("/adverts/", h.createAdvert)
	router.Get("/adverts/{advertID}/", h.getAdvert)
	router.Patch("/adverts/{advertID}/", h.updateAdvert)
	router.Delete("/adverts/{advertID}/", h.deleteAdvert)

	return router
}

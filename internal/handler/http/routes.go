package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// everything else requires a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/recipes", h.listRecipes)
		r.Post("/api/recipes", h.createRecipe)
		r.Get("/api/recipes/{ref}", h.getRecipe)
		r.Put("/api/recipes/{ref}", h.updateRecipe)
		r.Delete("/api/recipes/{ref}", h.deleteRecipe)
		r.Post("/api/recipes/{ref}/copy", h.copyRecipe)

		r.Get("/api/recipe-tags", h.listTags)

		r.Get("/api/shares", h.listShares)
		r.Post("/api/shares", h.createShare)
		r.Delete("/api/shares/{shareID}", h.deleteShare)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

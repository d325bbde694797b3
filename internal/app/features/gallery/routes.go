// internal/app/features/gallery/routes.go
package gallery

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the gallery (typically mounted at "/projects").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeGallery)
	r.Get("/cards", h.ServeCards)
	r.Get("/api", h.ServeAPI)
	return r
}

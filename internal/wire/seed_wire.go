package wire

import (
	"movie-swiper/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeed(r chi.Router, seedHandler *adaptor.SeedHandler) {
	// Trusted server-side job; deploy behind the platform's function
	// gateway, not exposed to browsers directly.
	r.Post("/api/admin/seed", seedHandler.SeedMovies)
}

package wire

import (
	"movie-swiper/internal/adaptor"
	"movie-swiper/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	verifier middleware.TokenVerifier,
	log *zap.Logger,
) {
	// Public candidate listing and the single-page refresh variant
	r.Get("/api/movies", movieHandler.GetMovies)
	r.Post("/api/movies/refresh", movieHandler.RefreshMovies)

	// Personalized sample needs a resolved identity
	r.Route("/api/movies/unseen", func(r chi.Router) {
		r.Use(middleware.AuthUser(verifier, log))
		r.Get("/", movieHandler.GetUnseenMovies)
	})
}

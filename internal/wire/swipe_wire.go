package wire

import (
	"movie-swiper/internal/adaptor"
	"movie-swiper/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSwipe(
	r chi.Router,
	swipeHandler *adaptor.SwipeHandler,
	verifier middleware.TokenVerifier,
	log *zap.Logger,
) {
	r.Route("/api/swipes", func(r chi.Router) {
		r.Use(middleware.AuthUser(verifier, log))
		r.Post("/", swipeHandler.RecordSwipe)
	})
}

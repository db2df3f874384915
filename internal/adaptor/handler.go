package adaptor

import (
	"movie-swiper/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie *MovieHandler
	Swipe *SwipeHandler
	Seed  *SeedHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie: NewMovieHandler(service.Movie, log),
		Swipe: NewSwipeHandler(service.Swipe, log),
		Seed:  NewSeedHandler(service.Seed, log),
	}
}

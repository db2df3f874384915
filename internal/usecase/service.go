package usecase

import (
	"movie-swiper/internal/data/repository"
	"movie-swiper/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie MovieService
	Swipe SwipeService
	Seed  SeedService
}

// NewService wires services to their capability: request-facing
// services get the row-scoped repositories, the seeder gets the
// privileged ones.
func NewService(repos, adminRepos *repository.Repository, catalog Catalog, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Movie: NewMovieService(repos, catalog, log),
		Swipe: NewSwipeService(repos.Swipe, log),
		Seed:  NewSeedService(adminRepos, catalog, log),
	}
}

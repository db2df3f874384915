package repository

import (
	"movie-swiper/pkg/database"

	"go.uber.org/zap"
)

// Repository bundles the stores bound to one database pool. Build it
// once with the row-scoped pool for request handlers and once with the
// privileged pool for the seeder; the capability is fixed at
// construction, never branched at runtime.
type Repository struct {
	Movie MovieRepository
	Genre GenreRepository
	Swipe SwipeRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieRepository(db, log),
		Genre: NewGenreRepository(db, log),
		Swipe: NewSwipeRepository(db, log),
	}
}

package usecase

import (
	"context"

	"movie-swiper/internal/tmdb"
)

// Catalog is the upstream movie catalog as the services consume it.
// Implemented by tmdb.Client; stubbed in tests.
type Catalog interface {
	PopularMovies(ctx context.Context, page int) ([]tmdb.MovieSummary, error)
	MovieDetails(ctx context.Context, tmdbID int64) (*tmdb.MovieDetails, error)
	GenreList(ctx context.Context) ([]tmdb.Genre, error)
}

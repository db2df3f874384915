package usecase

import (
	"context"
	"fmt"

	"movie-swiper/internal/data/entity"
	"movie-swiper/internal/data/repository"
	"movie-swiper/internal/dto/response"
	"movie-swiper/pkg/utils"

	"go.uber.org/zap"
)

// unseenSampleSize is the fixed size of the unseen candidate sample.
const unseenSampleSize = 20

type MovieService interface {
	// ListPopular returns every stored movie, most popular first.
	ListPopular(ctx context.Context) (*response.MovieListResponse, error)

	// ListUnseen returns up to 20 movies the authenticated user has
	// not swiped on.
	ListUnseen(ctx context.Context) (*response.MovieListResponse, error)

	// RefreshPopular fetches page 1 of the catalog's popular listing,
	// upserts it and returns the normalized movies. This is the
	// original single-page seeding entry point kept as a lightweight
	// refresh.
	RefreshPopular(ctx context.Context) (*response.MovieListResponse, error)
}

type movieService struct {
	repo    *repository.Repository
	catalog Catalog
	log     *zap.Logger
}

func NewMovieService(repo *repository.Repository, catalog Catalog, log *zap.Logger) MovieService {
	return &movieService{
		repo:    repo,
		catalog: catalog,
		log:     log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListPopular(ctx context.Context) (*response.MovieListResponse, error) {
	movies, err := s.repo.Movie.FindAllByPopularity(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	genreNames, err := s.genreNames(ctx)
	if err != nil {
		// Listing still works without the dictionary
		s.log.Warn("Failed to load genre names", zap.Error(err))
	}

	s.log.Info("Movies listed", zap.Int("count", len(movies)))

	return response.MoviesToListResponse(movies, genreNames), nil
}

func (s *movieService) ListUnseen(ctx context.Context) (*response.MovieListResponse, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	movies, err := s.repo.Movie.FindUnseenForUser(ctx, userID, unseenSampleSize)
	if err != nil {
		return nil, fmt.Errorf("list unseen movies: %w", err)
	}

	genreNames, err := s.genreNames(ctx)
	if err != nil {
		s.log.Warn("Failed to load genre names", zap.Error(err))
	}

	s.log.Info("Unseen movies listed",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(movies)),
	)

	return response.MoviesToListResponse(movies, genreNames), nil
}

func (s *movieService) RefreshPopular(ctx context.Context) (*response.MovieListResponse, error) {
	summaries, err := s.catalog.PopularMovies(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("fetch popular movies: %w", err)
	}

	movies := make([]*entity.Movie, 0, len(summaries))
	for _, summary := range summaries {
		if movie := summary.ToEntity(); movie != nil {
			movies = append(movies, movie)
		}
	}

	if _, err := s.repo.Movie.UpsertBatch(ctx, movies); err != nil {
		return nil, fmt.Errorf("refresh popular movies: %w", err)
	}

	genreNames, err := s.genreNames(ctx)
	if err != nil {
		s.log.Warn("Failed to load genre names", zap.Error(err))
	}

	s.log.Info("Popular movies refreshed", zap.Int("count", len(movies)))

	return response.MoviesToListResponse(movies, genreNames), nil
}

func (s *movieService) genreNames(ctx context.Context) (map[int32]string, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int32]string, len(genres))
	for _, genre := range genres {
		names[genre.ID] = genre.Name
	}

	return names, nil
}

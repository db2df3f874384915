package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"movie-swiper/internal/data/entity"
	"movie-swiper/internal/data/repository"
	"movie-swiper/internal/dto/request"
	"movie-swiper/internal/dto/response"
	"movie-swiper/internal/tmdb"

	"go.uber.org/zap"
)

// defaultPagesToFetch matches the catalog's page size of 20, so the
// default run seeds roughly 200 movies.
const defaultPagesToFetch = 10

type SeedService interface {
	// Run ingests pagesToFetch catalog pages into the store. Page
	// failures are skipped, not fatal; only a missing catalog
	// credential aborts the run before any page.
	Run(ctx context.Context, req *request.SeedRequest) (*response.SeedResponse, error)
}

type seedService struct {
	repo    *repository.Repository
	catalog Catalog
	log     *zap.Logger
}

// NewSeedService expects the privileged repository set; seeding
// bypasses row-level policies.
func NewSeedService(repo *repository.Repository, catalog Catalog, log *zap.Logger) SeedService {
	return &seedService{
		repo:    repo,
		catalog: catalog,
		log:     log.With(zap.String("service", "seed")),
	}
}

func (s *seedService) Run(ctx context.Context, req *request.SeedRequest) (*response.SeedResponse, error) {
	pagesToFetch := req.PagesToFetch
	if pagesToFetch <= 0 {
		pagesToFetch = defaultPagesToFetch
	}

	// The dictionary refresh doubles as the credential check: a
	// missing API key aborts before any page is touched.
	if err := s.refreshGenres(ctx); err != nil {
		return nil, err
	}

	var totalProcessed int64

	for page := 1; page <= pagesToFetch; page++ {
		s.log.Info("Fetching page",
			zap.Int("page", page),
			zap.Int("pages_to_fetch", pagesToFetch),
		)

		summaries, err := s.catalog.PopularMovies(ctx, page)
		if err != nil {
			// A page-level failure is non-fatal to the run
			s.log.Error("Catalog listing failed, skipping page",
				zap.Error(err),
				zap.Int("page", page),
			)
			continue
		}

		var batch []*entity.Movie
		if req.IncludeDetails {
			batch = s.enrich(ctx, summaries)
		} else {
			batch = normalizeSummaries(summaries)
		}

		if len(batch) == 0 {
			continue
		}

		count, err := s.repo.Movie.UpsertBatch(ctx, batch)
		if err != nil {
			s.log.Error("Upsert failed, continuing with next page",
				zap.Error(err),
				zap.Int("page", page),
			)
			continue
		}

		totalProcessed += count
	}

	s.log.Info("Seeding complete",
		zap.Int64("total_processed", totalProcessed),
		zap.Int("pages_requested", pagesToFetch),
	)

	return response.NewSeedResponse(totalProcessed, pagesToFetch), nil
}

// normalizeSummaries maps listing entries directly, dropping any that
// fail to parse.
func normalizeSummaries(summaries []tmdb.MovieSummary) []*entity.Movie {
	batch := make([]*entity.Movie, 0, len(summaries))
	for _, summary := range summaries {
		if movie := summary.ToEntity(); movie != nil {
			batch = append(batch, movie)
		}
	}
	return batch
}

// enrich fans out one detail fetch per listing entry, waits for all to
// settle and keeps only the successful ones. A failed detail fetch
// excludes that movie from the batch, nothing more.
func (s *seedService) enrich(ctx context.Context, summaries []tmdb.MovieSummary) []*entity.Movie {
	results := make([]*entity.Movie, len(summaries))

	var wg sync.WaitGroup
	for i, summary := range summaries {
		wg.Add(1)
		go func(slot int, tmdbID int64) {
			defer wg.Done()

			details, err := s.catalog.MovieDetails(ctx, tmdbID)
			if err != nil {
				s.log.Warn("Detail fetch failed, excluding movie",
					zap.Error(err),
					zap.Int64("tmdb_id", tmdbID),
				)
				return
			}
			results[slot] = details.ToEntity()
		}(i, summary.ID)
	}
	wg.Wait()

	batch := make([]*entity.Movie, 0, len(results))
	for _, movie := range results {
		if movie != nil {
			batch = append(batch, movie)
		}
	}

	return batch
}

func (s *seedService) refreshGenres(ctx context.Context) error {
	genres, err := s.catalog.GenreList(ctx)
	if err != nil {
		if errors.Is(err, tmdb.ErrMissingAPIKey) {
			return fmt.Errorf("seed aborted: %w", err)
		}
		// Dictionary staleness is tolerable
		s.log.Warn("Genre dictionary refresh failed", zap.Error(err))
		return nil
	}

	batch := make([]*entity.Genre, len(genres))
	for i, genre := range genres {
		batch[i] = &entity.Genre{ID: genre.ID, Name: genre.Name}
	}

	if err := s.repo.Genre.UpsertBatch(ctx, batch); err != nil {
		s.log.Warn("Genre dictionary upsert failed", zap.Error(err))
	}

	return nil
}

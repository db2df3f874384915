package usecase

import (
	"context"
	"errors"

	"movie-swiper/internal/data/entity"
	"movie-swiper/internal/data/repository"
	"movie-swiper/internal/tmdb"

	"github.com/google/uuid"
)

// fakeCatalog serves canned pages and details keyed by id.
type fakeCatalog struct {
	pages       map[int][]tmdb.MovieSummary
	failPages   map[int]bool
	details     map[int64]*tmdb.MovieDetails
	failDetails map[int64]bool
	genres      []tmdb.Genre
	genreErr    error

	listingCalls int
}

func (c *fakeCatalog) PopularMovies(ctx context.Context, page int) ([]tmdb.MovieSummary, error) {
	c.listingCalls++
	if c.failPages[page] {
		return nil, tmdb.ErrUpstreamUnavailable
	}
	return c.pages[page], nil
}

func (c *fakeCatalog) MovieDetails(ctx context.Context, tmdbID int64) (*tmdb.MovieDetails, error) {
	if c.failDetails[tmdbID] {
		return nil, tmdb.ErrUpstreamUnavailable
	}
	d, ok := c.details[tmdbID]
	if !ok {
		return nil, tmdb.ErrUpstreamUnavailable
	}
	return d, nil
}

func (c *fakeCatalog) GenreList(ctx context.Context) ([]tmdb.Genre, error) {
	if c.genreErr != nil {
		return nil, c.genreErr
	}
	return c.genres, nil
}

// fakeMovieRepo collects upserted batches and serves canned listings.
type fakeMovieRepo struct {
	batches    [][]*entity.Movie
	upsertErr  error
	all        []*entity.Movie
	unseen     []*entity.Movie
	lastUserID uuid.UUID
	lastLimit  int
}

func (r *fakeMovieRepo) UpsertBatch(ctx context.Context, movies []*entity.Movie) (int64, error) {
	if r.upsertErr != nil {
		return 0, r.upsertErr
	}
	r.batches = append(r.batches, movies)
	return int64(len(movies)), nil
}

func (r *fakeMovieRepo) FindAllByPopularity(ctx context.Context) ([]*entity.Movie, error) {
	return r.all, nil
}

func (r *fakeMovieRepo) FindUnseenForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Movie, error) {
	r.lastUserID = userID
	r.lastLimit = limit
	return r.unseen, nil
}

type fakeGenreRepo struct {
	stored []*entity.Genre
}

func (r *fakeGenreRepo) UpsertBatch(ctx context.Context, genres []*entity.Genre) error {
	r.stored = genres
	return nil
}

func (r *fakeGenreRepo) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	return r.stored, nil
}

type fakeSwipeRepo struct {
	inserted  []*entity.Swipe
	insertErr error
}

func (r *fakeSwipeRepo) Insert(ctx context.Context, swipe *entity.Swipe) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, swipe)
	return nil
}

func newFakeRepository(movies *fakeMovieRepo, genres *fakeGenreRepo, swipes *fakeSwipeRepo) *repository.Repository {
	if movies == nil {
		movies = &fakeMovieRepo{}
	}
	if genres == nil {
		genres = &fakeGenreRepo{}
	}
	if swipes == nil {
		swipes = &fakeSwipeRepo{}
	}
	return &repository.Repository{
		Movie: movies,
		Genre: genres,
		Swipe: swipes,
	}
}

var errPersistence = errors.New("connection refused")

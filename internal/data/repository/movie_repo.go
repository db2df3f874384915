package repository

import (
	"context"
	"fmt"
	"strings"

	"movie-swiper/internal/data/entity"
	"movie-swiper/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieRepository interface {
	// UpsertBatch writes all records in one statement keyed on
	// tmdb_id; existing rows are overwritten. Returns the affected
	// row count. An empty batch is a no-op returning zero.
	UpsertBatch(ctx context.Context, movies []*entity.Movie) (int64, error)

	// FindAllByPopularity returns every stored movie, most popular first.
	FindAllByPopularity(ctx context.Context) ([]*entity.Movie, error)

	// FindUnseenForUser returns up to limit movies the user has not
	// swiped on, selection order left to the database.
	FindUnseenForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `tmdb_id, title, overview, release_date, poster_path, popularity,
	       genres, tagline, vote_average, vote_count, runtime, production_companies`

func (r *movieRepository) UpsertBatch(ctx context.Context, movies []*entity.Movie) (int64, error) {
	if len(movies) == 0 {
		return 0, nil
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		INSERT INTO movies (` + movieColumns + `)
		VALUES `)

	args := make([]any, 0, len(movies)*12)
	for i, movie := range movies {
		if i > 0 {
			queryBuilder.WriteString(", ")
		}
		base := i * 12
		queryBuilder.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10, base+11, base+12))
		args = append(args,
			movie.TMDBID,
			movie.Title,
			movie.Overview,
			movie.ReleaseDate,
			movie.PosterPath,
			movie.Popularity,
			movie.GenreIDs,
			movie.Tagline,
			movie.VoteAverage,
			movie.VoteCount,
			movie.Runtime,
			movie.ProductionCompanies,
		)
	}

	queryBuilder.WriteString(`
		ON CONFLICT (tmdb_id) DO UPDATE SET
			title = EXCLUDED.title,
			overview = EXCLUDED.overview,
			release_date = EXCLUDED.release_date,
			poster_path = EXCLUDED.poster_path,
			popularity = EXCLUDED.popularity,
			genres = EXCLUDED.genres,
			tagline = EXCLUDED.tagline,
			vote_average = EXCLUDED.vote_average,
			vote_count = EXCLUDED.vote_count,
			runtime = EXCLUDED.runtime,
			production_companies = EXCLUDED.production_companies
	`)

	result, err := r.db.Exec(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to upsert movies",
			zap.Error(err),
			zap.Int("batch_size", len(movies)),
		)
		return 0, fmt.Errorf("failed to upsert movies: %w", err)
	}

	r.log.Debug("Movies upserted",
		zap.Int("batch_size", len(movies)),
		zap.Int64("rows_affected", result.RowsAffected()),
	)

	return result.RowsAffected(), nil
}

func (r *movieRepository) FindAllByPopularity(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		ORDER BY popularity DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func (r *movieRepository) FindUnseenForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM get_unseen_movies_for_user($1, $2)
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		r.log.Error("Failed to find unseen movies",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("failed to find unseen movies: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

type movieRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanMovies(rows movieRows) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.TMDBID,
			&movie.Title,
			&movie.Overview,
			&movie.ReleaseDate,
			&movie.PosterPath,
			&movie.Popularity,
			&movie.GenreIDs,
			&movie.Tagline,
			&movie.VoteAverage,
			&movie.VoteCount,
			&movie.Runtime,
			&movie.ProductionCompanies,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return movies, nil
}

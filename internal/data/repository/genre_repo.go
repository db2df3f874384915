package repository

import (
	"context"
	"fmt"
	"strings"

	"movie-swiper/internal/data/entity"
	"movie-swiper/pkg/database"

	"go.uber.org/zap"
)

type GenreRepository interface {
	// UpsertBatch refreshes the genre dictionary, overwriting names
	// for known ids.
	UpsertBatch(ctx context.Context, genres []*entity.Genre) error

	FindAll(ctx context.Context) ([]*entity.Genre, error)
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) UpsertBatch(ctx context.Context, genres []*entity.Genre) error {
	if len(genres) == 0 {
		return nil
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`INSERT INTO genres (id, name) VALUES `)

	args := make([]any, 0, len(genres)*2)
	for i, genre := range genres {
		if i > 0 {
			queryBuilder.WriteString(", ")
		}
		queryBuilder.WriteString(fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2))
		args = append(args, genre.ID, genre.Name)
	}

	queryBuilder.WriteString(` ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`)

	if _, err := r.db.Exec(ctx, queryBuilder.String(), args...); err != nil {
		r.log.Error("Failed to upsert genres",
			zap.Error(err),
			zap.Int("batch_size", len(genres)),
		)
		return fmt.Errorf("failed to upsert genres: %w", err)
	}

	return nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		r.log.Error("Failed to find genres", zap.Error(err))
		return nil, fmt.Errorf("failed to find genres: %w", err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return genres, nil
}

package repository

import (
	"context"
	"fmt"

	"movie-swiper/internal/data/entity"
	"movie-swiper/pkg/database"

	"go.uber.org/zap"
)

type SwipeRepository interface {
	// Insert appends one swipe attributed to swipe.UserID and fills
	// in the database timestamp.
	Insert(ctx context.Context, swipe *entity.Swipe) error
}

type swipeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSwipeRepository(db database.PgxIface, log *zap.Logger) SwipeRepository {
	return &swipeRepository{
		db:  db,
		log: log.With(zap.String("repository", "swipe")),
	}
}

func (r *swipeRepository) Insert(ctx context.Context, swipe *entity.Swipe) error {
	// The insert runs in a transaction that pins the acting user for
	// the row-level policy on swipes. set_config with is_local=true
	// scopes the setting to this transaction only.
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin swipe insert: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `SELECT set_config('app.current_user_id', $1, true)`, swipe.UserID.String())
	if err != nil {
		return fmt.Errorf("failed to scope swipe insert: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO swipes (user_id, movie_id, liked)
		VALUES ($1, $2, $3)
		RETURNING inserted_at
	`, swipe.UserID, swipe.MovieID, swipe.Liked).Scan(&swipe.InsertedAt)

	if err != nil {
		r.log.Error("Failed to insert swipe",
			zap.Error(err),
			zap.String("user_id", swipe.UserID.String()),
			zap.Int64("movie_id", swipe.MovieID),
		)
		return fmt.Errorf("failed to insert swipe: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit swipe insert: %w", err)
	}

	return nil
}

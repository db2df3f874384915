package entity

import (
	"time"

	"github.com/google/uuid"
)

// Swipe is one like/dislike decision, append-only.
type Swipe struct {
	UserID     uuid.UUID `db:"user_id"`
	MovieID    int64     `db:"movie_id"`
	Liked      bool      `db:"liked"`
	InsertedAt time.Time `db:"inserted_at"`
}
